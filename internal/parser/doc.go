// Package parser builds a doc.Document from a token stream.
//
// It keeps the open scopes (global, master, group, region and one side
// scope) and applies the header closing rules:
//
//	<global>   closes everything; a second <global> merges into the first
//	<master>   closes group and region; parent is the global (implicit if needed)
//	<group>    closes region; parent is the open master, else the global
//	<region>   closes region; parent is the deepest open chain scope
//	<control>, <curve>, <effect>, <midi>, <sample>
//	           close region and open a side scope outside the chain
//
// Assignments go to the innermost open scope. Leading assignments before
// any header create an implicit <global>.
package parser
