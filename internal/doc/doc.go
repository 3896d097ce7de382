// Package doc is the resolved SFZ document: a tree of scopes holding typed
// opcode assignments.
//
// The inheritance chain is Global > Master > Group > Region. Side scopes
// (control, curve, effect, midi, sample) are kept in their own lists and
// never take part in inheritance. Values are resolved lazily: Resolve walks
// from a region up to the root and falls back to the catalog default.
package doc
