// Package dialect works out which revision of the SFZ format an instrument
// is written for: plain v1, v2, or one of the extensions layered on v2
// (ARIA, Cakewalk). Every header and known opcode is a piece of evidence;
// the classifier picks the smallest revision that covers all of it.
//
// Detection never changes parsing. The driver uses it for the summary of an
// instrument and, when a target revision is configured, to warn about
// opcodes that target does not support.
package dialect
