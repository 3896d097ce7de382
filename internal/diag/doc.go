// Package diag defines the diagnostic model shared by every pipeline phase:
// the lexer, the directive pre-pass, include flattening and the document
// builder.
//
// Diagnostic is the central record: a Severity, a numeric Code with a stable
// string form (LEX1xxx lexical, DIR15xx directives, SYN2xxx structure,
// OPC3xxx opcode values, IO4xxx file access), a short Message, the Primary
// span and optional Notes and Fixes. A Fix is data only; the CLI prints it as
// a "did you mean" hint.
//
// Phases emit through a Reporter so they never depend on storage. BagReporter
// aggregates into a Bag (limit, sort, dedup, strict-mode promotion),
// DedupReporter drops repeats and Tee fans out to several sinks.
//
// Rendering lives in internal/diagfmt.
package diag
