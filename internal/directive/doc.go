// Package directive runs the textual pre-pass over an SFZ file.
//
// Expand walks the raw text once, records every #define $NAME value in a
// VarTable and replaces later $NAME occurrences with their values. A
// definition applies only to the text after it. When several names match
// at one '$', the longest wins ($VOLUME before $VOL). Undefined variables
// stay verbatim and produce a warning.
//
// #include lines are only checked for syntax here; resolving them is the
// job of package include. Comments are copied untouched.
package directive
