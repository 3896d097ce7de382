// Package token defines the lexical units of an SFZ instrument file.
//
// A token is one of four shapes: a header (<region>), an opcode
// assignment (lokey=36), or a preprocessor directive (#define, #include).
// Comments and whitespace never become tokens; the lexer attaches them to
// the following token as leading trivia.
package token
