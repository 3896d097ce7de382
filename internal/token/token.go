package token

import (
	"sfzkit/internal/source"
)

// Token represents a single source token with its location and trivia.
//
// Name and Value carry the decoded payload:
//   - Header:  Name is the case-folded header name, HeaderKind is set.
//   - Assign:  Name is the lower-cased opcode name, Value the raw value
//     with surrounding quotes removed.
//   - Define:  Name is the variable name without '$', Value its text.
//   - Include: Value is the quoted path.
type Token struct {
	Kind       Kind
	Span       source.Span
	Text       string
	HeaderKind HeaderKind
	Name       string
	NameSpan   source.Span
	Value      string
	ValueSpan  source.Span
	Quoted     bool
	Leading    []Trivia
}

// IsHeader reports whether the token is a header of the given kind.
func (t Token) IsHeader(h HeaderKind) bool {
	return t.Kind == Header && t.HeaderKind == h
}

// IsEOF reports whether the token marks the end of input.
func (t Token) IsEOF() bool { return t.Kind == EOF }

// HasComments reports whether any leading trivia is a comment.
func (t Token) HasComments() bool {
	for _, tv := range t.Leading {
		if tv.IsComment() {
			return true
		}
	}
	return false
}
