package lexer

import (
	"fmt"

	"sfzkit/internal/diag"
	"sfzkit/internal/source"
	"sfzkit/internal/token"
)

// Error is a fatal tokenization failure. After it the lexer yields only EOF.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code.ID(), e.Msg)
}

// Diagnostic converts the error into a diagnostic record.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Span, e.Msg)
}

// fail records the first fatal error, reports it and returns an Invalid token
// covering sp.
func (lx *Lexer) fail(code diag.Code, sp source.Span, msg string) token.Token {
	if lx.err == nil {
		lx.err = &Error{Code: code, Span: sp, Msg: msg}
		lx.report(diag.SevError, code, sp, msg)
	}
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
