package parser

import (
	"fmt"

	"sfzkit/internal/diag"
	"sfzkit/internal/source"
)

// Error is a structural failure that leaves no usable document.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code.ID(), e.Msg)
}

func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Span, e.Msg)
}

func (p *Parser) fail(code diag.Code, sp source.Span, msg string) error {
	p.report(code, diag.SevError, sp, msg)
	return &Error{Code: code, Span: sp, Msg: msg}
}
