package directive

import (
	"fmt"

	"sfzkit/internal/diag"
	"sfzkit/internal/source"
)

// Error is a malformed directive. It aborts processing of the input.
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
