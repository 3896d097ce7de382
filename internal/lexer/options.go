package lexer

import (
	"sfzkit/internal/diag"
	"sfzkit/internal/source"
)

// Options настраивает лексер.
type Options struct {
	// Reporter receives lexical diagnostics as they are found. nil is
	// allowed; the fatal one is still available from Err.
	Reporter diag.Reporter
}

func (lx *Lexer) report(sev diag.Severity, code diag.Code, sp source.Span, msg string) {
	diag.NewReportBuilder(lx.opts.Reporter, sev, code, sp, msg).Emit()
}
