package parser

import (
	"errors"

	"sfzkit/internal/diag"
	"sfzkit/internal/doc"
	"sfzkit/internal/opcode"
	"sfzkit/internal/token"
)

// assign validates one opcode and stores it in the current scope. Unknown
// opcodes and bad values are kept as FreeString with a warning.
func (p *Parser) assign(tok token.Token) {
	target := p.current()
	if target == doc.NoScope {
		target = p.implicitGlobal()
		diag.ReportInfo(p.rep, diag.SynAssignBeforeHeader, tok.Span,
			"opcode '"+tok.Name+"' appears before any header; it is applied to the implicit <global>").Emit()
	}

	a := doc.Assignment{Name: tok.Name, Span: tok.Span}
	desc, params, ok := p.cat.Lookup(tok.Name)
	if !ok {
		a.Value = opcode.StringValue(tok.Value)
		p.unknownOpcode(tok)
		p.b.Set(target, a)
		return
	}

	a.Known = true
	a.Canonical = desc.Name
	a.Params = params
	v, err := opcode.Parse(desc, tok.Value)
	if err != nil {
		v = opcode.StringValue(tok.Value)
		p.invalidValue(tok, desc, err)
	}
	a.Value = v
	p.b.Set(target, a)
}

func (p *Parser) unknownOpcode(tok token.Token) {
	rb := diag.ReportWarning(p.rep, diag.OpcUnknown, tok.NameSpan, "unknown opcode '"+tok.Name+"'")
	if s, ok := p.cat.Suggest(tok.Name); ok {
		rb.WithFix("did you mean '"+s+"'?", diag.FixEdit{Span: tok.NameSpan, NewText: s})
	}
	rb.Emit()
}

func (p *Parser) invalidValue(tok token.Token, desc opcode.Descriptor, err error) {
	sp := tok.ValueSpan
	if sp.Empty() {
		sp = tok.Span
	}
	var ve *opcode.ValueError
	if !errors.As(err, &ve) {
		diag.ReportWarning(p.rep, diag.OpcInvalidValue, sp, err.Error()).Emit()
		return
	}
	code := diag.OpcInvalidValue
	switch ve.Kind {
	case opcode.ErrOutOfRange:
		code = diag.OpcOutOfRange
	case opcode.ErrEmpty:
		code = diag.OpcEmptyValue
	case opcode.ErrUnknownWord:
		code = diag.OpcUnknownEnum
	}
	rb := diag.ReportWarning(p.rep, code, sp, ve.Error()+"; value kept as text")
	if ve.Kind == opcode.ErrUnknownWord {
		if s, ok := desc.SuggestValue(tok.Value); ok {
			rb.WithFix("replace with '"+s+"'", diag.FixEdit{Span: sp, NewText: s})
		}
	}
	rb.Emit()
}
