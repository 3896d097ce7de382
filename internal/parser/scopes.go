package parser

import (
	"sfzkit/internal/diag"
	"sfzkit/internal/doc"
	"sfzkit/internal/source"
	"sfzkit/internal/token"
)

// header applies the closing rules for one header token.
func (p *Parser) header(tok token.Token) {
	switch tok.HeaderKind {
	case token.HeaderGlobal:
		p.openGlobal(tok.Span)
	case token.HeaderMaster:
		p.closeSide()
		p.region, p.group = doc.NoScope, doc.NoScope
		parent := p.global
		if parent == doc.NoScope {
			parent = p.implicitGlobal()
		}
		p.master = p.b.Open(token.HeaderMaster, parent, tok.Span, false)
	case token.HeaderGroup:
		p.closeSide()
		p.region = doc.NoScope
		p.group = p.b.Open(token.HeaderGroup, p.deepest(token.HeaderMaster), tok.Span, false)
	case token.HeaderRegion:
		p.closeSide()
		p.region = p.b.Open(token.HeaderRegion, p.deepest(token.HeaderGroup), tok.Span, false)
	default:
		// control, curve, effect, midi, sample
		p.region = doc.NoScope
		p.side = p.b.Open(tok.HeaderKind, doc.NoScope, tok.Span, false)
	}
}

// openGlobal закрывает всё. Повторный <global> сливается с первым.
func (p *Parser) openGlobal(sp source.Span) {
	p.closeSide()
	p.master, p.group, p.region = doc.NoScope, doc.NoScope, doc.NoScope
	if p.global == doc.NoScope {
		p.global = p.b.Open(token.HeaderGlobal, doc.NoScope, sp, false)
		return
	}
	g := p.b.Scope(p.global)
	if g.Implicit {
		p.b.MarkExplicit(p.global, sp)
		return
	}
	diag.ReportWarning(p.rep, diag.SynDuplicateGlobal, sp, "duplicate <global> header; opcodes are merged into the first one").
		WithNote(g.Span, "first <global> is here").
		Emit()
}

// implicitGlobal creates the empty root used when a master or a leading
// assignment has no declared <global>.
func (p *Parser) implicitGlobal() doc.ScopeID {
	p.global = p.b.Open(token.HeaderGlobal, doc.NoScope, source.Span{}, true)
	return p.global
}

// deepest returns the innermost open chain scope at or above level upTo.
func (p *Parser) deepest(upTo token.HeaderKind) doc.ScopeID {
	if upTo >= token.HeaderGroup && p.group != doc.NoScope {
		return p.group
	}
	if upTo >= token.HeaderMaster && p.master != doc.NoScope {
		return p.master
	}
	return p.global
}

func (p *Parser) closeSide() { p.side = doc.NoScope }

// current is the scope assignments go to, or NoScope before any header.
func (p *Parser) current() doc.ScopeID {
	if p.side != doc.NoScope {
		return p.side
	}
	if p.region != doc.NoScope {
		return p.region
	}
	return p.deepest(token.HeaderGroup)
}
