package format

import (
	"errors"
	"fmt"
	"strings"

	"sfzkit/internal/doc"
	"sfzkit/internal/token"
)

type Options struct {
	IndentWidth int
	UseTabs     bool
	// Nested indents each chain header by its depth and the opcodes one
	// level deeper than their header.
	Nested bool
	// Inline keeps a header and its opcodes on one line.
	Inline bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 2
	}
	return o
}

// ErrUnrepresentable is returned when the tree cannot be reproduced by any
// sequence of headers.
var ErrUnrepresentable = errors.New("format: document tree has no SFZ rendering")

// open mirrors the parser's view of which headers are currently open.
type open struct {
	global, master, group, region, side doc.ScopeID
}

func (o *open) deepest(upTo token.HeaderKind) doc.ScopeID {
	if upTo >= token.HeaderGroup && o.group != doc.NoScope {
		return o.group
	}
	if upTo >= token.HeaderMaster && o.master != doc.NoScope {
		return o.master
	}
	return o.global
}

type printer struct {
	d     *doc.Document
	w     *Writer
	opt   Options
	state open
}

// Document renders d as SFZ text. Headers come out in the order they were
// opened, so region and group numbering survives a round trip.
func Document(d *doc.Document, opt Options) ([]byte, error) {
	if d == nil {
		return nil, errors.New("format: nil document")
	}
	opt = opt.withDefaults()
	p := &printer{
		d:   d,
		w:   NewWriter(opt),
		opt: opt,
		state: open{
			global: doc.NoScope, master: doc.NoScope, group: doc.NoScope,
			region: doc.NoScope, side: doc.NoScope,
		},
	}
	for _, inc := range d.Includes {
		p.w.Comment(fmt.Sprintf("unresolved #include %q", inc.Path))
	}
	for id := range doc.ScopeID(d.Len()) {
		if err := p.printScope(d.Scope(id)); err != nil {
			return nil, err
		}
	}
	return p.w.Bytes(), nil
}

func (p *printer) printScope(s *doc.Scope) error {
	st := &p.state
	switch s.Kind {
	case token.HeaderGlobal:
		st.side, st.master, st.group, st.region = doc.NoScope, doc.NoScope, doc.NoScope, doc.NoScope
		st.global = s.ID
		if s.Implicit {
			// неявный global: либо пустой, либо опкоды до первого заголовка
			p.printAssignments(s, 0)
			return nil
		}
	case token.HeaderMaster:
		if err := p.reopen(s, st.global); err != nil {
			return err
		}
		st.side, st.group, st.region = doc.NoScope, doc.NoScope, doc.NoScope
		st.master = s.ID
	case token.HeaderGroup:
		if err := p.reopen(s, st.deepest(token.HeaderMaster)); err != nil {
			return err
		}
		st.side, st.region = doc.NoScope, doc.NoScope
		st.group = s.ID
	case token.HeaderRegion:
		if err := p.reopen(s, st.deepest(token.HeaderGroup)); err != nil {
			return err
		}
		st.side = doc.NoScope
		st.region = s.ID
	default:
		st.region = doc.NoScope
		st.side = s.ID
	}
	p.printHeader(s)
	return nil
}

// reopen makes sure the header of s will attach to s.Parent. The only way
// the parser detaches a chain from an open master or group is a repeated
// <global>, so that is what gets written.
func (p *printer) reopen(s *doc.Scope, expected doc.ScopeID) error {
	if expected == s.Parent {
		return nil
	}
	if s.Parent != p.state.global || s.Parent == doc.NoScope {
		return fmt.Errorf("%w: <%s> #%d", ErrUnrepresentable, s.Kind, s.ID)
	}
	p.w.SetIndent(0)
	p.w.Header(token.HeaderGlobal.String(), false)
	p.state.master, p.state.group, p.state.region = doc.NoScope, doc.NoScope, doc.NoScope
	return nil
}

// depth counts the explicit chain ancestors of s.
func (p *printer) depth(s *doc.Scope) int {
	if !p.opt.Nested || !s.Kind.InChain() {
		return 0
	}
	n := 0
	for _, id := range p.d.Chain(s.Parent) {
		if !p.d.Scope(id).Implicit {
			n++
		}
	}
	return n
}

func (p *printer) printHeader(s *doc.Scope) {
	level := p.depth(s)
	p.w.SetIndent(level)
	p.w.Header(s.Kind.String(), s.Kind.Level() < token.HeaderRegion.Level())
	if p.opt.Inline {
		for _, a := range s.Assignments() {
			p.w.Opcode(a.Name, quoteValue(a.Value.Raw), true)
		}
		return
	}
	next := level
	if p.opt.Nested {
		next++
	}
	p.printAssignments(s, next)
}

func (p *printer) printAssignments(s *doc.Scope, level int) {
	p.w.SetIndent(level)
	for _, a := range s.Assignments() {
		p.w.Opcode(a.Name, quoteValue(a.Value.Raw), false)
	}
}

// quoteValue quotes values the lexer would otherwise cut short: comment
// starts, '<', and a space followed by something that looks like the next
// opcode or a directive.
func quoteValue(v string) string {
	if !needsQuotes(v) {
		return v
	}
	if !strings.Contains(v, `"`) {
		return `"` + v + `"`
	}
	if !strings.Contains(v, "'") {
		return "'" + v + "'"
	}
	return v
}

func needsQuotes(v string) bool {
	if v == "" {
		return false
	}
	if v != strings.TrimSpace(v) || v[0] == '"' || v[0] == '\'' {
		return true
	}
	if strings.Contains(v, "//") || strings.Contains(v, "/*") || strings.ContainsAny(v, "<\n") {
		return true
	}
	for i := 0; i < len(v); i++ {
		if v[i] == ' ' || v[i] == '\t' {
			if looksLikeToken(v[i+1:]) {
				return true
			}
		}
	}
	return false
}

func looksLikeToken(rest string) bool {
	if strings.HasPrefix(rest, "#define") || strings.HasPrefix(rest, "#include") {
		return true
	}
	i := 0
	for i < len(rest) && isNameByte(rest[i]) {
		i++
	}
	return i > 0 && i < len(rest) && rest[i] == '='
}

func isNameByte(b byte) bool {
	return b == '_' || b == '$' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
