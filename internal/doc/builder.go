package doc

import (
	"sfzkit/internal/opcode"
	"sfzkit/internal/source"
	"sfzkit/internal/token"
)

// Builder assembles a Document. It enforces tree shape only; the closing
// rules for headers live in package parser.
type Builder struct {
	doc *Document
}

func NewBuilder(cat *opcode.Catalog) *Builder {
	return &Builder{doc: newDocument(cat)}
}

// Open creates a scope of kind under parent (NoScope for top level).
func (b *Builder) Open(kind token.HeaderKind, parent ScopeID, span source.Span, implicit bool) ScopeID {
	d := b.doc
	id := ScopeID(len(d.scopes))
	d.scopes = append(d.scopes, Scope{
		ID:       id,
		Kind:     kind,
		Parent:   parent,
		Span:     span,
		Implicit: implicit,
	})
	if parent != NoScope {
		p := &d.scopes[parent]
		p.Children = append(p.Children, id)
	} else if kind.InChain() {
		d.roots = append(d.roots, id)
	}

	switch kind {
	case token.HeaderGlobal:
		if d.global == NoScope {
			d.global = id
		}
	case token.HeaderMaster:
		d.masters = append(d.masters, id)
	case token.HeaderGroup:
		d.groups = append(d.groups, id)
	case token.HeaderRegion:
		d.regions = append(d.regions, id)
	default:
		d.side[kind] = append(d.side[kind], id)
	}
	return id
}

// MarkExplicit records that an implicit scope was later declared by a header.
func (b *Builder) MarkExplicit(id ScopeID, span source.Span) {
	s := b.doc.Scope(id)
	if s == nil {
		return
	}
	s.Implicit = false
	s.Span = span
}

// Set stores an assignment in scope id.
func (b *Builder) Set(id ScopeID, a Assignment) (prev Assignment, replaced bool) {
	s := b.doc.Scope(id)
	if s == nil {
		return Assignment{}, false
	}
	return s.set(a)
}

func (b *Builder) AddDefine(def Define) { b.doc.Defines = append(b.doc.Defines, def) }

func (b *Builder) AddInclude(ref IncludeRef) { b.doc.Includes = append(b.doc.Includes, ref) }

// Scope gives the builder read access while building.
func (b *Builder) Scope(id ScopeID) *Scope { return b.doc.Scope(id) }

// Document returns the built document. The builder must not be used after.
func (b *Builder) Document() *Document { return b.doc }
