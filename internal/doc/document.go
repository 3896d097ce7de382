package doc

import (
	"path"
	"sort"
	"strings"

	"sfzkit/internal/opcode"
	"sfzkit/internal/source"
	"sfzkit/internal/token"
)

// Define records a #define seen while building.
type Define struct {
	Name  string
	Value string
	Span  source.Span
}

// IncludeRef records an #include that reached the builder unflattened.
type IncludeRef struct {
	Path string
	Span source.Span
}

type Document struct {
	scopes  []Scope
	global  ScopeID
	roots   []ScopeID
	masters []ScopeID
	groups  []ScopeID
	regions []ScopeID
	side    map[token.HeaderKind][]ScopeID
	catalog *opcode.Catalog

	Defines  []Define
	Includes []IncludeRef
}

func newDocument(cat *opcode.Catalog) *Document {
	if cat == nil {
		cat = opcode.Default()
	}
	return &Document{
		global:  NoScope,
		side:    make(map[token.HeaderKind][]ScopeID),
		catalog: cat,
	}
}

// Catalog returns the catalog the document was validated against.
// RemapSpans moves every span of the document through f. The driver uses
// it to point scopes and assignments at the files they were written in
// rather than at the flattened text.
func (d *Document) RemapSpans(f func(source.Span) source.Span) {
	for i := range d.scopes {
		s := &d.scopes[i]
		if !s.Implicit {
			s.Span = f(s.Span)
		}
		for j := range s.list {
			s.list[j].Span = f(s.list[j].Span)
		}
	}
	for i := range d.Defines {
		d.Defines[i].Span = f(d.Defines[i].Span)
	}
	for i := range d.Includes {
		d.Includes[i].Span = f(d.Includes[i].Span)
	}
}

func (d *Document) Catalog() *opcode.Catalog { return d.catalog }

// Len returns the total number of scopes.
func (d *Document) Len() int { return len(d.scopes) }

// Scope returns the scope with the given id, or nil.
func (d *Document) Scope(id ScopeID) *Scope {
	if id < 0 || int(id) >= len(d.scopes) {
		return nil
	}
	return &d.scopes[id]
}

// Global returns the document's global scope, if any.
func (d *Document) Global() (ScopeID, bool) {
	return d.global, d.global != NoScope
}

// Roots returns the top-level chain scopes: the global scope and any group
// or region that appeared before it without a parent.
func (d *Document) Roots() []ScopeID { return d.roots }

func (d *Document) Masters() []ScopeID { return d.masters }

func (d *Document) Groups() []ScopeID { return d.groups }

// Regions returns every region in document order.
func (d *Document) Regions() []ScopeID { return d.regions }

// Side returns the side scopes of one kind (control, curve, ...) in order.
func (d *Document) Side(kind token.HeaderKind) []ScopeID { return d.side[kind] }

// Chain returns the ancestors of id followed by id itself, outermost first.
func (d *Document) Chain(id ScopeID) []ScopeID {
	var out []ScopeID
	for cur := id; cur != NoScope; {
		s := d.Scope(cur)
		if s == nil {
			break
		}
		out = append(out, cur)
		cur = s.Parent
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ResolveLocal looks name up in the scope itself only.
func (d *Document) ResolveLocal(id ScopeID, name string) (opcode.Value, bool) {
	s := d.Scope(id)
	if s == nil {
		return opcode.Value{}, false
	}
	a, ok := s.Get(strings.ToLower(name))
	return a.Value, ok
}

// Lookup walks from id towards the root and returns the first assignment of
// name together with the scope that holds it.
func (d *Document) Lookup(id ScopeID, name string) (Assignment, ScopeID, bool) {
	name = strings.ToLower(name)
	for cur := id; cur != NoScope; {
		s := d.Scope(cur)
		if s == nil {
			break
		}
		if a, ok := s.Get(name); ok {
			return a, cur, true
		}
		cur = s.Parent
	}
	return Assignment{}, NoScope, false
}

// Resolve returns the effective value of name for a region: the nearest
// assignment on the chain Region > Group > Master > Global, else the
// catalog default. ok is false when neither exists.
func (d *Document) Resolve(region ScopeID, name string) (opcode.Value, bool) {
	if d.Scope(region) == nil {
		return opcode.Value{}, false
	}
	if a, _, ok := d.Lookup(region, name); ok {
		return a.Value, true
	}
	desc, _, ok := d.catalog.Lookup(name)
	if !ok {
		return opcode.Value{}, false
	}
	return desc.DefaultValue()
}

// Resolved is one entry of an effective opcode set.
type Resolved struct {
	Assignment
	From ScopeID
}

// Effective merges the chain of a region into one opcode set, most specific
// scope winning, sorted by name. Catalog defaults are not included.
func (d *Document) Effective(region ScopeID) []Resolved {
	seen := make(map[string]int)
	var out []Resolved
	for _, id := range d.Chain(region) {
		for _, a := range d.scopes[id].list {
			if i, ok := seen[a.Name]; ok {
				out[i] = Resolved{Assignment: a, From: id}
				continue
			}
			seen[a.Name] = len(out)
			out = append(out, Resolved{Assignment: a, From: id})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SamplePath returns the region's sample joined with the default_path of
// the nearest preceding <control> scope. Separators are always '/'.
func (d *Document) SamplePath(region ScopeID) (string, bool) {
	v, ok := d.Resolve(region, "sample")
	if !ok || v.Text() == "" {
		return "", false
	}
	sample := v.Text()
	if isAbs(sample) {
		return sample, true
	}
	base := ""
	for _, id := range d.side[token.HeaderControl] {
		if id > region {
			break
		}
		if a, ok := d.scopes[id].Get("default_path"); ok {
			base = a.Value.Text()
		}
	}
	if base == "" {
		return sample, true
	}
	return path.Join(base, sample), true
}

func isAbs(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}
	// C:/samples/...
	return len(p) >= 3 && p[1] == ':' && p[2] == '/'
}
