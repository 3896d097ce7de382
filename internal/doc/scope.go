package doc

import (
	"sfzkit/internal/opcode"
	"sfzkit/internal/source"
	"sfzkit/internal/token"
)

// ScopeID indexes a scope inside its Document.
type ScopeID int32

// NoScope is the parent of top-level scopes.
const NoScope ScopeID = -1

// Assignment is one opcode=value pair stored in a scope.
type Assignment struct {
	Name      string // as written, lower-cased (hicc64)
	Canonical string // catalog name (hiccN); empty for unknown opcodes
	Params    []int
	Value     opcode.Value
	Span      source.Span
	Known     bool
}

type Scope struct {
	ID       ScopeID
	Kind     token.HeaderKind
	Parent   ScopeID
	Children []ScopeID
	Span     source.Span // span of the header; zero for implicit scopes
	Implicit bool

	index map[string]int
	list  []Assignment
}

// Get returns the assignment stored directly in this scope.
func (s *Scope) Get(name string) (Assignment, bool) {
	i, ok := s.index[name]
	if !ok {
		return Assignment{}, false
	}
	return s.list[i], true
}

// Len returns the number of distinct opcodes set in this scope.
func (s *Scope) Len() int { return len(s.list) }

// Assignments returns the scope's opcodes in order of first assignment.
func (s *Scope) Assignments() []Assignment {
	return append([]Assignment(nil), s.list...)
}

// Label returns the <kind>_label opcode of the scope, if set.
func (s *Scope) Label() string {
	if !s.Kind.InChain() {
		return ""
	}
	a, ok := s.Get(s.Kind.String() + "_label")
	if !ok {
		return ""
	}
	return a.Value.Text()
}

// set stores a; a later assignment of the same name replaces the value but
// keeps the original position.
func (s *Scope) set(a Assignment) (prev Assignment, replaced bool) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[a.Name]; ok {
		prev = s.list[i]
		s.list[i] = a
		return prev, true
	}
	s.index[a.Name] = len(s.list)
	s.list = append(s.list, a)
	return Assignment{}, false
}
