package directive

import (
	"bytes"

	"sfzkit/internal/source"
)

// Var is one #define entry.
type Var struct {
	Name  string
	Value string
	Span  source.Span // span of the defining directive; zero for predefined vars
}

// VarTable maps variable names to values, keeping definition order.
// Names are case-sensitive.
type VarTable struct {
	vars  []Var
	index map[string]int
}

func NewVarTable() *VarTable {
	return &VarTable{index: make(map[string]int)}
}

// Define sets name to value. A redefinition keeps the original position and
// returns the previous entry.
func (t *VarTable) Define(name, value string, sp source.Span) (prev Var, redefined bool) {
	v := Var{Name: name, Value: value, Span: sp}
	if i, ok := t.index[name]; ok {
		prev = t.vars[i]
		t.vars[i] = v
		return prev, true
	}
	t.index[name] = len(t.vars)
	t.vars = append(t.vars, v)
	return Var{}, false
}

func (t *VarTable) Lookup(name string) (string, bool) {
	i, ok := t.index[name]
	if !ok {
		return "", false
	}
	return t.vars[i].Value, true
}

func (t *VarTable) Len() int { return len(t.vars) }

// All returns a copy of the entries in definition order.
func (t *VarTable) All() []Var {
	return append([]Var(nil), t.vars...)
}

// match finds the longest defined name that prefixes s.
func (t *VarTable) match(s []byte) (Var, bool) {
	best := -1
	for i := range t.vars {
		n := t.vars[i].Name
		if len(n) > len(s) || !bytes.HasPrefix(s, []byte(n)) {
			continue
		}
		if best < 0 || len(n) > len(t.vars[best].Name) {
			best = i
		}
	}
	if best < 0 {
		return Var{}, false
	}
	return t.vars[best], true
}

// Names returns variable names in definition order.
func (t *VarTable) Names() []string {
	out := make([]string, len(t.vars))
	for i, v := range t.vars {
		out[i] = v.Name
	}
	return out
}
