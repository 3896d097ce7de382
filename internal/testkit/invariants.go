package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"sfzkit/internal/doc"
	"sfzkit/internal/source"
	"sfzkit/internal/token"
)

// CheckDocumentInvariants runs structural checks on a built document:
// 1) every region's chain is [global?, master?, group?, region] in strictly
// increasing level order
// 2) parent and child links agree, and side scopes are parentless leaves
// 3) explicit header spans and assignment spans lie inside sf or, for an
// instrument with includes, inside one of the files it read
func CheckDocumentInvariants(d *doc.Document, sf *source.File, included ...*source.File) error {
	if d == nil || sf == nil {
		return fmt.Errorf("nil document or file")
	}
	limits := make(map[source.FileID]uint32, 1+len(included))
	for _, f := range append([]*source.File{sf}, included...) {
		n, err := safecast.Conv[uint32](len(f.Content))
		if err != nil {
			return fmt.Errorf("len content overflow: %w", err)
		}
		limits[f.ID] = n
	}

	for _, r := range d.Regions() {
		level := -1
		chain := d.Chain(r)
		for _, id := range chain {
			s := d.Scope(id)
			if !s.Kind.InChain() {
				return fmt.Errorf("region %d: %s scope %d in chain", r, s.Kind, id)
			}
			if s.Kind.Level() <= level {
				return fmt.Errorf("region %d: chain out of order at scope %d (%s)", r, id, s.Kind)
			}
			level = s.Kind.Level()
		}
		if last := d.Scope(chain[len(chain)-1]); last.Kind != token.HeaderRegion {
			return fmt.Errorf("region %d: chain ends with %s", r, last.Kind)
		}
	}

	for i := range d.Len() {
		id := doc.ScopeID(i)
		s := d.Scope(id)
		if s.ID != id {
			return fmt.Errorf("scope %d has id %d", id, s.ID)
		}
		if s.Kind.IsSide() && (s.Parent != doc.NoScope || len(s.Children) != 0) {
			return fmt.Errorf("side scope %d (%s) is linked into the chain", id, s.Kind)
		}
		if s.Parent != doc.NoScope {
			p := d.Scope(s.Parent)
			if p == nil || !containsID(p.Children, id) {
				return fmt.Errorf("scope %d is missing from its parent %d", id, s.Parent)
			}
		}
		for _, c := range s.Children {
			if child := d.Scope(c); child == nil || child.Parent != id {
				return fmt.Errorf("child %d of scope %d points elsewhere", c, id)
			}
		}
		if !s.Implicit {
			if err := checkSpan(s.Span, limits); err != nil {
				return fmt.Errorf("scope %d header: %w", id, err)
			}
		}
		for _, a := range s.Assignments() {
			if err := checkSpan(a.Span, limits); err != nil {
				return fmt.Errorf("scope %d opcode %s: %w", id, a.Name, err)
			}
		}
	}
	return nil
}

func checkSpan(sp source.Span, limits map[source.FileID]uint32) error {
	limit, ok := limits[sp.File]
	if !ok {
		return fmt.Errorf("span points at file %d outside the instrument", sp.File)
	}
	if sp.End <= sp.Start {
		return fmt.Errorf("empty span %v", sp)
	}
	if sp.End > limit {
		return fmt.Errorf("span end beyond content: %d > %d", sp.End, limit)
	}
	return nil
}

func containsID(ids []doc.ScopeID, id doc.ScopeID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
