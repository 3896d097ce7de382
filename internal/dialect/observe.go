package dialect

import (
	"sfzkit/internal/doc"
	"sfzkit/internal/token"
)

// headerDialect is the revision that introduced each header.
var headerDialect = map[token.HeaderKind]Kind{
	token.HeaderGlobal:  V2,
	token.HeaderGroup:   V1,
	token.HeaderRegion:  V1,
	token.HeaderControl: V2,
	token.HeaderCurve:   V2,
	token.HeaderEffect:  V2,
	token.HeaderMaster:  ARIA,
	token.HeaderMidi:    ARIA,
	token.HeaderSample:  Cakewalk,
}

// Observe collects evidence from every explicit header and every known
// opcode of d. Unknown opcodes carry no evidence.
func Observe(d *doc.Document) *Evidence {
	e := NewEvidence()
	if d == nil {
		return e
	}
	cat := d.Catalog()
	for id := range doc.ScopeID(d.Len()) {
		s := d.Scope(id)
		if !s.Implicit {
			if k, ok := headerDialect[s.Kind]; ok {
				// заголовок весит больше одного опкода
				e.Add(Hint{Dialect: k, Score: 2, Reason: "header <" + s.Kind.String() + ">", Span: s.Span})
			}
		}
		for _, a := range s.Assignments() {
			if !a.Known {
				continue
			}
			desc, ok := cat.Get(a.Canonical)
			if !ok {
				continue
			}
			e.Add(Hint{Dialect: FromVersion(desc.Version), Score: 1, Reason: "opcode '" + a.Name + "'", Span: a.Span})
		}
	}
	return e
}
