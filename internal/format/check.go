package format

import (
	"fmt"

	"sfzkit/internal/diag"
	"sfzkit/internal/doc"
	"sfzkit/internal/parser"
	"sfzkit/internal/source"
)

// CheckRoundTrip formats d, parses the result again and compares the two
// documents: the same headers in the same order, the same opcodes in every
// scope and the same parents. It returns the formatted text so callers can
// print it after a successful check.
func CheckRoundTrip(d *doc.Document, opt Options) ([]byte, error) {
	out, err := Document(d, opt)
	if err != nil {
		return nil, err
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<formatted>", out))
	again, diags, err := parser.ParseFile(file, d.Catalog(), parser.Options{})
	if err != nil {
		return out, fmt.Errorf("format: reparse failed: %w", err)
	}
	for _, dg := range diags {
		if dg.Severity == diag.SevError {
			return out, fmt.Errorf("format: reparse reported %s: %s", dg.Code.ID(), dg.Message)
		}
	}
	if err := sameTree(d, again); err != nil {
		return out, err
	}
	return out, nil
}

func sameTree(a, b *doc.Document) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("format: %d scopes after round trip, want %d", b.Len(), a.Len())
	}
	for id := range doc.ScopeID(a.Len()) {
		sa, sb := a.Scope(id), b.Scope(id)
		if sa.Kind != sb.Kind || sa.Parent != sb.Parent {
			return fmt.Errorf("format: scope #%d is <%s> under #%d, want <%s> under #%d",
				id, sb.Kind, sb.Parent, sa.Kind, sa.Parent)
		}
		la, lb := sa.Assignments(), sb.Assignments()
		if len(la) != len(lb) {
			return fmt.Errorf("format: <%s> #%d has %d opcodes, want %d", sa.Kind, id, len(lb), len(la))
		}
		for i := range la {
			if la[i].Name != lb[i].Name || !la[i].Value.Equal(lb[i].Value) {
				return fmt.Errorf("format: <%s> #%d: %s=%s became %s=%s", sa.Kind, id,
					la[i].Name, la[i].Value.Raw, lb[i].Name, lb[i].Value.Raw)
			}
		}
	}
	return nil
}
