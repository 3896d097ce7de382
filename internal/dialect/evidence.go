package dialect

import "sfzkit/internal/source"

// Hint is one header or opcode that belongs to a particular revision.
type Hint struct {
	Dialect Kind
	Score   int
	Reason  string // "opcode 'amp_veltrack_oncc1'", "header <master>"
	Span    source.Span
}

// Evidence aggregates the hints of one document.
type Evidence struct {
	hints []Hint
}

// NewEvidence creates a new Evidence container.
func NewEvidence() *Evidence {
	return &Evidence{
		hints: make([]Hint, 0, 16),
	}
}

// Add appends a hint to the evidence collection.
func (e *Evidence) Add(h Hint) {
	if e == nil {
		return
	}
	e.hints = append(e.hints, h)
}

// Hints returns the collected hints.
func (e *Evidence) Hints() []Hint {
	if e == nil {
		return nil
	}
	return e.hints
}

// Beyond returns the first hint per reason that target does not support, in
// document order.
func (e *Evidence) Beyond(target Kind) []Hint {
	if e == nil || target == Unknown {
		return nil
	}
	seen := make(map[string]bool)
	var out []Hint
	for _, h := range e.hints {
		if target.Supports(h.Dialect) || seen[h.Reason] {
			continue
		}
		seen[h.Reason] = true
		out = append(out, h)
	}
	return out
}
