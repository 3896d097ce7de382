package diag

import "sfzkit/internal/source"

// an included file spliced twice, or a define expanded on many lines, can
// make two phases report the very same problem
type dedupKey struct {
	code Code
	span source.Span
	msg  string
}

// DedupReporter forwards each distinct (code, span, message) once.
// Severity is not part of the key: strict promotion happens later.
type DedupReporter struct {
	next       Reporter
	seen       map[dedupKey]struct{}
	suppressed int
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[dedupKey]struct{})}
}

func (r *DedupReporter) Report(d Diagnostic) {
	if r == nil {
		return
	}
	key := dedupKey{code: d.Code, span: d.Primary, msg: d.Message}
	if _, ok := r.seen[key]; ok {
		r.suppressed++
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(d)
	}
}

// Suppressed returns how many reports were dropped as duplicates.
func (r *DedupReporter) Suppressed() int {
	if r == nil {
		return 0
	}
	return r.suppressed
}
