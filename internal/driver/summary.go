package driver

import (
	"sfzkit/internal/diag"
	"sfzkit/internal/doc"
)

// Summary is what a directory run keeps per instrument once the document
// itself is no longer needed. It is the disk cache payload and the row the
// index stores.
type Summary struct {
	Path     string
	Regions  int
	Groups   int
	Masters  int
	Dialect  string   // smallest SFZ revision covering the instrument
	Labels   []string // master and group labels in source order
	Samples  []string // distinct sample paths in region order
	LoKey    int      // lowest key any region answers, -1 without regions
	HiKey    int
	Errors   int
	Warnings int
	Failed   bool
}

// Summarize condenses a parse result.
func Summarize(res *ParseResult) Summary {
	s := Summary{
		Path:     res.Root.Path,
		LoKey:    -1,
		HiKey:    -1,
		Errors:   res.Bag.Count(diag.SevError),
		Warnings: res.Bag.Count(diag.SevWarning),
		Failed:   res.Failed(),
	}
	d := res.Document
	if d == nil {
		return s
	}
	s.Regions, s.Groups, s.Masters = len(d.Regions()), len(d.Groups()), len(d.Masters())
	s.Dialect = res.Dialect.Kind.String()
	for _, ids := range [][]doc.ScopeID{d.Masters(), d.Groups()} {
		for _, id := range ids {
			if label := d.Scope(id).Label(); label != "" {
				s.Labels = append(s.Labels, label)
			}
		}
	}

	seen := make(map[string]bool)
	for _, id := range d.Regions() {
		if p, ok := d.SamplePath(id); ok && !seen[p] {
			seen[p] = true
			s.Samples = append(s.Samples, p)
		}
		// key= задаёт обе границы сразу
		lo := keyOf(d, id, "lokey", keyOf(d, id, "key", 0))
		hi := keyOf(d, id, "hikey", keyOf(d, id, "key", 127))
		if s.LoKey < 0 || lo < s.LoKey {
			s.LoKey = lo
		}
		if hi > s.HiKey {
			s.HiKey = hi
		}
	}
	return s
}

func keyOf(d *doc.Document, region doc.ScopeID, name string, fallback int) int {
	v, ok := d.Resolve(region, name)
	if !ok || !v.Kind.Numeric() {
		return fallback
	}
	return int(v.Int())
}
