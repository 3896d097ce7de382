package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"sfzkit/internal/source"
)

// GoldenOptions selects the extra lines of the short format.
type GoldenOptions struct {
	Notes bool // one "note" line per note
	Fixes bool // one "fix" line per suggested fix, at the first edit
}

// goldenLine is one rendered entry: "<kind> <code> <path>:<line>:<col> <text>".
type goldenLine struct {
	kind string
	code string
	path string
	line uint32
	col  uint32
	text string
}

func (l goldenLine) String() string {
	return fmt.Sprintf("%s %s %s:%d:%d %s", l.kind, l.code, l.path, l.line, l.col, l.text)
}

func compareGolden(a, b goldenLine) int {
	return cmp.Or(
		cmp.Compare(a.path, b.path),
		cmp.Compare(a.line, b.line),
		cmp.Compare(a.col, b.col),
		cmp.Compare(a.kind, b.kind),
		cmp.Compare(a.code, b.code),
		cmp.Compare(a.text, b.text),
	)
}

// FormatGoldenDiagnostics renders diagnostics one per line, sorted by
// position, with paths relative to the file set's base directory. It backs
// `sfz diag --format short` and the golden files of the tests. Entries whose
// file is not in fs are left out.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, opt GoldenOptions) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	var lines []goldenLine
	for i := range diags {
		d := &diags[i]
		code := d.Code.ID()
		if l, ok := golden(fs, d.Primary, d.Severity.Label(), code, d.Message); ok {
			lines = append(lines, l)
		}
		if opt.Notes {
			for _, n := range d.Notes {
				if l, ok := golden(fs, n.Span, "note", code, n.Msg); ok {
					lines = append(lines, l)
				}
			}
		}
		if opt.Fixes {
			for _, f := range d.Fixes {
				if len(f.Edits) == 0 {
					continue
				}
				if l, ok := golden(fs, f.Edits[0].Span, "fix", code, f.Title); ok {
					lines = append(lines, l)
				}
			}
		}
	}
	slices.SortStableFunc(lines, compareGolden)

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return strings.Join(out, "\n")
}

func golden(fs *source.FileSet, sp source.Span, kind, code, text string) (goldenLine, bool) {
	file, ok := fs.Lookup(sp.File)
	if !ok {
		return goldenLine{}, false
	}
	start, _ := fs.Resolve(sp)
	return goldenLine{
		kind: kind,
		code: code,
		path: goldenPath(file.FormatPath("relative", fs.BaseDir())),
		line: start.Line,
		col:  start.Col,
		text: oneLine(text),
	}, true
}

func goldenPath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return p
}

// oneLine folds a multi-line message so every entry stays on one line.
func oneLine(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
