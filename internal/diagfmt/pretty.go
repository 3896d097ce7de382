package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sfzkit/internal/diag"
	"sfzkit/internal/source"
)

type palette struct {
	err, warn, info, bold, dim, hint *color.Color
}

func newPalette(on bool) palette {
	p := palette{
		err:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
		info: color.New(color.FgCyan, color.Bold),
		bold: color.New(color.Bold),
		dim:  color.New(color.FgHiBlack),
		hint: color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.bold, p.dim, p.hint} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строку исходника с подчёркиванием ^~~~ по Span, затем notes и fixes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if err := prettyOne(w, d, fs, opts, pal); err != nil {
			return err
		}
	}
	if n := bag.Dropped(); n > 0 {
		_, err := fmt.Fprintf(w, "%s\n", pal.dim.Sprintf("... %d more diagnostics not shown", n))
		return err
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) error {
	var b strings.Builder
	b.WriteString(pal.bold.Sprint(location(fs, d.Primary, opts.PathMode)))
	b.WriteString(": ")
	b.WriteString(pal.severity(d.Severity).Sprintf("%s %s", d.Severity, d.Code.ID()))
	b.WriteString(": ")
	b.WriteString(d.Message)
	b.WriteByte('\n')
	writeSnippet(&b, fs, d.Primary, int(opts.Context), pal.severity(d.Severity), pal)

	if opts.ShowNotes || d.Code == diag.ObsTimings {
		for _, n := range d.Notes {
			fmt.Fprintf(&b, "  %s %s: %s\n", pal.info.Sprint("note:"), location(fs, n.Span, opts.PathMode), n.Msg)
		}
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			fmt.Fprintf(&b, "  %s %s\n", pal.hint.Sprint("help:"), fix.Title)
			if !opts.ShowPreview {
				continue
			}
			for _, edit := range fix.Edits {
				pv, err := previewEdit(fs, edit)
				if err != nil {
					continue
				}
				for _, l := range pv.before {
					fmt.Fprintf(&b, "    %s %s\n", pal.err.Sprint("-"), l)
				}
				for _, l := range pv.after {
					fmt.Fprintf(&b, "    %s %s\n", pal.hint.Sprint("+"), l)
				}
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	f := fileOf(fs, sp)
	if f == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", formatPath(fs, f, mode), start.Line, start.Col)
}

// writeSnippet печатает строку span'а (и context строк вокруг) с подчёркиванием.
func writeSnippet(b *strings.Builder, fs *source.FileSet, sp source.Span, context int, mark *color.Color, pal palette) {
	f := fileOf(fs, sp)
	if f == nil || len(f.Content) == 0 {
		return
	}
	start, end := fs.Resolve(sp)
	first := max(1, int(start.Line)-context)
	last := int(start.Line) + context
	gutter := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		line := f.GetLine(uint32(ln))
		if ln > int(start.Line) && line == "" && ln > lineCount(f) {
			break
		}
		fmt.Fprintf(b, "%s %s %s\n", pal.dim.Sprintf("%*d", gutter, ln), pal.dim.Sprint("|"), line)
		if ln != int(start.Line) {
			continue
		}
		from := clampCol(line, start.Col)
		to := len(line)
		if end.Line == start.Line {
			to = clampCol(line, end.Col)
		}
		width := max(1, runewidth.StringWidth(line[from:max(from, to)]))
		fmt.Fprintf(b, "%s %s %s%s\n",
			strings.Repeat(" ", gutter), pal.dim.Sprint("|"),
			padFor(line[:from]),
			mark.Sprint("^"+strings.Repeat("~", width-1)))
	}
}

func lineCount(f *source.File) int {
	return len(f.LineIdx) + 1
}

// clampCol converts a 1-based byte column into an offset inside line.
func clampCol(line string, col uint32) int {
	c := int(col) - 1
	return min(max(c, 0), len(line))
}

// padFor returns whitespace as wide as prefix, keeping tabs so the caret
// lines up in a terminal.
func padFor(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}
