package diagfmt

import (
	"encoding/json"
	"io"

	"sfzkit/internal/diag"
	"sfzkit/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file" yaml:"file"`
	StartByte uint32 `json:"start_byte" yaml:"start_byte"`
	EndByte   uint32 `json:"end_byte" yaml:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty" yaml:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty" yaml:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty" yaml:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty" yaml:"end_col,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

type FixEditJSON struct {
	Location    LocationJSON `json:"location"`
	NewText     string       `json:"new_text"`
	OldText     string       `json:"old_text,omitempty"`
	BeforeLines []string     `json:"before_lines,omitempty"`
	AfterLines  []string     `json:"after_lines,omitempty"`
}

type FixJSON struct {
	Title string        `json:"title"`
	Edits []FixEditJSON `json:"edits,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Title    string       `json:"title,omitempty"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
	Fixes    []FixJSON    `json:"fixes,omitempty"`
}

// DiagnosticsOutput is the document written by --format json. Count,
// Errors and Warnings describe the diagnostics listed, not the whole bag.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
	Dropped     int              `json:"dropped,omitempty"`
}

type jsonBuilder struct {
	fs   *source.FileSet
	opts JSONOpts
}

func (jb jsonBuilder) location(span source.Span) LocationJSON {
	loc := LocationJSON{StartByte: span.Start, EndByte: span.End}
	f := fileOf(jb.fs, span)
	if f == nil {
		return loc
	}
	loc.File = formatPath(jb.fs, f, jb.opts.PathMode)
	if jb.opts.IncludePositions {
		start, end := jb.fs.Resolve(span)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

func (jb jsonBuilder) diagnostic(d diag.Diagnostic) DiagnosticJSON {
	dj := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Title:    d.Code.Title(),
		Message:  d.Message,
		Location: jb.location(d.Primary),
	}
	// таблица таймингов живёт в note, поэтому её показываем всегда
	if jb.opts.IncludeNotes || d.Code == diag.ObsTimings {
		for _, n := range d.Notes {
			dj.Notes = append(dj.Notes, NoteJSON{Message: n.Msg, Location: jb.location(n.Span)})
		}
	}
	if jb.opts.IncludeFixes {
		for _, fix := range d.Fixes {
			dj.Fixes = append(dj.Fixes, jb.fix(fix))
		}
	}
	return dj
}

func (jb jsonBuilder) fix(fix diag.Fix) FixJSON {
	fj := FixJSON{Title: fix.Title, Edits: make([]FixEditJSON, 0, len(fix.Edits))}
	for _, edit := range fix.Edits {
		ej := FixEditJSON{Location: jb.location(edit.Span), NewText: edit.NewText}
		if f := fileOf(jb.fs, edit.Span); f != nil {
			ej.OldText = f.Text(edit.Span)
		}
		if jb.opts.IncludePreviews {
			if pv, err := previewEdit(jb.fs, edit); err == nil {
				ej.BeforeLines, ej.AfterLines = pv.before, pv.after
			}
		}
		fj.Edits = append(fj.Edits, ej)
	}
	return fj
}

// BuildDiagnosticsOutput converts the bag without serialising it; directory
// runs collect one output per instrument.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	jb := jsonBuilder{fs: fs, opts: opts}
	out := DiagnosticsOutput{
		Diagnostics: make([]DiagnosticJSON, 0, len(items)),
		Count:       len(items),
		Dropped:     bag.Dropped() + bag.Len() - len(items),
	}
	for _, d := range items {
		switch d.Severity {
		case diag.SevError:
			out.Errors++
		case diag.SevWarning:
			out.Warnings++
		}
		out.Diagnostics = append(out.Diagnostics, jb.diagnostic(d))
	}
	return out
}

// JSON writes the bag as one indented JSON document.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
