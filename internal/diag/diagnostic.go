package diag

import (
	"sfzkit/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit replaces the text under Span. An empty span inserts.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// Fix is a suggested replacement, e.g. the closest known opcode name.
type Fix struct {
	Title string
	Edits []FixEdit
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

func NewInfo(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevInfo, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}

// FirstFix returns the first fix when it carries edits. Opcode suggestions
// are ordered by distance, so this is the closest name.
func (d Diagnostic) FirstFix() (Fix, bool) {
	if len(d.Fixes) == 0 || len(d.Fixes[0].Edits) == 0 {
		return Fix{}, false
	}
	return d.Fixes[0], true
}

// Remap returns d with its spans passed through f, which reports whether
// the new span covers the same bytes. A fix edit moves only then: an edit
// over a substituted value must not land on the $NAME it came from.
func (d Diagnostic) Remap(f func(source.Span) (source.Span, bool)) Diagnostic {
	d.Primary, _ = f(d.Primary)
	if len(d.Notes) > 0 {
		notes := make([]Note, len(d.Notes))
		for i, n := range d.Notes {
			n.Span, _ = f(n.Span)
			notes[i] = n
		}
		d.Notes = notes
	}
	if len(d.Fixes) > 0 {
		fixes := make([]Fix, len(d.Fixes))
		for i, fix := range d.Fixes {
			edits := make([]FixEdit, len(fix.Edits))
			for j, e := range fix.Edits {
				if sp, exact := f(e.Span); exact {
					e.Span = sp
				}
				edits[j] = e
			}
			fix.Edits = edits
			fixes[i] = fix
		}
		d.Fixes = fixes
	}
	return d
}
