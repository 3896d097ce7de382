package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"sfzkit/internal/diag"
	"sfzkit/internal/source"
)

func decodeDiagnostics(t *testing.T, buf *bytes.Buffer) DiagnosticsOutput {
	t.Helper()
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("failed to parse JSON output: %v\n%s", err, buf.String())
	}
	return out
}

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("kit.sfz", []byte("<region> lokye=36\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.OpcUnknown, source.Span{File: fileID, Start: 9, End: 14}, "unknown opcode 'lokye'"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}
	out := decodeDiagnostics(t, &buf)
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Severity != "WARNING" || d.Code != "OPC3001" || d.Title != "Unknown opcode" {
		t.Errorf("unexpected header: %+v", d)
	}
	want := LocationJSON{File: "kit.sfz", StartByte: 9, EndByte: 14, StartLine: 1, StartCol: 10, EndLine: 1, EndCol: 15}
	if d.Location != want {
		t.Errorf("location = %+v, want %+v", d.Location, want)
	}
}

func TestJSONWithNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("kit.sfz", []byte("<region> loop_mode=one_shoot\n"))
	bag := diag.NewBag(10)
	d := diag.NewWarning(diag.OpcUnknownEnum, source.Span{File: fileID, Start: 19, End: 28}, "unknown value 'one_shoot' for 'loop_mode'").
		WithNote(source.Span{File: fileID, Start: 9, End: 18}, "declared here").
		WithFix("replace with 'one_shot'", diag.FixEdit{Span: source.Span{File: fileID, Start: 19, End: 28}, NewText: "one_shot"})
	bag.Add(d)

	var buf bytes.Buffer
	opts := JSONOpts{PathMode: PathModeBasename, IncludeNotes: true, IncludeFixes: true, IncludePreviews: true}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatal(err)
	}
	got := decodeDiagnostics(t, &buf).Diagnostics[0]
	if len(got.Notes) != 1 || got.Notes[0].Message != "declared here" {
		t.Errorf("notes = %+v", got.Notes)
	}
	if len(got.Fixes) != 1 || len(got.Fixes[0].Edits) != 1 {
		t.Fatalf("fixes = %+v", got.Fixes)
	}
	edit := got.Fixes[0].Edits[0]
	if edit.OldText != "one_shoot" || edit.NewText != "one_shot" {
		t.Errorf("edit = %+v", edit)
	}
	if len(edit.AfterLines) != 1 || edit.AfterLines[0] != "<region> loop_mode=one_shot" {
		t.Errorf("after = %q", edit.AfterLines)
	}
	if len(edit.BeforeLines) != 1 || edit.BeforeLines[0] != "<region> loop_mode=one_shoot" {
		t.Errorf("before = %q", edit.BeforeLines)
	}
}

func TestJSONWithoutNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("kit.sfz", []byte("<global>\n<global>\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.SynDuplicateGlobal, source.Span{File: fileID, Start: 9, End: 17}, "duplicate <global> header").
		WithNote(source.Span{File: fileID, Start: 0, End: 8}, "first <global> is here").
		WithFix("remove the header", diag.FixEdit{Span: source.Span{File: fileID, Start: 9, End: 17}}))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	got := decodeDiagnostics(t, &buf).Diagnostics[0]
	if got.Notes != nil || got.Fixes != nil {
		t.Errorf("notes/fixes leaked: %+v", got)
	}
	if got.Location.StartLine != 0 {
		t.Errorf("positions included without IncludePositions: %+v", got.Location)
	}
}

func TestJSONTimingsKeepNotes(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, "pipeline timings").
		WithNote(source.Span{}, "lex: 0.12ms"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	got := decodeDiagnostics(t, &buf).Diagnostics[0]
	if len(got.Notes) != 1 || got.Notes[0].Message != "lex: 0.12ms" {
		t.Errorf("timings notes = %+v", got.Notes)
	}
}

func TestJSONMaxLimit(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("kit.sfz", []byte("<region> a=1 b=2 c=3 d=4 e=5\n"))
	bag := diag.NewBag(4)
	for i := range uint32(5) {
		start := 9 + i*4
		bag.Add(diag.NewWarning(diag.OpcUnknown, source.Span{File: fileID, Start: start, End: start + 1}, "unknown opcode"))
	}

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{Max: 2}); err != nil {
		t.Fatal(err)
	}
	out := decodeDiagnostics(t, &buf)
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Errorf("count = %d", out.Count)
	}
	// one dropped by the bag, two cut by Max
	if out.Dropped != 3 {
		t.Errorf("dropped = %d, want 3", out.Dropped)
	}
	if out.Warnings != 2 || out.Errors != 0 {
		t.Errorf("warnings = %d errors = %d", out.Warnings, out.Errors)
	}
}

func TestJSONPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	fileID := fs.AddVirtual("/home/user/project/sfz/piano.sfz", []byte("<region> x=1\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewWarning(diag.OpcUnknown, source.Span{File: fileID, Start: 9, End: 10}, "unknown opcode 'x'"))

	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAbsolute, "/home/user/project/sfz/piano.sfz"},
		{PathModeRelative, "sfz/piano.sfz"},
		{PathModeBasename, "piano.sfz"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			out := BuildDiagnosticsOutput(bag, fs, JSONOpts{PathMode: tt.mode})
			if got := out.Diagnostics[0].Location.File; got != tt.want {
				t.Errorf("file = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePathMode(t *testing.T) {
	for _, s := range []string{"", "auto", "absolute", "relative", "basename"} {
		if _, err := ParsePathMode(s); err != nil {
			t.Errorf("ParsePathMode(%q): %v", s, err)
		}
	}
	if _, err := ParsePathMode("short"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
