package fix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sfzkit/internal/diag"
	"sfzkit/internal/parser"
	"sfzkit/internal/source"
)

func loadAndParse(t *testing.T, content string) (*source.FileSet, string, []diag.Diagnostic) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kit.sfz")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	_, diags, err := parser.ParseFile(fs.Get(id), nil, parser.Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return fs, path, diags
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(data)
}

func TestApplyAllRewritesFile(t *testing.T) {
	fs, path, diags := loadAndParse(t, "<region> lokye=36 loop_mode=one_shoot\n")

	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 2 {
		t.Fatalf("expected 2 applied fixes, got %+v", res.Applied)
	}
	if got, want := readFile(t, path), "<region> lokey=36 loop_mode=one_shot\n"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
	if len(res.FileChanges) != 1 || res.FileChanges[0].EditCount != 2 {
		t.Fatalf("unexpected file changes: %+v", res.FileChanges)
	}
	if res.Applied[0].Line != 1 {
		t.Fatalf("line = %d, want 1", res.Applied[0].Line)
	}
}

func TestApplyOnceTakesFirstInFileOrder(t *testing.T) {
	fs, path, diags := loadAndParse(t, "<region> lokye=36\n<region> hikye=40\n")

	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeOnce})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 1 {
		t.Fatalf("expected 1 applied fix, got %d", len(res.Applied))
	}
	if got, want := readFile(t, path), "<region> lokey=36\n<region> hikye=40\n"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
}

func TestApplyByCode(t *testing.T) {
	fs, path, diags := loadAndParse(t, "<region> lokye=36 loop_mode=one_shoot\n")

	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeCode, Code: diag.OpcUnknownEnum})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 1 || res.Applied[0].Code != diag.OpcUnknownEnum {
		t.Fatalf("unexpected applied fixes: %+v", res.Applied)
	}
	if got, want := readFile(t, path), "<region> lokye=36 loop_mode=one_shot\n"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
}

func TestApplyDryRunLeavesFile(t *testing.T) {
	src := "<region> lokye=36\n"
	fs, path, diags := loadAndParse(t, src)

	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if readFile(t, path) != src {
		t.Fatalf("dry run modified the file")
	}
	if len(res.FileChanges) != 1 || string(res.FileChanges[0].Content) != "<region> lokey=36\n" {
		t.Fatalf("unexpected file changes: %+v", res.FileChanges)
	}
}

func TestApplyRestoresCRLFAndBOM(t *testing.T) {
	fs, path, diags := loadAndParse(t, "\xEF\xBB\xBF<region> lokye=36\r\nsample=a.wav\r\n")

	if _, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got, want := readFile(t, path), "\xEF\xBB\xBF<region> lokey=36\r\nsample=a.wav\r\n"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
}

func TestApplySkipsChangedFile(t *testing.T) {
	fs, path, diags := loadAndParse(t, "<region> lokye=36\n")
	if err := os.WriteFile(path, []byte("<region> lokye=37\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("expected ErrNoFixes, got %v", err)
	}
	if len(res.Skipped) != 1 {
		t.Fatalf("expected 1 skipped fix, got %+v", res.Skipped)
	}
}

func TestApplySkipsVirtualFiles(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("stdin.sfz", []byte("<region> lokye=36\n"))
	_, diags, err := parser.ParseFile(fs.Get(id), nil, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}

	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("expected ErrNoFixes, got %v", err)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Reason != "file is not on disk" {
		t.Fatalf("unexpected skips: %+v", res.Skipped)
	}
}

func TestApplyWithoutFixes(t *testing.T) {
	fs, _, diags := loadAndParse(t, "<region> sample=a.wav\n")
	if _, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll}); !errors.Is(err, ErrNoFixes) {
		t.Fatalf("expected ErrNoFixes, got %v", err)
	}
}

func TestSpansConflict(t *testing.T) {
	edit := func(start, end uint32) diag.FixEdit {
		return diag.FixEdit{Span: source.Span{Start: start, End: end}}
	}
	cases := []struct {
		a, b diag.FixEdit
		want bool
	}{
		{edit(0, 4), edit(4, 8), false},
		{edit(0, 5), edit(4, 8), true},
		{edit(3, 3), edit(3, 3), false},
		{edit(3, 3), edit(0, 5), true},
		{edit(5, 5), edit(0, 5), false},
	}
	for _, tc := range cases {
		if got := spansConflict(tc.a, tc.b); got != tc.want {
			t.Errorf("spansConflict(%v, %v) = %v, want %v", tc.a.Span, tc.b.Span, got, tc.want)
		}
	}
}

func TestCumulativeDelta(t *testing.T) {
	edits := []diag.FixEdit{
		{Span: source.Span{Start: 2, End: 4}, NewText: "abcd"},
		{Span: source.Span{Start: 10, End: 15}, NewText: ""},
	}
	if got := cumulativeDelta(edits, 5); got != 2 {
		t.Fatalf("delta at 5 = %d, want 2", got)
	}
	if got := cumulativeDelta(edits, 20); got != -3 {
		t.Fatalf("delta at 20 = %d, want -3", got)
	}
}
