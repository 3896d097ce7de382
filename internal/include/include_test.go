package include_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sfzkit/internal/diag"
	"sfzkit/internal/include"
	"sfzkit/internal/source"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestFlattenNested(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"piano.sfz":         "<control>\n#include \"common/keys.sfz\"\n<region> sample=a.wav\n",
		"common/keys.sfz":   "#define $LO 36\n#include \"../shared/env.sfz\"\n",
		"shared/env.sfz":    "ampeg_release=0.5\n",
		"unused/ignore.sfz": "<bogus>",
	})
	fs := source.NewFileSet()
	res, err := include.Flatten(fs, filepath.Join(dir, "piano.sfz"), include.Options{})
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if !res.Expanded || len(res.Files) != 3 {
		t.Fatalf("expanded=%v files=%d", res.Expanded, len(res.Files))
	}
	got := string(fs.Get(res.File).Content)
	want := "<control>\n#define $LO 36\nampeg_release=0.5\n<region> sample=a.wav\n"
	if got != want {
		t.Fatalf("flattened:\n%q\nwant:\n%q", got, want)
	}
	if fs.Get(res.File).Flags&source.FileExpanded == 0 {
		t.Fatalf("flattened file must be marked expanded")
	}
}

func TestFlattenWithoutIncludesKeepsRoot(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.sfz": "<region> lokey=1\n"})
	fs := source.NewFileSet()
	res, err := include.Flatten(fs, filepath.Join(dir, "a.sfz"), include.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Expanded || res.File != res.Files[0] || fs.Len() != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestFlattenIncludeDirs(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"inst/a.sfz":      "#include \"env.sfz\" // shared envelope\n",
		"library/env.sfz": "ampeg_attack=0.01",
	})
	fs := source.NewFileSet()
	res, err := include.Flatten(fs, filepath.Join(dir, "inst", "a.sfz"), include.Options{
		IncludeDirs: []string{filepath.Join(dir, "library")},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := string(fs.Get(res.File).Content)
	if got != "ampeg_attack=0.01\n // shared envelope\n" {
		t.Fatalf("flattened = %q", got)
	}
}

func TestFlattenCycle(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.sfz": "#include \"b.sfz\"\n",
		"b.sfz": "#include \"a.sfz\"\n",
	})
	fs := source.NewFileSet()
	bag := diag.NewBag(0)
	_, err := include.Flatten(fs, filepath.Join(dir, "a.sfz"), include.Options{Reporter: diag.BagReporter{Bag: bag}})
	var incErr *include.Error
	if !errors.As(err, &incErr) || incErr.Code != diag.IOIncludeCycle || !errors.Is(err, include.ErrCycle) {
		t.Fatalf("expected cycle error, got %v", err)
	}
	if !strings.Contains(err.Error(), "a.sfz -> ") {
		t.Fatalf("cycle chain missing: %v", err)
	}
	if !bag.HasErrors() {
		t.Fatalf("cycle must be reported")
	}
}

func TestFlattenSelfInclude(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.sfz": "#include \"a.sfz\"\n"})
	_, err := include.Flatten(source.NewFileSet(), filepath.Join(dir, "a.sfz"), include.Options{})
	if !errors.Is(err, include.ErrCycle) {
		t.Fatalf("expected cycle, got %v", err)
	}
}

func TestFlattenDiamondIsNotACycle(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.sfz": "#include \"b.sfz\"\n#include \"b.sfz\"\n",
		"b.sfz": "x=1",
	})
	fs := source.NewFileSet()
	res, err := include.Flatten(fs, filepath.Join(dir, "a.sfz"), include.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(fs.Get(res.File).Content); got != "x=1\nx=1\n" {
		t.Fatalf("flattened = %q", got)
	}
	if len(res.Files) != 2 {
		t.Fatalf("b.sfz must be loaded once, files=%d", len(res.Files))
	}
}

func TestFlattenNotFoundAndDepth(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.sfz":  "<region>\n#include \"missing.sfz\"\n",
		"d0.sfz": "#include \"d1.sfz\"\n",
		"d1.sfz": "#include \"d2.sfz\"\n",
		"d2.sfz": "x=1\n",
	})
	fs := source.NewFileSet()
	_, err := include.Flatten(fs, filepath.Join(dir, "a.sfz"), include.Options{})
	var incErr *include.Error
	if !errors.As(err, &incErr) || incErr.Code != diag.IOIncludeNotFound || incErr.Span.Start != 9 {
		t.Fatalf("expected not-found error at offset 9, got %v", err)
	}

	_, err = include.Flatten(source.NewFileSet(), filepath.Join(dir, "d0.sfz"), include.Options{MaxDepth: 1})
	if !errors.Is(err, include.ErrTooDeep) {
		t.Fatalf("expected depth error, got %v", err)
	}
}

func TestFlattenSkipsVariablesAndComments(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.sfz": "#include \"$DIR/x.sfz\"\n// #include \"missing.sfz\"\n/*\n#include \"missing.sfz\"\n*/\n",
	})
	fs := source.NewFileSet()
	res, err := include.Flatten(fs, filepath.Join(dir, "a.sfz"), include.Options{})
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if res.Expanded {
		t.Fatalf("nothing should be spliced")
	}
}

func TestFlattenFileFromMemory(t *testing.T) {
	dir := writeFiles(t, map[string]string{"env.sfz": "ampeg_decay=1"})
	fs := source.NewFileSet()
	id := fs.Add(filepath.Join(dir, "stdin.sfz"), []byte("#include \"env.sfz\"\n<region>"), source.FileVirtual)
	res, err := include.FlattenFile(fs, id, include.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(fs.Get(res.File).Content); got != "ampeg_decay=1\n<region>" {
		t.Fatalf("flattened = %q", got)
	}
}

func TestFlattenMissingRoot(t *testing.T) {
	_, err := include.Flatten(source.NewFileSet(), filepath.Join(t.TempDir(), "nope.sfz"), include.Options{})
	var incErr *include.Error
	if !errors.As(err, &incErr) || incErr.Code != diag.IOLoadFileError {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestFlattenRecordsOrigins(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"kit.sfz":     "<group> volume=-3\n#include \"regions.sfz\" <region> sample=c.wav\n",
		"regions.sfz": "<region> sample=a.wav\nhikey=200\n",
	})
	fs := source.NewFileSet()
	res, err := include.Flatten(fs, filepath.Join(dir, "kit.sfz"), include.Options{})
	if err != nil {
		t.Fatal(err)
	}
	flat := fs.Get(res.File)
	locate := func(text string) source.Span {
		t.Helper()
		i := strings.Index(string(flat.Content), text)
		if i < 0 {
			t.Fatalf("%q not in %q", text, flat.Content)
		}
		return source.SpanOf(flat.ID, i, i+len(text))
	}

	tests := []struct {
		text string
		file source.FileID
		line uint32
	}{
		{"volume=-3", res.Files[0], 1},
		{"hikey=200", res.Files[1], 2},
		{"sample=c.wav", res.Files[0], 2},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			sp, exact := fs.Origin(locate(tt.text))
			if sp.File != tt.file || !exact {
				t.Fatalf("origin = %v (exact %v), want file %d", sp, exact, tt.file)
			}
			if got := fs.Get(sp.File).Text(sp); got != tt.text {
				t.Fatalf("origin text = %q", got)
			}
			if start, _ := fs.Resolve(sp); start.Line != tt.line {
				t.Fatalf("line = %d, want %d", start.Line, tt.line)
			}
		})
	}
}
