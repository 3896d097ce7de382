package dialect_test

import (
	"testing"

	"sfzkit/internal/dialect"
	"sfzkit/internal/doc"
	"sfzkit/internal/parser"
	"sfzkit/internal/source"
)

func parse(t *testing.T, input string) *doc.Document {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sfz", []byte(input)))
	d, _, err := parser.ParseFile(file, nil, parser.Options{})
	if err != nil {
		t.Fatalf("ParseFile(%q): %v", input, err)
	}
	return d
}

func TestDetect(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  dialect.Kind
	}{
		{"v1", "<group> lovel=1\n<region> sample=a.wav lokey=36\n", dialect.V1},
		{"global header is v2", "<global> volume=-3\n<region> sample=a.wav\n", dialect.V2},
		{"v2 opcode", "<region> sample=a.wav delay_samples=100\n", dialect.V2},
		{"aria opcode", "<control> label_cc7=Mod\n<region> sample=a.wav\n", dialect.ARIA},
		{"aria header", "<master>\n<region> sample=a.wav\n", dialect.ARIA},
		{"cakewalk", "<region> sample=a.wav noise_level=-10\n", dialect.Cakewalk},
		{"mixed", "<master>\n<region> noise_level=-10\n", dialect.Mixed},
		{"unknown opcodes carry nothing", "<region> bogus_opcode=1 sample=a.wav\n", dialect.V1},
		{"empty", "", dialect.Unknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := dialect.Detect(parse(t, tc.input))
			if got.Kind != tc.want {
				t.Fatalf("Detect(%q).Kind = %v, want %v", tc.input, got.Kind, tc.want)
			}
		})
	}
}

func TestClassificationDominant(t *testing.T) {
	c := dialect.Detect(parse(t, "<region> sample=a.wav lokey=36 hikey=40 label_cc7=Mod\n"))
	if c.Kind != dialect.ARIA {
		t.Fatalf("Kind = %v", c.Kind)
	}
	// header(2) + 3 opcodes of v1 against one ARIA opcode
	if c.Dominant != dialect.V1 || c.Score != 5 || c.TotalScore != 6 {
		t.Fatalf("dominant = %v score %d/%d", c.Dominant, c.Score, c.TotalScore)
	}
	if c.Count(dialect.ARIA) != 1 || c.Count(dialect.V1) != 4 {
		t.Fatalf("counts = %v", c.Counts)
	}
}

func TestBeyond(t *testing.T) {
	ev := dialect.Observe(parse(t, "<master>\n<region> label_cc7=Mod\n<region> label_cc7=Other delay_samples=10\n"))
	hints := ev.Beyond(dialect.V1)
	var reasons []string
	for _, h := range hints {
		reasons = append(reasons, h.Reason)
	}
	want := []string{"header <master>", "opcode 'label_cc7'", "opcode 'delay_samples'"}
	if len(reasons) != len(want) {
		t.Fatalf("Beyond(v1) = %v, want %v", reasons, want)
	}
	for i := range want {
		if reasons[i] != want[i] {
			t.Fatalf("Beyond(v1) = %v, want %v", reasons, want)
		}
	}
	if got := ev.Beyond(dialect.ARIA); len(got) != 0 {
		t.Fatalf("ARIA target must accept everything here, got %v", got)
	}
	if got := ev.Beyond(dialect.Unknown); got != nil {
		t.Fatalf("no target means no hints, got %v", got)
	}
}

func TestSupports(t *testing.T) {
	cases := []struct {
		target, k dialect.Kind
		want      bool
	}{
		{dialect.V1, dialect.V1, true},
		{dialect.V1, dialect.V2, false},
		{dialect.V2, dialect.V1, true},
		{dialect.ARIA, dialect.V2, true},
		{dialect.ARIA, dialect.Cakewalk, false},
		{dialect.Cakewalk, dialect.ARIA, false},
		{dialect.V1, dialect.Vendor, true},
		{dialect.Unknown, dialect.Cakewalk, true},
	}
	for _, tc := range cases {
		if got := tc.target.Supports(tc.k); got != tc.want {
			t.Errorf("%v.Supports(%v) = %v, want %v", tc.target, tc.k, got, tc.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]dialect.Kind{"": dialect.Unknown, "V2": dialect.V2, "sfz1": dialect.V1, " aria ": dialect.ARIA} {
		got, err := dialect.ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := dialect.ParseKind("sfz3"); err == nil {
		t.Error("ParseKind accepted sfz3")
	}
}
