package parser_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"sfzkit/internal/diag"
	"sfzkit/internal/directive"
	"sfzkit/internal/doc"
	"sfzkit/internal/lexer"
	"sfzkit/internal/opcode"
	"sfzkit/internal/parser"
	"sfzkit/internal/source"
	"sfzkit/internal/testkit"
	"sfzkit/internal/token"
)

func parse(t *testing.T, input string) (*doc.Document, []diag.Diagnostic) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sfz", []byte(input)))
	d, diags, err := parser.ParseFile(file, nil, parser.Options{})
	if err != nil {
		t.Fatalf("ParseFile(%q): %v", input, err)
	}
	if err := testkit.CheckDocumentInvariants(d, file); err != nil {
		t.Fatalf("invariants: %v", err)
	}
	return d, diags
}

func codes(diags []diag.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code.ID())
	}
	return out
}

func only(t *testing.T, diags []diag.Diagnostic, code diag.Code) diag.Diagnostic {
	t.Helper()
	if len(diags) != 1 || diags[0].Code != code {
		t.Fatalf("diagnostics = %v, want exactly one %s", codes(diags), code.ID())
	}
	return diags[0]
}

func resolve(t *testing.T, d *doc.Document, region doc.ScopeID, name string) opcode.Value {
	t.Helper()
	v, ok := d.Resolve(region, name)
	if !ok {
		t.Fatalf("Resolve(%d, %q) found nothing", region, name)
	}
	return v
}

// lokey и hikey имеют тип Note, а не Integer: принимают и "c#2", и MIDI
// номер. Число 36 остаётся Note(36), Int() отдаёт сам номер.
func TestGroupWithTwoRegions(t *testing.T) {
	d, diags := parse(t, `<group> amp_veltrack=100
<region> sample=a.wav lokey=36 hikey=36
<region> sample=b.wav lokey=38 hikey=38
`)
	if len(diags) != 0 {
		t.Fatalf("diagnostics: %v", codes(diags))
	}
	groups, regions := d.Groups(), d.Regions()
	if len(groups) != 1 || len(regions) != 2 {
		t.Fatalf("groups=%v regions=%v", groups, regions)
	}
	if kids := d.Scope(groups[0]).Children; len(kids) != 2 {
		t.Fatalf("group children = %v", kids)
	}
	for i, key := range []int{36, 38} {
		r := regions[i]
		if v := resolve(t, d, r, "amp_veltrack"); !v.Equal(opcode.PercentValue(100)) {
			t.Errorf("region %d amp_veltrack = %v", i, v)
		}
		if v := resolve(t, d, r, "lokey"); v.Kind != opcode.Note || v.Int() != int64(key) {
			t.Errorf("region %d lokey = %v", i, v)
		}
		if v := resolve(t, d, r, "hikey"); v.Int() != int64(key) {
			t.Errorf("region %d hikey = %v", i, v)
		}
	}
	if v := resolve(t, d, regions[1], "sample"); v.Text() != "b.wav" {
		t.Errorf("sample = %v", v)
	}
}

func TestRegionOverridesGlobal(t *testing.T) {
	d, _ := parse(t, "<global> volume=-3 pan=10\n<master>\n<group>\n<region> volume=-12\n")
	r := d.Regions()[0]
	if v := resolve(t, d, r, "volume"); !v.Equal(opcode.FloatValue(-12)) {
		t.Errorf("volume = %v", v)
	}
	if v := resolve(t, d, r, "pan"); !v.Equal(opcode.PercentValue(10)) {
		t.Errorf("pan = %v", v)
	}
	if chain := d.Chain(r); len(chain) != 4 {
		t.Errorf("chain = %v", chain)
	}
}

func TestEmptySiblingRegions(t *testing.T) {
	d, diags := parse(t, "<group> lovel=1\n<region>\n<region>\n")
	if len(diags) != 0 {
		t.Fatalf("diagnostics: %v", codes(diags))
	}
	regions := d.Regions()
	if len(regions) != 2 {
		t.Fatalf("regions = %v", regions)
	}
	a, b := d.Scope(regions[0]), d.Scope(regions[1])
	if a.Len() != 0 || b.Len() != 0 || a.Parent != b.Parent || a.Parent != d.Groups()[0] {
		t.Errorf("regions %+v / %+v", a, b)
	}
}

func TestUnknownOpcodeIsKept(t *testing.T) {
	d, diags := parse(t, "<region> totally_unknown_opcode=42")
	dg := only(t, diags, diag.OpcUnknown)
	if dg.Severity != diag.SevWarning {
		t.Errorf("severity = %v", dg.Severity)
	}
	a, ok := d.Scope(d.Regions()[0]).Get("totally_unknown_opcode")
	if !ok || a.Known || a.Value.Kind != opcode.FreeString || a.Value.Text() != "42" {
		t.Errorf("assignment = %+v, %v", a, ok)
	}
}

func TestUnknownOpcodeSuggestion(t *testing.T) {
	_, diags := parse(t, "<region> lokye=36")
	dg := only(t, diags, diag.OpcUnknown)
	if len(dg.Fixes) != 1 || len(dg.Fixes[0].Edits) != 1 || dg.Fixes[0].Edits[0].NewText != "lokey" {
		t.Fatalf("fixes = %+v", dg.Fixes)
	}
}

func TestOutOfRangeIsKept(t *testing.T) {
	d, diags := parse(t, "<region> ampeg_sustain=150")
	only(t, diags, diag.OpcOutOfRange)
	v := resolve(t, d, d.Regions()[0], "ampeg_sustain")
	if v.Kind != opcode.FreeString || v.Text() != "150" {
		t.Errorf("ampeg_sustain = %v", v)
	}
}

func TestValueWarnings(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"<region> volume=loud", diag.OpcInvalidValue},
		{"<region> lokey=h9", diag.OpcInvalidValue},
		{"<region> volume=", diag.OpcEmptyValue},
		{"<region> loop_mode=loop_forever", diag.OpcUnknownEnum},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, diags := parse(t, tt.input)
			only(t, diags, tt.code)
		})
	}
}

func TestEnumSuggestion(t *testing.T) {
	_, diags := parse(t, "<region> loop_mode=one_shoot")
	dg := only(t, diags, diag.OpcUnknownEnum)
	if len(dg.Fixes) != 1 || dg.Fixes[0].Edits[0].NewText != "one_shot" {
		t.Fatalf("fixes = %+v", dg.Fixes)
	}
}

func TestParameterisedOpcodes(t *testing.T) {
	d, diags := parse(t, "<region> hicc64=100 lfo1_freq=2.5")
	if len(diags) != 0 {
		t.Fatalf("diagnostics: %v", codes(diags))
	}
	a, ok := d.Scope(d.Regions()[0]).Get("hicc64")
	if !ok || a.Canonical != "hiccN" || len(a.Params) != 1 || a.Params[0] != 64 {
		t.Errorf("hicc64 = %+v", a)
	}
}

func TestDuplicateGlobalMerges(t *testing.T) {
	d, diags := parse(t, "<global> volume=-6\n<region>\n<global> pan=5\n<region>\n")
	dg := only(t, diags, diag.SynDuplicateGlobal)
	if len(dg.Notes) != 1 {
		t.Errorf("notes = %+v", dg.Notes)
	}
	g, _ := d.Global()
	if s := d.Scope(g); s.Len() != 2 {
		t.Errorf("global has %d opcodes", s.Len())
	}
	for _, r := range d.Regions() {
		if d.Scope(r).Parent != g {
			t.Errorf("region %d parent = %d", r, d.Scope(r).Parent)
		}
	}
}

func TestAssignmentBeforeHeader(t *testing.T) {
	d, diags := parse(t, "volume=-6\npan=3\n<region> lokey=1\n")
	dg := only(t, diags, diag.SynAssignBeforeHeader)
	if dg.Severity != diag.SevInfo {
		t.Errorf("severity = %v", dg.Severity)
	}
	g, ok := d.Global()
	if !ok || !d.Scope(g).Implicit || d.Scope(g).Len() != 2 {
		t.Fatalf("implicit global = %d, %v", g, ok)
	}
	if v := resolve(t, d, d.Regions()[0], "volume"); !v.Equal(opcode.FloatValue(-6)) {
		t.Errorf("volume = %v", v)
	}
}

func TestImplicitGlobalBecomesExplicit(t *testing.T) {
	d, diags := parse(t, "volume=-6\n<global> pan=3\n")
	only(t, diags, diag.SynAssignBeforeHeader)
	g, _ := d.Global()
	if s := d.Scope(g); s.Implicit || s.Len() != 2 || d.Len() != 1 {
		t.Errorf("global = %+v, scopes = %d", s, d.Len())
	}
}

func TestClosingRules(t *testing.T) {
	tests := []struct {
		name  string
		input string
		// parent kind of every region, in order
		want []token.HeaderKind
	}{
		{"region at root", "<region>", []token.HeaderKind{token.NoHeader}},
		{"region under global", "<global><region>", []token.HeaderKind{token.HeaderGlobal}},
		{"master gets implicit global", "<master><region>", []token.HeaderKind{token.HeaderMaster}},
		{"group closes region", "<group><region><group><region>", []token.HeaderKind{token.HeaderGroup, token.HeaderGroup}},
		{"master closes group", "<master><group><region><master><region>", []token.HeaderKind{token.HeaderGroup, token.HeaderMaster}},
		{"global closes all", "<master><group><global><region>", []token.HeaderKind{token.HeaderGlobal}},
		{"side scope keeps group open", "<group><region><control><region>", []token.HeaderKind{token.HeaderGroup, token.HeaderGroup}},
		{"group under global", "<global><group><region>", []token.HeaderKind{token.HeaderGroup}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := parse(t, tt.input)
			regions := d.Regions()
			if len(regions) != len(tt.want) {
				t.Fatalf("regions = %v", regions)
			}
			for i, r := range regions {
				got := token.NoHeader
				if p := d.Scope(d.Scope(r).Parent); p != nil {
					got = p.Kind
				}
				if got != tt.want[i] {
					t.Errorf("region %d parent = %s, want %s", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestMasterCreatesImplicitGlobal(t *testing.T) {
	d, diags := parse(t, "<master> volume=1\n")
	if len(diags) != 0 {
		t.Fatalf("diagnostics: %v", codes(diags))
	}
	g, ok := d.Global()
	if !ok || !d.Scope(g).Implicit || d.Scope(d.Masters()[0]).Parent != g {
		t.Fatalf("global = %d, %v", g, ok)
	}
}

func TestSideScopes(t *testing.T) {
	d, _ := parse(t, `<control> default_path=samples/
<group> volume=1
<region> sample=a.wav
<curve> curve_index=1 v000=0 v127=1
<effect> type=lofi
<region> sample=b.wav
`)
	if n := len(d.Side(token.HeaderControl)); n != 1 {
		t.Errorf("control scopes = %d", n)
	}
	curve := d.Side(token.HeaderCurve)
	if len(curve) != 1 || d.Scope(curve[0]).Len() != 3 {
		t.Fatalf("curve scopes = %v", curve)
	}
	if len(d.Side(token.HeaderEffect)) != 1 {
		t.Errorf("effect scopes = %v", d.Side(token.HeaderEffect))
	}
	regions := d.Regions()
	if len(regions) != 2 {
		t.Fatalf("regions = %v", regions)
	}
	if _, ok := d.ResolveLocal(regions[0], "v000"); ok {
		t.Error("curve opcode leaked into region")
	}
	if p, _ := d.SamplePath(regions[1]); p != "samples/b.wav" {
		t.Errorf("SamplePath = %q", p)
	}
	if v := resolve(t, d, regions[1], "volume"); !v.Equal(opcode.FloatValue(1)) {
		t.Errorf("volume = %v", v)
	}
}

func TestEffectTypeIsKnown(t *testing.T) {
	d, diags := parse(t, "<effect> type=lofi bus=fx1\n")
	if len(diags) != 0 {
		t.Fatalf("diagnostics: %v", codes(diags))
	}
	fx := d.Side(token.HeaderEffect)
	if len(fx) != 1 {
		t.Fatalf("effect scopes = %v", fx)
	}
	a, ok := d.Scope(fx[0]).Get("type")
	if !ok || !a.Known || a.Value.Kind != opcode.FreeString || a.Value.Text() != "lofi" {
		t.Fatalf("type = %+v, %v", a, ok)
	}
}

func TestDefineSubstitution(t *testing.T) {
	fs := source.NewFileSet()
	src := fs.Get(fs.AddVirtual("test.sfz", []byte("#define $VOL -6\nvolume=$VOL\n")))
	exp, err := directive.Expand(src, directive.Options{})
	if err != nil {
		t.Fatal(err)
	}
	file := fs.Get(fs.Add(src.Path, exp.Text, source.FileVirtual|source.FileExpanded))
	d, diags, err := parser.ParseFile(file, nil, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	only(t, diags, diag.SynAssignBeforeHeader)
	g, _ := d.Global()
	v, ok := d.ResolveLocal(g, "volume")
	if !ok || v.String() != "Float(-6)" {
		t.Errorf("volume = %v, %v", v, ok)
	}
	if len(d.Defines) != 1 || d.Defines[0].Value != "-6" {
		t.Errorf("defines = %+v", d.Defines)
	}
}

func TestUnflattenedIncludeWarns(t *testing.T) {
	d, diags := parse(t, "#include \"other.sfz\"\n<region>")
	only(t, diags, diag.SynUnresolvedInclude)
	if len(d.Includes) != 1 || d.Includes[0].Path != "other.sfz" {
		t.Errorf("includes = %+v", d.Includes)
	}
}

func TestFatalTokenErrorAborts(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("bad.sfz", []byte("<region> sample=a.wav\n<bogus> volume=1\n")))
	rep := &diag.SliceReporter{}
	d, diags, err := parser.ParseFile(file, nil, parser.Options{Reporter: rep})
	if d != nil {
		t.Fatal("document returned after fatal error")
	}
	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) || lexErr.Code != diag.LexUnknownHeader {
		t.Fatalf("err = %v", err)
	}
	if len(diags) == 0 || diags[len(diags)-1].Severity != diag.SevError {
		t.Errorf("diagnostics = %v", codes(diags))
	}
	if len(rep.Items) != len(diags) {
		t.Errorf("reporter got %d, returned %d", len(rep.Items), len(diags))
	}
}

func TestInvalidTokenIsStructuralError(t *testing.T) {
	toks := []token.Token{
		{Kind: token.Header, HeaderKind: token.HeaderRegion, Text: "<region>"},
		{Kind: token.Invalid, Text: "???"},
	}
	d, _, err := parser.BuildTokens(toks, nil, parser.Options{})
	var perr *parser.Error
	if d != nil || !errors.As(err, &perr) || perr.Code != diag.SynInvalidToken {
		t.Fatalf("d=%v err=%v", d, err)
	}
}

func TestBuildStopsAtEOF(t *testing.T) {
	toks := []token.Token{
		{Kind: token.Header, HeaderKind: token.HeaderRegion},
		{Kind: token.EOF},
		{Kind: token.Header, HeaderKind: token.HeaderRegion},
	}
	d, _, err := parser.BuildTokens(toks, nil, parser.Options{})
	if err != nil || len(d.Regions()) != 1 {
		t.Fatalf("regions=%v err=%v", d.Regions(), err)
	}
}

func TestCustomCatalog(t *testing.T) {
	cat, err := opcode.NewCatalog(opcode.Descriptor{Name: "my_gain", Kind: opcode.Float, Bounds: opcode.Between(-12, 12)})
	if err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sfz", []byte("<region> my_gain=3 my_other=1")))
	d, diags, err := parser.ParseFile(file, cat, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	only(t, diags, diag.OpcUnknown)
	if v := resolve(t, d, d.Regions()[0], "my_gain"); !v.Equal(opcode.FloatValue(3)) {
		t.Errorf("my_gain = %v", v)
	}
}

func TestManyRegions(t *testing.T) {
	var b strings.Builder
	b.WriteString("<group> volume=-1\n")
	for i := range 128 {
		fmt.Fprintf(&b, "<region> key=%d\n", i)
	}
	d, diags := parse(t, b.String())
	if len(diags) != 0 || len(d.Regions()) != 128 {
		t.Fatalf("regions=%d diags=%v", len(d.Regions()), codes(diags))
	}
	if v := resolve(t, d, d.Regions()[127], "key"); v.Int() != 127 {
		t.Errorf("key = %v", v)
	}
}
