package diagfmt

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"sfzkit/internal/doc"
	"sfzkit/internal/lexer"
	"sfzkit/internal/parser"
	"sfzkit/internal/source"
)

const kitSFZ = `#define $V -6
<control> default_path=samples/
<group> group_label=Strings amp_veltrack=50 volume=-3
<region> sample=a.wav lokey=c4
`

func parseKit(t *testing.T) (*doc.Document, *source.FileSet, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("kit.sfz", []byte(kitSFZ))
	file := fs.Get(id)
	d, diags, err := parser.ParseFile(file, nil, parser.Options{})
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}
	return d, fs, file
}

func TestBuildDocumentOutput(t *testing.T) {
	d, fs, file := parseKit(t)
	out := BuildDocumentOutput(d, fs, file, DocOpts{Effective: true, PathMode: PathModeBasename})

	if out.File != "kit.sfz" || out.Regions != 1 || out.Dialect != "aria" {
		t.Fatalf("file=%q regions=%d dialect=%q", out.File, out.Regions, out.Dialect)
	}
	if len(out.Scopes) != 1 || out.Scopes[0].Kind != "group" || out.Scopes[0].Label != "Strings" {
		t.Fatalf("scopes = %+v", out.Scopes)
	}
	if len(out.Side) != 1 || out.Side[0].Kind != "control" {
		t.Fatalf("side = %+v", out.Side)
	}
	if len(out.Defines) != 1 || out.Defines[0].Name != "$V" || out.Defines[0].Value != "-6" {
		t.Errorf("defines = %+v", out.Defines)
	}

	group := out.Scopes[0]
	if group.Line != 3 {
		t.Errorf("group line = %d", group.Line)
	}
	region := group.Children[0]
	if region.SamplePath != "samples/a.wav" {
		t.Errorf("sample path = %q", region.SamplePath)
	}

	var names []string
	for _, o := range region.Effective {
		names = append(names, o.Name)
	}
	if want := []string{"amp_veltrack", "group_label", "lokey", "sample", "volume"}; !slices.Equal(names, want) {
		t.Errorf("effective = %v, want %v", names, want)
	}
	for _, o := range region.Effective {
		switch o.Name {
		case "volume":
			if o.From != "group#1" || o.Value != "-3" || o.Kind != "Float" {
				t.Errorf("volume = %+v", o)
			}
		case "lokey":
			if o.From != "region#2" || o.Raw != "c4" {
				t.Errorf("lokey = %+v", o)
			}
		}
	}
}

func TestBuildDocumentOutputWithoutEffective(t *testing.T) {
	d, fs, file := parseKit(t)
	out := BuildDocumentOutput(d, fs, file, DocOpts{})
	region := out.Scopes[0].Children[0]
	if region.Effective != nil || region.SamplePath != "" {
		t.Errorf("effective data without DocOpts.Effective: %+v", region)
	}
	if len(region.Opcodes) != 2 {
		t.Errorf("region opcodes = %+v", region.Opcodes)
	}
}

func TestDocumentJSONAndYAML(t *testing.T) {
	d, fs, file := parseKit(t)
	out := BuildDocumentOutput(d, fs, file, DocOpts{Effective: true, PathMode: PathModeBasename})

	var jbuf bytes.Buffer
	if err := DocumentJSON(&jbuf, out); err != nil {
		t.Fatal(err)
	}
	var fromJSON DocumentOutput
	if err := json.Unmarshal(jbuf.Bytes(), &fromJSON); err != nil {
		t.Fatal(err)
	}
	if fromJSON.Scopes[0].Children[0].SamplePath != "samples/a.wav" {
		t.Errorf("json round trip lost sample path:\n%s", jbuf.String())
	}

	var ybuf bytes.Buffer
	if err := DocumentYAML(&ybuf, out); err != nil {
		t.Fatal(err)
	}
	var fromYAML DocumentOutput
	if err := yaml.Unmarshal(ybuf.Bytes(), &fromYAML); err != nil {
		t.Fatal(err)
	}
	if fromYAML.Regions != 1 || fromYAML.Side[0].Opcodes[0].Name != "default_path" {
		t.Errorf("yaml round trip:\n%s", ybuf.String())
	}
	if !strings.Contains(ybuf.String(), "kind: group") {
		t.Errorf("yaml output:\n%s", ybuf.String())
	}
}

func TestDocumentPretty(t *testing.T) {
	d, fs, file := parseKit(t)
	out := BuildDocumentOutput(d, fs, file, DocOpts{Effective: true, PathMode: PathModeBasename})

	var buf bytes.Buffer
	if err := DocumentPretty(&buf, out); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"kit.sfz: 1 regions, SFZ aria\n",
		"#define $V -6\n",
		"<group> #1 \"Strings\"\n",
		"  <region> #2\n",
		"    sample path: samples/a.wav\n",
		"<control> #0\n",
		"from group#1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestTokensOutput(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.sfz", []byte("<region> sample=a.wav // c\n<group>\n"))
	toks, err := lexer.Tokenize(fs.Get(id), lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}

	out := BuildTokensOutput(toks)
	if len(out) != 3 {
		t.Fatalf("tokens = %+v", out)
	}
	if out[0].Kind != "Header" || out[0].Header != "region" || out[0].Value != nil {
		t.Errorf("header token = %+v", out[0])
	}
	if out[1].Kind != "Assign" || out[1].Name != "sample" || out[1].Value == nil || *out[1].Value != "a.wav" {
		t.Errorf("assign token = %+v", out[1])
	}
	if !slices.Contains(out[2].Leading, "LineComment") {
		t.Errorf("leading = %v", out[2].Leading)
	}

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pretty.String(), `sample = "a.wav" at 1:10-1:22`) {
		t.Errorf("pretty tokens:\n%s", pretty.String())
	}

	var jbuf bytes.Buffer
	if err := FormatTokensJSON(&jbuf, toks); err != nil {
		t.Fatal(err)
	}
	var decoded []TokenOutput
	if err := json.Unmarshal(jbuf.Bytes(), &decoded); err != nil || len(decoded) != 3 {
		t.Errorf("json tokens: %v\n%s", err, jbuf.String())
	}
}
