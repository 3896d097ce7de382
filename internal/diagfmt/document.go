package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"sfzkit/internal/dialect"
	"sfzkit/internal/doc"
	"sfzkit/internal/source"
	"sfzkit/internal/token"
)

// DocOpts configures document dumps.
type DocOpts struct {
	// Effective adds the merged opcode set and sample path to every region.
	Effective bool
	PathMode  PathMode
}

type OpcodeOutput struct {
	Name      string `json:"name" yaml:"name"`
	Canonical string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Params    []int  `json:"params,omitempty" yaml:"params,omitempty,flow"`
	Kind      string `json:"kind" yaml:"kind"`
	Value     string `json:"value" yaml:"value"`
	Raw       string `json:"raw,omitempty" yaml:"raw,omitempty"`
	Unknown   bool   `json:"unknown,omitempty" yaml:"unknown,omitempty"`
	Line      uint32 `json:"line,omitempty" yaml:"line,omitempty"`
	From      string `json:"from,omitempty" yaml:"from,omitempty"`
}

type ScopeOutput struct {
	ID         int            `json:"id" yaml:"id"`
	Kind       string         `json:"kind" yaml:"kind"`
	Label      string         `json:"label,omitempty" yaml:"label,omitempty"`
	Implicit   bool           `json:"implicit,omitempty" yaml:"implicit,omitempty"`
	Line       uint32         `json:"line,omitempty" yaml:"line,omitempty"`
	Opcodes    []OpcodeOutput `json:"opcodes,omitempty" yaml:"opcodes,omitempty"`
	Effective  []OpcodeOutput `json:"effective,omitempty" yaml:"effective,omitempty"`
	SamplePath string         `json:"sample_path,omitempty" yaml:"sample_path,omitempty"`
	Children   []ScopeOutput  `json:"children,omitempty" yaml:"children,omitempty"`
}

type DefineOutput struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// DocumentOutput is the serialisable shape of a doc.Document.
type DocumentOutput struct {
	File     string         `json:"file,omitempty" yaml:"file,omitempty"`
	Regions  int            `json:"regions" yaml:"regions"`
	Dialect  string         `json:"dialect,omitempty" yaml:"dialect,omitempty"`
	Scopes   []ScopeOutput  `json:"scopes" yaml:"scopes"`
	Side     []ScopeOutput  `json:"side,omitempty" yaml:"side,omitempty"`
	Defines  []DefineOutput `json:"defines,omitempty" yaml:"defines,omitempty"`
	Includes []string       `json:"includes,omitempty" yaml:"includes,omitempty"`
}

// BuildDocumentOutput converts d into its dump shape. fs may be nil; then
// line numbers are omitted.
func BuildDocumentOutput(d *doc.Document, fs *source.FileSet, file *source.File, opts DocOpts) DocumentOutput {
	out := DocumentOutput{Regions: len(d.Regions())}
	if k := dialect.Detect(d).Kind; k != dialect.Unknown {
		out.Dialect = k.String()
	}
	if file != nil && fs != nil {
		out.File = formatPath(fs, file, opts.PathMode)
	}
	for _, id := range d.Roots() {
		out.Scopes = append(out.Scopes, buildScope(d, fs, id, opts))
	}
	for _, kind := range sideKinds {
		for _, id := range d.Side(kind) {
			out.Side = append(out.Side, buildScope(d, fs, id, opts))
		}
	}
	for _, def := range d.Defines {
		out.Defines = append(out.Defines, DefineOutput{Name: "$" + def.Name, Value: def.Value})
	}
	for _, inc := range d.Includes {
		out.Includes = append(out.Includes, inc.Path)
	}
	return out
}

var sideKinds = []token.HeaderKind{
	token.HeaderControl, token.HeaderCurve, token.HeaderEffect, token.HeaderMidi, token.HeaderSample,
}

func buildScope(d *doc.Document, fs *source.FileSet, id doc.ScopeID, opts DocOpts) ScopeOutput {
	s := d.Scope(id)
	out := ScopeOutput{
		ID:       int(id),
		Kind:     s.Kind.String(),
		Label:    s.Label(),
		Implicit: s.Implicit,
		Line:     lineOf(fs, s.Span),
	}
	for _, a := range s.Assignments() {
		out.Opcodes = append(out.Opcodes, opcodeOutput(fs, a))
	}
	if opts.Effective && s.Kind == token.HeaderRegion {
		for _, r := range d.Effective(id) {
			o := opcodeOutput(fs, r.Assignment)
			o.From = fmt.Sprintf("%s#%d", d.Scope(r.From).Kind, r.From)
			out.Effective = append(out.Effective, o)
		}
		out.SamplePath, _ = d.SamplePath(id)
	}
	for _, c := range s.Children {
		out.Children = append(out.Children, buildScope(d, fs, c, opts))
	}
	return out
}

func opcodeOutput(fs *source.FileSet, a doc.Assignment) OpcodeOutput {
	o := OpcodeOutput{
		Name:    a.Name,
		Params:  a.Params,
		Kind:    a.Value.Kind.String(),
		Value:   a.Value.Text(),
		Unknown: !a.Known,
		Line:    lineOf(fs, a.Span),
	}
	if a.Canonical != a.Name {
		o.Canonical = a.Canonical
	}
	if a.Value.Raw != o.Value {
		o.Raw = a.Value.Raw
	}
	return o
}

func lineOf(fs *source.FileSet, sp source.Span) uint32 {
	if sp.Empty() || fileOf(fs, sp) == nil {
		return 0
	}
	start, _ := fs.Resolve(sp)
	return start.Line
}

// DocumentJSON writes the document dump as indented JSON.
func DocumentJSON(w io.Writer, out DocumentOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// DocumentYAML writes the document dump as YAML.
func DocumentYAML(w io.Writer, out DocumentOutput) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(out); err != nil {
		return err
	}
	return encoder.Close()
}

// DocumentPretty prints the scope tree, one opcode per line:
//
//	<group> #0 "Strings"
//	  amp_veltrack = 100  Percentage
//	  <region> #1
//	    sample = a.wav  Path
func DocumentPretty(w io.Writer, out DocumentOutput) error {
	var b strings.Builder
	if out.File != "" {
		fmt.Fprintf(&b, "%s: %d regions", out.File, out.Regions)
		if out.Dialect != "" {
			fmt.Fprintf(&b, ", SFZ %s", out.Dialect)
		}
		b.WriteByte('\n')
	}
	for _, def := range out.Defines {
		fmt.Fprintf(&b, "#define %s %s\n", def.Name, def.Value)
	}
	for _, s := range out.Scopes {
		writeScope(&b, s, 0)
	}
	for _, s := range out.Side {
		writeScope(&b, s, 0)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeScope(b *strings.Builder, s ScopeOutput, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s<%s> #%d", indent, s.Kind, s.ID)
	if s.Label != "" {
		fmt.Fprintf(b, " %q", s.Label)
	}
	if s.Implicit {
		b.WriteString(" (implicit)")
	}
	b.WriteByte('\n')
	writeOpcodes(b, indent+"  ", s.Opcodes)
	if len(s.Effective) > 0 {
		fmt.Fprintf(b, "%s  effective:\n", indent)
		writeOpcodes(b, indent+"    ", s.Effective)
	}
	if s.SamplePath != "" {
		fmt.Fprintf(b, "%s  sample path: %s\n", indent, s.SamplePath)
	}
	for _, c := range s.Children {
		writeScope(b, c, depth+1)
	}
}

func writeOpcodes(b *strings.Builder, indent string, ops []OpcodeOutput) {
	width := 0
	for _, o := range ops {
		width = max(width, len(o.Name)+3+len(o.Value))
	}
	for _, o := range ops {
		pair := o.Name + " = " + o.Value
		fmt.Fprintf(b, "%s%-*s  %s", indent, width, pair, o.Kind)
		if o.Unknown {
			b.WriteString(" (unknown)")
		}
		if o.From != "" {
			b.WriteString("  from " + o.From)
		}
		b.WriteByte('\n')
	}
}
