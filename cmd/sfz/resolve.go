package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"sfzkit/internal/doc"
	"sfzkit/internal/driver"
	"sfzkit/internal/source"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] file.sfz",
	Short: "Print the effective value of opcodes for one region",
	Long: `Resolve walks region > group > master > global for each requested opcode
and falls back to the catalog default`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().Int("region", 0, "region index in file order, starting at 0")
	resolveCmd.Flags().StringSlice("opcode", nil, "opcode to resolve (repeatable); all set opcodes when omitted")
	resolveCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

// resolvedOpcode is one line of resolve output.
type resolvedOpcode struct {
	Opcode  string `json:"opcode"`
	Kind    string `json:"kind,omitempty"`
	Value   string `json:"value,omitempty"`
	From    string `json:"from,omitempty"`
	File    string `json:"file,omitempty"` // файл, где записано значение (может быть include)
	Line    uint32 `json:"line,omitempty"`
	Default bool   `json:"default,omitempty"`
	Unset   bool   `json:"unset,omitempty"`
}

type resolveOutput struct {
	Region  int              `json:"region"`
	Sample  string           `json:"sample,omitempty"`
	Opcodes []resolvedOpcode `json:"opcodes"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	st, err := loadSettings(cmd, filePath)
	if err != nil {
		return err
	}
	format, err := st.outputFormat(cmd, "pretty", "json")
	if err != nil {
		return err
	}
	index, err := cmd.Flags().GetInt("region")
	if err != nil {
		return fmt.Errorf("failed to get region flag: %w", err)
	}
	names, err := cmd.Flags().GetStringSlice("opcode")
	if err != nil {
		return fmt.Errorf("failed to get opcode flag: %w", err)
	}

	result, err := driver.Parse(cmd.Context(), filePath, st.opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if err := printDiagnostics(st, result.Bag, result.FileSet); err != nil {
		return err
	}
	if result.Document == nil {
		return failSilently(cmd)
	}

	regions := result.Document.Regions()
	if index < 0 || index >= len(regions) {
		return fmt.Errorf("region %d out of range: %s has %d regions", index, filePath, len(regions))
	}
	out := resolveRegion(result.Document, result.FileSet, regions[index], names)
	out.Region = index

	if format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	writeResolvePretty(cmd.OutOrStdout(), out)
	return nil
}

// resolveRegion answers names for region; with no names it lists the
// region's effective opcode set.
func resolveRegion(d *doc.Document, fs *source.FileSet, region doc.ScopeID, names []string) resolveOutput {
	var out resolveOutput
	if sample, ok := d.SamplePath(region); ok {
		out.Sample = sample
	}
	if len(names) == 0 {
		for _, r := range d.Effective(region) {
			out.Opcodes = append(out.Opcodes, fromAssignment(d, fs, r.Assignment, r.From))
		}
		return out
	}
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if a, from, ok := d.Lookup(region, name); ok {
			out.Opcodes = append(out.Opcodes, fromAssignment(d, fs, a, from))
			continue
		}
		item := resolvedOpcode{Opcode: name}
		if v, ok := d.Resolve(region, name); ok {
			item.Kind, item.Value, item.Default = v.Kind.String(), v.Text(), true
		} else {
			item.Unset = true
		}
		out.Opcodes = append(out.Opcodes, item)
	}
	return out
}

func fromAssignment(d *doc.Document, fs *source.FileSet, a doc.Assignment, from doc.ScopeID) resolvedOpcode {
	item := resolvedOpcode{
		Opcode: a.Name,
		Kind:   a.Value.Kind.String(),
		Value:  a.Value.Text(),
		From:   fmt.Sprintf("%s#%d", d.Scope(from).Kind, from),
	}
	if f, ok := fs.Lookup(a.Span.File); ok && a.Span != (source.Span{}) {
		start, _ := fs.Resolve(a.Span)
		item.File, item.Line = source.BaseName(f.Path), start.Line
	}
	return item
}

func writeResolvePretty(w io.Writer, out resolveOutput) {
	fmt.Fprintf(w, "region %d", out.Region)
	if out.Sample != "" {
		fmt.Fprintf(w, " (%s)", out.Sample)
	}
	fmt.Fprintln(w)
	for _, op := range out.Opcodes {
		switch {
		case op.Unset:
			fmt.Fprintf(w, "  %s: not set, no default\n", op.Opcode)
		case op.Default:
			fmt.Fprintf(w, "  %s = %s  [default]\n", op.Opcode, op.Value)
		case op.Line > 0:
			fmt.Fprintf(w, "  %s = %s  [%s, %s:%d]\n", op.Opcode, op.Value, op.From, op.File, op.Line)
		default:
			fmt.Fprintf(w, "  %s = %s  [%s]\n", op.Opcode, op.Value, op.From)
		}
	}
}
