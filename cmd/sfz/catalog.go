package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"sfzkit/internal/opcode"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [flags] [opcode...]",
	Short: "List the opcodes sfz knows about",
	Long: `Catalog prints opcode descriptors: value kind, bounds, allowed words and
default. Vendor opcodes declared in sfzkit.toml are included. Names may be
written as in a file (hicc64); unknown names get a suggestion.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().String("kind", "", "only list opcodes of this value kind (int|float|percent|note|bool|enum|path|string)")
	catalogCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type descriptorJSON struct {
	Name    string   `json:"name"`
	Kind    string   `json:"kind"`
	Range   string   `json:"range,omitempty"`
	Values  []string `json:"values,omitempty"`
	Default string   `json:"default,omitempty"`
	Unit    string   `json:"unit,omitempty"`
	Version string   `json:"version"`
}

func runCatalog(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd, "")
	if err != nil {
		return err
	}
	format, err := st.outputFormat(cmd, "pretty", "json")
	if err != nil {
		return err
	}
	kindFlag, err := cmd.Flags().GetString("kind")
	if err != nil {
		return fmt.Errorf("failed to get kind flag: %w", err)
	}
	var (
		filterKind bool
		kind       opcode.ValueKind
	)
	if kindFlag != "" {
		if kind, err = opcode.ParseKind(kindFlag); err != nil {
			return err
		}
		filterKind = true
	}

	cat := st.opts.Catalog
	if cat == nil {
		cat = opcode.Default()
	}

	var (
		picked  []opcode.Descriptor
		unknown int
	)
	if len(args) == 0 {
		for d := range cat.All() {
			if !filterKind || d.Kind == kind {
				picked = append(picked, d)
			}
		}
	} else {
		for _, name := range args {
			d, _, ok := cat.Lookup(name)
			if !ok {
				unknown++
				msg := fmt.Sprintf("unknown opcode %q", name)
				if s, ok := cat.Suggest(name); ok {
					msg += fmt.Sprintf(", did you mean %q?", s)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
				continue
			}
			if !filterKind || d.Kind == kind {
				picked = append(picked, d)
			}
		}
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		items := make([]descriptorJSON, 0, len(picked))
		for _, d := range picked {
			items = append(items, toDescriptorJSON(d))
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(items); err != nil {
			return err
		}
	} else {
		writeCatalogPretty(out, picked, st.useColorFor(out))
	}
	if unknown > 0 {
		return failSilently(cmd)
	}
	return nil
}

func toDescriptorJSON(d opcode.Descriptor) descriptorJSON {
	out := descriptorJSON{
		Name:    d.Name,
		Kind:    d.Kind.String(),
		Values:  d.Values,
		Default: d.Default,
		Unit:    d.Unit,
		Version: d.Version.String(),
	}
	if !d.Bounds.IsZero() {
		out.Range = d.Bounds.String()
	}
	return out
}

var (
	catalogName = lipgloss.NewStyle().Bold(true)
	catalogKind = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	catalogDim  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func writeCatalogPretty(w io.Writer, items []opcode.Descriptor, color bool) {
	width := 0
	for _, d := range items {
		width = max(width, len(d.Name))
	}
	style := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}
	for _, d := range items {
		var b strings.Builder
		b.WriteString(style(catalogName, d.Name))
		b.WriteString(strings.Repeat(" ", width-len(d.Name)+2))
		b.WriteString(style(catalogKind, fmt.Sprintf("%-10s", d.Kind)))
		switch {
		case len(d.Values) > 0:
			b.WriteString(" " + strings.Join(d.Values, "|"))
		case !d.Bounds.IsZero():
			b.WriteString(" " + d.Bounds.String())
		}
		if d.Unit != "" {
			b.WriteString(" " + d.Unit)
		}
		if d.HasDefault() {
			b.WriteString(style(catalogDim, "  default "+d.Default))
		}
		if d.Version != opcode.V1 {
			b.WriteString(style(catalogDim, "  ("+d.Version.String()+")"))
		}
		fmt.Fprintln(w, b.String())
	}
}
