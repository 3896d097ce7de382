package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sfzkit/internal/diagfmt"
	"sfzkit/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.sfz|-",
	Short: "Parse an SFZ file and print its scope tree",
	Long: `Parse builds the instrument document (control, global, master, group and
region scopes with their typed opcodes) and prints it. "-" reads standard input`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml)")
	parseCmd.Flags().Bool("effective", false, "add the merged opcode set and sample path to every region")
}

// stdinName stands for standard input in diagnostics. Relative includes
// resolve against the working directory.
const stdinName = "<stdin>"

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	st, err := loadSettings(cmd, filePath)
	if err != nil {
		return err
	}
	format, err := st.outputFormat(cmd, "pretty", "json", "yaml")
	if err != nil {
		return err
	}
	effective, err := cmd.Flags().GetBool("effective")
	if err != nil {
		return fmt.Errorf("failed to get effective flag: %w", err)
	}

	var result *driver.ParseResult
	if filePath == "-" {
		var src []byte
		if src, err = io.ReadAll(cmd.InOrStdin()); err == nil {
			result, err = driver.ParseSource(cmd.Context(), stdinName, src, st.opts)
		}
	} else {
		result, err = driver.Parse(cmd.Context(), filePath, st.opts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if err := printDiagnostics(st, result.Bag, result.FileSet); err != nil {
		return err
	}
	if result.Document == nil {
		return failSilently(cmd)
	}

	doc := diagfmt.BuildDocumentOutput(result.Document, result.FileSet, result.Root, diagfmt.DocOpts{
		Effective: effective,
		PathMode:  st.pathMode,
	})
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = diagfmt.DocumentJSON(out, doc)
	case "yaml":
		err = diagfmt.DocumentYAML(out, doc)
	default:
		err = diagfmt.DocumentPretty(out, doc)
	}
	if err != nil {
		return err
	}
	if result.Failed() {
		return failSilently(cmd)
	}
	return nil
}
