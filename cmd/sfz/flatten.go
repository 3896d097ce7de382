package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sfzkit/internal/driver"
	"sfzkit/internal/format"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten [flags] file.sfz",
	Short: "Write a self-contained copy of an instrument",
	Long: `Flatten parses the instrument with its #include files and #define
variables resolved and writes it back as one SFZ file in a canonical
layout. Comments are not kept. The output is parsed again and compared
with the original before anything is written`,
	Args: cobra.ExactArgs(1),
	RunE: runFlatten,
}

func init() {
	flattenCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	flattenCmd.Flags().Int("indent", 2, "spaces per indentation level")
	flattenCmd.Flags().Bool("tabs", false, "indent with tabs")
	flattenCmd.Flags().Bool("nested", false, "indent headers by their depth in the hierarchy")
	flattenCmd.Flags().Bool("inline", false, "keep each header and its opcodes on one line")
}

func runFlatten(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	st, err := loadSettings(cmd, filePath)
	if err != nil {
		return err
	}
	outPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	var opt format.Options
	if opt.IndentWidth, err = cmd.Flags().GetInt("indent"); err != nil {
		return err
	}
	if opt.UseTabs, err = cmd.Flags().GetBool("tabs"); err != nil {
		return err
	}
	if opt.Nested, err = cmd.Flags().GetBool("nested"); err != nil {
		return err
	}
	if opt.Inline, err = cmd.Flags().GetBool("inline"); err != nil {
		return err
	}

	result, err := driver.Parse(cmd.Context(), filePath, st.opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if err := printDiagnostics(st, result.Bag, result.FileSet); err != nil {
		return err
	}
	if result.Document == nil || result.Failed() {
		return failSilently(cmd)
	}

	out, err := format.CheckRoundTrip(result.Document, opt)
	if err != nil {
		return fmt.Errorf("flatten %s: %w", filePath, err)
	}
	if outPath == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("flatten: %w", err)
	}
	if !st.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d regions)\n", outPath, len(result.Document.Regions()))
	}
	return nil
}
