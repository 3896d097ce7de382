package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sfzkit/internal/diag"
	"sfzkit/internal/diagfmt"
	"sfzkit/internal/driver"
	"sfzkit/internal/source"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] <file.sfz|directory>",
	Short: "Report problems in an SFZ file or a whole library",
	Long: `Run the full pipeline on one file, or on every *.sfz file under a
directory in parallel, and print the diagnostics`,
	Args: cobra.ExactArgs(1),
	RunE: runDiagnose,
}

// diagFlags are the diag options that shape the output.
type diagFlags struct {
	format    string
	withNotes bool
	showFixes bool
	preview   bool
	minSev    diag.Severity
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	diagCmd.Flags().Bool("no-cache", false, "do not read or write the instrument cache")
	diagCmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
	diagCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	diagCmd.Flags().String("min-severity", "info", "hide diagnostics below this severity (info|warning|error)")
	diagCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	diagCmd.Flags().Bool("preview", false, "show suggested fixes applied to the source line")
	diagCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

// runDiagnose prints diagnostics for a file or directory and fails when any
// instrument has errors (or warnings in strict mode).
func runDiagnose(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	target := args[0]
	st, err := loadSettings(cmd, target)
	if err != nil {
		return err
	}

	var df diagFlags
	if df.format, err = st.outputFormat(cmd, "pretty", "json", "short"); err != nil {
		return err
	}
	if df.withNotes, err = cmd.Flags().GetBool("with-notes"); err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	if df.preview, err = cmd.Flags().GetBool("preview"); err != nil {
		return fmt.Errorf("failed to get preview flag: %w", err)
	}
	df.showFixes = suggest || df.preview
	minSev, err := cmd.Flags().GetString("min-severity")
	if err != nil {
		return fmt.Errorf("failed to get min-severity flag: %w", err)
	}
	if df.minSev, err = diag.ParseSeverity(minSev); err != nil {
		return err
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	if fullPath {
		st.pathMode = diagfmt.PathModeAbsolute
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	var failed bool
	if info.IsDir() {
		failed, err = diagnoseDir(cmd, target, st, df)
	} else {
		failed, err = diagnoseFile(cmd, target, st, df)
	}
	if err != nil {
		return err
	}
	if failed {
		return failSilently(cmd)
	}
	return nil
}

func diagnoseFile(cmd *cobra.Command, path string, st *settings, df diagFlags) (bool, error) {
	result, err := driver.Parse(cmd.Context(), path, st.opts)
	if err != nil {
		return false, fmt.Errorf("diagnosis failed: %w", err)
	}
	result.Bag.Filter(df.minSev)
	out := cmd.OutOrStdout()
	switch df.format {
	case "json":
		err = diagfmt.JSON(out, result.Bag, result.FileSet, st.jsonOpts(df))
	case "short":
		writeShort(out, result.Bag.Items(), result.FileSet, df)
	default:
		err = diagfmt.Pretty(out, result.Bag, result.FileSet, st.prettyOpts(df))
	}
	if err != nil {
		return false, fmt.Errorf("failed to format diagnostics: %w", err)
	}
	return result.Failed(), nil
}

func diagnoseDir(cmd *cobra.Command, dir string, st *settings, df diagFlags) (bool, error) {
	res, err := parseLibrary(cmd, st, dir, df.format != "pretty")
	if err != nil {
		return false, fmt.Errorf("diagnosis failed: %w", err)
	}
	for _, f := range res.Files {
		if f.Result != nil {
			f.Result.Bag.Filter(df.minSev)
		}
	}

	out := cmd.OutOrStdout()
	switch df.format {
	case "json":
		err = writeDirJSON(out, res, st, df)
	case "short":
		for _, f := range res.Files {
			if f.Result != nil {
				writeShort(out, f.Result.Bag.Items(), f.Result.FileSet, df)
			} else if f.Err != nil {
				fmt.Fprintf(out, "%s: error: %v\n", f.Path, f.Err)
			}
		}
	default:
		err = writeDirPretty(out, res, st, df)
	}
	if err != nil {
		return false, err
	}

	if st.timings {
		printTimings(cmd.ErrOrStderr(), "timings (all instruments)", res.Timing)
	}
	if !st.quiet && df.format == "pretty" {
		fmt.Fprintln(out, dirSummaryLine(res))
	}
	return res.Failed() > 0, nil
}

// dirOptions adds the directory-only flags to the pipeline options.
func dirOptions(cmd *cobra.Command, st *settings) (driver.Options, error) {
	opts := st.opts
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return opts, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	opts.Jobs = jobs
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return opts, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	// тайминги из кэша не восстановить, поэтому с --timings всё разбираем заново
	if !noCache && !st.timings {
		cache, err := driver.OpenDiskCache("sfzkit")
		if err != nil {
			if !st.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: cache disabled: %v\n", err)
			}
		} else {
			opts.Cache = cache
		}
	}
	return opts, nil
}

func writeDirPretty(out io.Writer, res *driver.DirResult, st *settings, df diagFlags) error {
	opts := st.prettyOpts(df)
	for _, f := range res.Files {
		switch {
		case f.Err != nil:
			fmt.Fprintf(out, "== %s ==\nerror: %v\n", f.Path, f.Err)
		case f.Result != nil && f.Result.Bag.Len() > 0:
			fmt.Fprintf(out, "== %s ==\n", f.Path)
			if err := diagfmt.Pretty(out, f.Result.Bag, f.Result.FileSet, opts); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeDirJSON(out io.Writer, res *driver.DirResult, st *settings, df diagFlags) error {
	opts := st.jsonOpts(df)
	output := make(map[string]diagfmt.DiagnosticsOutput, len(res.Files))
	for _, f := range res.Files {
		switch {
		case f.Result != nil:
			output[f.Path] = diagfmt.BuildDiagnosticsOutput(f.Result.Bag, f.Result.FileSet, opts)
		case f.Err != nil:
			output[f.Path] = diagfmt.DiagnosticsOutput{
				Diagnostics: []diagfmt.DiagnosticJSON{{
					Severity: diag.SevError.String(),
					Code:     diag.IOLoadFileError.ID(),
					Message:  f.Err.Error(),
				}},
				Count: 1,
			}
		default:
			// из кэша попадают только чистые инструменты
			output[f.Path] = diagfmt.DiagnosticsOutput{Diagnostics: []diagfmt.DiagnosticJSON{}}
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("failed to encode diagnostics output: %w", err)
	}
	return nil
}

func writeShort(out io.Writer, items []diag.Diagnostic, fs *source.FileSet, df diagFlags) {
	opt := diag.GoldenOptions{Notes: df.withNotes, Fixes: df.showFixes}
	if text := diag.FormatGoldenDiagnostics(items, fs, opt); text != "" {
		fmt.Fprintln(out, text)
	}
}

func dirSummaryLine(res *driver.DirResult) string {
	cached := 0
	for _, f := range res.Files {
		if f.Cached {
			cached++
		}
	}
	line := fmt.Sprintf("%d instruments, %d failed", len(res.Files), res.Failed())
	if cached > 0 {
		line += fmt.Sprintf(", %d from cache", cached)
	}
	return line
}

func (s *settings) prettyOpts(df diagFlags) diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:       s.useColor(os.Stdout),
		Context:     2,
		PathMode:    s.pathMode,
		ShowNotes:   df.withNotes,
		ShowFixes:   df.showFixes,
		ShowPreview: df.preview,
	}
}

func (s *settings) jsonOpts(df diagFlags) diagfmt.JSONOpts {
	return diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         s.pathMode,
		IncludeNotes:     df.withNotes,
		IncludeFixes:     df.showFixes,
		IncludePreviews:  df.preview,
	}
}
