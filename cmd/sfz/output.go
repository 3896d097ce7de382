package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sfzkit/internal/diag"
	"sfzkit/internal/diagfmt"
	"sfzkit/internal/observ"
	"sfzkit/internal/source"
)

// errDiagnosticsReported makes the process exit with status 1 after the
// diagnostics have been printed; cobra prints nothing for it.
var errDiagnosticsReported = errors.New("diagnostics reported")

func failSilently(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return errDiagnosticsReported
}

// printDiagnostics renders bag to stderr in pretty form. Empty bags print
// nothing.
func printDiagnostics(st *settings, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	if st.quiet && !bag.HasErrors() {
		return nil
	}
	return diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:    st.useColor(os.Stderr),
		Context:  2,
		PathMode: st.pathMode,
	})
}

func printTimings(out io.Writer, title string, report *observ.Report) {
	if out == nil || report == nil || len(report.Phases) == 0 {
		return
	}
	fmt.Fprintf(out, "%s:\n", title)
	for _, p := range report.Phases {
		fmt.Fprintf(out, "  %-12s %9.2f ms", p.Name, p.DurationMS)
		if p.Count > 1 {
			fmt.Fprintf(out, "  x%d", p.Count)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "  %-12s %9.2f ms\n", "total", report.TotalMS)
}
