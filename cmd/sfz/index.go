package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sfzkit/internal/index"
	"sfzkit/internal/opcode"
)

var indexCmd = &cobra.Command{
	Use:   "index [flags] [library-dir]",
	Short: "Build or query the SQLite index of an instrument library",
	Long: `Index parses every *.sfz file under library-dir and records one row per
instrument (regions, key range, labels, samples) in the database given by
--db. Instruments that disappeared from the library are removed. Without a
directory the existing index is only queried.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().String("db", "sfzkit.db", "index database file")
	indexCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	indexCmd.Flags().Bool("no-cache", false, "do not read or write the instrument cache")
	indexCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	indexCmd.Flags().String("find", "", "list instruments using a sample whose path contains this text")
	indexCmd.Flags().Bool("list", false, "list every indexed instrument")
	indexCmd.Flags().String("format", "pretty", "output format for --find and --list (pretty|json)")
}

func runIndex(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	target := ""
	if len(args) > 0 {
		target = args[0]
	}
	st, err := loadSettings(cmd, target)
	if err != nil {
		return err
	}
	dbPath, err := cmd.Flags().GetString("db")
	if err != nil {
		return fmt.Errorf("failed to get db flag: %w", err)
	}
	find, err := cmd.Flags().GetString("find")
	if err != nil {
		return fmt.Errorf("failed to get find flag: %w", err)
	}
	list, err := cmd.Flags().GetBool("list")
	if err != nil {
		return fmt.Errorf("failed to get list flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s (expected pretty|json)", format)
	}
	if target == "" && find == "" && !list {
		return fmt.Errorf("nothing to do: give a library directory, --find or --list")
	}

	store, err := index.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	if target != "" {
		if err := refreshIndex(cmd, store, target, st); err != nil {
			return err
		}
	}

	var rows []*index.Instrument
	switch {
	case find != "":
		rows, err = store.FindBySample(ctx, find)
	case list:
		rows, err = store.List(ctx)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("index query failed: %w", err)
	}
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	writeInstruments(out, rows)
	return nil
}

// refreshIndex parses the library and brings the store in line with it.
func refreshIndex(cmd *cobra.Command, store *index.Store, dir string, st *settings) error {
	ctx := cmd.Context()
	res, err := parseLibrary(cmd, st, dir, false)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	keep := make([]string, 0, len(res.Files))
	for _, f := range res.Files {
		inst := index.FromSummary(f.Path, f.Summary)
		if err := store.Upsert(ctx, inst); err != nil {
			return fmt.Errorf("%s: %w", f.Path, err)
		}
		keep = append(keep, inst.ID)
	}
	pruned, err := store.Prune(ctx, keep)
	if err != nil {
		return fmt.Errorf("failed to prune index: %w", err)
	}
	if st.timings {
		printTimings(cmd.ErrOrStderr(), "timings (all instruments)", res.Timing)
	}
	if st.quiet {
		return nil
	}
	stats, err := store.Statistics(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s; index holds %d instruments (%d failed), %d regions, %d samples",
		dirSummaryLine(res), stats.Instruments, stats.Failed, stats.Regions, stats.Samples)
	if pruned > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), ", %d removed", pruned)
	}
	fmt.Fprintln(cmd.ErrOrStderr())
	return nil
}

func writeInstruments(w io.Writer, rows []*index.Instrument) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tREGIONS\tKEYS\tDIALECT\tSTATUS")
	for _, r := range rows {
		status := "ok"
		switch {
		case r.Failed:
			status = "failed"
		case r.Warnings > 0:
			status = fmt.Sprintf("%d warnings", r.Warnings)
		}
		dialect := r.Dialect
		if dialect == "" {
			dialect = "-"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", r.Path, r.Regions, keyRange(r.LoKey, r.HiKey), dialect, status)
	}
	_ = tw.Flush()
}

func keyRange(lo, hi int) string {
	if lo < 0 {
		return "-"
	}
	return opcode.NoteName(lo) + ".." + opcode.NoteName(hi)
}
