package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sfzkit/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sfz",
	Short: "SFZ instrument parser and library tools",
	Long: `sfz reads SFZ instrument definitions, resolves the header hierarchy and
reports problems in the opcodes they set`,
	PersistentPreRunE:  setupRun,
	PersistentPostRunE: teardownRun,
	SilenceUsage:       true,
}

// main registers subcommands and persistent flags, then executes the root
// command. Any error exits with status 1.
func main() {
	// Версия для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(flattenCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	registerPersistentFlags(rootCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		// PersistentPostRun не вызывается при ошибке
		dumpRingOnFailure(os.Stderr)
		runCleanups()
		os.Exit(1)
	}
}

func registerPersistentFlags(cmd *cobra.Command) {
	// Глобальные флаги
	pf := cmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 0, "maximum number of diagnostics to keep (0 = from config)")
	pf.String("config", "", "path to sfzkit.toml (default: search upwards from the input)")
	pf.Bool("strict", false, "treat warnings as errors")
	pf.String("target", "", "warn about features newer than this SFZ revision (v1|v2|aria|cakewalk)")
	pf.StringSliceP("include-dir", "I", nil, "extra directory searched by #include")
	pf.StringToStringP("define", "D", nil, "predefine a variable, e.g. -D ROOT=samples")

	// Трассировка
	pf.String("trace", "", "write trace events to file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 4096, "events kept by the ring tracer")

	// Профилирование
	pf.String("cpu-profile", "", "write CPU profile to file")
	pf.String("mem-profile", "", "write heap profile to file on exit")
	pf.String("runtime-trace", "", "write Go runtime trace to file")
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
