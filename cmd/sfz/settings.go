package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sfzkit/internal/config"
	"sfzkit/internal/diagfmt"
	"sfzkit/internal/dialect"
	"sfzkit/internal/driver"
)

// settings is sfzkit.toml merged with the command line. Flags win over the
// file, the file wins over built-in defaults.
type settings struct {
	cfg      config.Config
	opts     driver.Options
	color    string // auto|on|off
	pathMode diagfmt.PathMode
	format   string // формат вывода по умолчанию из [output]
	quiet    bool
	timings  bool
}

// loadSettings reads the config that applies to target (a file or directory)
// and overlays the persistent flags.
func loadSettings(cmd *cobra.Command, target string) (*settings, error) {
	pf := cmd.Root().PersistentFlags()

	configPath, err := pf.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.Discover(searchDir(target))
	}
	if err != nil {
		return nil, err
	}

	opts, err := driver.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Path, err)
	}
	st := &settings{
		cfg:    cfg,
		opts:   opts,
		color:  cfg.Output.Color,
		format: cfg.Output.Format,
	}
	st.pathMode, err = diagfmt.ParsePathMode(cfg.Output.PathMode)
	if err != nil {
		return nil, err
	}

	if pf.Changed("color") {
		if st.color, err = pf.GetString("color"); err != nil {
			return nil, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if err := checkColorMode(st.color); err != nil {
		return nil, err
	}
	if st.quiet, err = pf.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if st.timings, err = pf.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	st.opts.EnableTimings = st.timings

	maxDiagnostics, err := pf.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxDiagnostics > 0 {
		st.opts.MaxDiagnostics = maxDiagnostics
	}

	strict, err := pf.GetBool("strict")
	if err != nil {
		return nil, fmt.Errorf("failed to get strict flag: %w", err)
	}
	st.opts.Strict = st.opts.Strict || strict

	if f := pf.Lookup("target"); f != nil && f.Changed {
		if st.opts.Target, err = dialect.ParseKind(f.Value.String()); err != nil {
			return nil, err
		}
	}

	includeDirs, err := pf.GetStringSlice("include-dir")
	if err != nil {
		return nil, fmt.Errorf("failed to get include-dir flag: %w", err)
	}
	// флаги идут первыми: их каталоги просматриваются раньше конфиговых
	st.opts.IncludeDirs = append(append([]string(nil), includeDirs...), st.opts.IncludeDirs...)

	defines, err := pf.GetStringToString("define")
	if err != nil {
		return nil, fmt.Errorf("failed to get define flag: %w", err)
	}
	st.opts.Defines = mergeDefines(st.opts.Defines, defines)
	return st, nil
}

// mergeDefines returns base overlaid with over. Names are accepted with or
// without the leading '$'.
func mergeDefines(base, over map[string]string) map[string]string {
	if len(base) == 0 && len(over) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(over))
	for k, v := range base {
		out[strings.TrimPrefix(k, "$")] = v
	}
	for k, v := range over {
		out[strings.TrimPrefix(k, "$")] = v
	}
	return out
}

func searchDir(target string) string {
	if target == "" {
		return "."
	}
	if st, err := os.Stat(target); err == nil && st.IsDir() {
		return target
	}
	return filepath.Dir(target)
}

func checkColorMode(mode string) error {
	switch mode {
	case "auto", "on", "off":
		return nil
	}
	return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
}

// useColor decides colouring for one output stream.
func (s *settings) useColor(f *os.File) bool {
	return s.color == "on" || (s.color == "auto" && isTerminal(f))
}

// useColorFor is useColor for writers that may not be files.
func (s *settings) useColorFor(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return s.useColor(f)
	}
	return s.color == "on"
}

// outputFormat returns the --format flag of cmd, or the config default when
// the flag was not given and the config value is one cmd accepts.
func (s *settings) outputFormat(cmd *cobra.Command, allowed ...string) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	if !cmd.Flags().Changed("format") && s.format != "" {
		for _, a := range allowed {
			if a == s.format {
				format = s.format
				break
			}
		}
	}
	for _, a := range allowed {
		if a == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown format: %s (expected %s)", format, strings.Join(allowed, "|"))
}
