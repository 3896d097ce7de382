// Package config loads sfzkit.toml, the per-library settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"sfzkit/internal/dialect"
	"sfzkit/internal/opcode"
)

// FileName is looked up from the working directory upwards.
const FileName = "sfzkit.toml"

type Config struct {
	Parse   ParseConfig   `toml:"parse"`
	Output  OutputConfig  `toml:"output"`
	Opcodes []OpcodeEntry `toml:"opcode"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

type ParseConfig struct {
	Strict         bool              `toml:"strict"`
	MaxDiagnostics int               `toml:"max_diagnostics"`
	IncludeDirs    []string          `toml:"include_dirs"`
	Defines        map[string]string `toml:"defines"`
	// Target is the SFZ revision instruments must stay within (v1|v2|aria|cakewalk).
	Target string `toml:"target"`
}

type OutputConfig struct {
	Format   string `toml:"format"`
	Color    string `toml:"color"`
	PathMode string `toml:"path_mode"`
}

// OpcodeEntry declares a vendor opcode missing from the builtin catalog.
type OpcodeEntry struct {
	Name    string   `toml:"name"`
	Kind    string   `toml:"kind"`
	Min     *float64 `toml:"min"`
	Max     *float64 `toml:"max"`
	Values  []string `toml:"values"`
	Default string   `toml:"default"`
	Unit    string   `toml:"unit"`
}

// Default returns the settings used when no sfzkit.toml exists.
func Default() Config {
	return Config{
		Parse: ParseConfig{MaxDiagnostics: 200},
		Output: OutputConfig{
			Format:   "pretty",
			Color:    "auto",
			PathMode: "auto",
		},
	}
}

// Find walks up from startDir looking for sfzkit.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	dir := filepath.Dir(path)
	for i, inc := range cfg.Parse.IncludeDirs {
		if !filepath.IsAbs(inc) {
			cfg.Parse.IncludeDirs[i] = filepath.Join(dir, filepath.FromSlash(inc))
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the config for startDir. Without a file it
// returns Default.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) Validate() error {
	if c.Parse.MaxDiagnostics <= 0 {
		return fmt.Errorf("[parse].max_diagnostics must be > 0, got %d", c.Parse.MaxDiagnostics)
	}
	switch c.Output.Format {
	case "pretty", "json", "yaml":
	default:
		return fmt.Errorf("[output].format: unknown format %q (expected pretty|json|yaml)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color: expected auto|on|off, got %q", c.Output.Color)
	}
	switch c.Output.PathMode {
	case "auto", "absolute", "relative", "basename":
	default:
		return fmt.Errorf("[output].path_mode: expected auto|absolute|relative|basename, got %q", c.Output.PathMode)
	}
	for name := range c.Parse.Defines {
		if name == "" || strings.HasPrefix(name, "$") {
			return fmt.Errorf("[parse].defines: bad variable name %q (write it without '$')", name)
		}
	}
	if _, err := dialect.ParseKind(c.Parse.Target); err != nil {
		return fmt.Errorf("[parse].target: %w", err)
	}
	_, err := c.Descriptors()
	return err
}

// Descriptors converts the [[opcode]] tables into catalog descriptors.
func (c Config) Descriptors() ([]opcode.Descriptor, error) {
	out := make([]opcode.Descriptor, 0, len(c.Opcodes))
	for i, e := range c.Opcodes {
		kind, err := opcode.ParseKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("[[opcode]] #%d (%s): %w", i+1, e.Name, err)
		}
		d := opcode.Descriptor{
			Name:    strings.ToLower(strings.TrimSpace(e.Name)),
			Kind:    kind,
			Values:  e.Values,
			Default: e.Default,
			Unit:    e.Unit,
			Version: opcode.Vendor,
		}
		switch {
		case e.Min != nil && e.Max != nil:
			if *e.Min > *e.Max {
				return nil, fmt.Errorf("[[opcode]] %s: min %v > max %v", d.Name, *e.Min, *e.Max)
			}
			d.Bounds = opcode.Between(*e.Min, *e.Max)
		case e.Min != nil:
			d.Bounds = opcode.AtLeast(*e.Min)
		case e.Max != nil:
			return nil, fmt.Errorf("[[opcode]] %s: max without min", d.Name)
		}
		out = append(out, d)
	}
	return out, nil
}

// Catalog returns the builtin catalog, extended with [[opcode]] entries.
func (c Config) Catalog() (*opcode.Catalog, error) {
	if len(c.Opcodes) == 0 {
		return opcode.Default(), nil
	}
	extra, err := c.Descriptors()
	if err != nil {
		return nil, err
	}
	return opcode.NewCatalog(extra...)
}
