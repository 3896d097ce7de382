package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sfzkit/internal/config"
	"sfzkit/internal/opcode"
)

func write(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFull(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, `
[parse]
strict = true
include_dirs = ["shared"]
defines = { ROOT = "samples" }

[output]
format = "json"

[[opcode]]
name = "My_Vendor_Gain"
kind = "float"
min = -12.0
max = 12.0
default = "0"
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Parse.Strict || cfg.Parse.MaxDiagnostics != 200 || cfg.Output.Format != "json" || cfg.Output.Color != "auto" {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.Parse.IncludeDirs) != 1 || cfg.Parse.IncludeDirs[0] != filepath.Join(dir, "shared") {
		t.Errorf("include dirs = %v", cfg.Parse.IncludeDirs)
	}
	if cfg.Parse.Defines["ROOT"] != "samples" {
		t.Errorf("defines = %v", cfg.Parse.Defines)
	}

	cat, err := cfg.Catalog()
	if err != nil {
		t.Fatal(err)
	}
	d, _, ok := cat.Lookup("my_vendor_gain")
	if !ok || d.Kind != opcode.Float || d.Version != opcode.Vendor || !d.Bounds.Contains(12) || d.Bounds.Contains(13) {
		t.Errorf("descriptor = %+v, %v", d, ok)
	}
	if _, _, ok := cat.Lookup("lokey"); !ok {
		t.Error("builtin opcodes lost")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad toml", "[parse\n", "failed to parse TOML"},
		{"unknown key", "[parse]\nstrictt = true\n", "unknown keys: parse.strictt"},
		{"max diagnostics", "[parse]\nmax_diagnostics = 0\n", "max_diagnostics"},
		{"format", "[output]\nformat = \"xml\"\n", "unknown format"},
		{"kind", "[[opcode]]\nname = \"x\"\nkind = \"blob\"\n", "x"},
		{"bounds", "[[opcode]]\nname = \"x\"\nkind = \"int\"\nmin = 5.0\nmax = 1.0\n", "min 5 > max 1"},
		{"define name", "[parse]\ndefines = { \"$X\" = \"1\" }\n", "without '$'"},
		{"target", "[parse]\ntarget = \"sfz3\"\n", "[parse].target"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := write(t, t.TempDir(), tt.body)
			_, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	write(t, root, "[output]\ncolor = \"off\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Color != "off" || cfg.Path != filepath.Join(root, config.FileName) {
		t.Errorf("cfg = %+v", cfg)
	}
}
