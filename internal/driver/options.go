package driver

import (
	"sort"

	"sfzkit/internal/config"
	"sfzkit/internal/dialect"
	"sfzkit/internal/directive"
	"sfzkit/internal/opcode"
)

// Options control one pipeline run.
type Options struct {
	MaxDiagnostics int
	IncludeDirs    []string
	// Defines are visible before the first line of every file, as if each
	// began with #define $NAME value.
	Defines map[string]string
	Catalog *opcode.Catalog
	// Target, when set, warns about headers and opcodes newer than that
	// SFZ revision.
	Target dialect.Kind
	// Strict promotes warnings to errors.
	Strict        bool
	EnableTimings bool
	Observer      PhaseObserver
	Progress      ProgressSink
	// Cache, when set, lets directory runs skip instruments whose files did
	// not change since the last run.
	Cache *DiskCache
	Jobs  int

	label   string // имя файла в событиях прогресса
	baseDir string // относительно чего печатать пути; ParseDir ставит корень библиотеки
}

// FromConfig derives pipeline options from a loaded sfzkit.toml.
func FromConfig(cfg config.Config) (Options, error) {
	cat, err := cfg.Catalog()
	if err != nil {
		return Options{}, err
	}
	target, err := dialect.ParseKind(cfg.Parse.Target)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Target:         target,
		MaxDiagnostics: cfg.Parse.MaxDiagnostics,
		IncludeDirs:    cfg.Parse.IncludeDirs,
		Defines:        cfg.Parse.Defines,
		Catalog:        cat,
		Strict:         cfg.Parse.Strict,
	}, nil
}

func (o *Options) catalog() *opcode.Catalog {
	if o.Catalog == nil {
		return opcode.Default()
	}
	return o.Catalog
}

// predefined returns Defines in name order so runs are deterministic.
func (o *Options) predefined() []directive.Var {
	if len(o.Defines) == 0 {
		return nil
	}
	names := make([]string, 0, len(o.Defines))
	for name := range o.Defines {
		names = append(names, name)
	}
	sort.Strings(names)
	vars := make([]directive.Var, 0, len(names))
	for _, name := range names {
		vars = append(vars, directive.Var{Name: name, Value: o.Defines[name]})
	}
	return vars
}
