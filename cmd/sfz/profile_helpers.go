package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"sfzkit/internal/prof"
)

// setupProfiling starts the profiles named by --cpu-profile, --mem-profile
// and --runtime-trace. The returned stop function may be called repeatedly.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	pf := cmd.Root().PersistentFlags()
	var cfg prof.Config
	for _, f := range []struct {
		flag string
		dst  *string
	}{
		{"cpu-profile", &cfg.CPU},
		{"mem-profile", &cfg.Mem},
		{"runtime-trace", &cfg.Trace},
	} {
		v, err := pf.GetString(f.flag)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", f.flag, err)
		}
		*f.dst = v
	}
	if cfg == (prof.Config{}) {
		return func() {}, nil
	}

	session, err := prof.Start(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to start profiling: %w", err)
	}
	return sync.OnceFunc(func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "profiling: %v\n", err)
		}
	}), nil
}
