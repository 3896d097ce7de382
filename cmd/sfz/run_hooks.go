package main

import (
	"github.com/spf13/cobra"
)

var cleanups []func()

// setupRun starts tracing and profiling before any subcommand runs.
func setupRun(cmd *cobra.Command, _ []string) error {
	stopTrace, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	stopProf, err := setupProfiling(cmd)
	if err != nil {
		stopTrace()
		return err
	}
	// профиль останавливаем раньше трассировки
	cleanups = append(cleanups, stopProf, stopTrace)
	return nil
}

func teardownRun(_ *cobra.Command, _ []string) error {
	runCleanups()
	return nil
}

// runCleanups is safe to call more than once.
func runCleanups() {
	pending := cleanups
	cleanups = nil
	for _, fn := range pending {
		fn()
	}
}
