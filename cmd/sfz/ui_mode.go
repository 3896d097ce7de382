package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sfzkit/internal/driver"
)

// uiMode is the --ui flag of directory commands.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch mode := uiMode(strings.TrimSpace(strings.ToLower(value))); mode {
	case "":
		return uiModeAuto, nil
	case uiModeAuto, uiModeOn, uiModeOff:
		return mode, nil
	}
	return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// shouldUseTUI: прогресс рисуется в stderr, так что stdout можно
// перенаправить в файл и всё равно видеть его
func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stderr)
	}
}

// parseLibrary runs driver.ParseDir over dir, behind the progress view when
// --ui allows it. plain forces the plain run, e.g. for machine output
// formats that must not share the terminal with the view.
func parseLibrary(cmd *cobra.Command, st *settings, dir string, plain bool) (*driver.DirResult, error) {
	opts, err := dirOptions(cmd, st)
	if err != nil {
		return nil, err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return nil, fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if plain || st.quiet || !shouldUseTUI(mode) {
		return driver.ParseDir(ctx, dir, opts)
	}
	return runParseDirWithUI(ctx, cmd.CommandPath()+" "+dir, dir, opts)
}
