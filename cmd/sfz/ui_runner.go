package main

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"sfzkit/internal/driver"
	"sfzkit/internal/ui"
)

type dirOutcome struct {
	result *driver.DirResult
	err    error
}

// runParseDirWithUI runs driver.ParseDir while a Bubble Tea view follows its
// progress events. The view exits once the event channel closes.
func runParseDirWithUI(ctx context.Context, title, dir string, opts driver.Options) (*driver.DirResult, error) {
	paths, err := driver.ListSFZFiles(dir)
	if err != nil {
		return nil, err
	}
	files := make([]string, len(paths))
	for i, p := range paths {
		files[i] = displayRel(dir, p)
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		runOpts := opts
		runOpts.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.ParseDir(ctx, dir, runOpts)
		outcomeCh <- dirOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// если окно закрыли раньше, разбор должен дописать события до конца
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil && ctx.Err() == nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}

// displayRel matches the paths ParseDir puts into its events.
func displayRel(dir, path string) string {
	if rel, err := filepath.Rel(dir, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}
