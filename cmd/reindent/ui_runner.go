package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"reindent/internal/driver"
	"reindent/internal/ui"
)

type fixOutcome struct {
	results []driver.FixResult
	err     error
}

// runFixWithUI runs driver.FixPaths while a progress model renders its events.
func runFixWithUI(ctx context.Context, title string, paths []string, opts driver.Options) ([]driver.FixResult, error) {
	files, err := driver.CollectFiles(ctx, paths, opts.Config)
	if err != nil {
		return nil, err
	}
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan fixOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.FixPaths(ctx, paths, optsCopy)
		outcomeCh <- fixOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// the model may quit early; keep the workers from blocking on a full channel
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
