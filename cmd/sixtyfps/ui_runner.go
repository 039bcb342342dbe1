package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Be-ing/sixtyfps/internal/driver"
	"github.com/Be-ing/sixtyfps/internal/ui"
)

type resolveOutcome struct {
	result *driver.Result
	err    error
}

// runResolveWithUI runs the driver in the background while a progress
// view renders its events on stderr.
func runResolveWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*driver.Result, error) {
	events := make(chan ui.Event, 256)
	outcomeCh := make(chan resolveOutcome, 1)

	go func() {
		opts.Progress = ui.ChannelSink(events)
		res, err := driver.Resolve(ctx, files, opts)
		outcomeCh <- resolveOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// the view may have quit early; keep the driver from blocking
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
