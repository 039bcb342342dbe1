package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Be-ing/sixtyfps/internal/trace"
)

// tracing is the tracer of one command run.
type tracing struct {
	tracer trace.Tracer
	ring   *trace.RingTracer
	format trace.Format
}

// setupTracing reads the trace flags, attaches the tracer to the command
// context and returns the state needed for cleanup.
func setupTracing(cmd *cobra.Command) (*tracing, error) {
	flags := cmd.Root().PersistentFlags()
	output, err := flags.GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	// --trace alone means phase level
	if level == trace.LevelOff && output != "" {
		level = trace.LevelPhase
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}

	tracer, ring, err := trace.New(trace.Config{Level: level, Format: format, Path: output})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))
	return &tracing{tracer: tracer, ring: ring, format: format}, nil
}

// close flushes the tracer. When the run failed the ring is dumped to
// stderr so the last events before the failure are visible.
func (t *tracing) close(cmd *cobra.Command, failed bool) {
	if t == nil {
		return
	}
	if failed && t.ring != nil {
		fmt.Fprintln(os.Stderr, "trace: last events")
		if err := t.ring.Dump(os.Stderr, t.format); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
		}
	}
	if err := t.tracer.Close(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
	}
}
