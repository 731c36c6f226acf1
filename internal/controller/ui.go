// Package controller renders search progress and results to the terminal.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEstimate StartMode = iota
	ModeSearch
	ModeFile
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode      StartMode
	interrupt func()
}

// WithEstimateMode sets the UI to estimation mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithSearchMode sets the UI to search mode.
func WithSearchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSearch
	}
}

// WithFileMode sets the UI to single-file decode/encode mode.
func WithFileMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeFile
	}
}

// WithInterrupt registers the function an interactive UI calls when the
// operator asks to stop.
func WithInterrupt(interrupt func()) StartOption {
	return func(c *StartConfig) {
		c.interrupt = interrupt
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeSearch}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// FileReport describes one decode or encode of a file.
type FileReport struct {
	In       m.Path
	Out      m.Path
	Name     string
	Data     int
	Resource int
	Err      error
}

// UI defines how the workflow talks to the operator.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayConfigWarnings(ctx context.Context, warnings []m.ConfigWarning)
	DisplayEstimation(ctx context.Context, estimation m.Estimation) error
	DisplaySearchInfo(ctx context.Context, sites int, total uint64, threads int)
	DisplayProgress(ctx context.Context, progress m.Progress)
	DisplaySuccess(ctx context.Context, success m.Success)
	DisplayArtifacts(ctx context.Context, success m.Success, err error)
	DisplaySummary(ctx context.Context, summary m.RunSummary, summaryPath m.Path)
	DisplayFileReport(ctx context.Context, report FileReport)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewUI returns the interactive TUI when interactive is true, otherwise a
// SimpleUI printing through cmd.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}
