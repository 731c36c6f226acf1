package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

const defaultTerminalWidth = 80

// SimpleUI implements UI with plain text through the cobra command output.
// Progress is a single status line redrawn with a carriage return.
type SimpleUI struct {
	cmd        *cobra.Command
	statusLine bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.statusLine = false

	return nil
}

// Close terminates a pending status line.
func (s *SimpleUI) Close(_ context.Context) {
	s.endStatusLine()
}

// DisplayConfigWarnings prints each skipped configuration line.
func (s *SimpleUI) DisplayConfigWarnings(ctx context.Context, warnings []m.ConfigWarning) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, w := range warnings {
		_, _ = fmt.Fprintln(s.cmd.ErrOrStderr(), w.String())
	}
}

// DisplayEstimation prints the search space table.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, estimation m.Estimation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderEstimationTable(estimation))

	return nil
}

// DisplaySearchInfo announces the search about to start.
func (s *SimpleUI) DisplaySearchInfo(ctx context.Context, sites int, total uint64, threads int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Trying %d combination(s) over %d site(s) with %d worker(s)\n", total, sites, threads)
}

// DisplayProgress redraws the status line.
func (s *SimpleUI) DisplayProgress(_ context.Context, progress m.Progress) {
	line := formatProgress(progress)

	if width := s.width(); len(line) < width {
		line += strings.Repeat(" ", width-len(line))
	}

	s.printf("\r%s", line)
	s.statusLine = true
}

// DisplaySuccess announces a validating combination.
func (s *SimpleUI) DisplaySuccess(_ context.Context, success m.Success) {
	s.endStatusLine()
	s.printf("Success! State: %s\n", formatState(success.State))
	s.printf("%s", formatAssignments(success.Assignments))
}

// DisplayArtifacts reports the files written for a success.
func (s *SimpleUI) DisplayArtifacts(_ context.Context, success m.Success, err error) {
	s.endStatusLine()

	if success.ContainerPath != "" {
		s.printf("Result hqx written to %s\n", success.ContainerPath)
	}

	if success.PayloadPath != "" {
		s.printf("Decoded binary written to %s\n", success.PayloadPath)
	}

	if err != nil {
		_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "failed to save success %d: %v\n", success.Index, err)
	}
}

// DisplaySummary prints the end-of-run summary.
func (s *SimpleUI) DisplaySummary(_ context.Context, summary m.RunSummary, summaryPath m.Path) {
	s.endStatusLine()
	s.printf("%s\n", summaryHeadline(summary))

	if len(summary.Records) > 0 {
		s.printf("\n%s", renderSummaryTable(summary))
	}

	if summaryPath != "" {
		s.printf("Summary written to %s\n", summaryPath)
	}
}

// DisplayFileReport prints the outcome of a decode or encode.
func (s *SimpleUI) DisplayFileReport(_ context.Context, report FileReport) {
	if report.Err != nil {
		_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s: %v\n", report.In, report.Err)
		return
	}

	s.printf("%s -> %s (%q, %d data byte(s), %d resource byte(s))\n",
		report.In, report.Out, report.Name, report.Data, report.Resource)
}

func (s *SimpleUI) endStatusLine() {
	if s.statusLine {
		s.printf("\n")
		s.statusLine = false
	}
}

func (s *SimpleUI) width() int {
	return terminalWidth(s.cmd.OutOrStdout())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}

	return defaultTerminalWidth
}
