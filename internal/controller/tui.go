package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

const (
	maxRecentSuccesses = 8
	progressBarWidth   = 48
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI with a Bubble Tea program during searches. Estimation
// and file reports are printed directly.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the interactive program in search mode.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	if cfg.mode != ModeSearch {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	program := tea.NewProgram(
		newSearchModel(cfg.interrupt),
		tea.WithOutput(t.output),
		tea.WithoutSignalHandler(),
	)
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("TUI program failed", "error", err)
		}
	}()

	t.program = program
	t.done = done

	return nil
}

// Close stops the interactive program and waits for it to restore the
// terminal.
func (t *TUI) Close(_ context.Context) {
	t.stop()
}

func (t *TUI) stop() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// DisplayConfigWarnings prints the skipped configuration lines.
func (t *TUI) DisplayConfigWarnings(ctx context.Context, warnings []m.ConfigWarning) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, w := range warnings {
		t.send(noticeMsg(errorStyle.Render(w.String())))
	}

	t.mu.Lock()
	running := t.program != nil
	t.mu.Unlock()

	if !running {
		for _, w := range warnings {
			_, _ = fmt.Fprintln(t.output, errorStyle.Render(w.String()))
		}
	}
}

// DisplayEstimation prints the search space table.
func (t *TUI) DisplayEstimation(ctx context.Context, estimation m.Estimation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(t.output, "%s\n\n%s", titleStyle.Render("hqxbrute search space"), renderEstimationTable(estimation))

	return err
}

// DisplaySearchInfo shows the size of the search.
func (t *TUI) DisplaySearchInfo(_ context.Context, sites int, total uint64, threads int) {
	t.send(infoMsg(fmt.Sprintf("%d combination(s) over %d site(s), %d worker(s)", total, sites, threads)))
}

// DisplayProgress updates the progress bar.
func (t *TUI) DisplayProgress(_ context.Context, p m.Progress) {
	t.send(progressMsg(p))
}

// DisplaySuccess adds a success to the list.
func (t *TUI) DisplaySuccess(_ context.Context, success m.Success) {
	t.send(successMsg(success))
}

// DisplayArtifacts reports where a success was written.
func (t *TUI) DisplayArtifacts(_ context.Context, success m.Success, err error) {
	if err != nil {
		t.send(noticeMsg(errorStyle.Render(fmt.Sprintf("success %d: %v", success.Index, err))))
	}

	if success.ContainerPath != "" {
		t.send(noticeMsg(faintStyle.Render(fmt.Sprintf("success %d written to %s", success.Index, success.ContainerPath))))
	}
}

// DisplaySummary stops the program and prints the summary below it.
func (t *TUI) DisplaySummary(_ context.Context, summary m.RunSummary, summaryPath m.Path) {
	t.stop()

	var b strings.Builder

	b.WriteString(titleStyle.Render(summaryHeadline(summary)))
	b.WriteString("\n")

	if len(summary.Records) > 0 {
		b.WriteString("\n")
		b.WriteString(renderSummaryTable(summary))
	}

	if summaryPath != "" {
		fmt.Fprintf(&b, "Summary written to %s\n", summaryPath)
	}

	_, _ = fmt.Fprint(t.output, b.String())
}

// DisplayFileReport prints the outcome of a decode or encode.
func (t *TUI) DisplayFileReport(_ context.Context, report FileReport) {
	if report.Err != nil {
		_, _ = fmt.Fprintln(t.output, errorStyle.Render(fmt.Sprintf("%s: %v", report.In, report.Err)))
		return
	}

	_, _ = fmt.Fprintln(t.output, successStyle.Render(fmt.Sprintf("%s -> %s", report.In, report.Out))+
		faintStyle.Render(fmt.Sprintf(" (%q, %d data byte(s), %d resource byte(s))", report.Name, report.Data, report.Resource)))
}

type (
	progressMsg m.Progress
	successMsg  m.Success
	infoMsg     string
	noticeMsg   string
)

// searchModel is the Bubble Tea model shown while a search runs.
type searchModel struct {
	bar       progress.Model
	progress  m.Progress
	info      string
	notices   []string
	successes []m.Success
	found     uint64
	stopping  bool
	interrupt func()
}

func newSearchModel(interrupt func()) searchModel {
	return searchModel{
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressBarWidth)),
		interrupt: interrupt,
	}
}

func (sm searchModel) Init() tea.Cmd {
	return nil
}

func (sm searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > progressBarWidth {
			width = progressBarWidth
		}

		if width > 0 {
			sm.bar.Width = width
		}

		return sm, nil

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)

	case progressMsg:
		sm.progress = m.Progress(msg)
		return sm, nil

	case infoMsg:
		sm.info = string(msg)
		return sm, nil

	case noticeMsg:
		sm.notices = appendBounded(sm.notices, string(msg))
		return sm, nil

	case successMsg:
		sm.found++
		sm.successes = append(sm.successes, m.Success(msg))

		if len(sm.successes) > maxRecentSuccesses {
			sm.successes = sm.successes[len(sm.successes)-maxRecentSuccesses:]
		}

		return sm, nil
	}

	return sm, nil
}

func (sm searchModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		if !sm.stopping && sm.interrupt != nil {
			sm.interrupt()
		}

		sm.stopping = true
	}

	return sm, nil
}

func (sm searchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("hqxbrute"))

	if sm.info != "" {
		b.WriteString("  " + faintStyle.Render(sm.info))
	}

	b.WriteString("\n\n")

	percent := 0.0
	if sm.progress.Total > 0 {
		percent = float64(sm.progress.Done) / float64(sm.progress.Total)
	}

	b.WriteString(sm.bar.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(formatProgress(sm.progress))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s\n", successStyle.Render(fmt.Sprintf("Successes: %d", sm.found)))

	for _, s := range sm.successes {
		parts := make([]string, len(s.Assignments))
		for i, a := range s.Assignments {
			parts[i] = a.String()
		}

		fmt.Fprintf(&b, "  #%d trial %d  %s\n", s.Index, s.Trial, strings.Join(parts, "  "))
	}

	for _, n := range sm.notices {
		b.WriteString(n + "\n")
	}

	b.WriteString("\n")

	if sm.stopping {
		b.WriteString(errorStyle.Render("Stopping after the current combination..."))
	} else {
		b.WriteString(faintStyle.Render("q/ctrl+c: stop"))
	}

	b.WriteString("\n")

	return b.String()
}

func appendBounded(lines []string, line string) []string {
	lines = append(lines, line)
	if len(lines) > maxRecentSuccesses {
		lines = lines[len(lines)-maxRecentSuccesses:]
	}

	return lines
}
