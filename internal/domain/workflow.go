package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"hqxbrute.dev/pkg/hqxbrute/internal/adapter"
	"hqxbrute.dev/pkg/hqxbrute/internal/controller"
	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

// EstimateArgs names the container and its site configuration.
type EstimateArgs struct {
	Hqx    m.Path
	Config m.Path
}

// BruteforceArgs contains the arguments for a brute-force search.
type BruteforceArgs struct {
	EstimateArgs
	Output         m.Path
	Threads        int
	ReportEvery    uint64
	ReportInterval time.Duration
	// Interrupt is handed to an interactive UI so the operator can stop
	// the search.
	Interrupt func()
}

// DecodeArgs contains the arguments for decoding a container.
type DecodeArgs struct {
	In  m.Path
	Out m.Path
}

// EncodeArgs contains the arguments for encoding a file.
type EncodeArgs struct {
	In         m.Path
	Out        m.Path
	LineEnding string
}

// WatchArgs contains the arguments for watching a container.
type WatchArgs = DecodeArgs

// Workflow defines the operations behind every command.
type Workflow interface {
	Estimate(ctx context.Context, args EstimateArgs) error
	Bruteforce(ctx context.Context, args BruteforceArgs) error
	Decode(ctx context.Context, args DecodeArgs) error
	Encode(ctx context.Context, args EncodeArgs) error
	Watch(ctx context.Context, args WatchArgs) error
}

type workflow struct {
	adapter.FileAdapter
	adapter.SiteConfigLoader
	adapter.Codec
	adapter.ResultStore
	adapter.Watcher
	controller.UI
	Orchestrator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	files adapter.FileAdapter,
	loader adapter.SiteConfigLoader,
	codec adapter.Codec,
	store adapter.ResultStore,
	watcher adapter.Watcher,
	ui controller.UI,
	orchestrator Orchestrator,
) Workflow {
	return &workflow{
		FileAdapter:      files,
		SiteConfigLoader: loader,
		Codec:            codec,
		ResultStore:      store,
		Watcher:          watcher,
		UI:               ui,
		Orchestrator:     orchestrator,
	}
}

func (w *workflow) Estimate(ctx context.Context, args EstimateArgs) error {
	if err := w.Start(ctx, controller.WithEstimateMode()); err != nil {
		return fmt.Errorf("start UI: %w", err)
	}
	defer w.Close(ctx)

	buf, sites, err := w.load(ctx, args)
	if err != nil {
		return err
	}

	offsets, err := ResolveSiteOffsets(buf, sites)
	if err != nil {
		return err
	}

	enum, err := NewEnumerator(sites.Sizes())
	if err != nil {
		return err
	}

	total, err := enum.Total()
	if err != nil {
		return err
	}

	estimation := m.Estimation{Rows: make([]m.SiteEstimate, len(sites)), Total: total}
	for i, site := range sites {
		estimation.Rows[i] = m.SiteEstimate{Site: site, Offset: offsets[i], Current: buf[offsets[i]]}
	}

	if err := w.DisplayEstimation(ctx, estimation); err != nil {
		return fmt.Errorf("display estimation: %w", err)
	}

	return nil
}

func (w *workflow) Bruteforce(ctx context.Context, args BruteforceArgs) error {
	if err := w.Start(ctx, controller.WithSearchMode(), controller.WithInterrupt(args.Interrupt)); err != nil {
		return fmt.Errorf("start UI: %w", err)
	}
	defer w.Close(ctx)

	buf, sites, err := w.load(ctx, args.EstimateArgs)
	if err != nil {
		return err
	}

	summary, err := w.Search(ctx, SearchArgs{
		Buffer:         buf,
		Sites:          sites,
		Output:         args.Output,
		Threads:        args.Threads,
		ReportEvery:    args.ReportEvery,
		ReportInterval: args.ReportInterval,
	})
	if err != nil && !errors.Is(err, ErrInterrupted) {
		return err
	}

	summary.Hqx = args.Hqx
	summary.Config = args.Config

	// The summary is written for interrupted runs too.
	saveCtx := context.WithoutCancel(ctx)

	summaryPath, saveErr := w.SaveSummary(saveCtx, args.Output, summary)
	if saveErr != nil {
		slog.Error("Failed to save run summary", "error", saveErr)
	}

	w.DisplaySummary(saveCtx, summary, summaryPath)

	return err
}

// load reads the container and its sites, reporting every skipped
// configuration line.
func (w *workflow) load(ctx context.Context, args EstimateArgs) ([]byte, m.Sites, error) {
	buf, err := w.ReadFile(ctx, args.Hqx)
	if err != nil {
		return nil, nil, fmt.Errorf("read container: %w", err)
	}

	sites, warnings, err := w.LoadSites(ctx, args.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("load sites: %w", err)
	}

	for _, warning := range warnings {
		slog.Warn("Skipped configuration line", "path", warning.Path, "line", warning.Line, "text", warning.Text, "reason", warning.Reason)
	}

	if len(warnings) > 0 {
		w.DisplayConfigWarnings(ctx, warnings)
	}

	slog.Debug("Loaded sites", "path", args.Config, "sites", len(sites), "skipped", len(warnings))

	return buf, sites, nil
}

func (w *workflow) Decode(ctx context.Context, args DecodeArgs) error {
	if err := w.Start(ctx, controller.WithFileMode()); err != nil {
		return fmt.Errorf("start UI: %w", err)
	}
	defer w.Close(ctx)

	report := w.decode(ctx, args)
	w.DisplayFileReport(ctx, report)

	return report.Err
}

func (w *workflow) decode(ctx context.Context, args DecodeArgs) controller.FileReport {
	report := controller.FileReport{In: args.In, Out: args.Out}

	content, err := w.ReadFile(ctx, args.In)
	if err != nil {
		report.Err = fmt.Errorf("read container: %w", err)
		return report
	}

	f, err := w.DecodeFile(ctx, content)
	if err != nil {
		report.Err = fmt.Errorf("decode %s: %w", args.In, err)
		return report
	}

	report.Name = f.Name
	report.Data = len(f.Data)
	report.Resource = len(f.Resource)

	if err := w.WriteFileAtomic(ctx, args.Out, f.Data, 0o644); err != nil {
		report.Err = fmt.Errorf("write data fork: %w", err)
		return report
	}

	if len(f.Resource) > 0 {
		if err := w.WriteFileAtomic(ctx, args.Out+".rsrc", f.Resource, 0o644); err != nil {
			report.Err = fmt.Errorf("write resource fork: %w", err)
			return report
		}
	}

	slog.Info("Decoded container", "in", args.In, "out", args.Out, "name", f.Name, "data", len(f.Data), "resource", len(f.Resource))

	return report
}

func (w *workflow) Encode(ctx context.Context, args EncodeArgs) error {
	if err := w.Start(ctx, controller.WithFileMode()); err != nil {
		return fmt.Errorf("start UI: %w", err)
	}
	defer w.Close(ctx)

	report := controller.FileReport{In: args.In, Out: args.Out, Name: filepath.Base(string(args.In))}

	report.Err = w.encode(ctx, args, &report)
	w.DisplayFileReport(ctx, report)

	return report.Err
}

func (w *workflow) encode(ctx context.Context, args EncodeArgs, report *controller.FileReport) error {
	data, err := w.ReadFile(ctx, args.In)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	report.Data = len(data)

	content, err := w.EncodeFile(ctx, report.Name, data, args.LineEnding)
	if err != nil {
		return fmt.Errorf("encode %s: %w", args.In, err)
	}

	if err := w.WriteFileAtomic(ctx, args.Out, content, 0o644); err != nil {
		return fmt.Errorf("write container: %w", err)
	}

	slog.Info("Encoded file", "in", args.In, "out", args.Out, "bytes", len(content))

	return nil
}

func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	if err := w.Start(ctx, controller.WithFileMode()); err != nil {
		return fmt.Errorf("start UI: %w", err)
	}
	defer w.Close(ctx)

	// A container that does not decode yet is expected while it is being
	// edited, so decode failures are only reported.
	refresh := func() {
		w.DisplayFileReport(ctx, w.decode(ctx, args))
	}

	refresh()

	if err := w.WatchFile(ctx, args.In, refresh); err != nil {
		return fmt.Errorf("watch %s: %w", args.In, err)
	}

	return nil
}
