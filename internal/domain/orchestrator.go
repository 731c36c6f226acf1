package domain

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"hqxbrute.dev/pkg/hqxbrute/internal/adapter"
	"hqxbrute.dev/pkg/hqxbrute/internal/controller"
	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
	"hqxbrute.dev/pkg/hqxbrute/pkg"
)

// SearchArgs describes one brute-force search.
type SearchArgs struct {
	Buffer         []byte
	Sites          m.Sites
	Output         m.Path
	Threads        int
	ReportEvery    uint64
	ReportInterval time.Duration
}

// Orchestrator runs the mutate, validate and persist loop over every
// combination of a site list.
type Orchestrator interface {
	// Search visits every combination and returns the run summary. Setup
	// failures (ErrMalformedBuffer, ErrSearchSpaceOverflow) are returned
	// before any trial; an interrupted run returns its partial summary and
	// an error wrapping ErrInterrupted.
	Search(ctx context.Context, args SearchArgs) (m.RunSummary, error)
}

type orchestrator struct {
	codec    adapter.Codec
	store    adapter.ResultStore
	ui       controller.UI
	now      func() time.Time
	spillDir string
}

// OrchestratorOption customises an orchestrator.
type OrchestratorOption func(*orchestrator)

// WithClock replaces time.Now, for deterministic progress sampling.
func WithClock(now func() time.Time) OrchestratorOption {
	return func(o *orchestrator) {
		o.now = now
	}
}

// WithSpillDir sets where success records are spilled during a run.
func WithSpillDir(dir string) OrchestratorOption {
	return func(o *orchestrator) {
		o.spillDir = dir
	}
}

// NewOrchestrator constructs an Orchestrator validating with codec,
// persisting with store and reporting through ui.
func NewOrchestrator(codec adapter.Codec, store adapter.ResultStore, ui controller.UI, options ...OrchestratorOption) Orchestrator {
	o := &orchestrator{
		codec: codec,
		store: store,
		ui:    ui,
		now:   time.Now,
	}

	for _, opt := range options {
		opt(o)
	}

	return o
}

// searchRun is the state of one search, owned by Search.
type searchRun struct {
	*orchestrator

	args    SearchArgs
	mutator *Mutator
	enum    *Enumerator
	total   uint64
	sampler *progressSampler
	records pkg.FileSpill[m.Success]

	done      atomic.Uint64
	successes atomic.Uint64
	uiMu      sync.Mutex
}

func (o *orchestrator) Search(ctx context.Context, args SearchArgs) (m.RunSummary, error) {
	run, err := o.prepare(args)
	if err != nil {
		return m.RunSummary{}, err
	}

	defer func() {
		if err := run.records.Close(); err != nil {
			slog.Warn("Failed to close success records", "error", err)
		}
	}()

	threads := run.workers()

	slog.Info("Starting search", "sites", len(args.Sites), "total", run.total, "threads", threads)
	run.ui.DisplaySearchInfo(ctx, len(args.Sites), run.total, threads)
	run.ui.DisplayProgress(ctx, m.Progress{Total: run.total})

	if threads == 1 {
		run.sequential(ctx)
	} else {
		run.parallel(ctx, threads)
	}

	summary, err := run.summary(ctx)
	if err != nil {
		return summary, err
	}

	if summary.Interrupted {
		slog.Info("Search interrupted", "done", summary.Done, "total", summary.Total, "successes", summary.Successes)
		return summary, fmt.Errorf("%w after %d of %d combinations", ErrInterrupted, summary.Done, summary.Total)
	}

	slog.Info("Search completed", "total", summary.Total, "successes", summary.Successes, "elapsed", summary.Elapsed)

	return summary, nil
}

// prepare performs every check that must fail before the first trial.
func (o *orchestrator) prepare(args SearchArgs) (*searchRun, error) {
	mutator, err := NewMutator(args.Buffer, args.Sites)
	if err != nil {
		slog.Error("Failed to resolve sites", "error", err)
		return nil, err
	}

	enum, err := NewEnumerator(args.Sites.Sizes())
	if err != nil {
		return nil, err
	}

	total, err := enum.Total()
	if err != nil {
		slog.Error("Search space too large", "error", err)
		return nil, err
	}

	records, err := pkg.NewFileSpill[m.Success](o.spillDir)
	if err != nil {
		return nil, fmt.Errorf("create success records: %w", err)
	}

	every := args.ReportEvery
	if every == 0 {
		every = DefaultReportEvery
	}

	return &searchRun{
		orchestrator: o,
		args:         args,
		mutator:      mutator,
		enum:         enum,
		total:        total,
		sampler:      newProgressSampler(every, args.ReportInterval, o.now),
		records:      records,
	}, nil
}

func (r *searchRun) workers() int {
	threads := r.args.Threads
	if threads < 1 {
		threads = 1
	}

	if uint64(threads) > r.total {
		threads = int(r.total)
	}

	return threads
}

func (r *searchRun) sequential(ctx context.Context) {
	for index, state := range r.enum.All() {
		if ctx.Err() != nil {
			return
		}

		r.trial(ctx, r.mutator, index, state)
	}
}

// parallel splits the trial space into contiguous chunks, one per worker.
// Every worker owns a private copy of the buffer.
func (r *searchRun) parallel(ctx context.Context, threads int) {
	var group errgroup.Group

	for worker := range threads {
		start, end := shardRange(r.total, threads, worker)
		mutator := r.mutator.Clone()

		group.Go(func() error {
			slog.Debug("Worker started", "worker", worker, "start", start, "end", end)

			for index, state := range r.enum.Range(start, end) {
				if ctx.Err() != nil {
					return nil
				}

				r.trial(ctx, mutator, index, state)
			}

			return nil
		})
	}

	_ = group.Wait()
}

// trial runs one combination: mutate, validate, persist on success and
// count progress.
func (r *searchRun) trial(ctx context.Context, mutator *Mutator, index uint64, state m.State) {
	decoded := r.codec.Validate(mutator.Apply(state))
	if decoded.Valid {
		r.recordSuccess(ctx, mutator, index, state, decoded)
	}

	done := r.done.Add(1)
	if r.sampler.sampled(done) {
		r.reportProgress(ctx, done)
	}
}

func (r *searchRun) recordSuccess(ctx context.Context, mutator *Mutator, index uint64, state m.State, decoded m.Decoded) {
	n := r.successes.Add(1)
	success := m.Success{
		Index:       n,
		Trial:       index + 1,
		State:       state.Clone(),
		Assignments: mutator.Assignments(state),
		Name:        decoded.Name,
	}

	slog.Info("Combination validated", "success", n, "trial", success.Trial, "state", success.State, "name", success.Name)
	r.withUI(func() { r.ui.DisplaySuccess(ctx, success) })

	// Result files are written even when the run is being interrupted.
	artifacts, err := r.store.SaveSuccess(context.WithoutCancel(ctx), r.args.Output, n, decoded.Name, mutator.Snapshot(), decoded.Payload)
	success.ContainerPath = artifacts.Container
	success.PayloadPath = artifacts.Payload

	if err != nil {
		slog.Error("Failed to persist success", "success", n, "error", err)
	}

	r.withUI(func() { r.ui.DisplayArtifacts(ctx, success, err) })

	if err := r.records.Append(success); err != nil {
		slog.Error("Failed to record success", "success", n, "error", err)
	}
}

func (r *searchRun) reportProgress(ctx context.Context, done uint64) {
	r.withUI(func() {
		if !r.sampler.due() {
			return
		}

		r.ui.DisplayProgress(ctx, m.Progress{Done: done, Total: r.total, Elapsed: r.sampler.elapsed()})
	})
}

func (r *searchRun) withUI(fn func()) {
	r.uiMu.Lock()
	defer r.uiMu.Unlock()

	fn()
}

func (r *searchRun) summary(ctx context.Context) (m.RunSummary, error) {
	done := r.done.Load()
	elapsed := r.sampler.elapsed()

	r.ui.DisplayProgress(context.WithoutCancel(ctx), m.Progress{Done: done, Total: r.total, Elapsed: elapsed})

	summary := m.RunSummary{
		Sites:       len(r.args.Sites),
		Total:       r.total,
		Done:        done,
		Successes:   r.successes.Load(),
		Elapsed:     elapsed,
		Interrupted: done < r.total,
	}

	err := r.records.Range(func(_ uint64, success m.Success) error {
		summary.Records = append(summary.Records, success)
		return nil
	})
	if err != nil {
		return summary, fmt.Errorf("read success records: %w", err)
	}

	// Parallel workers spill records in completion order.
	slices.SortFunc(summary.Records, func(a, b m.Success) int {
		return cmp.Compare(a.Index, b.Index)
	})

	return summary, nil
}
