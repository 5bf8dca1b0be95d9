package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"testforge.dev/pkg/testforge/internal/adapter"
	"testforge.dev/pkg/testforge/internal/controller"
	m "testforge.dev/pkg/testforge/internal/model"
)

// GenerateArgs contains the arguments for a generation run.
type GenerateArgs struct {
	DiscoverArgs
	Threads int
	DryRun  bool
	Reports m.Path
}

// ListArgs contains the arguments for listing discovered sources.
type ListArgs struct {
	DiscoverArgs
}

// ViewArgs selects a saved run report. An empty Report picks the most
// recent one under Reports.
type ViewArgs struct {
	Reports m.Path
	Report  m.Path
}

// Workflow defines the top-level operations exposed to the CLI.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) (m.RunSummary, error)
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	Discovery
	Orchestrator
	adapter.ReportStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	discovery Discovery,
	orchestrator Orchestrator,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		Discovery:    discovery,
		Orchestrator: orchestrator,
		ReportStore:  reportStore,
		UI:           ui,
	}
}

// Generate runs the pipeline over every discovered file. Per-file failures
// end up in the summary; the returned error is reserved for failures of the
// run itself.
func (w *workflow) Generate(ctx context.Context, args GenerateArgs) (m.RunSummary, error) {
	summary := m.RunSummary{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		DryRun:    args.DryRun,
	}

	paths, err := w.Discover(ctx, args.DiscoverArgs)
	if err != nil {
		slog.Error("Discovery failed", "error", err)
		return summary, fmt.Errorf("discover sources: %w", err)
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	if err := w.Start(ctx, controller.WithGenerateMode(), controller.WithDryRun(args.DryRun)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return summary, err
	}
	defer w.Close(ctx)

	w.DisplayDiscovered(ctx, paths, threads)

	summary.Outcomes = w.processAll(ctx, paths, threads, args.DryRun)
	summary.Duration = time.Since(summary.StartedAt)
	summary.SortOutcomes()

	slog.Info("Generation finished", "run", summary.RunID, "files", len(paths), "written", summary.Written(), "skipped", summary.SkippedByReason())

	var reportPath m.Path

	if args.Reports != "" {
		reportPath, err = w.SaveReport(ctx, args.Reports, summary)
		if err != nil {
			slog.Error("Failed to save report", "dir", args.Reports, "error", err)
			w.DisplaySummary(ctx, summary, "")

			return summary, fmt.Errorf("save report: %w", err)
		}
	}

	w.DisplaySummary(ctx, summary, reportPath)

	return summary, nil
}

// processAll fans files out to a bounded pool. Each worker owns its slot in
// the result slice, so no lock is needed to collect outcomes.
func (w *workflow) processAll(ctx context.Context, paths []m.Path, threads int, dryRun bool) []m.FileOutcome {
	outcomes := make([]m.FileOutcome, len(paths))

	var group errgroup.Group
	group.SetLimit(threads)

	for i, path := range paths {
		group.Go(func() error {
			if ctx.Err() != nil {
				outcomes[i] = m.FileOutcome{Source: path, State: m.Skipped, Reason: m.SkipCancelled, Err: ctx.Err()}
				w.DisplayOutcome(ctx, outcomes[i])

				return nil
			}

			w.DisplayStarting(ctx, path)

			outcomes[i] = w.Process(ctx, ProcessArgs{Path: path, DryRun: dryRun})
			w.DisplayOutcome(ctx, outcomes[i])

			return nil
		})
	}

	_ = group.Wait()

	return outcomes
}

// List shows what a scan would select without calling the oracle.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	paths, err := w.Discover(ctx, args.DiscoverArgs)
	if err != nil {
		slog.Error("Discovery failed", "error", err)
		return fmt.Errorf("discover sources: %w", err)
	}

	if err := w.DisplayList(ctx, paths); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// View renders a previously saved run report.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	path := args.Report

	if path == "" {
		reports, err := w.ListReports(ctx, args.Reports)
		if err != nil {
			return fmt.Errorf("list reports: %w", err)
		}

		if len(reports) == 0 {
			return fmt.Errorf("%w in %s", ErrNoReports, args.Reports)
		}

		path = reports[len(reports)-1]
	}

	summary, err := w.LoadReport(ctx, path)
	if err != nil {
		slog.Error("Failed to load report", "path", path, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	summary.SortOutcomes()

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	w.DisplaySummary(ctx, summary, path)

	return nil
}
