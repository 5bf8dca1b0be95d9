package domain_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "testforge.dev/pkg/testforge/internal/adapter/mocks"
	controllermocks "testforge.dev/pkg/testforge/internal/controller/mocks"
	"testforge.dev/pkg/testforge/internal/domain"
	domainmocks "testforge.dev/pkg/testforge/internal/domain/mocks"
	m "testforge.dev/pkg/testforge/internal/model"
)

type workflowMocks struct {
	discovery    *domainmocks.MockDiscovery
	orchestrator *domainmocks.MockOrchestrator
	reportStore  *adaptermocks.MockReportStore
	ui           *controllermocks.MockUI
}

func newWorkflowMocks(t *testing.T) (workflowMocks, domain.Workflow) {
	t.Helper()

	mocks := workflowMocks{
		discovery:    domainmocks.NewMockDiscovery(t),
		orchestrator: domainmocks.NewMockOrchestrator(t),
		reportStore:  adaptermocks.NewMockReportStore(t),
		ui:           controllermocks.NewMockUI(t),
	}

	wf := domain.NewWorkflow(mocks.discovery, mocks.orchestrator, mocks.reportStore, mocks.ui)

	return mocks, wf
}

func (w workflowMocks) expectGenerateUI(paths []m.Path) {
	w.ui.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	w.ui.EXPECT().Close(mock.Anything).Return()
	w.ui.EXPECT().DisplayDiscovered(mock.Anything, paths, mock.Anything).Return()
}

func written(path m.Path, dest string) m.FileOutcome {
	return m.FileOutcome{Source: path, State: m.Written, Plan: &m.GenerationPlan{TestFilePath: dest}}
}

func TestGenerate_ProcessesEveryFileAndSavesReport(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	paths := []m.Path{"a.py", "b.py"}
	args := domain.GenerateArgs{DiscoverArgs: domain.DiscoverArgs{Roots: []m.Path{"."}}, Threads: 2, Reports: ".reports"}

	mocks.discovery.EXPECT().Discover(mock.Anything, args.DiscoverArgs).Return(paths, nil)
	mocks.expectGenerateUI(paths)

	mocks.ui.EXPECT().DisplayStarting(mock.Anything, mock.Anything).Return().Times(2)
	mocks.ui.EXPECT().DisplayOutcome(mock.Anything, mock.Anything).Return().Times(2)

	mocks.orchestrator.EXPECT().Process(mock.Anything, domain.ProcessArgs{Path: "a.py"}).Return(written("a.py", "tests/test_a.py"))
	mocks.orchestrator.EXPECT().Process(mock.Anything, domain.ProcessArgs{Path: "b.py"}).
		Return(m.FileOutcome{Source: "b.py", State: m.Skipped, Reason: m.SkipSyntaxInvalid})

	mocks.reportStore.EXPECT().SaveReport(mock.Anything, m.Path(".reports"), mock.MatchedBy(func(s m.RunSummary) bool {
		return s.RunID != "" && len(s.Outcomes) == 2
	})).Return(m.Path(".reports/run-x.yaml"), nil)

	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything, m.Path(".reports/run-x.yaml")).Return()

	summary, err := wf.Generate(context.Background(), args)
	require.NoError(t, err)

	require.Len(t, summary.Outcomes, 2)
	assert.Equal(t, m.Path("a.py"), summary.Outcomes[0].Source)
	assert.Equal(t, m.Path("b.py"), summary.Outcomes[1].Source)
	assert.Equal(t, 1, summary.Written())
	assert.Equal(t, map[m.SkipReason]int{m.SkipSyntaxInvalid: 1}, summary.SkippedByReason())
	assert.NotEmpty(t, summary.RunID)
}

func TestGenerate_SingleFileMode(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	args := domain.GenerateArgs{DiscoverArgs: domain.DiscoverArgs{File: "src/app.py"}, DryRun: true}

	mocks.discovery.EXPECT().Discover(mock.Anything, args.DiscoverArgs).Return([]m.Path{"src/app.py"}, nil)
	mocks.expectGenerateUI([]m.Path{"src/app.py"})
	mocks.ui.EXPECT().DisplayStarting(mock.Anything, m.Path("src/app.py")).Return()
	mocks.ui.EXPECT().DisplayOutcome(mock.Anything, mock.Anything).Return()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything, m.Path("")).Return()

	mocks.orchestrator.EXPECT().Process(mock.Anything, domain.ProcessArgs{Path: "src/app.py", DryRun: true}).
		Return(written("src/app.py", "tests/test_app.py"))

	summary, err := wf.Generate(context.Background(), args)
	require.NoError(t, err)

	assert.True(t, summary.DryRun)
	assert.Equal(t, 1, summary.Written())
	mocks.reportStore.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerate_DiscoveryErrorAbortsRun(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	discoverErr := errors.New("root path error: stat missing: no such file or directory")

	mocks.discovery.EXPECT().Discover(mock.Anything, mock.Anything).Return(nil, discoverErr)

	_, err := wf.Generate(context.Background(), domain.GenerateArgs{})

	require.ErrorIs(t, err, discoverErr)
	mocks.ui.AssertNotCalled(t, "Start")
}

func TestGenerate_ReportFailureIsRunLevel(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	saveErr := errors.New("read-only file system")

	mocks.discovery.EXPECT().Discover(mock.Anything, mock.Anything).Return([]m.Path{}, nil)
	mocks.expectGenerateUI([]m.Path{})
	mocks.reportStore.EXPECT().SaveReport(mock.Anything, m.Path("out"), mock.Anything).Return(m.Path(""), saveErr)
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything, m.Path("")).Return()

	summary, err := wf.Generate(context.Background(), domain.GenerateArgs{Reports: "out"})

	require.ErrorIs(t, err, saveErr)
	assert.Empty(t, summary.Outcomes)
}

func TestGenerate_CancelledRunSkipsRemainingFiles(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	paths := []m.Path{"a.py", "b.py", "c.py"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mocks.discovery.EXPECT().Discover(mock.Anything, mock.Anything).Return(paths, nil)
	mocks.expectGenerateUI(paths)
	mocks.ui.EXPECT().DisplayOutcome(mock.Anything, mock.Anything).Return().Times(3)
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything, m.Path("")).Return()

	summary, err := wf.Generate(ctx, domain.GenerateArgs{Threads: 2})
	require.NoError(t, err)

	require.Len(t, summary.Outcomes, 3)

	for i, outcome := range summary.Outcomes {
		assert.Equal(t, paths[i], outcome.Source)
		assert.Equal(t, m.SkipCancelled, outcome.Reason)
	}

	mocks.orchestrator.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestGenerate_BoundsConcurrency(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	paths := make([]m.Path, 12)
	for i := range paths {
		paths[i] = m.Path(string(rune('a'+i)) + ".go")
	}

	const threads = 3

	var (
		inFlight atomic.Int32
		peak     atomic.Int32
		mu       sync.Mutex
		seen     = make(map[m.Path]int)
	)

	mocks.discovery.EXPECT().Discover(mock.Anything, mock.Anything).Return(paths, nil)
	mocks.expectGenerateUI(paths)
	mocks.ui.EXPECT().DisplayStarting(mock.Anything, mock.Anything).Return()
	mocks.ui.EXPECT().DisplayOutcome(mock.Anything, mock.Anything).Return()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything, m.Path("")).Return()

	mocks.orchestrator.EXPECT().Process(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, args domain.ProcessArgs) m.FileOutcome {
			current := inFlight.Add(1)
			for {
				old := peak.Load()
				if current <= old || peak.CompareAndSwap(old, current) {
					break
				}
			}

			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)

			mu.Lock()
			seen[args.Path]++
			mu.Unlock()

			return written(args.Path, "t")
		})

	summary, err := wf.Generate(context.Background(), domain.GenerateArgs{Threads: threads})
	require.NoError(t, err)

	assert.Equal(t, len(paths), summary.Written())
	assert.LessOrEqual(t, peak.Load(), int32(threads))
	assert.Len(t, seen, len(paths))

	for i, outcome := range summary.Outcomes {
		assert.Equal(t, paths[i], outcome.Source)
	}
}

func TestList_DisplaysDiscoveredPaths(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	paths := []m.Path{"a.rs", "b.ts"}

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	mocks.ui.EXPECT().Close(mock.Anything).Return()
	mocks.discovery.EXPECT().Discover(mock.Anything, domain.DiscoverArgs{Roots: []m.Path{"src"}}).Return(paths, nil)
	mocks.ui.EXPECT().DisplayList(mock.Anything, paths).Return(nil)

	err := wf.List(context.Background(), domain.ListArgs{DiscoverArgs: domain.DiscoverArgs{Roots: []m.Path{"src"}}})
	require.NoError(t, err)
}

func TestList_DiscoveryError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	discoverErr := errors.New("boom")

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	mocks.ui.EXPECT().Close(mock.Anything).Return()
	mocks.discovery.EXPECT().Discover(mock.Anything, mock.Anything).Return(nil, discoverErr)

	err := wf.List(context.Background(), domain.ListArgs{})
	require.ErrorIs(t, err, discoverErr)
}

func TestGenerate_ReportListsOutcomesByPath(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	paths := []m.Path{"z.py", "a.py"}

	mocks.discovery.EXPECT().Discover(mock.Anything, mock.Anything).Return(paths, nil)
	mocks.expectGenerateUI(paths)
	mocks.ui.EXPECT().DisplayStarting(mock.Anything, mock.Anything).Return()
	mocks.ui.EXPECT().DisplayOutcome(mock.Anything, mock.Anything).Return()
	mocks.orchestrator.EXPECT().Process(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, args domain.ProcessArgs) m.FileOutcome {
			return written(args.Path, "t")
		})

	mocks.reportStore.EXPECT().SaveReport(mock.Anything, m.Path("out"), mock.MatchedBy(func(s m.RunSummary) bool {
		return len(s.Outcomes) == 2 && s.Outcomes[0].Source == "a.py" && s.Outcomes[1].Source == "z.py"
	})).Return(m.Path("out/run-1.yaml"), nil)
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything, m.Path("out/run-1.yaml")).Return()

	_, err := wf.Generate(context.Background(), domain.GenerateArgs{Reports: "out"})
	require.NoError(t, err)
}

func TestView_ShowsMostRecentReport(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	saved := m.RunSummary{RunID: "2", Outcomes: []m.FileOutcome{written("b.py", "t"), written("a.py", "t")}}

	mocks.reportStore.EXPECT().ListReports(mock.Anything, m.Path(".reports")).
		Return([]m.Path{".reports/run-1.yaml", ".reports/run-2.yaml"}, nil)
	mocks.reportStore.EXPECT().LoadReport(mock.Anything, m.Path(".reports/run-2.yaml")).Return(saved, nil)
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	mocks.ui.EXPECT().Close(mock.Anything).Return()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.MatchedBy(func(s m.RunSummary) bool {
		return s.RunID == "2" && s.Outcomes[0].Source == "a.py"
	}), m.Path(".reports/run-2.yaml")).Return()

	require.NoError(t, wf.View(context.Background(), domain.ViewArgs{Reports: ".reports"}))
}

func TestView_ExplicitReportSkipsListing(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.reportStore.EXPECT().LoadReport(mock.Anything, m.Path("old/run-9.yaml")).Return(m.RunSummary{RunID: "9"}, nil)
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	mocks.ui.EXPECT().Close(mock.Anything).Return()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything, m.Path("old/run-9.yaml")).Return()

	require.NoError(t, wf.View(context.Background(), domain.ViewArgs{Reports: ".reports", Report: "old/run-9.yaml"}))
	mocks.reportStore.AssertNotCalled(t, "ListReports", mock.Anything, mock.Anything)
}

func TestView_NoReports(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.reportStore.EXPECT().ListReports(mock.Anything, m.Path(".reports")).Return(nil, nil)

	err := wf.View(context.Background(), domain.ViewArgs{Reports: ".reports"})
	require.ErrorIs(t, err, domain.ErrNoReports)
	mocks.ui.AssertNotCalled(t, "Start")
}

func TestView_LoadError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	loadErr := errors.New("decode report: bad yaml")

	mocks.reportStore.EXPECT().LoadReport(mock.Anything, m.Path("r.yaml")).Return(m.RunSummary{}, loadErr)

	err := wf.View(context.Background(), domain.ViewArgs{Report: "r.yaml"})
	require.ErrorIs(t, err, loadErr)
}
