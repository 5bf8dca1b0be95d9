package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"testforge.dev/pkg/testforge/internal/adapter"
	m "testforge.dev/pkg/testforge/internal/model"
)

// Markers delimiting every appended block.
const (
	StartMarker = "# --- AI-Generated Test ---"
	EndMarker   = "# --- End AI-Generated Test ---"
)

const (
	testDirPerm  = 0o750
	testFilePerm = 0o644
)

// RenderBlock returns the exact bytes appended for code.
func RenderBlock(code string) string {
	return "\n\n" + StartMarker + "\n" + code + "\n" + EndMarker + "\n"
}

// TestWriter persists accepted plans.
type TestWriter interface {
	// Write appends the plan's test block and returns the resolved destination.
	Write(ctx context.Context, plan m.GenerationPlan) (m.Path, error)
	// Resolve returns where Write would put the block for plan.
	Resolve(ctx context.Context, plan m.GenerationPlan) (m.Path, error)
}

type testWriter struct {
	fsAdapter adapter.SourceFSAdapter
	baseDir   m.Path

	mu    sync.Mutex
	locks map[m.Path]*sync.Mutex
}

// NewTestWriter constructs a TestWriter. Relative destinations resolve
// against baseDir, or the working directory when baseDir is empty.
func NewTestWriter(fsAdapter adapter.SourceFSAdapter, baseDir m.Path) TestWriter {
	return &testWriter{
		fsAdapter: fsAdapter,
		baseDir:   baseDir,
		locks:     make(map[m.Path]*sync.Mutex),
	}
}

func (w *testWriter) Resolve(ctx context.Context, plan m.GenerationPlan) (m.Path, error) {
	target := plan.TestFilePath
	if !filepath.IsAbs(target) && w.baseDir != "" {
		target = string(w.fsAdapter.JoinPath(ctx, string(w.baseDir), target))
	}

	abs, err := w.fsAdapter.AbsPath(ctx, m.Path(target))
	if err != nil {
		return "", fmt.Errorf("%w: resolve %s: %w", ErrWrite, plan.TestFilePath, err)
	}

	return abs, nil
}

// Write appends under a lock private to the destination so that two sources
// mapped to the same test file never interleave their blocks.
func (w *testWriter) Write(ctx context.Context, plan m.GenerationPlan) (m.Path, error) {
	dest, err := w.Resolve(ctx, plan)
	if err != nil {
		return "", err
	}

	lock := w.lockFor(dest)
	lock.Lock()
	defer lock.Unlock()

	if err := w.fsAdapter.MkdirAll(ctx, m.Path(filepath.Dir(string(dest))), testDirPerm); err != nil {
		slog.Error("Failed to create test directory", "path", dest, "error", err)
		return "", fmt.Errorf("%w: create directory for %s: %w", ErrWrite, dest, err)
	}

	if err := w.fsAdapter.AppendFile(ctx, dest, []byte(RenderBlock(plan.TestCode)), testFilePerm); err != nil {
		slog.Error("Failed to append generated test", "path", dest, "error", err)
		return "", fmt.Errorf("%w: append to %s: %w", ErrWrite, dest, err)
	}

	slog.Debug("Appended generated test", "path", dest, "bytes", len(plan.TestCode))

	return dest, nil
}

func (w *testWriter) lockFor(dest m.Path) *sync.Mutex {
	w.mu.Lock()
	defer w.mu.Unlock()

	lock, ok := w.locks[dest]
	if !ok {
		lock = &sync.Mutex{}
		w.locks[dest] = lock
	}

	return lock
}
