package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pmezard/go-difflib/difflib"

	"testforge.dev/pkg/testforge/internal/adapter"
	m "testforge.dev/pkg/testforge/internal/model"
)

// Previewer renders what a write would change without writing. Used for dry runs.
type Previewer interface {
	Preview(ctx context.Context, dest m.Path, plan m.GenerationPlan) (string, error)
}

type diffPreviewer struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewPreviewer constructs a Previewer that diffs the destination against its
// would-be appended state.
func NewPreviewer(fsAdapter adapter.SourceFSAdapter) Previewer {
	return &diffPreviewer{fsAdapter: fsAdapter}
}

func (p *diffPreviewer) Preview(ctx context.Context, dest m.Path, plan m.GenerationPlan) (string, error) {
	current, err := p.fsAdapter.ReadFile(ctx, dest)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read %s: %w", dest, err)
	}

	before := string(current)
	after := before + RenderBlock(plan.TestCode)

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: string(dest),
		ToFile:   string(dest),
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", dest, err)
	}

	return text, nil
}
