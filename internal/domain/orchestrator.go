package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"testforge.dev/pkg/testforge/internal/adapter"
	m "testforge.dev/pkg/testforge/internal/model"
)

// ProcessArgs selects one source file for the pipeline.
type ProcessArgs struct {
	Path   m.Path
	DryRun bool
}

// Orchestrator drives one source file from Discovered to Written or Skipped.
// It never returns an error: every failure becomes the outcome's reason.
type Orchestrator interface {
	Process(ctx context.Context, args ProcessArgs) m.FileOutcome
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	oracle    adapter.OracleAdapter
	validator PlanValidator
	writer    TestWriter
	previewer Previewer
}

// NewOrchestrator wires the pipeline stages together.
func NewOrchestrator(
	fsAdapter adapter.SourceFSAdapter,
	oracle adapter.OracleAdapter,
	validator PlanValidator,
	writer TestWriter,
	previewer Previewer,
) Orchestrator {
	return &orchestrator{
		fsAdapter: fsAdapter,
		oracle:    oracle,
		validator: validator,
		writer:    writer,
		previewer: previewer,
	}
}

// step records the state reached by a file while it moves through the pipeline.
type step struct {
	outcome m.FileOutcome
	started time.Time
}

func (s *step) advance(state m.FileState) {
	s.outcome.State = state
	slog.Debug("File advanced", "path", s.outcome.Source, "state", state)
}

func (s *step) skip(reason m.SkipReason, err error) m.FileOutcome {
	s.outcome.State = m.Skipped
	s.outcome.Reason = reason
	s.outcome.Err = err
	s.outcome.Duration = time.Since(s.started)

	slog.Warn("Skipping file", "path", s.outcome.Source, "reason", reason, "error", err)

	return s.outcome
}

func (s *step) done() m.FileOutcome {
	s.outcome.Duration = time.Since(s.started)
	return s.outcome
}

func (o *orchestrator) Process(ctx context.Context, args ProcessArgs) m.FileOutcome {
	st := &step{
		outcome: m.FileOutcome{Source: args.Path, State: m.Discovered},
		started: time.Now(),
	}

	content, reason, err := o.readSource(ctx, args.Path)
	if err != nil {
		return st.skip(reason, err)
	}

	st.advance(m.Read)

	prompt := BuildPrompt(args.Path, content)
	st.advance(m.Prompted)

	raw, err := o.oracle.Generate(ctx, prompt)
	if err != nil {
		if ctx.Err() != nil {
			return st.skip(m.SkipCancelled, ctx.Err())
		}

		return st.skip(m.SkipOracleUnavailable, err)
	}

	st.outcome.Raw = raw
	st.advance(m.OracleResponded)

	plan, err := ParsePlan(raw)
	if err != nil {
		slog.Debug("Raw oracle response", "path", args.Path, "raw", raw)
		return st.skip(m.SkipMalformedResponse, err)
	}

	st.advance(m.Parsed)

	verdict := o.validator.Validate(ctx, plan)
	if ctx.Err() != nil {
		return st.skip(m.SkipCancelled, ctx.Err())
	}

	accepted, ok := verdict.Plan()
	if !ok {
		return st.skip(m.SkipReason(verdict.Reason()), verdict.Err())
	}

	st.outcome.Plan = &accepted
	st.advance(m.Validated)

	if args.DryRun {
		return o.preview(ctx, st, accepted)
	}

	if _, err := o.writer.Write(ctx, accepted); err != nil {
		if ctx.Err() != nil {
			return st.skip(m.SkipCancelled, ctx.Err())
		}

		return st.skip(m.SkipWriteError, err)
	}

	st.advance(m.Written)
	slog.Info("Generated test written", "source", args.Path, "test", accepted.TestFilePath)

	return st.done()
}

// preview fills the outcome of a dry run. The plan counts as written so the
// summary reflects what a real run would do.
func (o *orchestrator) preview(ctx context.Context, st *step, plan m.GenerationPlan) m.FileOutcome {
	dest, err := o.writer.Resolve(ctx, plan)
	if err != nil {
		return st.skip(m.SkipWriteError, err)
	}

	diff, err := o.previewer.Preview(ctx, dest, plan)
	if err != nil {
		return st.skip(m.SkipWriteError, fmt.Errorf("%w: %w", ErrWrite, err))
	}

	st.outcome.Preview = diff
	st.advance(m.Written)

	return st.done()
}

func (o *orchestrator) readSource(ctx context.Context, path m.Path) (string, m.SkipReason, error) {
	data, err := o.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		switch {
		case ctx.Err() != nil:
			return "", m.SkipCancelled, ctx.Err()
		case errors.Is(err, fs.ErrNotExist):
			return "", m.SkipFileNotFound, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		default:
			return "", m.SkipReadError, fmt.Errorf("read %s: %w", path, err)
		}
	}

	content, err := DecodeText(data)
	if err != nil {
		return "", m.SkipDecodeError, fmt.Errorf("%s: %w", path, err)
	}

	return content, "", nil
}

// DecodeText decodes strict UTF-8, dropping a leading byte order mark.
func DecodeText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrDecode
	}

	decoded, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return string(decoded), nil
}
