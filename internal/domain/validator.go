package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"testforge.dev/pkg/testforge/internal/adapter"
	m "testforge.dev/pkg/testforge/internal/model"
)

// PlanValidator decides whether a parsed plan may be written.
type PlanValidator interface {
	Validate(ctx context.Context, plan m.GenerationPlan) m.ValidationOutcome
}

type planValidator struct {
	syntax adapter.SyntaxAdapter
	schema *validator.Validate
}

// NewPlanValidator constructs a PlanValidator that looks up syntax checkers in syntax.
func NewPlanValidator(syntax adapter.SyntaxAdapter) PlanValidator {
	return &planValidator{
		syntax: syntax,
		schema: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks required fields first, then syntax when the declared
// language has a checker. Languages without one pass on the schema alone.
func (v *planValidator) Validate(ctx context.Context, plan m.GenerationPlan) m.ValidationOutcome {
	if err := v.checkSchema(plan); err != nil {
		return m.Rejected(m.RejectMissingFields, err)
	}

	checker, ok := v.syntax.Checker(plan.Language)
	if !ok {
		slog.Debug("No syntax checker, accepting on schema", "language", plan.Language)
		return m.Accepted(plan)
	}

	if err := checker(ctx, plan.TestCode); err != nil {
		return m.Rejected(m.RejectSyntaxInvalid, fmt.Errorf("%w: %w", ErrSyntaxInvalid, err))
	}

	return m.Accepted(plan)
}

// checkSchema validates a whitespace-trimmed copy so that blank values count
// as missing. The plan itself is never altered.
func (v *planValidator) checkSchema(plan m.GenerationPlan) error {
	trimmed := m.GenerationPlan{
		Language:     strings.TrimSpace(plan.Language),
		Framework:    strings.TrimSpace(plan.Framework),
		TestFilePath: strings.TrimSpace(plan.TestFilePath),
		TestCode:     strings.TrimSpace(plan.TestCode),
	}

	if err := v.schema.Struct(trimmed); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	return nil
}
