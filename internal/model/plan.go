package model

// GenerationPlan is the structured answer expected from the oracle.
type GenerationPlan struct {
	Language     string `json:"language" yaml:"language"`
	Framework    string `json:"framework" yaml:"framework"`
	TestFilePath string `json:"test_file_path" yaml:"test_file_path" validate:"required"`
	TestCode     string `json:"test_code" yaml:"test_code" validate:"required"`
}

// RejectReason tells why a plan candidate was refused.
type RejectReason string

const (
	// RejectMalformedResponse means the oracle text was not a single JSON object.
	RejectMalformedResponse RejectReason = "malformed-response"
	// RejectMissingFields means test_file_path or test_code was absent or empty.
	RejectMissingFields RejectReason = "missing-fields"
	// RejectSyntaxInvalid means test_code did not parse in the declared language.
	RejectSyntaxInvalid RejectReason = "syntax-invalid"
)

// ValidationOutcome is either Accepted(plan) or Rejected(reason).
// Use Accepted or Rejected to build one; the zero value is a rejection
// without a reason and should not be produced.
type ValidationOutcome struct {
	plan   GenerationPlan
	reason RejectReason
	detail error
}

// Accepted wraps a plan that passed validation.
func Accepted(plan GenerationPlan) ValidationOutcome {
	return ValidationOutcome{plan: plan}
}

// Rejected builds a refusal with its reason and the underlying cause.
func Rejected(reason RejectReason, detail error) ValidationOutcome {
	return ValidationOutcome{reason: reason, detail: detail}
}

// IsAccepted reports whether the outcome carries a plan.
func (v ValidationOutcome) IsAccepted() bool {
	return v.reason == ""
}

// Plan returns the accepted plan. ok is false for rejections.
func (v ValidationOutcome) Plan() (GenerationPlan, bool) {
	if !v.IsAccepted() {
		return GenerationPlan{}, false
	}

	return v.plan, true
}

// Reason returns the rejection reason, empty when accepted.
func (v ValidationOutcome) Reason() RejectReason {
	return v.reason
}

// Err returns the cause of a rejection, nil when accepted.
func (v ValidationOutcome) Err() error {
	return v.detail
}
