package model

import (
	"sort"
	"time"
)

// FileState is the position of one source file in the generation pipeline.
type FileState int

const (
	// Discovered means the file was selected for generation.
	Discovered FileState = iota
	// Read means the content was loaded and decoded.
	Read
	// Prompted means the oracle request was built.
	Prompted
	// OracleResponded means the oracle returned text.
	OracleResponded
	// Parsed means the text decoded into a plan candidate.
	Parsed
	// Validated means the candidate was accepted.
	Validated
	// Written means the test block was appended to its destination.
	Written
	// Skipped means the file left the pipeline early. See SkipReason.
	Skipped
)

func (s FileState) String() string {
	switch s {
	case Discovered:
		return "discovered"
	case Read:
		return "read"
	case Prompted:
		return "prompted"
	case OracleResponded:
		return "oracle-responded"
	case Parsed:
		return "parsed"
	case Validated:
		return "validated"
	case Written:
		return "written"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transition is possible.
func (s FileState) IsTerminal() bool {
	return s == Written || s == Skipped
}

// SkipReason explains a Skipped outcome.
type SkipReason string

// Skip reasons.
const (
	SkipFileNotFound      SkipReason = "file-not-found"
	SkipReadError         SkipReason = "read-error"
	SkipDecodeError       SkipReason = "decode-error"
	SkipOracleUnavailable SkipReason = "oracle-unavailable"
	SkipMalformedResponse SkipReason = SkipReason(RejectMalformedResponse)
	SkipMissingFields     SkipReason = SkipReason(RejectMissingFields)
	SkipSyntaxInvalid     SkipReason = SkipReason(RejectSyntaxInvalid)
	SkipWriteError        SkipReason = "write-error"
	SkipCancelled         SkipReason = "cancelled"
)

// FileOutcome is the final record for one source file.
type FileOutcome struct {
	Source   Path
	State    FileState
	Reason   SkipReason
	Plan     *GenerationPlan
	Preview  string // unified diff of the block when running dry
	Raw      string // oracle text, kept for diagnostics only
	Err      error
	Duration time.Duration
}

// Succeeded reports whether the outcome reached Written.
func (o FileOutcome) Succeeded() bool {
	return o.State == Written
}

// RunSummary aggregates the outcomes of one run.
type RunSummary struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	DryRun    bool
	Outcomes  []FileOutcome
}

// Written returns the number of files whose test was persisted.
func (r RunSummary) Written() int {
	count := 0

	for _, outcome := range r.Outcomes {
		if outcome.Succeeded() {
			count++
		}
	}

	return count
}

// SkippedByReason counts skipped files per reason.
func (r RunSummary) SkippedByReason() map[SkipReason]int {
	counts := make(map[SkipReason]int)

	for _, outcome := range r.Outcomes {
		if outcome.State == Skipped {
			counts[outcome.Reason]++
		}
	}

	return counts
}

// SortOutcomes orders outcomes by source path.
func (r *RunSummary) SortOutcomes() {
	sort.SliceStable(r.Outcomes, func(i, j int) bool {
		return r.Outcomes[i].Source < r.Outcomes[j].Source
	})
}
