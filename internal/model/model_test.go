package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathExt(t *testing.T) {
	assert.Equal(t, ".py", Path("src/app.py").Ext())
	assert.Equal(t, ".gz", Path("a.tar.gz").Ext())
	assert.Equal(t, "", Path("Makefile").Ext())
}

func TestSourceFileLanguageHint(t *testing.T) {
	assert.Equal(t, "ts", NewSourceFile("web/index.ts", "").LanguageHint())
	assert.Equal(t, "", NewSourceFile("LICENSE", "").LanguageHint())
}

func TestGenerationPlanJSONFieldNames(t *testing.T) {
	var plan GenerationPlan

	require.NoError(t, json.Unmarshal([]byte(`{"language":"go","framework":"testing","test_file_path":"a_test.go","test_code":"package a"}`), &plan))

	assert.Equal(t, GenerationPlan{Language: "go", Framework: "testing", TestFilePath: "a_test.go", TestCode: "package a"}, plan)
}

func TestValidationOutcome(t *testing.T) {
	plan := GenerationPlan{TestFilePath: "t.py", TestCode: "x"}

	accepted := Accepted(plan)
	assert.True(t, accepted.IsAccepted())
	assert.Empty(t, accepted.Reason())
	require.NoError(t, accepted.Err())

	got, ok := accepted.Plan()
	assert.True(t, ok)
	assert.Equal(t, plan, got)

	cause := errors.New("missing test_code")
	rejected := Rejected(RejectMissingFields, cause)
	assert.False(t, rejected.IsAccepted())
	assert.Equal(t, RejectMissingFields, rejected.Reason())
	assert.Equal(t, cause, rejected.Err())

	_, ok = rejected.Plan()
	assert.False(t, ok)
}

func TestFileState(t *testing.T) {
	assert.Equal(t, "oracle-responded", OracleResponded.String())
	assert.Equal(t, "unknown", FileState(42).String())

	assert.True(t, Written.IsTerminal())
	assert.True(t, Skipped.IsTerminal())
	assert.False(t, Validated.IsTerminal())
}

func TestSkipReasonsMirrorRejectReasons(t *testing.T) {
	assert.Equal(t, "malformed-response", string(SkipMalformedResponse))
	assert.Equal(t, "missing-fields", string(SkipMissingFields))
	assert.Equal(t, "syntax-invalid", string(SkipSyntaxInvalid))
}

func TestRunSummaryCounts(t *testing.T) {
	summary := RunSummary{Outcomes: []FileOutcome{
		{Source: "c.py", State: Written},
		{Source: "a.py", State: Skipped, Reason: SkipMissingFields},
		{Source: "b.py", State: Skipped, Reason: SkipMissingFields},
		{Source: "d.py", State: Skipped, Reason: SkipOracleUnavailable},
	}}

	assert.Equal(t, 1, summary.Written())
	assert.Equal(t, map[SkipReason]int{SkipMissingFields: 2, SkipOracleUnavailable: 1}, summary.SkippedByReason())

	summary.SortOutcomes()

	var order []Path
	for _, outcome := range summary.Outcomes {
		order = append(order, outcome.Source)
	}

	assert.Equal(t, []Path{"a.py", "b.py", "c.py", "d.py"}, order)
}
