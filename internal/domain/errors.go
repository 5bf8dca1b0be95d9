// Package domain implements the test generation pipeline: discovery, prompt
// construction, plan parsing and validation, append-only writing, and the
// per-file orchestration that ties them together.
package domain

import (
	"errors"

	"testforge.dev/pkg/testforge/internal/adapter"
)

var (
	// ErrFileNotFound marks a source path that does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrDecode marks source bytes that are not valid UTF-8 text.
	ErrDecode = errors.New("source is not valid UTF-8")
	// ErrMalformedResponse marks oracle text that is not a single JSON object.
	ErrMalformedResponse = errors.New("malformed oracle response")
	// ErrMissingFields marks a plan without test_file_path or test_code.
	ErrMissingFields = errors.New("plan is missing required fields")
	// ErrSyntaxInvalid marks generated code rejected by a syntax checker.
	ErrSyntaxInvalid = errors.New("generated code is syntactically invalid")
	// ErrWrite marks a failure to persist a generated test.
	ErrWrite = errors.New("write generated test")
	// ErrNoReports marks a reports directory without any saved run.
	ErrNoReports = errors.New("no run reports found")

	// ErrOracleUnavailable is the adapter sentinel, re-exported for callers of domain.
	ErrOracleUnavailable = adapter.ErrOracleUnavailable
	// ErrMissingCredential is the adapter sentinel for a missing oracle key.
	ErrMissingCredential = adapter.ErrMissingCredential
)
