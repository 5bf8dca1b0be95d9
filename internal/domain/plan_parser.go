package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	m "testforge.dev/pkg/testforge/internal/model"
)

const fenceMarker = "```"

// StripFence removes one surrounding markdown code fence, with or without an
// info string such as "json". Text that is not fenced is returned trimmed.
func StripFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, fenceMarker) {
		return text
	}

	newline := strings.IndexByte(text, '\n')
	if newline < 0 {
		text = strings.TrimSuffix(strings.TrimPrefix(text, fenceMarker), fenceMarker)
		return strings.TrimSpace(strings.TrimLeftFunc(text, isInfoStringRune))
	}

	body := text[newline+1:]
	body = strings.TrimRight(body, " \t\r\n")
	body = strings.TrimSuffix(body, fenceMarker)

	return strings.TrimSpace(body)
}

// isInfoStringRune matches the language tag of a single-line fence such as
// ```json{...}```.
func isInfoStringRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("+-_.", r)
}

// planFields are the keys read from the oracle object. Matching is exact;
// any other spelling is ignored.
var planFields = []string{"language", "framework", "test_file_path", "test_code"}

// ParsePlan decodes raw oracle text into a plan candidate. Missing fields are
// left empty; deciding whether that is acceptable belongs to PlanValidator.
// Any failure wraps ErrMalformedResponse.
func ParsePlan(raw string) (m.GenerationPlan, error) {
	text := StripFence(raw)
	if text == "" {
		return m.GenerationPlan{}, fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}

	if text[0] != '{' {
		return m.GenerationPlan{}, fmt.Errorf("%w: expected a JSON object", ErrMalformedResponse)
	}

	var object map[string]json.RawMessage

	decoder := json.NewDecoder(bytes.NewReader([]byte(text)))
	if err := decoder.Decode(&object); err != nil {
		return m.GenerationPlan{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return m.GenerationPlan{}, fmt.Errorf("%w: trailing data after JSON object", ErrMalformedResponse)
	}

	values := make(map[string]string, len(planFields))

	for _, field := range planFields {
		value, ok := object[field]
		if !ok || string(value) == "null" {
			continue
		}

		var decoded string
		if err := json.Unmarshal(value, &decoded); err != nil {
			return m.GenerationPlan{}, fmt.Errorf("%w: field %s: %w", ErrMalformedResponse, field, err)
		}

		values[field] = decoded
	}

	return m.GenerationPlan{
		Language:     values["language"],
		Framework:    values["framework"],
		TestFilePath: values["test_file_path"],
		TestCode:     values["test_code"],
	}, nil
}
