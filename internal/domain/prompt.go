package domain

import (
	"strings"

	m "testforge.dev/pkg/testforge/internal/model"
)

const promptPreamble = `You are an expert software engineer specializing in automated testing for all programming languages.

Analyze the provided source code and generate a comprehensive, context-aware unit test.

Return ONLY a single valid JSON object with exactly these four string fields and nothing else:
{
  "language": "<identified_language>",
  "framework": "<identified_test_framework>",
  "test_file_path": "<conventional_test_file_path>",
  "test_code": "<the_full_generated_test_code_as_a_string>"
}

Example:
{
  "language": "python",
  "framework": "pytest",
  "test_file_path": "tests/test_data_processor.py",
  "test_code": "def test_average_of_empty_list():\n    with pytest.raises(ZeroDivisionError):\n        calculate_average([])"
}
`

// BuildPrompt renders the oracle request for one source file. The content is
// embedded verbatim inside a fence tagged with the file extension; the fence
// is made longer than any backtick run in the content so it stays unambiguous.
func BuildPrompt(path m.Path, content string) string {
	source := m.NewSourceFile(path, content)
	fence := strings.Repeat("`", longestBacktickRun(content)+1)

	if len(fence) < 3 {
		fence = "```"
	}

	var b strings.Builder

	b.Grow(len(promptPreamble) + len(content) + len(path) + 64)
	b.WriteString(promptPreamble)
	b.WriteString("\nSource File Path: `")
	b.WriteString(string(path))
	b.WriteString("`\nSource Code:\n")
	b.WriteString(fence)
	b.WriteString(source.LanguageHint())
	b.WriteString("\n")
	b.WriteString(content)

	if !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}

	b.WriteString(fence)
	b.WriteString("\n")

	return b.String()
}

func longestBacktickRun(s string) int {
	longest, current := 0, 0

	for i := 0; i < len(s); i++ {
		if s[i] != '`' {
			current = 0
			continue
		}

		current++
		if current > longest {
			longest = current
		}
	}

	return longest
}
