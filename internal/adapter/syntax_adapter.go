package adapter

import (
	"context"
	"errors"
	"sort"
	"strings"
)

// ErrSyntax is wrapped by every checker failure caused by the code itself.
var ErrSyntax = errors.New("syntax error")

// SyntaxChecker reports whether code parses in one language grammar.
type SyntaxChecker func(ctx context.Context, code string) error

// SyntaxAdapter is a capability lookup from a language identifier to the
// checker able to parse it. A missing entry means the language is not
// checked, which is not an error.
type SyntaxAdapter interface {
	Checker(language string) (SyntaxChecker, bool)
	Languages() []string
}

// languageAliases maps the labels an oracle tends to return onto canonical ids.
var languageAliases = map[string]string{
	"py":         "python",
	"python3":    "python",
	"golang":     "go",
	"js":         "javascript",
	"node":       "javascript",
	"nodejs":     "javascript",
	"ts":         "typescript",
	"rs":         "rust",
	"java":       "java",
	"python":     "python",
	"go":         "go",
	"javascript": "javascript",
	"typescript": "typescript",
	"rust":       "rust",
}

// NormalizeLanguage lower-cases label and resolves known aliases.
func NormalizeLanguage(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	if canonical, ok := languageAliases[key]; ok {
		return canonical
	}

	return key
}

// LocalSyntaxAdapter holds the checkers compiled into the binary.
type LocalSyntaxAdapter struct {
	checkers map[string]SyntaxChecker
}

// NewLocalSyntaxAdapter registers the Go parser and the tree-sitter grammars.
func NewLocalSyntaxAdapter() *LocalSyntaxAdapter {
	checkers := map[string]SyntaxChecker{
		"go": CheckGoSyntax,
	}

	for language := range treeSitterLanguages {
		checkers[language] = newTreeSitterChecker(language)
	}

	return &LocalSyntaxAdapter{checkers: checkers}
}

// Checker returns the checker registered for language.
func (a *LocalSyntaxAdapter) Checker(language string) (SyntaxChecker, bool) {
	checker, ok := a.checkers[NormalizeLanguage(language)]
	return checker, ok
}

// Languages lists the canonical ids that have a checker, sorted.
func (a *LocalSyntaxAdapter) Languages() []string {
	languages := make([]string, 0, len(a.checkers))
	for language := range a.checkers {
		languages = append(languages, language)
	}

	sort.Strings(languages)

	return languages
}
