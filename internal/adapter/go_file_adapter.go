package adapter

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"strings"
)

// CheckGoSyntax parses code as a Go file. Generated tests often omit the
// package clause, so a snippet without one is retried inside a synthetic
// package before being rejected.
func CheckGoSyntax(ctx context.Context, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fileSet := token.NewFileSet()

	_, err := parser.ParseFile(fileSet, "generated_test.go", code, parser.AllErrors)
	if err == nil {
		return nil
	}

	if !hasPackageClause(code) {
		_, err = parser.ParseFile(fileSet, "generated_test.go", "package generated\n"+code, parser.AllErrors)
		if err == nil {
			return nil
		}
	}

	return fmt.Errorf("%w: go: %w", ErrSyntax, err)
}

func hasPackageClause(code string) bool {
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}

		return strings.HasPrefix(trimmed, "package ")
	}

	return false
}
