package adapter

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

var treeSitterLanguages = map[string]func() *sitter.Language{
	"python":     python.GetLanguage,
	"javascript": javascript.GetLanguage,
	"typescript": typescript.GetLanguage,
	"java":       java.GetLanguage,
	"rust":       rust.GetLanguage,
}

// newTreeSitterChecker returns a checker for language. Parsers are not safe
// for concurrent use, so each call builds its own.
func newTreeSitterChecker(language string) SyntaxChecker {
	grammar := treeSitterLanguages[language]

	return func(ctx context.Context, code string) error {
		parser := sitter.NewParser()
		defer parser.Close()

		parser.SetLanguage(grammar())

		tree, err := parser.ParseCtx(ctx, nil, []byte(code))
		if err != nil {
			return fmt.Errorf("%s parse: %w", language, err)
		}
		defer tree.Close()

		root := tree.RootNode()
		if !root.HasError() {
			return nil
		}

		if node := firstErrorNode(root); node != nil {
			point := node.StartPoint()
			return fmt.Errorf("%w: %s: line %d, column %d", ErrSyntax, language, point.Row+1, point.Column+1)
		}

		return fmt.Errorf("%w: %s", ErrSyntax, language)
	}
}

func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil || !child.HasError() && !child.IsMissing() {
			continue
		}

		if found := firstErrorNode(child); found != nil {
			return found
		}
	}

	return nil
}
