package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestCommandsDocumented keeps the README in sync with the registered
// subcommands: every command must appear as a level-3 heading.
func TestCommandsDocumented(t *testing.T) {
	content, err := os.ReadFile("../README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	headings := make(map[string]bool)
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 3 {
			var sb strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				sb.Write(line.Value(content))
			}
			headings[strings.TrimSpace(sb.String())] = true
		}
		return ast.WalkContinue, nil
	})

	commands := []interface{ Name() string }{
		&reportCmd{},
		&positionsCmd{},
		&historyCmd{},
	}
	for _, c := range commands {
		if !headings[c.Name()] {
			t.Errorf("command %q is not documented in README.md", c.Name())
		}
	}
}
