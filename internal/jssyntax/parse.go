// Package jssyntax parses JavaScript with tree-sitter and converts the concrete
// syntax tree into a syntax tree the callback-return rule can walk.
package jssyntax

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/AdamBrianBright/callbackreturn/internal/syntax"
)

// ErrSyntax is returned when the source does not parse cleanly.
var ErrSyntax = errors.New("javascript syntax error")

// Extensions are the file extensions handled by Parse.
var Extensions = []string{".js", ".mjs", ".cjs", ".jsx"}

// Parse parses src and converts it. Sources with syntax errors are rejected with ErrSyntax.
func Parse(ctx context.Context, src []byte) (*syntax.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("javascript parse canceled before start: %w", err)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	c := &converter{src: src}
	root := tree.RootNode()
	if root.HasError() {
		if bad := firstError(root); bad != nil {
			return nil, fmt.Errorf("%w at %s near %q", ErrSyntax, c.pos(bad), c.excerpt(bad))
		}
		return nil, ErrSyntax
	}

	return c.program(root), nil
}

// firstError finds the first ERROR or MISSING node in source order.
func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == nodeError || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}

	return nil
}

func (c *converter) excerpt(n *sitter.Node) string {
	const limit = 20
	start, end := c.offset(n.StartByte()), c.offset(n.EndByte())
	if end-start > limit {
		end = start + limit
	}
	if start > len(c.src) || end > len(c.src) {
		return ""
	}

	return string(c.src[start:end])
}

// pos converts a tree-sitter position. Columns count runes so they match what editors show.
func (c *converter) pos(n *sitter.Node) syntax.Pos {
	start := c.offset(n.StartByte())
	point := n.StartPoint()
	row, _ := safecast.Conv[int](point.Row)
	col, _ := safecast.Conv[int](point.Column)

	lineStart := start - col
	if lineStart < 0 || start > len(c.src) {
		return syntax.Pos{Offset: start, Line: row + 1, Column: col + 1}
	}

	return syntax.Pos{
		Offset: start,
		Line:   row + 1,
		Column: utf8.RuneCount(c.src[lineStart:start]) + 1,
	}
}

func (c *converter) offset(b uint32) int {
	off, err := safecast.Conv[int](b)
	if err != nil {
		return len(c.src)
	}
	return off
}
