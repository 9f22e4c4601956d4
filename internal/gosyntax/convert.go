// Package gosyntax converts Go syntax trees into the tree walked by the callback-return rule,
// so the same placement checks run over Go code where callbacks are plain func values.
package gosyntax

import (
	"go/ast"
	"go/token"
	"reflect"
	"strings"

	"github.com/AdamBrianBright/callbackreturn/internal/syntax"
)

// Convert converts one parsed file. Positions are resolved through fset.
func Convert(fset *token.FileSet, file *ast.File) *syntax.Program {
	c := &converter{fset: fset}
	prog := &syntax.Program{Pos: c.pos(file.Package)}
	for _, decl := range file.Decls {
		if n := c.convert(decl); n != nil {
			prog.Body = append(prog.Body, n)
		}
	}

	return prog
}

type converter struct {
	fset *token.FileSet
}

func (c *converter) pos(p token.Pos) syntax.Pos {
	if !p.IsValid() {
		return syntax.Pos{}
	}
	position := c.fset.Position(p)

	return syntax.Pos{Offset: position.Offset, Line: position.Line, Column: position.Column}
}

// convert maps one node. It returns nil for nil input (typed or not) and comments.
func (c *converter) convert(n ast.Node) syntax.Node {
	if isNil(n) {
		return nil
	}

	switch n := n.(type) {
	case *ast.Comment, *ast.CommentGroup:
		return nil
	case *ast.FuncDecl:
		kind := syntax.FuncDeclaration
		if n.Recv != nil {
			kind = syntax.FuncMethod
		}
		return c.function(n.Pos(), n.Name.Name, kind, n.Type, n.Body)
	case *ast.FuncLit:
		return c.function(n.Pos(), "", syntax.FuncExpression, n.Type, n.Body)
	case *ast.BlockStmt:
		return c.block(n)
	case *ast.ExprStmt:
		return &syntax.ExprStmt{Pos: c.pos(n.Pos()), X: c.convert(n.X)}
	case *ast.ReturnStmt:
		return &syntax.Return{Pos: c.pos(n.Pos()), Results: c.list(n.Results)}
	case *ast.IfStmt:
		return &syntax.If{
			Pos:  c.pos(n.Pos()),
			Init: c.convert(n.Init),
			Cond: c.convert(n.Cond),
			Then: c.convert(n.Body),
			Else: c.convert(n.Else),
		}
	case *ast.SwitchStmt:
		return c.switchStmt(n.Pos(), n.Body, n.Init, n.Tag)
	case *ast.TypeSwitchStmt:
		return c.switchStmt(n.Pos(), n.Body, n.Init, n.Assign)
	case *ast.SelectStmt:
		return c.switchStmt(n.Pos(), n.Body)
	case *ast.ForStmt:
		return &syntax.Loop{
			Pos:    c.pos(n.Pos()),
			Header: c.nodes(n.Init, n.Cond, n.Post),
			Body:   c.convert(n.Body),
		}
	case *ast.RangeStmt:
		return &syntax.Loop{
			Pos:    c.pos(n.Pos()),
			Header: c.nodes(n.Key, n.Value, n.X),
			Body:   c.convert(n.Body),
		}
	case *ast.LabeledStmt:
		// The label does not change where the statement sits.
		return c.convert(n.Stmt)
	case *ast.DeferStmt:
		// A deferred call runs when the function returns, so it is not a call site itself.
		return &syntax.Other{
			Pos:      c.pos(n.Pos()),
			Type:     "DeferStmt",
			Children: append(c.nodes(n.Call.Fun), c.list(n.Call.Args)...),
		}
	case *ast.CallExpr:
		return &syntax.Call{Pos: c.pos(n.Pos()), Fun: c.convert(n.Fun), Args: c.list(n.Args)}
	case *ast.Ident:
		return &syntax.Ident{Pos: c.pos(n.Pos()), Name: n.Name}
	case *ast.SelectorExpr:
		return &syntax.Member{Pos: c.pos(n.Pos()), X: c.convert(n.X), Sel: c.convert(n.Sel)}
	case *ast.ParenExpr:
		return c.convert(n.X)
	case *ast.BinaryExpr:
		if n.Op == token.LAND || n.Op == token.LOR {
			return &syntax.Logical{
				Pos: c.pos(n.Pos()),
				Op:  n.Op.String(),
				X:   c.convert(n.X),
				Y:   c.convert(n.Y),
			}
		}
	}

	return &syntax.Other{Pos: c.pos(n.Pos()), Type: typeName(n), Children: c.children(n)}
}

func (c *converter) function(pos token.Pos, name string, kind syntax.FuncKind, typ *ast.FuncType, body *ast.BlockStmt) *syntax.Function {
	fn := &syntax.Function{Pos: c.pos(pos), Name: name, Func: kind}
	if typ != nil && typ.Params != nil {
		for _, field := range typ.Params.List {
			fn.Params = append(fn.Params, c.convert(field))
		}
	}
	// External declarations have no body.
	if body != nil {
		fn.Body = c.block(body)
	}

	return fn
}

func (c *converter) block(n *ast.BlockStmt) *syntax.Block {
	return &syntax.Block{Pos: c.pos(n.Pos()), List: c.stmts(n.List)}
}

func (c *converter) switchStmt(pos token.Pos, body *ast.BlockStmt, tag ...ast.Node) *syntax.Switch {
	sw := &syntax.Switch{Pos: c.pos(pos), Tag: c.nodes(tag...)}
	for _, stmt := range body.List {
		switch clause := stmt.(type) {
		case *ast.CaseClause:
			sw.Cases = append(sw.Cases, &syntax.Case{
				Pos:    c.pos(clause.Pos()),
				Values: c.list(clause.List),
				Body:   c.stmts(clause.Body),
			})
		case *ast.CommClause:
			sw.Cases = append(sw.Cases, &syntax.Case{
				Pos:    c.pos(clause.Pos()),
				Values: c.nodes(clause.Comm),
				Body:   c.stmts(clause.Body),
			})
		}
	}

	return sw
}

// stmts converts a statement list. Empty statements are dropped so that `callback();;` still
// counts as the last statement.
func (c *converter) stmts(list []ast.Stmt) []syntax.Node {
	var out []syntax.Node
	for _, stmt := range list {
		if _, ok := stmt.(*ast.EmptyStmt); ok {
			continue
		}
		if n := c.convert(stmt); n != nil {
			out = append(out, n)
		}
	}

	return out
}

func (c *converter) list(exprs []ast.Expr) []syntax.Node {
	var out []syntax.Node
	for _, expr := range exprs {
		if n := c.convert(expr); n != nil {
			out = append(out, n)
		}
	}

	return out
}

func (c *converter) nodes(nodes ...ast.Node) []syntax.Node {
	var out []syntax.Node
	for _, node := range nodes {
		if n := c.convert(node); n != nil {
			out = append(out, n)
		}
	}

	return out
}

// children converts the direct children of n in source order.
func (c *converter) children(n ast.Node) []syntax.Node {
	var out []syntax.Node
	ast.Inspect(n, func(child ast.Node) bool {
		if child == nil {
			return false
		}
		if child == n {
			return true
		}
		if conv := c.convert(child); conv != nil {
			out = append(out, conv)
		}
		return false
	})

	return out
}

func typeName(n ast.Node) string {
	return strings.TrimPrefix(reflect.TypeOf(n).String(), "*ast.")
}

// isNil reports whether n is nil or an interface holding a nil pointer.
func isNil(n ast.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
