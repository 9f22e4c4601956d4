package jssyntax

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/AdamBrianBright/callbackreturn/internal/syntax"
)

// tree-sitter-javascript node types.
const (
	nodeError                   = "ERROR"
	nodeComment                 = "comment"
	nodeFunctionDeclaration     = "function_declaration"
	nodeGeneratorDeclaration    = "generator_function_declaration"
	nodeFunction                = "function"
	nodeFunctionExpression      = "function_expression"
	nodeGeneratorFunction       = "generator_function"
	nodeArrowFunction           = "arrow_function"
	nodeMethodDefinition        = "method_definition"
	nodeStatementBlock          = "statement_block"
	nodeExpressionStatement     = "expression_statement"
	nodeReturnStatement         = "return_statement"
	nodeIfStatement             = "if_statement"
	nodeElseClause              = "else_clause"
	nodeSwitchStatement         = "switch_statement"
	nodeSwitchCase              = "switch_case"
	nodeSwitchDefault           = "switch_default"
	nodeForStatement            = "for_statement"
	nodeForInStatement          = "for_in_statement"
	nodeWhileStatement          = "while_statement"
	nodeDoStatement             = "do_statement"
	nodeCallExpression          = "call_expression"
	nodeIdentifier              = "identifier"
	nodeMemberExpression        = "member_expression"
	nodeSubscriptExpression     = "subscript_expression"
	nodeParenthesizedExpression = "parenthesized_expression"
	nodeBinaryExpression        = "binary_expression"
)

var logicalOperators = map[string]bool{
	"&&": true,
	"||": true,
	"??": true,
}

type converter struct {
	src []byte
}

func (c *converter) program(n *sitter.Node) *syntax.Program {
	return &syntax.Program{
		Pos:  c.pos(n),
		Body: c.children(n),
	}
}

// children converts the named children of n, skipping comments.
func (c *converter) children(n *sitter.Node) []syntax.Node {
	return c.childrenExcept(n)
}

// childrenExcept converts the named children of n that are not comments and
// not one of skip.
func (c *converter) childrenExcept(n *sitter.Node, skip ...*sitter.Node) []syntax.Node {
	var out []syntax.Node
	for _, child := range namedChildren(n) {
		if containsNode(skip, child) {
			continue
		}
		if conv := c.convert(child); conv != nil {
			out = append(out, conv)
		}
	}

	return out
}

// convert maps one tree-sitter node. It returns nil only for nil input and comments.
func (c *converter) convert(n *sitter.Node) syntax.Node {
	if n == nil || n.IsNull() || n.Type() == nodeComment {
		return nil
	}

	switch n.Type() {
	case nodeFunctionDeclaration, nodeGeneratorDeclaration:
		return c.function(n, syntax.FuncDeclaration)
	case nodeFunction, nodeFunctionExpression, nodeGeneratorFunction:
		return c.function(n, syntax.FuncExpression)
	case nodeArrowFunction:
		return c.function(n, syntax.FuncArrow)
	case nodeMethodDefinition:
		return c.function(n, syntax.FuncMethod)
	case nodeStatementBlock:
		return &syntax.Block{Pos: c.pos(n), List: c.children(n)}
	case nodeExpressionStatement:
		return &syntax.ExprStmt{Pos: c.pos(n), X: c.first(n)}
	case nodeReturnStatement:
		return &syntax.Return{Pos: c.pos(n), Results: c.children(n)}
	case nodeIfStatement:
		return c.ifStatement(n)
	case nodeSwitchStatement:
		return c.switchStatement(n)
	case nodeForStatement, nodeForInStatement, nodeWhileStatement, nodeDoStatement:
		body := n.ChildByFieldName("body")
		return &syntax.Loop{
			Pos:    c.pos(n),
			Header: c.childrenExcept(n, body),
			Body:   c.convert(body),
		}
	case nodeCallExpression:
		args := n.ChildByFieldName("arguments")
		call := &syntax.Call{Pos: c.pos(n), Fun: c.convert(n.ChildByFieldName("function"))}
		if args != nil {
			call.Args = c.children(args)
		}
		return call
	case nodeIdentifier:
		return &syntax.Ident{Pos: c.pos(n), Name: n.Content(c.src)}
	case nodeMemberExpression:
		return &syntax.Member{
			Pos: c.pos(n),
			X:   c.convert(n.ChildByFieldName("object")),
			Sel: c.convert(n.ChildByFieldName("property")),
		}
	case nodeSubscriptExpression:
		return &syntax.Member{
			Pos: c.pos(n),
			X:   c.convert(n.ChildByFieldName("object")),
			Sel: c.convert(n.ChildByFieldName("index")),
		}
	case nodeParenthesizedExpression:
		// Parentheses carry no meaning for the rule.
		if inner := c.first(n); inner != nil {
			return inner
		}
	case nodeBinaryExpression:
		if op := n.ChildByFieldName("operator"); op != nil && logicalOperators[op.Type()] {
			return &syntax.Logical{
				Pos: c.pos(n),
				Op:  op.Type(),
				X:   c.convert(n.ChildByFieldName("left")),
				Y:   c.convert(n.ChildByFieldName("right")),
			}
		}
	}

	return &syntax.Other{Pos: c.pos(n), Type: n.Type(), Children: c.children(n)}
}

func (c *converter) function(n *sitter.Node, kind syntax.FuncKind) *syntax.Function {
	fn := &syntax.Function{Pos: c.pos(n), Func: kind}
	if name := n.ChildByFieldName("name"); name != nil {
		fn.Name = name.Content(c.src)
	}

	params := n.ChildByFieldName("parameters")
	if params == nil {
		// Single unparenthesized arrow parameter.
		params = n.ChildByFieldName("parameter")
		if params != nil {
			fn.Params = []syntax.Node{c.convert(params)}
		}
	} else {
		fn.Params = c.children(params)
	}

	fn.Body = c.convert(n.ChildByFieldName("body"))

	return fn
}

func (c *converter) ifStatement(n *sitter.Node) *syntax.If {
	stmt := &syntax.If{
		Pos:  c.pos(n),
		Cond: c.convert(n.ChildByFieldName("condition")),
		Then: c.convert(n.ChildByFieldName("consequence")),
	}
	if alt := n.ChildByFieldName("alternative"); alt != nil {
		if alt.Type() == nodeElseClause {
			stmt.Else = c.first(alt)
		} else {
			stmt.Else = c.convert(alt)
		}
	}

	return stmt
}

func (c *converter) switchStatement(n *sitter.Node) *syntax.Switch {
	stmt := &syntax.Switch{Pos: c.pos(n)}
	if value := c.convert(n.ChildByFieldName("value")); value != nil {
		stmt.Tag = []syntax.Node{value}
	}

	body := n.ChildByFieldName("body")
	if body == nil {
		return stmt
	}
	for _, clause := range namedChildren(body) {
		switch clause.Type() {
		case nodeSwitchCase, nodeSwitchDefault:
			value := clause.ChildByFieldName("value")
			cc := &syntax.Case{Pos: c.pos(clause), Body: c.childrenExcept(clause, value)}
			if v := c.convert(value); v != nil {
				cc.Values = []syntax.Node{v}
			}
			stmt.Cases = append(stmt.Cases, cc)
		}
	}

	return stmt
}

// first converts the first named child that is not a comment.
func (c *converter) first(n *sitter.Node) syntax.Node {
	for _, child := range namedChildren(n) {
		if conv := c.convert(child); conv != nil {
			return conv
		}
	}

	return nil
}

func namedChildren(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		if child := n.NamedChild(i); child != nil {
			out = append(out, child)
		}
	}

	return out
}

// containsNode matches by span and type since tree-sitter hands out fresh wrappers.
func containsNode(list []*sitter.Node, n *sitter.Node) bool {
	for _, other := range list {
		if other != nil && other.StartByte() == n.StartByte() &&
			other.EndByte() == n.EndByte() && other.Type() == n.Type() {
			return true
		}
	}

	return false
}
