// Package syntax is the language-neutral tree the callback-return rule runs on.
// Front-ends (JavaScript, Go) convert their own parse trees into it.
package syntax

import "fmt"

// Pos is a source position. Line and Column are 1-based, Offset is a 0-based byte offset.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Kind tags a node variant.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindProgram
	KindFunction
	KindBlock
	KindExprStmt
	KindReturn
	KindIf
	KindSwitch
	KindCase
	KindLoop
	KindCall
	KindIdent
	KindMember
	KindLogical
	KindOther
)

var kindNames = [...]string{
	KindInvalid:  "Invalid",
	KindProgram:  "Program",
	KindFunction: "Function",
	KindBlock:    "Block",
	KindExprStmt: "ExprStmt",
	KindReturn:   "Return",
	KindIf:       "If",
	KindSwitch:   "Switch",
	KindCase:     "Case",
	KindLoop:     "Loop",
	KindCall:     "Call",
	KindIdent:    "Ident",
	KindMember:   "Member",
	KindLogical:  "Logical",
	KindOther:    "Other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Node is one of the variants declared in this package.
type Node interface {
	Kind() Kind
	Position() Pos
	node()
}

// FuncKind tells apart the function-like constructs. The rule treats them all the same.
type FuncKind uint8

const (
	FuncDeclaration FuncKind = iota
	FuncExpression
	FuncArrow
	FuncMethod
)

type (
	// Program is a whole source unit.
	Program struct {
		Pos  Pos
		Body []Node
	}

	// Function is any function-like construct. Body is a *Block, an expression for
	// expression-bodied arrow functions, or nil for bodyless declarations.
	Function struct {
		Pos    Pos
		Name   string
		Func   FuncKind
		Params []Node
		Body   Node
	}

	// Block is a braced statement list.
	Block struct {
		Pos  Pos
		List []Node
	}

	// ExprStmt is an expression used as a statement.
	ExprStmt struct {
		Pos Pos
		X   Node
	}

	// Return is a termination statement.
	Return struct {
		Pos     Pos
		Results []Node
	}

	// If is a conditional. Init is only set by languages that have it. Else is nil,
	// a *Block, another *If or a bare statement.
	If struct {
		Pos  Pos
		Init Node
		Cond Node
		Then Node
		Else Node
	}

	// Switch is a multi-way branch over case clauses.
	Switch struct {
		Pos   Pos
		Tag   []Node
		Cases []*Case
	}

	// Case is a switch clause. Values is empty for the default clause.
	Case struct {
		Pos    Pos
		Values []Node
		Body   []Node
	}

	// Loop covers every loop statement. Header holds init, condition, update or
	// range operands in source order.
	Loop struct {
		Pos    Pos
		Header []Node
		Body   Node
	}

	// Call is a call expression.
	Call struct {
		Pos  Pos
		Fun  Node
		Args []Node
	}

	// Ident is a simple identifier.
	Ident struct {
		Pos  Pos
		Name string
	}

	// Member is a property access like x.sel or x[sel].
	Member struct {
		Pos Pos
		X   Node
		Sel Node
	}

	// Logical is a short-circuit binary expression (&&, ||, ??).
	Logical struct {
		Pos Pos
		Op  string
		X   Node
		Y   Node
	}

	// Other is every construct the rule has no interest in. Type keeps the
	// front-end's own name for debugging.
	Other struct {
		Pos      Pos
		Type     string
		Children []Node
	}
)

func (*Program) Kind() Kind  { return KindProgram }
func (*Function) Kind() Kind { return KindFunction }
func (*Block) Kind() Kind    { return KindBlock }
func (*ExprStmt) Kind() Kind { return KindExprStmt }
func (*Return) Kind() Kind   { return KindReturn }
func (*If) Kind() Kind       { return KindIf }
func (*Switch) Kind() Kind   { return KindSwitch }
func (*Case) Kind() Kind     { return KindCase }
func (*Loop) Kind() Kind     { return KindLoop }
func (*Call) Kind() Kind     { return KindCall }
func (*Ident) Kind() Kind    { return KindIdent }
func (*Member) Kind() Kind   { return KindMember }
func (*Logical) Kind() Kind  { return KindLogical }
func (*Other) Kind() Kind    { return KindOther }

func (n *Program) Position() Pos  { return n.Pos }
func (n *Function) Position() Pos { return n.Pos }
func (n *Block) Position() Pos    { return n.Pos }
func (n *ExprStmt) Position() Pos { return n.Pos }
func (n *Return) Position() Pos   { return n.Pos }
func (n *If) Position() Pos       { return n.Pos }
func (n *Switch) Position() Pos   { return n.Pos }
func (n *Case) Position() Pos     { return n.Pos }
func (n *Loop) Position() Pos     { return n.Pos }
func (n *Call) Position() Pos     { return n.Pos }
func (n *Ident) Position() Pos    { return n.Pos }
func (n *Member) Position() Pos   { return n.Pos }
func (n *Logical) Position() Pos  { return n.Pos }
func (n *Other) Position() Pos    { return n.Pos }

func (*Program) node()  {}
func (*Function) node() {}
func (*Block) node()    {}
func (*ExprStmt) node() {}
func (*Return) node()   {}
func (*If) node()       {}
func (*Switch) node()   {}
func (*Case) node()     {}
func (*Loop) node()     {}
func (*Call) node()     {}
func (*Ident) node()    {}
func (*Member) node()   {}
func (*Logical) node()  {}
func (*Other) node()    {}

// Statements returns the statement list n holds directly: the body of a program,
// a block or a case clause. ok is false for any other node.
func Statements(n Node) (list []Node, ok bool) {
	switch n := n.(type) {
	case *Program:
		return n.Body, true
	case *Block:
		return n.List, true
	case *Case:
		return n.Body, true
	}
	return nil, false
}
