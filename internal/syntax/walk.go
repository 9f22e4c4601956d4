package syntax

// Visitor receives enter/exit events of a depth-first walk in source order.
// Exit is called for every node Enter was called for, after all its descendants.
// If Enter returns false the children of the node are skipped.
type Visitor interface {
	Enter(n Node) bool
	Exit(n Node)
}

// Walk traverses the tree rooted at n. Nil nodes are skipped.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	if v.Enter(n) {
		for _, c := range Children(n) {
			Walk(v, c)
		}
	}
	v.Exit(n)
}

type inspector func(Node) bool

func (f inspector) Enter(n Node) bool { return f(n) }
func (f inspector) Exit(Node)         {}

// Inspect calls f for every node in pre-order, like ast.Inspect.
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}

// Children returns the direct children of n in source order, without nils.
func Children(n Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, c := range nodes {
			if c != nil {
				out = append(out, c)
			}
		}
	}

	switch n := n.(type) {
	case *Program:
		add(n.Body...)
	case *Function:
		add(n.Params...)
		add(n.Body)
	case *Block:
		add(n.List...)
	case *ExprStmt:
		add(n.X)
	case *Return:
		add(n.Results...)
	case *If:
		add(n.Init, n.Cond, n.Then, n.Else)
	case *Switch:
		add(n.Tag...)
		for _, c := range n.Cases {
			if c != nil {
				out = append(out, c)
			}
		}
	case *Case:
		add(n.Values...)
		add(n.Body...)
	case *Loop:
		add(n.Header...)
		add(n.Body)
	case *Call:
		add(n.Fun)
		add(n.Args...)
	case *Member:
		add(n.X, n.Sel)
	case *Logical:
		add(n.X, n.Y)
	case *Other:
		add(n.Children...)
	}

	return out
}
