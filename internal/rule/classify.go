package rule

import "github.com/AdamBrianBright/callbackreturn/internal/syntax"

// Verdict is the outcome of classifying a call site.
type Verdict uint8

const (
	Compliant Verdict = iota
	Violating
)

func (v Verdict) String() string {
	if v == Violating {
		return "violating"
	}
	return "compliant"
}

// Placement names the position a call site was found in. The first matching
// placement wins, in declaration order.
type Placement uint8

const (
	// PlacementTopLevel is a call outside of any function.
	PlacementTopLevel Placement = iota
	// PlacementReturnOperand is `return callback()` or an arrow's expression body.
	PlacementReturnOperand
	// PlacementBeforeReturn is `callback(); return;`.
	PlacementBeforeReturn
	// PlacementGuarded is `guard && callback();`.
	PlacementGuarded
	// PlacementTail is the last statement of the function's own body.
	PlacementTail
	// PlacementUnsafe is anything else.
	PlacementUnsafe
)

var placementNames = [...]string{
	PlacementTopLevel:      "top-level",
	PlacementReturnOperand: "return operand",
	PlacementBeforeReturn:  "before return",
	PlacementGuarded:       "short-circuit guard",
	PlacementTail:          "function tail",
	PlacementUnsafe:        "unsafe",
}

func (p Placement) String() string {
	if int(p) < len(placementNames) {
		return placementNames[p]
	}
	return "unknown"
}

// Verdict maps the placement onto compliant/violating.
func (p Placement) Verdict() Verdict {
	if p == PlacementUnsafe {
		return Violating
	}
	return Compliant
}

// CallSite is a matched call together with the context it was visited in.
type CallSite struct {
	Call *syntax.Call
	Name string
	Pos  syntax.Pos
	// Path holds the ancestors of Call, outermost first. It is only valid during the visit.
	Path []syntax.Node
	// Frame is nil at program level.
	Frame *Frame
}

// parent returns the ancestor depth levels above the call, 0 being the direct parent.
func (s CallSite) parent(depth int) syntax.Node {
	i := len(s.Path) - 1 - depth
	if i < 0 {
		return nil
	}
	return s.Path[i]
}

// statement resolves the call as a standalone expression statement and returns the
// statement list holding it with the statement's index.
func (s CallSite) statement() (container syntax.Node, list []syntax.Node, idx int, ok bool) {
	stmt, isStmt := s.parent(0).(*syntax.ExprStmt)
	if !isStmt || stmt.X != syntax.Node(s.Call) {
		return nil, nil, 0, false
	}
	container = s.parent(1)
	list, ok = syntax.Statements(container)
	if !ok {
		return nil, nil, 0, false
	}
	for i, n := range list {
		if n == syntax.Node(stmt) {
			return container, list, i, true
		}
	}

	return nil, nil, 0, false
}

// Classify decides whether the call site leaves its function right after the call.
func Classify(site CallSite) Verdict {
	return Place(site).Verdict()
}

// Place finds the placement of the call site.
func Place(site CallSite) Placement {
	switch {
	case site.Frame == nil:
		return PlacementTopLevel
	case isReturnOperand(site):
		return PlacementReturnOperand
	case isFollowedByReturn(site):
		return PlacementBeforeReturn
	case isGuarded(site):
		return PlacementGuarded
	case isTail(site):
		return PlacementTail
	}

	return PlacementUnsafe
}

func isReturnOperand(site CallSite) bool {
	call := syntax.Node(site.Call)
	switch p := site.parent(0).(type) {
	case *syntax.Return:
		return len(p.Results) == 1 && p.Results[0] == call
	case *syntax.Function:
		// Expression-bodied arrow: the body is returned.
		return p.Body == call
	}

	return false
}

func isFollowedByReturn(site CallSite) bool {
	_, list, idx, ok := site.statement()
	if !ok || idx+1 >= len(list) {
		return false
	}
	_, isReturn := list[idx+1].(*syntax.Return)
	return isReturn
}

func isGuarded(site CallSite) bool {
	logical, ok := site.parent(0).(*syntax.Logical)
	if !ok || logical.Op != "&&" || logical.Y != syntax.Node(site.Call) {
		return false
	}
	stmt, ok := site.parent(1).(*syntax.ExprStmt)
	return ok && stmt.X == syntax.Node(logical)
}

func isTail(site CallSite) bool {
	if site.Frame == nil || site.Frame.Body == nil {
		return false
	}
	container, list, idx, ok := site.statement()
	if !ok || container != syntax.Node(site.Frame.Body) {
		return false
	}
	return idx == len(list)-1
}
