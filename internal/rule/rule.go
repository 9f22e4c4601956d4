// Package rule implements the callback-return check: calls to configured callback
// names must be placed so that the enclosing function ends right after them.
package rule

import (
	"github.com/AdamBrianBright/callbackreturn/internal/log"
	"github.com/AdamBrianBright/callbackreturn/internal/syntax"
)

// Config configures a Rule. A nil Names means DefaultNames.
type Config struct {
	Names []string
}

// Rule is a configured callback-return check. It holds no per-run state and is
// safe for concurrent use.
type Rule struct {
	names NameSet
}

// New validates conf and returns the rule.
func New(conf Config) (*Rule, error) {
	names := conf.Names
	if names == nil {
		names = DefaultNames
	}
	set, err := NewNameSet(names)
	if err != nil {
		return nil, err
	}

	return &Rule{names: set}, nil
}

// Names returns the configured callback names.
func (r *Rule) Names() []string {
	return r.names.Names()
}

// Check walks the tree and returns the violations in source order.
func (r *Rule) Check(root syntax.Node) []Diagnostic {
	c := &checker{names: r.names}
	syntax.Walk(c, root)

	return c.reporter.Diagnostics()
}

// checker is the state of a single traversal.
type checker struct {
	names    NameSet
	scopes   Tracker
	path     []syntax.Node
	reporter Reporter
}

func (c *checker) Enter(n syntax.Node) bool {
	switch n := n.(type) {
	case *syntax.Function:
		c.scopes.Enter(n)
	case *syntax.Call:
		c.visitCall(n)
	}
	c.path = append(c.path, n)

	return true
}

func (c *checker) Exit(n syntax.Node) {
	c.path = c.path[:len(c.path)-1]
	if _, ok := n.(*syntax.Function); ok {
		c.scopes.Exit()
	}
}

func (c *checker) visitCall(call *syntax.Call) {
	name, ok := c.names.Match(call)
	if !ok {
		return
	}
	site := CallSite{
		Call:  call,
		Name:  name,
		Pos:   call.Pos,
		Path:  c.path,
		Frame: c.scopes.Current(),
	}
	placement := Place(site)
	log.Log("call %s at %s: %s\n", name, call.Pos, placement)
	if placement.Verdict() == Violating {
		c.reporter.Report(site)
	}
}
