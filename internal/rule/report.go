package rule

import (
	"fmt"
	"slices"

	"github.com/AdamBrianBright/callbackreturn/internal/syntax"
)

const (
	// ID is the rule identifier used in reports and configuration.
	ID = "callback-return"
	// Message is the fixed diagnostic text.
	Message = "Expected return with your callback function."
	// NodeType tags the node a diagnostic is anchored to.
	NodeType = "CallExpression"
)

// Diagnostic is a single violation.
type Diagnostic struct {
	Rule     string     `json:"rule" yaml:"rule"`
	Message  string     `json:"message" yaml:"message"`
	Pos      syntax.Pos `json:"-" yaml:"-"`
	Line     int        `json:"line" yaml:"line"`
	Column   int        `json:"column" yaml:"column"`
	NodeType string     `json:"nodeType" yaml:"nodeType"`
	Callee   string     `json:"callee" yaml:"callee"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message)
}

// Reporter collects diagnostics in the order they are reported.
type Reporter struct {
	diags []Diagnostic
}

// Report records a violation for site.
func (r *Reporter) Report(site CallSite) {
	r.diags = append(r.diags, Diagnostic{
		Rule:     ID,
		Message:  Message,
		Pos:      site.Pos,
		Line:     site.Pos.Line,
		Column:   site.Pos.Column,
		NodeType: NodeType,
		Callee:   site.Name,
	})
}

// Diagnostics returns a snapshot of the collected diagnostics.
func (r *Reporter) Diagnostics() []Diagnostic {
	return slices.Clone(r.diags)
}
