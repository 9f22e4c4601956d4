package callbackreturn

import "github.com/AdamBrianBright/callbackreturn/internal/rule"

// Result holds what a single package run looked at and found.
type Result struct {
	// Checked are the file names the rule ran on.
	Checked []string
	// Skipped are generated files.
	Skipped []string
	// Diagnostics are the reported violations in the order they were reported.
	Diagnostics []FileDiagnostic
}

// FileDiagnostic is a rule diagnostic together with the file it belongs to.
type FileDiagnostic struct {
	File string
	rule.Diagnostic
}
