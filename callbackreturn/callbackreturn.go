// Package callbackreturn is the public entry point: a go/analysis analyzer for Go packages
// and a checker for JavaScript sources, both reporting callback calls that are not
// followed by the end of their function.
package callbackreturn

import (
	"context"
	"fmt"

	"github.com/AdamBrianBright/callbackreturn/internal/config"
	"github.com/AdamBrianBright/callbackreturn/internal/jssyntax"
	pass "github.com/AdamBrianBright/callbackreturn/internal/passes/callbackreturn"
	"github.com/AdamBrianBright/callbackreturn/internal/rule"

	"golang.org/x/tools/go/analysis"
	"gopkg.in/yaml.v3"
)

type (
	// Config configures the checks.
	Config = config.Config
	// Diagnostic is a single violation.
	Diagnostic = rule.Diagnostic
)

// DefaultNames are the callback names checked when nothing is configured.
var DefaultNames = config.DefaultNames

// Analyzer checks Go packages. It reads its settings from the flags of its config dependency.
var Analyzer = pass.Analyzer

// NewAnalyzer applies conf to the shared config analyzer and returns Analyzer.
func NewAnalyzer(conf *Config) (*analysis.Analyzer, error) {
	if conf == nil {
		conf = config.NewDefaultConfig()
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	raw, err := yaml.Marshal(conf)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	if err := config.Analyzer.Flags.Set(config.YamlConfig, string(raw)); err != nil {
		return nil, fmt.Errorf("set config flag: %w", err)
	}

	return Analyzer, nil
}

// CheckJavaScript parses src and returns its violations in source order.
// With no names the default callback names are used.
func CheckJavaScript(ctx context.Context, src []byte, names ...string) ([]Diagnostic, error) {
	conf := rule.Config{}
	if len(names) > 0 {
		conf.Names = names
	}
	r, err := rule.New(conf)
	if err != nil {
		return nil, err
	}

	prog, err := jssyntax.Parse(ctx, src)
	if err != nil {
		return nil, err
	}

	return r.Check(prog), nil
}
