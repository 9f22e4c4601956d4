package config

import (
	"fmt"
	"slices"

	"github.com/AdamBrianBright/callbackreturn/internal/rule"
)

// DefaultNames - the callback names checked when nothing is configured.
var DefaultNames = slices.Clone(rule.DefaultNames)

type Config struct {
	// Names - identifiers that are considered callbacks. Only direct calls like `callback(err)`
	// are checked, calls through a property path like `this.callback()` never are.
	// An explicitly empty list disables the check.
	Names []string `mapstructure:"names" yaml:"names"`

	Debug bool `mapstructure:"__debug" yaml:"__debug,omitempty"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Names: slices.Clone(DefaultNames),
	}
}

// Validate checks that every configured name is a plain identifier.
func (cfg *Config) Validate() error {
	for _, name := range cfg.Names {
		if !rule.IsIdentifier(name) {
			return fmt.Errorf("names: %q is not an identifier", name)
		}
	}

	return nil
}

// Rule builds the configured rule. Nil Names falls back to DefaultNames.
func (cfg *Config) Rule() (*rule.Rule, error) {
	r, err := rule.New(rule.Config{Names: cfg.Names})
	if err != nil {
		return nil, fmt.Errorf("build rule: %w", err)
	}

	return r, nil
}
