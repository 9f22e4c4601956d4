// Package gclplugin implements the golangci-lint's module plugin interface for callbackreturn to be
// used as a private linter in golangci-lint. See more details at
// https://golangci-lint.run/plugins/module-plugins/.
package gclplugin

import (
	"github.com/AdamBrianBright/callbackreturn/callbackreturn"
	"github.com/AdamBrianBright/callbackreturn/internal/config"

	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"
)

func init() {
	// Регистрируем кастомный линтер в реестре плагинов golangci-lint.
	register.Plugin("callbackreturn", New)
}

// New returns the golangci-lint plugin that wraps the callbackreturn analyzer.
func New(settings any) (register.LinterPlugin, error) {
	conf, err := register.DecodeSettings[*config.Config](settings)
	if err != nil {
		return nil, err
	}

	return &CallbackReturnPlugin{conf: conf}, nil
}

// CallbackReturnPlugin is the callbackreturn plugin wrapper for golangci-lint.
type CallbackReturnPlugin struct {
	conf *config.Config
}

// BuildAnalyzers builds the callbackreturn analyzer with the configurations applied to the config analyzer.
// Settings without names keep the default names.
func (p *CallbackReturnPlugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	conf := p.conf
	if conf == nil {
		conf = config.NewDefaultConfig()
	} else if conf.Names == nil {
		conf.Names = config.NewDefaultConfig().Names
	}

	analyzer, err := callbackreturn.NewAnalyzer(conf)
	if err != nil {
		return nil, err
	}

	return []*analysis.Analyzer{analyzer}, nil
}

// GetLoadMode returns the load mode of the callbackreturn plugin. Only syntax is needed.
func (p *CallbackReturnPlugin) GetLoadMode() string {
	return register.LoadModeSyntax
}
