package config

import (
	"flag"
	"fmt"
	"reflect"
	"strings"

	"github.com/AdamBrianBright/callbackreturn/internal/helpers"
	"github.com/AdamBrianBright/callbackreturn/internal/log"

	"golang.org/x/tools/go/analysis"
	"gopkg.in/yaml.v3"
)

const _doc = `callbackreturn_config analyzer is responsible to take configurations (flags) for callbackreturn execution.
It does not run any analysis and is only meant to be used as a dependency for the callbackreturn 
analyzer to share the same configurations. 
`

var Analyzer = &analysis.Analyzer{
	Name:       "callbackreturn_config",
	Doc:        _doc,
	Run:        helpers.WrapRun(run),
	Flags:      newFlagSet(),
	ResultType: reflect.TypeOf((*helpers.Result[*Config])(nil)),
}

const (
	// YamlConfig is the flag for the full config in yaml format.
	YamlConfig = "yaml-config"
	// Names is the flag for a comma-separated list of callback names.
	Names = "names"
	// Debug is the flag for debug logging.
	Debug = "debug"
)

// newFlagSet returns a flag set to be used in the config analyzer.
func newFlagSet() flag.FlagSet {
	fs := flag.NewFlagSet("callbackreturn_config", flag.ExitOnError)

	// We do not keep the returned pointers to the flags because we will not use them directly here.
	// Instead, we will use the flags through the analyzer's Flags field later.
	_ = fs.String(YamlConfig, "", "Full config in yaml format")

	_ = fs.String(Names, "", "Comma-separated callback names (default \"callback\")")

	_ = fs.Bool(Debug, false, "Debug logging")

	return *fs
}

func run(pass *analysis.Pass) (*Config, error) {
	// Set up default values for the config.
	conf := NewDefaultConfig()
	defer func() {
		log.EnableDebug(conf.Debug)
	}()

	if yamlConfig, ok := pass.Analyzer.Flags.Lookup(YamlConfig).Value.(flag.Getter).Get().(string); ok {
		if len(yamlConfig) > 0 {
			err := yaml.Unmarshal([]byte(yamlConfig), conf)
			if err != nil {
				return nil, fmt.Errorf("unmarshal config: %w", err)
			}
		}
	}

	// Override values if the user provides flags.
	if names, ok := pass.Analyzer.Flags.Lookup(Names).Value.(flag.Getter).Get().(string); ok && len(names) > 0 {
		conf.Names = SplitNames(names)
	}
	if debug, ok := pass.Analyzer.Flags.Lookup(Debug).Value.(flag.Getter).Get().(bool); ok && debug {
		conf.Debug = debug
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return conf, nil
}

// SplitNames splits a comma-separated list of names, dropping blanks.
func SplitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	return names
}
