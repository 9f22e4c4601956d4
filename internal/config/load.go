package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CALLBACKRETURN_NAMES=cb,next.
const EnvPrefix = "CALLBACKRETURN"

// Load reads the config with viper. With an empty path .callbackreturn.yaml is searched in
// $HOME/.callbackreturn and the working directory, and a missing file means defaults.
// An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".callbackreturn")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.callbackreturn")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("names", DefaultNames)
	v.SetDefault("__debug", false)

	// Read in config, ignore if the file isn't found and use defaults.
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}
