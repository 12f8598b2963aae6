// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/sparsemat/sparse"
)

// envPrefix scopes environment overrides, e.g. SPARSEMAT_LOG_LEVEL.
const envPrefix = "SPARSEMAT"

// Configuration keys. Flag names match the keys so BindPFlags lines them up.
const (
	keyOp          = "op"
	keyA           = "a"
	keyB           = "b"
	keyOutput      = "output"
	keyLogLevel    = "log-level"
	keyRejectZeros = "reject-zeros"
)

// ErrMissingSetting is returned by `run` when a required key has no value.
var ErrMissingSetting = errors.New("sparsemat: missing setting")

// Config is the resolved configuration: flags over env over config file over defaults.
type Config struct {
	Op          string `mapstructure:"op"`
	A           string `mapstructure:"a"`
	B           string `mapstructure:"b"`
	Output      string `mapstructure:"output"`
	LogLevel    string `mapstructure:"log-level"`
	RejectZeros bool   `mapstructure:"reject-zeros"`
}

// newViper returns a viper instance with defaults for every key, so that
// AutomaticEnv also covers keys that never appear in a file.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyOp, "")
	v.SetDefault(keyA, "")
	v.SetDefault(keyB, "")
	v.SetDefault(keyOutput, "")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyRejectZeros, false)

	return v
}

// loadConfig reads the optional config file and decodes every layer into a Config.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	var cfg Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// parseOptions maps configuration onto codec options.
func (c Config) parseOptions() []sparse.Option {
	if c.RejectZeros {
		return []sparse.Option{sparse.WithRejectZeroValues()}
	}

	return nil
}

// requireJob checks the keys `run` needs.
func (c Config) requireJob() error {
	required := []struct{ key, val string }{{keyOp, c.Op}, {keyA, c.A}, {keyB, c.B}}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return fmt.Errorf("%q: %w", r.key, ErrMissingSetting)
		}
	}

	return nil
}
