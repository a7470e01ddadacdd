// Package config reads treef settings from the environment.
//
// Values are looked up lazily: a variable is only read when the accessor that
// needs it is called, so the color variables stay untouched unless coloring
// was requested.
package config

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/joshuapare/treef/colors"
)

// Environment variables.
const (
	EnvGNUColors = "LS_COLORS"
	EnvBSDColors = "LSCOLORS"
	EnvCLIColor  = "CLICOLOR"
	EnvLogLevel  = "TREEF_LOG_LEVEL"
)

const (
	keyGNUColors = "ls_colors"
	keyBSDColors = "lscolors"
	keyCLIColor  = "clicolor"
	keyLogLevel  = "log_level"
)

// DefaultLogLevel is used when TREEF_LOG_LEVEL is unset or empty.
const DefaultLogLevel = slog.LevelWarn

var bindings = []struct {
	key string
	env string
}{
	{keyGNUColors, EnvGNUColors},
	{keyBSDColors, EnvBSDColors},
	{keyCLIColor, EnvCLIColor},
	{keyLogLevel, EnvLogLevel},
}

// Config is a view over the process environment.
type Config struct {
	v *viper.Viper
}

// Load binds the treef environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// CLICOLOR is presence-only: an empty value still counts.
	v.AllowEmptyEnv(true)

	for _, b := range bindings {
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", b.env, err)
		}
	}

	return &Config{v: v}, nil
}

// ColorSource returns the raw color configuration.
func (c *Config) ColorSource() colors.Source {
	return colors.Source{
		GNU:     c.v.GetString(keyGNUColors),
		BSD:     c.v.GetString(keyBSDColors),
		Default: c.v.IsSet(keyCLIColor),
	}
}

// LogLevel returns the configured log level. An unparsable value yields
// DefaultLogLevel and an error describing it.
func (c *Config) LogLevel() (slog.Level, error) {
	raw := c.v.GetString(keyLogLevel)
	if raw == "" {
		return DefaultLogLevel, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return DefaultLogLevel, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	return level, nil
}
