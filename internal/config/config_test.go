package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/joshuapare/treef/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "") // registers restoration
	require.NoError(t, os.Unsetenv(key))
}

func TestColorSource(t *testing.T) {
	t.Setenv(EnvGNUColors, "di=01;34")
	t.Setenv(EnvBSDColors, colors.DefaultBSD)
	t.Setenv(EnvCLIColor, "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, colors.Source{
		GNU:     "di=01;34",
		BSD:     colors.DefaultBSD,
		Default: true,
	}, cfg.ColorSource())
}

func TestColorSource_Unset(t *testing.T) {
	unsetEnv(t, EnvGNUColors)
	unsetEnv(t, EnvBSDColors)
	unsetEnv(t, EnvCLIColor)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, colors.Source{}, cfg.ColorSource())
}

func TestColorSource_EmptyCLIColorCounts(t *testing.T) {
	unsetEnv(t, EnvGNUColors)
	unsetEnv(t, EnvBSDColors)
	t.Setenv(EnvCLIColor, "")

	cfg, err := Load()
	require.NoError(t, err)

	src := cfg.ColorSource()
	assert.True(t, src.Default)
	assert.Empty(t, src.GNU)
}

func TestColorSource_ReadsLazily(t *testing.T) {
	unsetEnv(t, EnvGNUColors)

	cfg, err := Load()
	require.NoError(t, err)

	t.Setenv(EnvGNUColors, "ex=32")
	assert.Equal(t, "ex=32", cfg.ColorSource().GNU)
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		value   *string
		want    slog.Level
		wantErr bool
	}{
		{name: "unset", value: nil, want: DefaultLogLevel},
		{name: "empty", value: ptr(""), want: DefaultLogLevel},
		{name: "debug", value: ptr("debug"), want: slog.LevelDebug},
		{name: "upper case", value: ptr("ERROR"), want: slog.LevelError},
		{name: "garbage", value: ptr("chatty"), want: DefaultLogLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value == nil {
				unsetEnv(t, EnvLogLevel)
			} else {
				t.Setenv(EnvLogLevel, *tt.value)
			}

			cfg, err := Load()
			require.NoError(t, err)

			got, err := cfg.LogLevel()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), EnvLogLevel)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func ptr(s string) *string { return &s }
