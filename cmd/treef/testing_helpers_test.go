package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeRoot runs the root command with args and stdin, returning stdout and stderr.
func executeRoot(t *testing.T, args []string, stdin io.Reader) (string, string, error) {
	t.Helper()

	// Reset flags
	stat = statAuto

	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// clearColorEnv makes the color variables empty, which the table treats as unset.
func clearColorEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LS_COLORS", "")
	t.Setenv("LSCOLORS", "")
	unsetEnv(t, "CLICOLOR")
	t.Setenv("TREEF_LOG_LEVEL", "")
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

// fixtureDir creates <tmp>/d/f (a directory and a regular file) and returns tmp.
func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "d"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "d", "f"), []byte("x"), 0o644))
	return dir
}

// stdinOf joins paths into newline-terminated input.
func stdinOf(paths ...string) io.Reader {
	return strings.NewReader(strings.Join(paths, "\n") + "\n")
}

// noReadReader fails the test if the command reads input.
type noReadReader struct{ t *testing.T }

func (r noReadReader) Read([]byte) (int, error) {
	r.t.Error("input must not be read")
	return 0, io.EOF
}
