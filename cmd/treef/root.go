package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/joshuapare/treef/internal/config"
	"github.com/joshuapare/treef/internal/logger"
)

const usageLine = "usage: treef [-s | -S]"

const (
	exitError       = 1
	exitOutOfMemory = 2
)

// Global flags
var stat statMode

var rootCmd = &cobra.Command{
	Use:   "treef",
	Short: "Render a list of paths as a tree",
	Long: `treef reads slash-separated paths from standard input, one per line,
and prints them as a tree with shared prefixes merged. With classification on,
each entry is looked up on disk and colored using LS_COLORS, LSCOLORS or, when
CLICOLOR is set, a built-in palette.`,
	Args:          noArgs,
	RunE:          runRoot,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	flags := rootCmd.Flags()
	flags.VarPF(&statFlag{mode: &stat, sets: statOn}, "stat", "s",
		"Classify entries on disk and color them").NoOptDefVal = "true"
	flags.VarPF(&statFlag{mode: &stat, sets: statOff}, "no-stat", "S",
		"Never classify or color").NoOptDefVal = "true"
	flags.SortFlags = false

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
}

func execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	color.NoColor = !isTerminal(os.Stderr) //nolint:reassign // follow stderr, not stdout
	printError(os.Stderr, "%v\n", err)

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(os.Stderr, usageLine)
	}
	os.Exit(exitError)
}

func runRoot(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, levelErr := cfg.LogLevel()
	log := logger.Init(logger.Options{Writer: cmd.ErrOrStderr(), Level: level})
	if levelErr != nil {
		log.Warn("ignoring log level", "error", levelErr)
	}

	out := cmd.OutOrStdout()
	return run(cmd.InOrStdin(), out, runOptions{
		Stat:          stat.resolve(isTerminal(out)),
		ColorSource:   cfg.ColorSource,
		Logger:        log,
		OnOutOfMemory: outOfMemory,
	})
}

// usageError marks command-line mistakes, which also print the usage line.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &usageError{err: fmt.Errorf("unexpected argument %q", args[0])}
	}
	return nil
}

// printError prints an error message
func printError(w io.Writer, format string, args ...interface{}) {
	color.New(color.FgRed, color.Bold).Fprint(w, "Error: ")
	fmt.Fprintf(w, format, args...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

func outOfMemory(err error) {
	logger.L.Error("out of memory", "error", err)
	os.Exit(exitOutOfMemory)
}
