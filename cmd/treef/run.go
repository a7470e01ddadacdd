package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/joshuapare/treef/arena"
	"github.com/joshuapare/treef/colors"
	"github.com/joshuapare/treef/filetype"
	"github.com/joshuapare/treef/pathtree"
	"github.com/joshuapare/treef/printer"
)

// runOptions wires the pipeline.
type runOptions struct {
	// Stat requests classification and coloring.
	Stat bool

	// ColorSource is consulted only when Stat is set.
	ColorSource func() colors.Source

	Logger *slog.Logger

	// OnOutOfMemory is passed to the arena. Nil panics.
	OnOutOfMemory func(error)

	// PageSize overrides the arena block size. Zero uses the system page size.
	PageSize int
}

// run reads every path from in, builds the tree and prints it to out.
func run(in io.Reader, out io.Writer, opts runOptions) error {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	a := arena.New(arena.Options{
		PageSize:      opts.PageSize,
		OnOutOfMemory: opts.OnOutOfMemory,
	})

	table := colors.Disabled()
	if opts.Stat && opts.ColorSource != nil {
		table = colors.Build(opts.ColorSource(), a, log)
	}
	log.Debug("color table", "grammar", table.Grammar())

	// Classification is only worth the syscalls when there is a color to show.
	tree := pathtree.New(a, filetype.New(table.Enabled()))

	err := readLines(in, func(line []byte) error {
		if _, err := tree.Add(line); err != nil {
			if errors.Is(err, arena.ErrTooLong) {
				log.Warn("skipping path", "error", err)
				return nil
			}
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	p := printer.New(tree, out, printer.Options{Colors: table})
	if err := p.Print(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	st := a.Stats()
	log.Debug("tree",
		"nodes", tree.Len(),
		"height", tree.Height())
	log.Debug("arena",
		"blocks", st.Blocks,
		"strings", st.Strings,
		"reserved", humanize.IBytes(uint64(st.Reserved)), //nolint:gosec // non-negative
		"used", humanize.IBytes(uint64(st.Used)), //nolint:gosec // non-negative
		"waste", humanize.IBytes(uint64(st.Waste+st.Free))) //nolint:gosec // non-negative
	return nil
}
