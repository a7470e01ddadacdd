package colors

import (
	"log/slog"

	"github.com/joshuapare/treef/arena"
)

// Source holds the raw color configuration.
type Source struct {
	GNU     string // LS_COLORS
	BSD     string // LSCOLORS
	Default bool   // CLICOLOR is present
}

// Build returns the table for the first usable source, in the order GNU, BSD,
// built-in default. When none applies the table is disabled.
//
// A malformed GNU value is always reported on log. A malformed BSD value is
// reported only when no GNU value was configured. log may be nil.
func Build(src Source, a *arena.Arena, log *slog.Logger) *Table {
	if src.GNU != "" {
		t, err := ParseGNU(src.GNU, a)
		if err == nil {
			return t
		}
		warn(log, "failed to parse LS_COLORS", err)
	}

	if src.BSD != "" {
		t, err := ParseBSD(src.BSD, a)
		if err == nil {
			return t
		}
		if src.GNU == "" {
			warn(log, "failed to parse LSCOLORS", err)
		}
	}

	if src.Default {
		t, err := ParseBSD(DefaultBSD, a)
		if err == nil {
			t.grammar = GrammarDefault
			return t
		}
		warn(log, "failed to build default colors", err)
	}

	return Disabled()
}

func warn(log *slog.Logger, msg string, err error) {
	if log != nil {
		log.Warn(msg, "error", err)
	}
}
