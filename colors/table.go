package colors

import (
	"github.com/joshuapare/treef/arena"
	"github.com/joshuapare/treef/filetype"
)

const (
	esc      = '\x1b'
	resetEOL = "\x1b[m\n"
)

// Grammar identifies where a Table came from.
type Grammar uint8

const (
	GrammarNone    Grammar = iota // coloring disabled
	GrammarGNU                    // LS_COLORS
	GrammarBSD                    // LSCOLORS
	GrammarDefault                // built-in BSD palette
)

// String implements the Stringer interface for Grammar.
func (g Grammar) String() string {
	switch g {
	case GrammarGNU:
		return "gnu"
	case GrammarBSD:
		return "bsd"
	case GrammarDefault:
		return "default"
	default:
		return "none"
	}
}

// Table maps every filetype.Type to an escape sequence. It is read-only once
// built.
type Table struct {
	sgr      [filetype.Count]arena.Str
	resetEOL arena.Str
	grammar  Grammar
}

// Disabled returns a table that colors nothing.
func Disabled() *Table {
	return &Table{}
}

func newTable(a *arena.Arena, g Grammar) (*Table, error) {
	reset, err := a.DupString(resetEOL)
	if err != nil {
		return nil, err
	}
	return &Table{resetEOL: reset, grammar: g}, nil
}

// Enabled reports whether the table came from a color source.
func (t *Table) Enabled() bool {
	return t != nil && t.grammar != GrammarNone
}

// Grammar returns the source the table was parsed from.
func (t *Table) Grammar() Grammar {
	if t == nil {
		return GrammarNone
	}
	return t.grammar
}

// SGR returns the escape sequence for ty. The result is empty when ty has no
// color or the table is disabled.
func (t *Table) SGR(ty filetype.Type) arena.Str {
	if !t.Enabled() || !ty.Valid() {
		return arena.Str{}
	}
	return t.sgr[ty]
}

// ResetEOL returns the precomputed "ESC[m" plus newline that ends a colored line.
func (t *Table) ResetEOL() arena.Str {
	if t == nil {
		return arena.Str{}
	}
	return t.resetEOL
}
