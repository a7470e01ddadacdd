package colors

import (
	"fmt"
	"strings"

	"github.com/joshuapare/treef/arena"
	"github.com/joshuapare/treef/filetype"
)

var gnuCodes = map[string]filetype.Type{
	"fi": filetype.File,
	"di": filetype.Dir,
	"ln": filetype.Link,
	"pi": filetype.Pipe,
	"so": filetype.Sock,
	"bd": filetype.Block,
	"cd": filetype.Char,
	"or": filetype.Orphan,
	"ex": filetype.Exec,
	"su": filetype.Setuid,
	"sg": filetype.Setgid,
	"st": filetype.Sticky,
	"tw": filetype.OtherWritableSticky,
	"ow": filetype.OtherWritable,
}

// ParseGNU parses an LS_COLORS value. Records with unknown codes (including
// "*.ext" patterns) are skipped. On error no partial table is returned.
func ParseGNU(spec string, a *arena.Arena) (*Table, error) {
	t, err := newTable(a, GrammarGNU)
	if err != nil {
		return nil, err
	}

	i := 0
	for i < len(spec) {
		if len(spec)-i < 2 {
			break
		}
		ty, ok := gnuCodes[spec[i:i+2]]
		i += 2
		if !ok {
			if j := strings.IndexByte(spec[i:], ':'); j >= 0 {
				i += j + 1
			} else {
				i = len(spec)
			}
			continue
		}

		if i >= len(spec) || spec[i] != '=' {
			return nil, fmt.Errorf("%w: offset %d: expected '=' after %q", ErrMalformedGNU, i, spec[i-2:i])
		}
		i++

		start := i
		for i < len(spec) && spec[i] != ':' {
			if c := spec[i]; (c < '0' || c > '9') && c != ';' {
				return nil, fmt.Errorf("%w: offset %d: unexpected %q in parameters", ErrMalformedGNU, i, c)
			}
			i++
		}

		sgr, err := compileGNU(a, spec[start:i])
		if err != nil {
			return nil, fmt.Errorf("%w: offset %d: %w", ErrMalformedGNU, start, err)
		}
		t.sgr[ty] = sgr

		for i < len(spec) && spec[i] == ':' {
			i++
		}
	}

	return t, nil
}

// compileGNU interns ESC [ params m.
func compileGNU(a *arena.Arena, params string) (arena.Str, error) {
	s, err := a.Alloc(2 + len(params) + 1)
	if err != nil {
		return arena.Str{}, err
	}
	// The reservation is exact, so none of these writes can fail.
	_ = s.WriteByte(esc)
	_ = s.WriteByte('[')
	_, _ = s.WriteString(params)
	_ = s.WriteByte('m')
	return s, nil
}
