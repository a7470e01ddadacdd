package colors

import (
	"fmt"

	"github.com/joshuapare/treef/arena"
	"github.com/joshuapare/treef/filetype"
)

// DefaultBSD is the palette used when only CLICOLOR is set.
const DefaultBSD = "exfxcxdxbxegedabagacad"

// bsdLen is the number of characters the BSD grammar reads.
const bsdLen = 2 * len(bsdSlots)

// bsdSlots lists the type each foreground/background pair colors, in order.
var bsdSlots = [...]filetype.Type{
	filetype.Dir,
	filetype.Link,
	filetype.Sock,
	filetype.Pipe,
	filetype.Exec,
	filetype.Block,
	filetype.Char,
	filetype.Setuid,
	filetype.Setgid,
	filetype.OtherWritableSticky,
	filetype.OtherWritable,
}

// ESC [ 1 ; 3f ; 4b m
const bsdMaxSGR = 10

// ParseBSD parses an LSCOLORS value. Only the first 22 characters are read;
// fewer than that, or any invalid letter, rejects the value.
func ParseBSD(spec string, a *arena.Arena) (*Table, error) {
	if len(spec) < bsdLen {
		return nil, fmt.Errorf("%w: need %d characters, got %d", ErrMalformedBSD, bsdLen, len(spec))
	}
	for i := 0; i < bsdLen; i += 2 {
		if fg := spec[i]; fg != 'x' && !isColorLetter(lower(fg)) {
			return nil, fmt.Errorf("%w: offset %d: invalid foreground %q", ErrMalformedBSD, i, fg)
		}
		if bg := spec[i+1]; bg != 'x' && !isColorLetter(bg) {
			return nil, fmt.Errorf("%w: offset %d: invalid background %q", ErrMalformedBSD, i+1, bg)
		}
	}

	t, err := newTable(a, GrammarBSD)
	if err != nil {
		return nil, err
	}
	for slot, ty := range bsdSlots {
		sgr, err := compileBSD(a, spec[2*slot], spec[2*slot+1])
		if err != nil {
			return nil, err
		}
		t.sgr[ty] = sgr
	}

	// No slot of their own; borrow from the nearest relative.
	t.sgr[filetype.Orphan] = t.sgr[filetype.Link]
	t.sgr[filetype.Sticky] = t.sgr[filetype.Dir]

	return t, nil
}

// compileBSD interns the escape sequence for one pair. A pair of two 'x'
// letters yields the empty string.
func compileBSD(a *arena.Arena, fg, bg byte) (arena.Str, error) {
	if fg == 'x' && bg == 'x' {
		return arena.Str{}, nil
	}

	s, err := a.Alloc(bsdMaxSGR)
	if err != nil {
		return arena.Str{}, err
	}

	// bsdMaxSGR covers the longest form, so none of these writes can fail.
	_ = s.WriteByte(esc)
	_ = s.WriteByte('[')
	if isUpper(fg) {
		_ = s.WriteByte('1')
	}
	if fg != 'x' {
		if s.Len() > 2 {
			_ = s.WriteByte(';')
		}
		_ = s.WriteByte('3')
		_ = s.WriteByte('0' + lower(fg) - 'a')
	}
	if bg != 'x' {
		if s.Len() > 2 {
			_ = s.WriteByte(';')
		}
		_ = s.WriteByte('4')
		_ = s.WriteByte('0' + bg - 'a')
	}
	_ = s.WriteByte('m')
	return s, nil
}

func isColorLetter(c byte) bool {
	return c >= 'a' && c <= 'h'
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func lower(c byte) byte {
	if isUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}
