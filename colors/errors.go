package colors

import "errors"

var (
	// ErrMalformedGNU indicates an LS_COLORS value that could not be parsed.
	ErrMalformedGNU = errors.New("colors: malformed GNU color specification")

	// ErrMalformedBSD indicates an LSCOLORS value that could not be parsed.
	ErrMalformedBSD = errors.New("colors: malformed BSD color specification")
)
