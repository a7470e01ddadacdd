package arena

import (
	"bytes"
	"encoding/binary"
	"math"
)

const (
	// MaxLen is the longest string an arena can hold.
	MaxLen = math.MaxUint16

	prefixSize = 2
	alignment  = prefixSize
)

// Str is a length-prefixed byte string owned by an Arena.
//
// The zero Str is an empty string with no reserved space.
type Str struct {
	buf []byte // length prefix followed by the reserved data bytes
}

// Len returns the number of bytes written to s.
func (s Str) Len() int {
	if len(s.buf) < prefixSize {
		return 0
	}
	return int(binary.LittleEndian.Uint16(s.buf))
}

// Cap returns the number of bytes reserved for s.
func (s Str) Cap() int {
	if len(s.buf) < prefixSize {
		return 0
	}
	return len(s.buf) - prefixSize
}

// Bytes returns the written bytes. The result must not be modified.
func (s Str) Bytes() []byte {
	n := s.Len()
	if n == 0 {
		return nil
	}
	return s.buf[prefixSize : prefixSize+n : prefixSize+n]
}

// String returns a copy of s as a Go string.
func (s Str) String() string {
	return string(s.Bytes())
}

// Equal reports whether s holds exactly b. Lengths are compared first.
func (s Str) Equal(b []byte) bool {
	return s.Len() == len(b) && bytes.Equal(s.Bytes(), b)
}

// Write appends p to the reserved space of s.
func (s Str) Write(p []byte) (int, error) {
	n := s.Len()
	if len(p) > s.Cap()-n {
		return 0, ErrFull
	}
	copy(s.buf[prefixSize+n:], p)
	s.setLen(n + len(p))
	return len(p), nil
}

// WriteByte appends c to the reserved space of s.
func (s Str) WriteByte(c byte) error {
	n := s.Len()
	if n >= s.Cap() {
		return ErrFull
	}
	s.buf[prefixSize+n] = c
	s.setLen(n + 1)
	return nil
}

// WriteString appends v to the reserved space of s.
func (s Str) WriteString(v string) (int, error) {
	n := s.Len()
	if len(v) > s.Cap()-n {
		return 0, ErrFull
	}
	copy(s.buf[prefixSize+n:], v)
	s.setLen(n + len(v))
	return len(v), nil
}

func (s Str) setLen(n int) {
	binary.LittleEndian.PutUint16(s.buf, uint16(n)) //nolint:gosec // n <= Cap() <= MaxLen
}
