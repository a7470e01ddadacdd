// Package buf holds the small pieces of size arithmetic shared by the arena.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// AlignUp rounds n up to the next multiple of align, which must be a power of two.
// ok is false when n is negative or the rounded value would overflow int.
//
// Example:
//
//	AlignUp(1, 2)       = 2
//	AlignUp(4096, 4096) = 4096
//	AlignUp(4097, 4096) = 8192
func AlignUp(n, align int) (int, bool) {
	if n < 0 || align <= 0 || align&(align-1) != 0 {
		return 0, false
	}
	sum, ok := AddOverflowSafe(n, align-1)
	if !ok {
		return 0, false
	}
	return sum &^ (align - 1), true
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
