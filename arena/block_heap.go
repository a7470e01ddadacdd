//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package arena

import "os"

func systemPageSize() int {
	return os.Getpagesize()
}

// mapBlock falls back to a heap slice where anonymous mappings are unavailable.
func mapBlock(size int) ([]byte, error) {
	return make([]byte, size), nil
}
