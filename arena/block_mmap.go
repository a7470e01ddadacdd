//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package arena

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func systemPageSize() int {
	return unix.Getpagesize()
}

// mapBlock obtains a zeroed anonymous private mapping. Mappings are never
// unmapped; they live until the process exits.
func mapBlock(size int) ([]byte, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %w", ErrMapFailed, size, err)
	}
	return data, nil
}
