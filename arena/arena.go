package arena

import (
	"fmt"

	"github.com/joshuapare/treef/internal/buf"
)

// Options configures a new Arena.
type Options struct {
	// PageSize is the block granularity. Zero selects the system page size.
	// Values that are not a power of two are ignored.
	PageSize int

	// OnOutOfMemory is called when a block cannot be obtained. It must not
	// return; if it does, the arena panics with the error.
	// Default: panic.
	OnOutOfMemory func(error)
}

// Stats reports block usage.
type Stats struct {
	Blocks   int // blocks obtained so far
	Reserved int // bytes across all blocks
	Used     int // bytes handed out, including prefixes and padding
	Waste    int // abandoned block tails plus alignment padding
	Free     int // bytes left in the current block
	Strings  int // number of reservations
}

// Arena is a bump allocator for Str values.
type Arena struct {
	pageSize int
	onOOM    func(error)
	acquire  func(size int) ([]byte, error)

	// block is the current block; offset is the next free byte in it.
	block  []byte
	offset int

	stats Stats
}

// New creates an Arena and obtains its first block of one page.
func New(opts Options) *Arena {
	pageSize := opts.PageSize
	if !buf.IsPowerOfTwo(pageSize) {
		pageSize = systemPageSize()
	}
	a := &Arena{
		pageSize: pageSize,
		onOOM:    opts.OnOutOfMemory,
		acquire:  mapBlock,
	}
	a.grow(pageSize)
	return a
}

// PageSize returns the block granularity in bytes.
func (a *Arena) PageSize() int {
	return a.pageSize
}

// Alloc reserves room for n bytes and returns an empty Str over it.
// The caller fills it with Write, WriteByte or WriteString.
func (a *Arena) Alloc(n int) (Str, error) {
	if n < 0 {
		return Str{}, ErrBadSize
	}
	if n > MaxLen {
		return Str{}, fmt.Errorf("%w: %d bytes", ErrTooLong, n)
	}

	// n <= MaxLen, so neither step can overflow.
	aligned, _ := buf.AlignUp(n, alignment)
	size := prefixSize + aligned

	if size > len(a.block)-a.offset {
		a.stats.Waste += len(a.block) - a.offset
		blockSize, _ := buf.AlignUp(size, a.pageSize)
		a.grow(blockSize)
	}

	end := a.offset + prefixSize + n
	s := Str{buf: a.block[a.offset:end:end]}
	s.setLen(0)

	a.offset += size
	a.stats.Used += size
	a.stats.Waste += aligned - n
	a.stats.Strings++
	return s, nil
}

// Dup copies b into the arena and returns the sealed Str.
func (a *Arena) Dup(b []byte) (Str, error) {
	s, err := a.Alloc(len(b))
	if err != nil {
		return Str{}, err
	}
	copy(s.buf[prefixSize:], b)
	s.setLen(len(b))
	return s, nil
}

// DupString is Dup for a Go string.
func (a *Arena) DupString(v string) (Str, error) {
	s, err := a.Alloc(len(v))
	if err != nil {
		return Str{}, err
	}
	copy(s.buf[prefixSize:], v)
	s.setLen(len(v))
	return s, nil
}

// Stats returns a snapshot of block usage.
func (a *Arena) Stats() Stats {
	st := a.stats
	st.Free = len(a.block) - a.offset
	return st
}

// grow makes a new block of size bytes current. The old block is abandoned.
func (a *Arena) grow(size int) {
	block, err := a.acquire(size)
	if err != nil {
		a.outOfMemory(err)
	}
	a.block = block
	a.offset = 0
	a.stats.Blocks++
	a.stats.Reserved += len(block)
}

func (a *Arena) outOfMemory(err error) {
	if a.onOOM != nil {
		a.onOOM(err)
	}
	panic(err)
}
