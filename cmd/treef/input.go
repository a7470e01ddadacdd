package main

import (
	"bufio"
	"errors"
	"io"
)

const readBufferSize = 64 * 1024

// readLines calls fn for every line of r with the trailing newline removed.
// The slice passed to fn is only valid until fn returns. Lines have no length
// limit; a final line without a newline is still delivered.
func readLines(r io.Reader, fn func(line []byte) error) error {
	br := bufio.NewReaderSize(r, readBufferSize)
	var long []byte

	for {
		chunk, err := br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			long = append(long, chunk...)
			continue
		}

		line := chunk
		if len(long) > 0 {
			long = append(long, chunk...)
			line = long
		}
		if n := len(line); n > 0 {
			if line[n-1] == '\n' {
				line = line[:n-1]
			}
			if ferr := fn(line); ferr != nil {
				return ferr
			}
		}
		long = long[:0]

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
