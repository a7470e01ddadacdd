//go:build !unix

package filetype

import (
	"io/fs"
	"os"
)

func lstat(path string) Type {
	info, err := os.Lstat(path)
	if err != nil {
		return None
	}
	return FromFileMode(info.Mode())
}

// FromFileMode maps an fs.FileMode to a Type.
func FromFileMode(mode fs.FileMode) Type {
	switch {
	case mode&fs.ModeNamedPipe != 0:
		return Pipe
	case mode&fs.ModeCharDevice != 0:
		return Char
	case mode&fs.ModeDevice != 0:
		return Block
	case mode.IsDir():
		return Dir
	case mode&fs.ModeSymlink != 0:
		return Link
	case mode&fs.ModeSocket != 0:
		return Sock
	case mode.IsRegular():
		if mode&0o111 == 0 {
			return File
		}
		switch {
		case mode&fs.ModeSetuid != 0:
			return Setuid
		case mode&fs.ModeSetgid != 0:
			return Setgid
		default:
			return Exec
		}
	default:
		return None
	}
}
