//go:build unix

package filetype

import "golang.org/x/sys/unix"

const execBits = unix.S_IXUSR | unix.S_IXGRP | unix.S_IXOTH

func lstat(path string) Type {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return None
	}
	return FromMode(uint32(st.Mode))
}

// FromMode maps a raw st_mode value to a Type.
func FromMode(mode uint32) Type {
	switch mode & unix.S_IFMT {
	case unix.S_IFIFO:
		return Pipe
	case unix.S_IFCHR:
		return Char
	case unix.S_IFDIR:
		return Dir
	case unix.S_IFBLK:
		return Block
	case unix.S_IFREG:
		if mode&execBits == 0 {
			return File
		}
		// setuid wins over setgid
		switch {
		case mode&unix.S_ISUID != 0:
			return Setuid
		case mode&unix.S_ISGID != 0:
			return Setgid
		default:
			return Exec
		}
	case unix.S_IFLNK:
		return Link
	case unix.S_IFSOCK:
		return Sock
	default:
		return None
	}
}
