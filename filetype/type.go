// Package filetype classifies filesystem entries for display.
//
// A Type is assigned once, when a tree node is created, and never changes.
// Classification is best effort: any failure to inspect an entry yields None.
package filetype

// Type enumerates the kinds of entries the color table can distinguish.
// It is the union of the GNU and BSD classification schemes.
type Type uint8

const (
	None   Type = iota // unclassified or classification disabled
	File               // regular file
	Dir                // directory
	Link               // symbolic link
	Pipe               // named pipe (fifo)
	Sock               // socket
	Block              // block device
	Char               // character device
	Orphan             // symbolic link whose target is missing
	Exec               // regular file with an execute bit
	Setuid             // executable with the set-user-id bit
	Setgid             // executable with the set-group-id bit
	Sticky             // directory with the sticky bit
	OtherWritableSticky
	OtherWritable

	// Count is the number of types, for sizing lookup tables.
	Count
)

var typeNames = [Count]string{
	None:                "none",
	File:                "file",
	Dir:                 "dir",
	Link:                "link",
	Pipe:                "pipe",
	Sock:                "sock",
	Block:               "block",
	Char:                "char",
	Orphan:              "orphan",
	Exec:                "exec",
	Setuid:              "setuid",
	Setgid:              "setgid",
	Sticky:              "sticky",
	OtherWritableSticky: "other-writable-sticky",
	OtherWritable:       "other-writable",
}

// String implements the Stringer interface for Type.
func (t Type) String() string {
	if t < Count {
		return typeNames[t]
	}
	return "unknown"
}

// Valid reports whether t indexes a table of Count entries.
func (t Type) Valid() bool {
	return t < Count
}
