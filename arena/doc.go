// Package arena provides a bump allocator for immutable, length-prefixed strings.
//
// # Overview
//
// Every path component the tree interns lives in an arena block. A block is a
// page-aligned region obtained once from the operating system (an anonymous
// private mapping on Unix systems, a plain heap slice elsewhere). Allocation
// advances an offset through the current block; when a request does not fit,
// a fresh block sized to at least the request (rounded up to the page size)
// becomes current. The previous block stays alive only through strings that
// were already handed out.
//
// Nothing is ever freed, compacted or resized. Memory is released when the
// process exits.
//
// # Strings
//
// A [Str] is a handle on a reservation:
//
//	+---------+----------------------+---------+
//	| len u16 | data (reserved n)    | padding |
//	+---------+----------------------+---------+
//
// The length prefix is stored in the block itself, so copies of a handle
// observe the same length. [Arena.Dup] returns a sealed string; [Arena.Alloc]
// returns an empty string with room for n bytes which the caller fills
// through [Str.Write], [Str.WriteByte] or [Str.WriteString].
//
// # Alignment
//
// Reservations are rounded up to a 2-byte boundary so every length prefix
// stays aligned to its own size.
//
// # Out of memory
//
// Failing to obtain a block is not recoverable. The arena calls
// [Options.OnOutOfMemory], which defaults to a panic; the command installs a
// hook that logs and terminates the process.
//
// # Thread Safety
//
// An Arena is not safe for concurrent use.
package arena
