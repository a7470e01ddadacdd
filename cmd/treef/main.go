// Command treef reads slash-separated paths from stdin, one per line, and
// prints them as a tree.
//
// Usage:
//
//	find . | treef
//	git ls-files | treef -s
//
// Flags:
//
//	-s, --stat      classify entries and color them
//	-S, --no-stat   never classify or color
//
// Without either flag, classification is on when stdout is not a terminal.
// Colors come from LS_COLORS, then LSCOLORS, then the built-in palette when
// CLICOLOR is set.
package main

func main() {
	execute()
}
