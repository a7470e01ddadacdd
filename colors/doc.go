// Package colors builds the table that maps a filetype.Type to the SGR escape
// sequence used to color it.
//
// Two unrelated encodings are supported and are never mixed:
//
//   - GNU (LS_COLORS): colon-separated records "xx=params", where xx is a
//     two-letter type code and params is a string of digits and semicolons.
//     Unknown codes are skipped. Any malformed record rejects the whole value.
//   - BSD (LSCOLORS): 22 letters forming 11 foreground/background pairs in a
//     fixed slot order. Letters a..h select a color, x leaves it unset, and an
//     uppercase foreground letter adds bold.
//
// [Build] tries the sources in priority order (GNU, BSD, built-in BSD
// default) and falls through on failure. Every escape string is interned in
// an arena.Arena; a type without a color maps to the empty string.
package colors
