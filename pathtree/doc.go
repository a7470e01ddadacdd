// Package pathtree builds a prefix-shared tree out of slash-separated paths.
//
// Nodes live in one growable slice and refer to each other by index: every
// node records its first child and its next sibling (a left-child,
// right-sibling tree). Children keep insertion order. The tree has a
// synthetic root that is never stored; its children are the top-level
// components, and the first of them is always node 0.
//
// Names are interned in an arena.Arena, so inserting a path costs one
// allocation per new component and none for components that already exist.
// Sibling lookup is a linear scan comparing length then bytes; directory
// fan-out is small enough in practice that no hashing is used.
//
// The tree only grows. Node indices are stable for the life of the tree.
package pathtree
