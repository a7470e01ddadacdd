package pathtree

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/treef/arena"
	"github.com/joshuapare/treef/filetype"
)

// Separator delimits path components.
const Separator = '/'

const initialCapacity = 8

// NodeID indexes a node in its Tree.
type NodeID int32

// NoNode marks an absent link. As a parent it denotes the synthetic root.
const NoNode NodeID = -1

// Node is one path component.
type Node struct {
	Name    arena.Str
	Type    filetype.Type
	Child   NodeID // first child, in insertion order
	Sibling NodeID // next sibling, in insertion order
}

// Tree is a left-child, right-sibling tree of path components.
type Tree struct {
	nodes    []Node
	height   int
	arena    *arena.Arena
	classify filetype.Classifier
}

// New creates an empty tree that interns names in a and classifies new
// components with c. A nil c disables classification.
func New(a *arena.Arena, c filetype.Classifier) *Tree {
	if c == nil {
		c = filetype.Disabled{}
	}
	return &Tree{arena: a, classify: c}
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Height returns the largest number of components in any inserted path.
func (t *Tree) Height() int {
	return t.height
}

// Node returns the node with the given id. It panics if id is out of range.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// FirstChild returns the first child of parent, where NoNode denotes the
// synthetic root.
func (t *Tree) FirstChild(parent NodeID) NodeID {
	if parent == NoNode {
		if len(t.nodes) == 0 {
			return NoNode
		}
		return 0
	}
	return t.nodes[parent].Child
}

// Add classifies path as a whole and inserts it below the synthetic root.
// It returns the number of components consumed.
func (t *Tree) Add(path []byte) (int, error) {
	return t.InsertPath(NoNode, path, t.classify.Classify(string(path)))
}

// InsertPath inserts the components of path below parent. The last component
// gets leaf; every intermediate component created here is classified using
// the prefix of path that ends with it. Existing nodes keep their type.
//
// Leading, repeated and trailing separators produce no components. If any
// component is longer than arena.MaxLen the tree is left unchanged.
func (t *Tree) InsertPath(parent NodeID, path []byte, leaf filetype.Type) (int, error) {
	if err := checkComponents(path); err != nil {
		return 0, err
	}

	depth := 0
	off := 0
	for {
		for off < len(path) && path[off] == Separator {
			off++
		}
		if off == len(path) {
			break
		}
		depth++

		n := bytes.IndexByte(path[off:], Separator)
		if n < 0 {
			if _, err := t.FindOrAdd(parent, path[off:], leaf); err != nil {
				return depth, err
			}
			break
		}

		end := off + n
		id, last := t.find(parent, path[off:end])
		if id == NoNode {
			ty := t.classify.Classify(string(path[:end]))
			var err error
			if id, err = t.add(parent, last, path[off:end], ty); err != nil {
				return depth, err
			}
		}
		parent = id
		off = end + 1
	}

	if depth > t.height {
		t.height = depth
	}
	return depth, nil
}

// FindOrAdd returns the child of parent called name, creating it with type
// ty when absent. ty is ignored when the child exists.
func (t *Tree) FindOrAdd(parent NodeID, name []byte, ty filetype.Type) (NodeID, error) {
	id, last := t.find(parent, name)
	if id != NoNode {
		return id, nil
	}
	return t.add(parent, last, name, ty)
}

// Find returns the child of parent called name, or NoNode.
func (t *Tree) Find(parent NodeID, name []byte) NodeID {
	id, _ := t.find(parent, name)
	return id
}

// find scans the children of parent. When name is absent it also returns the
// last sibling in the chain so the caller can link a new node after it.
func (t *Tree) find(parent NodeID, name []byte) (found, last NodeID) {
	last = NoNode
	for id := t.FirstChild(parent); id != NoNode; id = t.nodes[id].Sibling {
		if t.nodes[id].Name.Equal(name) {
			return id, last
		}
		last = id
	}
	return NoNode, last
}

// add appends a node and links it after last, or as the first child of parent
// when last is NoNode.
func (t *Tree) add(parent, last NodeID, name []byte, ty filetype.Type) (NodeID, error) {
	s, err := t.arena.Dup(name)
	if err != nil {
		return NoNode, fmt.Errorf("intern %q: %w", name, err)
	}

	t.prepareAdd()
	id := NodeID(len(t.nodes)) //nolint:gosec // bounded by available memory
	t.nodes = append(t.nodes, Node{
		Name:    s,
		Type:    ty,
		Child:   NoNode,
		Sibling: NoNode,
	})

	switch {
	case last != NoNode:
		t.nodes[last].Sibling = id
	case parent != NoNode:
		t.nodes[parent].Child = id
	}
	return id, nil
}

// prepareAdd doubles the node slice when it is full, starting at 8.
func (t *Tree) prepareAdd() {
	if len(t.nodes) < cap(t.nodes) {
		return
	}
	newCap := initialCapacity
	if cap(t.nodes) > 0 {
		newCap = 2 * cap(t.nodes)
	}
	nodes := make([]Node, len(t.nodes), newCap)
	copy(nodes, t.nodes)
	t.nodes = nodes
}

// checkComponents rejects paths with a component the arena cannot hold.
func checkComponents(path []byte) error {
	for len(path) > 0 {
		n := bytes.IndexByte(path, Separator)
		if n < 0 {
			n = len(path)
		}
		if n > arena.MaxLen {
			return fmt.Errorf("component of %d bytes: %w", n, arena.ErrTooLong)
		}
		if n == len(path) {
			break
		}
		path = path[n+1:]
	}
	return nil
}
