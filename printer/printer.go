// Package printer renders a pathtree.Tree as box-drawing text, one line per
// node, optionally coloring names through a colors.Table.
package printer

import (
	"bufio"
	"io"

	"github.com/joshuapare/treef/colors"
	"github.com/joshuapare/treef/pathtree"
)

// Glyphs are the 4-column blocks drawn in front of a name.
type Glyphs struct {
	Tee    string // branch with more siblings below
	Corner string // last branch of its parent
	Pipe   string // indent under an ancestor that has more siblings
	Blank  string // indent under an ancestor that was the last child
}

var (
	// BoxGlyphs draws with Unicode box-drawing characters.
	BoxGlyphs = Glyphs{Tee: "├── ", Corner: "└── ", Pipe: "│   ", Blank: "    "}

	// ASCIIGlyphs draws with plain ASCII.
	ASCIIGlyphs = Glyphs{Tee: "|-- ", Corner: "`-- ", Pipe: "|   ", Blank: "    "}
)

// Options controls rendering.
type Options struct {
	// Colors maps node types to escape sequences. A nil or disabled table
	// prints plain names.
	// Default: nil
	Colors *colors.Table

	// Glyphs selects the branch drawing set.
	// Default: BoxGlyphs
	Glyphs Glyphs
}

// DefaultOptions returns plain box-drawing output.
func DefaultOptions() Options {
	return Options{Glyphs: BoxGlyphs}
}

// Printer writes a tree to an io.Writer.
type Printer struct {
	tree   *pathtree.Tree
	writer io.Writer
	opts   Options
}

// New creates a Printer for t that writes to w.
func New(t *pathtree.Tree, w io.Writer, opts Options) *Printer {
	if opts.Glyphs == (Glyphs{}) {
		opts.Glyphs = BoxGlyphs
	}
	return &Printer{tree: t, writer: w, opts: opts}
}

// Print renders the whole tree. An empty tree prints nothing.
//
// When the tree has more than one node and every path starts with the same
// component, that component is printed once, without a branch glyph, as the
// root and the drawing starts at its first child.
func (p *Printer) Print() error {
	if p.tree.Len() == 0 {
		return nil
	}

	w := bufio.NewWriter(p.writer)

	start := pathtree.NodeID(0)
	if first := p.tree.Node(0); p.tree.Len() > 1 && first.Sibling == pathtree.NoNode {
		p.writeName(w, first)
		start = first.Child
	}
	p.printNodes(w, start)

	return w.Flush()
}

// printNodes walks depth-first, pre-order, from id. ancestors holds the path
// from the starting level down to the current node's parent; its capacity is
// the tree height, which bounds the depth.
func (p *Printer) printNodes(w *bufio.Writer, id pathtree.NodeID) {
	g := p.opts.Glyphs
	ancestors := make([]pathtree.NodeID, 0, p.tree.Height())

	for {
		node := p.tree.Node(id)

		for _, a := range ancestors {
			if p.tree.Node(a).Sibling == pathtree.NoNode {
				w.WriteString(g.Blank)
			} else {
				w.WriteString(g.Pipe)
			}
		}
		if node.Sibling == pathtree.NoNode {
			w.WriteString(g.Corner)
		} else {
			w.WriteString(g.Tee)
		}
		p.writeName(w, node)

		if node.Child != pathtree.NoNode {
			ancestors = append(ancestors, id)
			id = node.Child
			continue
		}

		next := node.Sibling
		for next == pathtree.NoNode && len(ancestors) > 0 {
			id = ancestors[len(ancestors)-1]
			ancestors = ancestors[:len(ancestors)-1]
			next = p.tree.Node(id).Sibling
		}
		if next == pathtree.NoNode {
			return
		}
		id = next
	}
}

// writeName writes the node name and the line terminator, wrapped in the
// type's escape sequence when it has one.
func (p *Printer) writeName(w *bufio.Writer, node pathtree.Node) {
	if sgr := p.opts.Colors.SGR(node.Type); sgr.Len() > 0 {
		w.Write(sgr.Bytes())
		w.Write(node.Name.Bytes())
		w.Write(p.opts.Colors.ResetEOL().Bytes())
		return
	}
	w.Write(node.Name.Bytes())
	w.WriteByte('\n')
}
