package pretty

import (
	"io"
	"strings"

	"github.com/npillmayer/bst"
)

// Sideways prints a tree rotated counter-clockwise by 90 degrees. Each value
// gets a line of its own; right subtrees are printed above and left subtrees
// below their parent node. An empty tree produces no output.
func (p *Printer[T]) Sideways(w io.Writer, tree *bst.Tree[T]) error {
	if tree.IsEmpty() {
		return nil
	}
	c := p.connectors()
	return p.sideways(w, tree.Root(), "", true, &c)
}

type connectors struct {
	vertical, blank string // continuation of the prefix
	lower, upper    string // edge to the node itself
}

func (p *Printer[T]) connectors() connectors {
	n := p.config.Indent
	line := strings.Repeat("─", n-2)
	return connectors{
		vertical: "│" + strings.Repeat(" ", n-1),
		blank:    strings.Repeat(" ", n),
		lower:    "└" + line + " ",
		upper:    "┌" + line + " ",
	}
}

func (p *Printer[T]) sideways(w io.Writer, n bst.Node[T], prefix string, isLeft bool, c *connectors) error {
	if r, ok := n.Right(); ok {
		next := prefix + c.blank
		if isLeft {
			next = prefix + c.vertical
		}
		if err := p.sideways(w, r, next, false, c); err != nil {
			return err
		}
	}
	edge := c.upper
	if isLeft {
		edge = c.lower
	}
	if err := p.edge(w, prefix+edge); err != nil {
		return err
	}
	if err := p.value(w, n); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if l, ok := n.Left(); ok {
		next := prefix + c.vertical
		if isLeft {
			next = prefix + c.blank
		}
		return p.sideways(w, l, next, true, c)
	}
	return nil
}
