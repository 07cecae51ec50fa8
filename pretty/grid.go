package pretty

import (
	"cmp"
	"io"

	"github.com/npillmayer/bst"
)

type gridCell[T cmp.Ordered] struct {
	node        bst.Node[T]
	label       string
	depth, rank int
}

// Grid prints a tree top-down, one line per level of the tree. Every value is
// placed in the column given by its in-order rank, so the columns are sorted
// from left to right. Columns are as wide as their labels' display width,
// which accounts for wide East Asian characters.
func (p *Printer[T]) Grid(w io.Writer, tree *bst.Tree[T]) error {
	if tree.IsEmpty() {
		return nil
	}
	cells := make([]gridCell[T], 0, tree.Len())
	var place func(n bst.Node[T], depth int)
	place = func(n bst.Node[T], depth int) {
		if l, ok := n.Left(); ok {
			place(l, depth+1)
		}
		cells = append(cells, gridCell[T]{
			node:  n,
			label: label(n.Value()),
			depth: depth,
			rank:  len(cells),
		})
		if r, ok := n.Right(); ok {
			place(r, depth+1)
		}
	}
	place(tree.Root(), 0)
	rows := 0
	colwidth := make([]int, len(cells))
	for i, c := range cells {
		colwidth[i] = p.width(c.label)
		rows = max(rows, c.depth+1)
	}
	tracer().Debugf("grid layout with %d rows and %d columns", rows, len(cells))
	byRow := make([][]gridCell[T], rows)
	for _, c := range cells { // in rank order
		byRow[c.depth] = append(byRow[c.depth], c)
	}
	for _, row := range byRow {
		col := 0
		for i, c := range row {
			skip := 0
			for ; col < c.rank; col++ {
				skip += colwidth[col] + 1
			}
			if skip > 0 {
				if _, err := io.WriteString(w, pad("", skip)); err != nil {
					return err
				}
			}
			if err := p.value(w, c.node); err != nil {
				return err
			}
			col++
			if i < len(row)-1 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
