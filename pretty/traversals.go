package pretty

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/bst"
)

// Traversals holds the values of a tree in each of the four traversal orders.
type Traversals[T cmp.Ordered] struct {
	Level, Pre, In, Post []T
}

// Collect walks a tree once per traversal order and collects the values.
func Collect[T cmp.Ordered](tree *bst.Tree[T]) Traversals[T] {
	var tr Traversals[T]
	collect := func(dst *[]T) bst.Visitor[T] {
		return func(n bst.Node[T]) {
			*dst = append(*dst, n.Value())
		}
	}
	// errors are impossible: orders are valid and visitors non-nil
	_ = tree.LevelOrder(collect(&tr.Level))
	_ = tree.PreOrder(collect(&tr.Pre))
	_ = tree.InOrder(collect(&tr.In))
	_ = tree.PostOrder(collect(&tr.Post))
	return tr
}

// Traversals prints the values of a tree in all four traversal orders, one
// line per order.
func (p *Printer[T]) Traversals(w io.Writer, tree *bst.Tree[T]) error {
	tr := Collect(tree)
	lines := []struct {
		title  string
		values []T
	}{
		{"Level order:", tr.Level},
		{"Pre order:", tr.Pre},
		{"In order:", tr.In},
		{"Post order:", tr.Post},
	}
	for _, line := range lines {
		if err := p.edge(w, fmt.Sprintf("%-13s ", line.title)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, join(line.values)); err != nil {
			return err
		}
	}
	return nil
}

func join[T cmp.Ordered](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = label(v)
	}
	return strings.Join(s, ", ")
}
