package bst

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

type nodeids[T cmp.Ordered] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T cmp.Ordered]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). Absent children of inner nodes are drawn as
// empty circles, so left and right children remain distinguishable.
func (t *Tree[T]) ToDot(w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[T]()
	nilcnt := 0
	emptyChild := func(parent int) {
		nilcnt++
		nilid := fmt.Sprintf("nil%d", nilcnt)
		fmt.Fprintf(&nodelist, "\t\"%s\" %s;\n", nilid, emptyNode())
		fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%s\";\n", parent, nilid)
	}
	if !t.IsEmpty() {
		preOrder(t.root, func(n *node[T]) bool {
			ID := ids.alloc(n)
			label := strings.ReplaceAll(fmt.Sprint(n.value), `"`, `\"`)
			fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\"%s];\n", ID, label, nodeDotStyles(n.isLeaf()))
			if n.isLeaf() {
				return true
			}
			for _, child := range [2]*node[T]{n.left, n.right} {
				if child == nil {
					emptyChild(ID)
				} else {
					fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
				}
			}
			return true
		})
	}
	var dot strings.Builder
	dot.WriteString("strict digraph {\n")
	dot.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	dot.WriteString(nodelist.String())
	dot.WriteString(edgelist.String())
	dot.WriteString("}\n")
	if _, err := io.WriteString(w, dot.String()); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
