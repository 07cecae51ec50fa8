package pretty

import (
	"cmp"

	"github.com/npillmayer/bst"
	"github.com/xlab/treeprint"
)

// Placeholder is shown in outlines in place of an absent child of an inner
// node.
const Placeholder = "·"

// Treeprint creates an indented outline of a tree. Children are listed left
// before right. If an inner node has just one child, the other one is shown
// as Placeholder. An empty tree results in an empty string.
func Treeprint[T cmp.Ordered](tree *bst.Tree[T]) string {
	if tree.IsEmpty() {
		return ""
	}
	root := tree.Root()
	outline := treeprint.NewWithRoot(label(root.Value()))
	addChildren(outline, root)
	return outline.String()
}

func addChildren[T cmp.Ordered](branch treeprint.Tree, n bst.Node[T]) {
	if n.IsLeaf() {
		return
	}
	l, lok := n.Left()
	r, rok := n.Right()
	for i, child := range [2]bst.Node[T]{l, r} {
		switch {
		case i == 0 && !lok, i == 1 && !rok:
			branch.AddNode(Placeholder)
		case child.IsLeaf():
			branch.AddNode(label(child.Value()))
		default:
			addChildren(branch.AddBranch(label(child.Value())), child)
		}
	}
}
