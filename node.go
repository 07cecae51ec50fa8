package bst

import (
	"cmp"
	"fmt"
)

// node is the unit of ownership within a tree. Every node is referenced by
// exactly one parent, or by the tree in case of the root.
type node[T cmp.Ordered] struct {
	value       T
	left, right *node[T]
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// leftmost returns the node with the smallest value in the subtree rooted at n.
func (n *node[T]) leftmost() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[T]) rightmost() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Node is a read-only view of a node within a tree.
//
// A Node created by
//
//	Node[T]{}
//
// is the nil view and represents an absent node. Views stay valid until the
// tree they have been taken from is modified.
type Node[T cmp.Ordered] struct {
	n *node[T]
}

func view[T cmp.Ordered](n *node[T]) Node[T] {
	return Node[T]{n: n}
}

// IsNil reports whether the view refers to no node at all.
func (v Node[T]) IsNil() bool {
	return v.n == nil
}

// Value returns the value stored at the node. For the nil view it returns the
// zero value of T.
func (v Node[T]) Value() T {
	if v.n == nil {
		var zero T
		return zero
	}
	return v.n.value
}

// Left returns the left child of a node and reports whether it exists.
func (v Node[T]) Left() (Node[T], bool) {
	if v.n == nil || v.n.left == nil {
		return Node[T]{}, false
	}
	return view(v.n.left), true
}

// Right returns the right child of a node and reports whether it exists.
func (v Node[T]) Right() (Node[T], bool) {
	if v.n == nil || v.n.right == nil {
		return Node[T]{}, false
	}
	return view(v.n.right), true
}

// IsLeaf is true for nodes without children. The nil view is not a leaf.
func (v Node[T]) IsLeaf() bool {
	return v.n != nil && v.n.isLeaf()
}

func (v Node[T]) String() string {
	if v.n == nil {
		return "<nil>"
	}
	return fmt.Sprint(v.n.value)
}
