package bst

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"slices"

	"github.com/npillmayer/bst/mergesort"
)

// Tree is a binary search tree of distinct values.
//
// A tree created by
//
//	Tree[T]{}
//
// is a valid object and behaves like an empty tree.
//
// Floating point NaN is unordered and cannot be stored in a tree. New drops
// NaN values, FromSorted rejects them and Insert ignores them.
//
// Insert, Delete and Find take time proportional to the height of the tree.
// The height is logarithmic directly after New or Rebalance, but may grow
// linearly with subsequent insertions.
type Tree[T cmp.Ordered] struct {
	root *node[T]
	size int
}

// New creates a balanced tree from a sequence of values. The values need not
// be sorted and may contain duplicates, which will be dropped.
func New[T cmp.Ordered](values ...T) *Tree[T] {
	if slices.ContainsFunc(values, isNaN[T]) {
		values = slices.DeleteFunc(slices.Clone(values), isNaN[T])
		tracer().Debugf("dropped NaN values")
	}
	unique := mergesort.Unique(values)
	tracer().Debugf("building tree from %d values, %d distinct", len(values), len(unique))
	return &Tree[T]{
		root: buildBalanced(unique),
		size: len(unique),
	}
}

// FromSorted creates a balanced tree from a slice in strictly ascending order,
// skipping the sort and de-duplication steps of New. If sorted violates the
// ordering, FromSorted returns ErrNotStrictlySorted. Input containing NaN is
// rejected with ErrIllegalArguments.
func FromSorted[T cmp.Ordered](sorted []T) (*Tree[T], error) {
	if slices.ContainsFunc(sorted, isNaN[T]) {
		tracer().Errorf("FromSorted: input contains NaN")
		return nil, ErrIllegalArguments
	}
	for i := 1; i < len(sorted); i++ {
		if !(sorted[i-1] < sorted[i]) {
			tracer().Errorf("FromSorted: value %v at index %d out of order", sorted[i], i)
			return nil, ErrNotStrictlySorted
		}
	}
	return &Tree[T]{
		root: buildBalanced(sorted),
		size: len(sorted),
	}, nil
}

// isNaN is true for floating point NaN only; no other value is unequal to
// itself.
func isNaN[T cmp.Ordered](v T) bool {
	return v != v
}

// buildBalanced creates a subtree from a strictly ascending slice. The lower
// median of s becomes the subtree's root, the values before and after it form
// the left and right subtrees.
//
// Time: O(n)
func buildBalanced[T cmp.Ordered](s []T) *node[T] {
	if len(s) == 0 {
		return nil
	}
	mid := (len(s) - 1) / 2
	return &node[T]{
		value: s[mid],
		left:  buildBalanced(s[:mid]),
		right: buildBalanced(s[mid+1:]),
	}
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no values.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Root returns a read-only view of the root node. For an empty tree this is
// the nil view.
func (t *Tree[T]) Root() Node[T] {
	if t == nil {
		return Node[T]{}
	}
	return view(t.root)
}

// Insert adds v to the tree and reports whether the tree changed. Inserting a
// value already present is a no-op. Insert never rebalances the tree.
//
// Time: O(D); Space: O(1)
func (t *Tree[T]) Insert(v T) bool {
	assert(t != nil, "Insert called for nil tree")
	if isNaN(v) {
		return false
	}
	if t.root == nil {
		t.root = &node[T]{value: v}
		t.size++
		return true
	}
	for cur := t.root; ; {
		if v == cur.value {
			return false
		}
		if v < cur.value {
			if cur.left == nil {
				cur.left = &node[T]{value: v}
				break
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = &node[T]{value: v}
				break
			}
			cur = cur.right
		}
	}
	t.size++
	return true
}

// Delete removes v from the tree and reports whether it has been present.
// A node with two children takes over the value of its in-order successor,
// which is then removed from the right subtree instead.
//
// Time: O(D); recursive
func (t *Tree[T]) Delete(v T) bool {
	if t == nil {
		return false
	}
	var deleted bool
	t.root, deleted = deleteNode(t.root, v)
	if deleted {
		t.size--
	}
	return deleted
}

func deleteNode[T cmp.Ordered](cur *node[T], v T) (*node[T], bool) {
	if cur == nil {
		return nil, false
	}
	var deleted bool
	switch {
	case v < cur.value:
		cur.left, deleted = deleteNode(cur.left, v)
	case v > cur.value:
		cur.right, deleted = deleteNode(cur.right, v)
	default:
		if cur.left == nil {
			return cur.right, true
		}
		if cur.right == nil {
			return cur.left, true
		}
		successor := cur.right.leftmost()
		tracer().Debugf("delete %v: promoting successor %v", v, successor.value)
		cur.value = successor.value
		cur.right, deleted = deleteNode(cur.right, successor.value)
		assert(deleted, "in-order successor vanished from right subtree")
	}
	return cur, deleted
}

// Find looks up v and returns a read-only view of the node holding it.
// The boolean result is false if v is not in the tree.
//
// Time: O(D); Space: O(1)
func (t *Tree[T]) Find(v T) (Node[T], bool) {
	if n := t.find(v); n != nil {
		return view(n), true
	}
	return Node[T]{}, false
}

// Contains reports whether v is in the tree.
func (t *Tree[T]) Contains(v T) bool {
	return t.find(v) != nil
}

func (t *Tree[T]) find(v T) *node[T] {
	if t == nil {
		return nil
	}
	for cur := t.root; cur != nil; {
		if v < cur.value {
			cur = cur.left
		} else if v > cur.value {
			cur = cur.right
		} else {
			return cur
		}
	}
	return nil
}

// Min returns the smallest value of the tree. The boolean result is false for
// an empty tree.
func (t *Tree[T]) Min() (T, bool) {
	if t.IsEmpty() {
		var zero T
		return zero, false
	}
	return t.root.leftmost().value, true
}

// Max returns the greatest value of the tree. The boolean result is false for
// an empty tree.
func (t *Tree[T]) Max() (T, bool) {
	if t.IsEmpty() {
		var zero T
		return zero, false
	}
	return t.root.rightmost().value, true
}
