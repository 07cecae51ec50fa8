package bst

import (
	"cmp"
	"fmt"
)

// Check validates the search tree invariants: values of a left subtree are
// less than the value of their parent node, values of a right subtree are
// greater. It also checks the tree's bookkeeping of its size.
//
// Errors returned by Check wrap ErrCorrupt. Check is intended to be used in
// tests.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupt)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, has %d", ErrCorrupt, t.size)
		}
		return nil
	}
	count, err := checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrCorrupt, count, t.size)
	}
	return nil
}

// checkNode checks the subtree at n against the exclusive bounds lo and hi,
// where nil stands for an unbounded side. It returns the number of nodes of
// the subtree.
func checkNode[T cmp.Ordered](n *node[T], lo, hi *T) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && !(*lo < n.value) {
		return 0, fmt.Errorf("%w: value %v not greater than %v", ErrCorrupt, n.value, *lo)
	}
	if hi != nil && !(n.value < *hi) {
		return 0, fmt.Errorf("%w: value %v not less than %v", ErrCorrupt, n.value, *hi)
	}
	lcount, err := checkNode(n.left, lo, &n.value)
	if err != nil {
		return 0, err
	}
	rcount, err := checkNode(n.right, &n.value, hi)
	if err != nil {
		return 0, err
	}
	return lcount + rcount + 1, nil
}
