package bst

import "cmp"

// Height returns the height of the node holding v, i.e. the number of edges on
// the longest downward path from that node to a leaf. Leafs have height 0.
// The boolean result is false if v is not in the tree.
//
// Time: O(n) for the subtree below v; recursive
func (t *Tree[T]) Height(v T) (int, bool) {
	n := t.find(v)
	if n == nil {
		return 0, false
	}
	return height(n), true
}

// height counts edges; an absent subtree has height -1.
func height[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return -1
	}
	return max(height(n.left), height(n.right)) + 1
}

// Depth returns the number of edges between the root and the node holding v.
// The boolean result is false if v is not in the tree.
//
// Time: O(D); recursive
func (t *Tree[T]) Depth(v T) (int, bool) {
	if t == nil {
		return 0, false
	}
	return depth(t.root, v, 0)
}

func depth[T cmp.Ordered](n *node[T], v T, d int) (int, bool) {
	if n == nil {
		return 0, false
	}
	if v < n.value {
		return depth(n.left, v, d+1)
	} else if v > n.value {
		return depth(n.right, v, d+1)
	}
	return d, true
}

// IsBalanced reports whether, for every node of the tree, the heights of its
// left and right subtrees differ by no more than 1. The empty tree is balanced.
//
// Time: O(n); recursive, stops descending at the first unbalanced subtree
func (t *Tree[T]) IsBalanced() bool {
	if t == nil {
		return true
	}
	return balancedHeight(t.root) != unbalanced
}

// unbalanced is returned by balancedHeight as soon as it detects a violation.
const unbalanced = -1

// balancedHeight returns the number of nodes on the longest downward path of a
// balanced subtree, which is 0 for an absent subtree. This differs from height
// by 1. For unbalanced subtrees it returns the sentinel value unbalanced.
func balancedHeight[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	lh := balancedHeight(n.left)
	if lh == unbalanced {
		return unbalanced
	}
	rh := balancedHeight(n.right)
	if rh == unbalanced {
		return unbalanced
	}
	if lh-rh > 1 || rh-lh > 1 {
		tracer().Debugf("subtree at %v is unbalanced (%d|%d)", n.value, lh, rh)
		return unbalanced
	}
	return max(lh, rh) + 1
}

// Rebalance rebuilds the tree into a height-balanced shape. The resulting
// structure is identical to that of a tree created by New from the current
// values.
//
// Time: O(n); Space: O(n)
func (t *Tree[T]) Rebalance() {
	if t.IsEmpty() {
		return
	}
	values := make([]T, 0, t.size)
	inOrder(t.root, func(n *node[T]) bool {
		values = append(values, n.value)
		return true
	})
	assert(len(values) == t.size, "tree size out of sync with node count")
	// in-order output is strictly ascending already; no need to sort again
	t.root = buildBalanced(values)
	tracer().Debugf("rebalanced tree of %d values", len(values))
}
