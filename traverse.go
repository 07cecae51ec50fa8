package bst

import (
	"cmp"
	"iter"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Order selects one of the traversal orders of a tree.
type Order int8

// Traversal orders. LevelOrder visits nodes breadth-first, all other orders are
// depth-first.
const (
	LevelOrder Order = iota
	PreOrder
	InOrder
	PostOrder
)

func (o Order) String() string {
	switch o {
	case LevelOrder:
		return "level-order"
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	}
	return "<unknown order>"
}

// Visitor is a callback to receive nodes during a traversal. It is called
// exactly once for every node of the tree.
type Visitor[T cmp.Ordered] func(Node[T])

// LevelOrder calls fn for every node, breadth-first and left to right within
// each level. It returns ErrNoVisitor if fn is nil.
func (t *Tree[T]) LevelOrder(fn Visitor[T]) error {
	return t.ForEach(LevelOrder, fn)
}

// PreOrder calls fn for every node, visiting a node before its left and right
// subtrees. It returns ErrNoVisitor if fn is nil.
func (t *Tree[T]) PreOrder(fn Visitor[T]) error {
	return t.ForEach(PreOrder, fn)
}

// InOrder calls fn for every node in ascending order of values.
// It returns ErrNoVisitor if fn is nil.
func (t *Tree[T]) InOrder(fn Visitor[T]) error {
	return t.ForEach(InOrder, fn)
}

// PostOrder calls fn for every node, visiting a node after its left and right
// subtrees. It returns ErrNoVisitor if fn is nil.
func (t *Tree[T]) PostOrder(fn Visitor[T]) error {
	return t.ForEach(PostOrder, fn)
}

// ForEach calls fn for every node of the tree, in the given order.
//
// If fn is nil, ForEach returns ErrNoVisitor without visiting any node.
// fn must not modify the tree.
func (t *Tree[T]) ForEach(order Order, fn Visitor[T]) error {
	if fn == nil {
		tracer().Errorf("%s traversal started without visitor", order)
		return ErrNoVisitor
	}
	if order < LevelOrder || order > PostOrder {
		return ErrIllegalArguments
	}
	if t.IsEmpty() {
		return nil
	}
	t.walk(order, func(n *node[T]) bool {
		fn(view(n))
		return true
	})
	return nil
}

// Values returns an iterator over the values of the tree in the given order.
// Unlike ForEach, iteration may be stopped early.
//
// An unknown order yields an empty sequence.
func (t *Tree[T]) Values(order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.IsEmpty() || order < LevelOrder || order > PostOrder {
			return
		}
		t.walk(order, func(n *node[T]) bool {
			return yield(n.value)
		})
	}
}

// walk drives a traversal. It stops as soon as fn returns false.
func (t *Tree[T]) walk(order Order, fn func(*node[T]) bool) {
	switch order {
	case LevelOrder:
		levelOrder(t.root, fn)
	case PreOrder:
		preOrder(t.root, fn)
	case InOrder:
		inOrder(t.root, fn)
	case PostOrder:
		postOrder(t.root, fn)
	}
}

func levelOrder[T cmp.Ordered](root *node[T], fn func(*node[T]) bool) {
	queue := linkedlistqueue.New()
	queue.Enqueue(root)
	for !queue.Empty() {
		head, _ := queue.Dequeue()
		n := head.(*node[T])
		if !fn(n) {
			return
		}
		if n.left != nil {
			queue.Enqueue(n.left)
		}
		if n.right != nil {
			queue.Enqueue(n.right)
		}
	}
}

func preOrder[T cmp.Ordered](n *node[T], fn func(*node[T]) bool) bool {
	if n == nil {
		return true
	}
	return fn(n) && preOrder(n.left, fn) && preOrder(n.right, fn)
}

func inOrder[T cmp.Ordered](n *node[T], fn func(*node[T]) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, fn) && fn(n) && inOrder(n.right, fn)
}

func postOrder[T cmp.Ordered](n *node[T], fn func(*node[T]) bool) bool {
	if n == nil {
		return true
	}
	return postOrder(n.left, fn) && postOrder(n.right, fn) && fn(n)
}
