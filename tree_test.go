package bst

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func values[T cmp.Ordered](t *testing.T, tree *Tree[T], order Order) []T {
	t.Helper()
	var s []T
	for v := range tree.Values(order) {
		s = append(s, v)
	}
	return s
}

func TestNewEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := New[int]()
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Errorf("expected empty tree, has len=%d", tree.Len())
	}
	if !tree.Root().IsNil() {
		t.Errorf("expected root of empty tree to be nil view")
	}
	if err := tree.Check(); err != nil {
		t.Errorf("expected empty tree to validate, got %v", err)
	}
	var zero Tree[int]
	if !zero.IsEmpty() || zero.Contains(1) || zero.Delete(1) {
		t.Errorf("expected zero tree to behave like empty tree")
	}
}

func TestNewDropsDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := New(1, 7, 4, 23, 8, 9, 4, 3, 5, 7, 9, 67, 6345, 324)
	want := []int{1, 3, 4, 5, 7, 8, 9, 23, 67, 324, 6345}
	if got := values(t, tree, InOrder); !slices.Equal(got, want) {
		t.Errorf("expected in-order %v, got %v", want, got)
	}
	if tree.Len() != 11 {
		t.Errorf("expected 11 values, have %d", tree.Len())
	}
	if tree.Root().Value() != 8 {
		t.Errorf("expected root to be 8, is %v", tree.Root())
	}
	if !tree.IsBalanced() {
		t.Errorf("expected tree to be balanced")
	}
}

func TestNewLowerMedian(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := New(5, 3, 8, 1, 4)
	root := tree.Root()
	if root.Value() != 4 {
		t.Fatalf("expected root 4, is %v", root)
	}
	l, ok := root.Left()
	if !ok || l.Value() != 1 {
		t.Fatalf("expected left child 1, is %v", l)
	}
	if _, ok := l.Left(); ok {
		t.Errorf("expected node 1 to have no left child")
	}
	if lr, ok := l.Right(); !ok || lr.Value() != 3 || !lr.IsLeaf() {
		t.Errorf("expected leaf 3 as right child of 1, is %v", lr)
	}
	r, ok := root.Right()
	if !ok || r.Value() != 5 {
		t.Fatalf("expected right child 5, is %v", r)
	}
	if rr, ok := r.Right(); !ok || rr.Value() != 8 {
		t.Errorf("expected 8 as right child of 5, is %v", rr)
	}
}

func TestFromSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree, err := FromSorted([]string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatal(err)
	}
	if tree.Root().Value() != "b" || tree.Len() != 4 {
		t.Errorf("expected root 'b' and 4 values, have %v and %d", tree.Root(), tree.Len())
	}
	if _, err = FromSorted([]int{1, 2, 2, 3}); !errors.Is(err, ErrNotStrictlySorted) {
		t.Errorf("expected ErrNotStrictlySorted for duplicate, got %v", err)
	}
	if _, err = FromSorted([]int{3, 2}); !errors.Is(err, ErrNotStrictlySorted) {
		t.Errorf("expected ErrNotStrictlySorted for descending input, got %v", err)
	}
}

func TestInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := &Tree[int]{}
	for _, v := range []int{32, 21, 38, 47, 28, 7, 35} {
		if !tree.Insert(v) {
			t.Errorf("failed to insert %d", v)
		}
	}
	if tree.Root().Value() != 32 {
		t.Errorf("expected first value to become root, root is %v", tree.Root())
	}
	want := []int{7, 21, 28, 32, 35, 38, 47}
	if got := values(t, tree, InOrder); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestInsertDuplicateIsNoOp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := New(1, 2, 3, 4, 5, 6, 7)
	before := values(t, tree, PreOrder)
	if tree.Insert(6) {
		t.Errorf("expected insertion of duplicate to report false")
	}
	if after := values(t, tree, PreOrder); !slices.Equal(before, after) {
		t.Errorf("duplicate insertion changed tree shape: %v -> %v", before, after)
	}
	if tree.Len() != 7 {
		t.Errorf("expected len 7, have %d", tree.Len())
	}
}

func TestInsertDegenerates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := &Tree[int]{}
	for v := 1; v <= 5; v++ {
		tree.Insert(v)
	}
	if h, _ := tree.Height(1); h != 4 {
		t.Errorf("expected ascending insertions to form a list of height 4, height is %d", h)
	}
	if tree.IsBalanced() {
		t.Errorf("expected list-shaped tree to be unbalanced")
	}
}

func TestFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := New(32, 21, 38, 47, 28, 7, 35)
	n, ok := tree.Find(35)
	if !ok || n.Value() != 35 {
		t.Errorf("expected to find 35, got %v", n)
	}
	n, ok = tree.Find(99)
	if ok || !n.IsNil() {
		t.Errorf("expected 99 to be absent, got %v", n)
	}
	if !tree.Contains(7) || tree.Contains(8) {
		t.Errorf("Contains reports wrong membership")
	}
}

func TestDeleteLeafAndInner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := &Tree[int]{}
	for _, v := range []int{32, 21, 38, 47, 28, 7, 35} {
		tree.Insert(v)
	}
	if !tree.Delete(28) { // leaf
		t.Fatalf("failed to delete leaf 28")
	}
	if got := values(t, tree, InOrder); !slices.Equal(got, []int{7, 21, 32, 35, 38, 47}) {
		t.Errorf("unexpected values after deleting leaf: %v", got)
	}
	if !tree.Delete(21) { // one child
		t.Fatalf("failed to delete 21")
	}
	if got := values(t, tree, InOrder); !slices.Equal(got, []int{7, 32, 35, 38, 47}) {
		t.Errorf("unexpected values after deleting inner node: %v", got)
	}
	if tree.Delete(21) {
		t.Errorf("expected second deletion of 21 to report false")
	}
	if _, ok := tree.Find(21); ok {
		t.Errorf("expected 21 to be absent after deletion")
	}
	if tree.Len() != 5 {
		t.Errorf("expected len 5, have %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestDeleteRootPromotesSuccessor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := New(1, 2, 3, 4, 5, 6, 7)
	if got := values(t, tree, LevelOrder); !slices.Equal(got, []int{4, 2, 6, 1, 3, 5, 7}) {
		t.Fatalf("unexpected initial level order %v", got)
	}
	oldroot := tree.Root()
	tree.Delete(4)
	if tree.Root().Value() != 5 {
		t.Errorf("expected successor 5 to become root value, root is %v", tree.Root())
	}
	if oldroot.Value() != 5 {
		t.Errorf("expected root node to be kept with successor value")
	}
	if got := values(t, tree, LevelOrder); !slices.Equal(got, []int{5, 2, 6, 1, 3, 7}) {
		t.Errorf("unexpected level order after deleting root: %v", got)
	}
	r, _ := tree.Root().Right()
	if _, ok := r.Left(); ok {
		t.Errorf("expected successor's old node to be removed")
	}
}

func TestDeleteUntilEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := New(3, 1, 2)
	for _, v := range []int{2, 3, 1} {
		if !tree.Delete(v) {
			t.Errorf("failed to delete %d", v)
		}
	}
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Errorf("expected empty tree")
	}
	tree.Insert(10)
	if tree.Root().Value() != 10 {
		t.Errorf("expected 10 to become root of emptied tree")
	}
}

func TestMinMax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := New(9, 2, 14, 7)
	if m, ok := tree.Min(); !ok || m != 2 {
		t.Errorf("expected min 2, got %d", m)
	}
	if m, ok := tree.Max(); !ok || m != 14 {
		t.Errorf("expected max 14, got %d", m)
	}
	if _, ok := New[int]().Min(); ok {
		t.Errorf("expected no min for empty tree")
	}
}

func TestNaNIsNeverStored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	nan := math.NaN()
	tree := New(2.5, nan, 1.0, nan, 4.0)
	if tree.Len() != 3 {
		t.Errorf("expected NaN values to be dropped, have %d values", tree.Len())
	}
	for range 3 {
		if tree.Insert(nan) {
			t.Errorf("expected insertion of NaN to report false")
		}
	}
	if tree.Len() != 3 || tree.Contains(nan) {
		t.Errorf("expected NaN not to be stored")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	if _, err := FromSorted([]float64{nan}); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected FromSorted to reject NaN, got %v", err)
	}
}
