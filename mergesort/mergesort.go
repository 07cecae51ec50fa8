package mergesort

import "cmp"

// Sort returns the elements of s in non-decreasing order.
//
// Slices of length 0 or 1 are returned as-is, every other input yields a
// newly allocated slice. s itself is never modified.
//
// Time: O(n log n); Space: O(n) per merge level
func Sort[T cmp.Ordered](s []T) []T {
	if len(s) <= 1 {
		return s
	}
	mid := len(s) / 2
	return merge(Sort(s[:mid]), Sort(s[mid:]))
}

// merge combines two sorted slices. An element of left is taken only if it is
// strictly less than the current element of right, ties take from right.
func merge[T cmp.Ordered](left, right []T) []T {
	merged := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] < right[j] {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}
	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)
	return merged
}

// Unique returns the distinct values of s in ascending order.
//
// The result is always a new slice; s is left untouched.
func Unique[T cmp.Ordered](s []T) []T {
	sorted := Sort(s)
	out := make([]T, 0, len(sorted))
	for i, v := range sorted {
		if i > 0 && v == sorted[i-1] {
			continue
		}
		out = append(out, v)
	}
	if len(out) < len(s) {
		tracer().Debugf("unique: dropped %d duplicate(s)", len(s)-len(out))
	}
	return out
}
