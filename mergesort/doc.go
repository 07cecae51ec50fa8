/*
Package mergesort provides a stable merge sort for slices of ordered values.

Sort never modifies its argument. It allocates a fresh slice for every merge
step, which makes it a poor fit for hot paths but keeps the algorithm easy to
follow and free of aliasing surprises. Package bst uses it to prepare input
sequences before building a balanced tree.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package mergesort

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bst'
func tracer() tracing.Trace {
	return tracing.Select("bst")
}
