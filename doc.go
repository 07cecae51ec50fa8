/*
Package bst implements an unbalanced binary search tree which may be rebuilt
into a height-balanced shape on request.

# Trees

A tree holds distinct values of an ordered type. It is created from an
arbitrary sequence of values, which will be sorted and de-duplicated first:

	tree := bst.New(1, 7, 4, 23, 8, 9, 4, 3, 5, 7, 9, 67, 6345, 324)

Construction always yields a balanced tree, with the lower median of every
sub-range at the root of the corresponding subtree. Insertion and deletion
operate directly on the node graph and will never rotate nodes. A long run of
ascending insertions therefore degenerates the tree into a list. Clients may
check for this condition with IsBalanced and call Rebalance to rebuild the
tree from its in-order sequence of values.

# Nodes

Nodes are owned by the tree exclusively. Clients never hold a mutable node;
functions returning tree structure hand out values of type Node, which are
read-only views onto the node graph. A view is valid until the next mutating
operation on its tree.

Trees are not safe for concurrent use. Package journal offers a way to
observe mutations from other goroutines.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bst'
func tracer() tracing.Trace {
	return tracing.Select("bst")
}

// TreeError is an error type for the bst module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrNoVisitor is flagged if a traversal is started without a visitor callback.
const ErrNoVisitor = TreeError("no visitor callback provided")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrNotStrictlySorted is flagged by FromSorted for input which is not in
// strictly ascending order.
const ErrNotStrictlySorted = TreeError("values not strictly sorted")

// ErrCorrupt signals a violation of the search tree invariants.
const ErrCorrupt = TreeError("tree is corrupt")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
