/*
Package journal publishes the mutations of a binary search tree to observers.

A Journal wraps a tree and routes insertions, deletions and rebalancing
through to it. After each mutation an Event is broadcast to all subscribers.
Subscribers may live in other goroutines; mutating the tree is still
restricted to a single goroutine, as the tree itself is not safe for
concurrent use.

	j := journal.New(bst.New(1, 2, 3))
	events, _ := j.Subscribe(ctx, 8)
	go func() {
	    for ev := range events {
	        log.Println(ev)
	    }
	}()
	j.Insert(4)
	…
	j.Close()

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package journal

import (
	"cmp"
	"context"
	"fmt"

	"github.com/guiguan/caster"
	"github.com/npillmayer/bst"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bst'.
func tracer() tracing.Trace {
	return tracing.Select("bst")
}

// ErrClosed is returned when subscribing to a journal which has been closed.
const ErrClosed bst.TreeError = "journal is closed"

// Op is the type of a tree mutation.
type Op int8

// Mutations of a tree
const (
	OpInsert Op = iota
	OpDelete
	OpRebalance
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpRebalance:
		return "rebalance"
	}
	return "<unknown op>"
}

// Event describes a single mutation of a tree.
//
// For OpRebalance, Value is the zero value and Changed reports whether the
// tree has been unbalanced before the operation.
type Event[T cmp.Ordered] struct {
	Op      Op
	Value   T
	Changed bool // did the operation change the set of values or the balance?
	Len     int  // number of values after the operation
}

func (ev Event[T]) String() string {
	if ev.Op == OpRebalance {
		return fmt.Sprintf("%s (changed=%v, len=%d)", ev.Op, ev.Changed, ev.Len)
	}
	return fmt.Sprintf("%s %v (changed=%v, len=%d)", ev.Op, ev.Value, ev.Changed, ev.Len)
}

// Journal routes mutations to a tree and broadcasts them to subscribers.
type Journal[T cmp.Ordered] struct {
	tree *bst.Tree[T]
	cast *caster.Caster // broadcaster for mutation events
}

// New creates a journal for tree. If tree is nil, an empty tree is created.
func New[T cmp.Ordered](tree *bst.Tree[T]) *Journal[T] {
	if tree == nil {
		tree = bst.New[T]()
	}
	return &Journal[T]{
		tree: tree,
		cast: caster.New(nil),
	}
}

// Tree returns the tree observed by this journal. Clients must not mutate the
// tree other than by the journal's methods, as otherwise subscribers will
// miss events.
func (j *Journal[T]) Tree() *bst.Tree[T] {
	return j.tree
}

// Insert inserts v into the tree and publishes an OpInsert event.
func (j *Journal[T]) Insert(v T) bool {
	changed := j.tree.Insert(v)
	j.publish(Event[T]{Op: OpInsert, Value: v, Changed: changed, Len: j.tree.Len()})
	return changed
}

// Delete deletes v from the tree and publishes an OpDelete event.
func (j *Journal[T]) Delete(v T) bool {
	changed := j.tree.Delete(v)
	j.publish(Event[T]{Op: OpDelete, Value: v, Changed: changed, Len: j.tree.Len()})
	return changed
}

// Rebalance rebalances the tree and publishes an OpRebalance event.
func (j *Journal[T]) Rebalance() {
	wasBalanced := j.tree.IsBalanced()
	j.tree.Rebalance()
	j.publish(Event[T]{Op: OpRebalance, Changed: !wasBalanced, Len: j.tree.Len()})
}

// publish blocks until the broadcaster has taken over the event.
func (j *Journal[T]) publish(ev Event[T]) {
	if !j.cast.Pub(ev) {
		tracer().Debugf("journal closed, dropping event %v", ev)
	}
}

// Subscribe creates a channel of events with a buffer of size capacity.
// The channel will be closed when either ctx is done or the journal is closed.
// Subscribers which do not keep up with the events will delay the mutations
// of the tree.
func (j *Journal[T]) Subscribe(ctx context.Context, capacity uint) (<-chan Event[T], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-j.cast.Done():
		return nil, ErrClosed
	default:
	}
	sub, _ := j.cast.Sub(ctx, capacity)
	events := make(chan Event[T], capacity)
	// sub is bound to ctx and will be closed by the broadcaster itself
	go func() {
		defer close(events)
		for {
			select {
			case m, ok := <-sub:
				if !ok {
					return
				}
				ev, ok := m.(Event[T])
				if !ok {
					tracer().Errorf("journal: unexpected message of type %T", m)
					continue
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}

// Close stops broadcasting events and closes all subscriber channels.
// Mutations after Close still change the tree, but will not be published.
func (j *Journal[T]) Close() {
	j.cast.Close()
}
