// Package arena provides a fixed-capacity node allocator for list. It owns a
// single slab of nodes allocated up front and tracks the free ones on an
// intrusive free list, so handing nodes out and taking them back never
// touches the heap. It is the node-memory provider side of the list's
// ownership contract.
package arena

import "github.com/GhostFire90/raw-list/list"

// Arena hands out nodes from a preallocated slab. Not safe for concurrent
// use.
type Arena[T any] struct {
	slots []list.Node[T]
	free  list.List[T]
}

// New returns an arena of capacity nodes, all free.
func New[T any](capacity int) *Arena[T] {
	a := &Arena[T]{slots: make([]list.Node[T], capacity)}
	for i := range a.slots {
		a.free.PushBack(&a.slots[i])
	}
	return a
}

// Alloc detaches a node from the free list and hands it to the caller. The
// second return is false when the arena is exhausted. The returned node is
// unlinked and zero-valued, ready to be pushed onto a caller's list.
func (a *Arena[T]) Alloc() (*list.Node[T], bool) {
	n := a.free.PopFront()
	if n == nil {
		return nil, false
	}
	return n, true
}

// Free returns node to the arena. node must have come from Alloc on this
// arena and must no longer be linked anywhere; the arena does not check
// either, per the list's trust-the-caller contract. The element is zeroed so
// the arena does not pin the caller's values.
func (a *Arena[T]) Free(node *list.Node[T]) {
	var zero T
	node.SetValue(zero)
	a.free.PushFront(node)
}

// Available reports how many nodes are currently free.
func (a *Arena[T]) Available() int {
	return a.free.Len()
}

// Cap reports the arena's total capacity.
func (a *Arena[T]) Cap() int {
	return len(a.slots)
}
