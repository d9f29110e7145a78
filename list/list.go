// Package list implements an intrusive doubly linked list: it tracks an
// ordering over caller-owned nodes without allocating, copying, or freeing
// any memory of its own. It exists as a building block for memory managers
// that need to keep structures (free blocks, cache entries) on a list using
// storage they already own.
package list

// List links caller-owned nodes into a sequence. front and back are nil
// terminated; there are no sentinel nodes, so the list itself never touches
// the heap.
//
// The zero value is an empty list ready to use. A List is not safe for
// concurrent use and performs no validation of the caller's node ownership
// contract (see Node).
type List[T any] struct {
	front *Node[T]
	back  *Node[T]
	len   int
}

func NewList[T any]() *List[T] {
	return &List[T]{}
}

// PushFront links node as the new front. node must be unlinked.
func (l *List[T]) PushFront(node *Node[T]) {
	node.prev = nil
	node.next = l.front
	if l.front != nil {
		l.front.prev = node
	} else {
		l.back = node
	}
	l.front = node
	l.len++
}

// PushBack links node as the new back. node must be unlinked.
func (l *List[T]) PushBack(node *Node[T]) {
	node.next = nil
	node.prev = l.back
	if l.back != nil {
		l.back.next = node
	} else {
		l.front = node
	}
	l.back = node
	l.len++
}

// PopFront detaches and returns the front node, or nil if the list is empty.
// The detached node's links are cleared; its storage remains the caller's to
// reuse or reclaim.
func (l *List[T]) PopFront() *Node[T] {
	old := l.front
	if old == nil {
		return nil
	}
	l.front = old.next
	if l.front != nil {
		l.front.prev = nil
	} else {
		l.back = nil
	}
	old.next = nil
	l.len--
	return old
}

// PopBack detaches and returns the back node, or nil if the list is empty.
func (l *List[T]) PopBack() *Node[T] {
	old := l.back
	if old == nil {
		return nil
	}
	l.back = old.prev
	if l.back != nil {
		l.back.next = nil
	} else {
		l.front = nil
	}
	old.prev = nil
	l.len--
	return old
}

// Front returns the front node without detaching it, or nil if empty.
func (l *List[T]) Front() *Node[T] {
	return l.front
}

// Back returns the back node without detaching it, or nil if empty.
func (l *List[T]) Back() *Node[T] {
	return l.back
}

// FrontValue returns the front element without detaching its node.
func (l *List[T]) FrontValue() (T, bool) {
	if l.front == nil {
		var zero T
		return zero, false
	}
	return l.front.elem, true
}

// BackValue returns the back element without detaching its node.
func (l *List[T]) BackValue() (T, bool) {
	if l.back == nil {
		var zero T
		return zero, false
	}
	return l.back.elem, true
}

func (l *List[T]) Len() int {
	return l.len
}

func (l *List[T]) Empty() bool {
	return l.len == 0
}

// Remove unlinks node in O(1) and clears its links. node must currently be
// linked in l; removing a foreign or unlinked node corrupts the list.
func (l *List[T]) Remove(node *Node[T]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.front = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.back = node.prev
	}
	node.next = nil
	node.prev = nil
	l.len--
}

// MoveToFront relinks an already linked node as the new front.
func (l *List[T]) MoveToFront(node *Node[T]) {
	if l.front == node {
		return
	}
	l.Remove(node)
	l.PushFront(node)
}

// Cursor returns a positional handle over l, starting off-list. The cursor
// assumes exclusive use of the list: until the caller is done with it, any
// other mutation of l (including through another cursor) invalidates it.
func (l *List[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{list: l}
}
