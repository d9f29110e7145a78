package list

import "fmt"

// Node is a single element of a List. Its storage is owned entirely by the
// caller: the list never allocates, copies, or frees a node, it only reads
// and writes the two link fields. A node must not be linked into more than
// one list, or into the same list twice, without an intervening removal; the
// list does not check.
//
// Because the links live inside the element's own storage, callers that
// already manage node memory (arenas, slabs, allocators tracking free
// blocks) pay no extra allocation to keep nodes on a list.
type Node[T any] struct {
	elem T
	next *Node[T]
	prev *Node[T]
}

// NewNode returns an unlinked heap-allocated node holding elem. Callers that
// place nodes in their own storage can build them there instead; the zero
// Node is valid and unlinked.
func NewNode[T any](elem T) *Node[T] {
	return &Node[T]{elem: elem}
}

func (n *Node[T]) Value() T {
	return n.elem
}

func (n *Node[T]) SetValue(elem T) {
	n.elem = elem
}

// Elem returns a pointer to the node's element for in-place mutation.
func (n *Node[T]) Elem() *T {
	return &n.elem
}

// Next returns the node after n, or nil if n is the back node or unlinked.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the node before n, or nil if n is the front node or unlinked.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// String returns a string representation of the Node. The exact format
// should not be relied on; it is provided only for debugging purposes.
func (n *Node[T]) String() string {
	return fmt.Sprintf("Node(%v)", n.elem)
}
