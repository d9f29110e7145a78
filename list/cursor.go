package list

// Cursor is a mutable positional handle over a List. It starts at the
// off-list position, a single state that also serves as "past either end":
// MoveNext from off-list enters at the front, MovePrev enters at the back,
// and walking past an end returns the cursor off-list.
//
// A nil current node is the only authoritative off-list signal. The stored
// index is maintained only while a current node exists and is never exposed
// raw; use Index.
type Cursor[T any] struct {
	list    *List[T]
	current *Node[T]
	idx     int
}

// MoveNext advances the cursor one position toward the back, entering the
// list at the front when off-list. Advancing past the back leaves the cursor
// off-list.
func (c *Cursor[T]) MoveNext() {
	if c.current != nil {
		c.idx++
		c.current = c.current.next
	} else {
		c.idx = 0
		c.current = c.list.front
	}
}

// MovePrev moves the cursor one position toward the front, entering the list
// at the back when off-list. Moving back from position 0 leaves the cursor
// off-list; the index never underflows because it is not maintained in that
// state.
func (c *Cursor[T]) MovePrev() {
	if c.current != nil {
		if c.idx > 0 {
			c.idx--
		}
		c.current = c.current.prev
	} else {
		c.idx = c.list.len - 1
		c.current = c.list.back
	}
}

// Value returns a pointer to the current element for in-place mutation, or
// nil if the cursor is off-list.
func (c *Cursor[T]) Value() *T {
	if c.current == nil {
		return nil
	}
	return &c.current.elem
}

// Node returns the node under the cursor, or nil if off-list.
func (c *Cursor[T]) Node() *Node[T] {
	return c.current
}

// Index reports the 0-based position of the current node. The second return
// is false when the cursor is off-list; the position is meaningless then.
func (c *Cursor[T]) Index() (int, bool) {
	if c.current == nil {
		return 0, false
	}
	return c.idx, true
}

// Remove detaches the node under the cursor, advances the cursor to that
// node's successor, and returns the detached node with its links cleared.
// Ownership of the node's storage stays with the caller. Off-list, Remove is
// a no-op returning nil.
func (c *Cursor[T]) Remove() *Node[T] {
	removed := c.current
	if removed == nil {
		return nil
	}
	c.MoveNext()

	// MoveNext counted one position forward; the successor actually keeps
	// the removed node's old index once the unlink happens.
	c.idx--

	prev, next := removed.prev, removed.next
	switch {
	case prev == nil:
		// Front node, or the only node: the list's own detach logic covers
		// both ends.
		c.list.PopFront()
	case next == nil:
		c.list.PopBack()
	default:
		prev.next = next
		next.prev = prev
		removed.prev = nil
		removed.next = nil
		c.list.len--
	}
	return removed
}

// InsertBefore links node immediately before the current position. The
// cursor stays on the same node, now one position further from the front.
// Off-list there is no "before", so the call is a no-op; position the cursor
// first. node must be unlinked.
func (c *Cursor[T]) InsertBefore(node *Node[T]) {
	if c.current == nil {
		return
	}
	prev := c.current.prev
	if prev == nil {
		c.list.PushFront(node)
	} else {
		prev.next = node
		c.current.prev = node
		node.prev = prev
		node.next = c.current
		c.list.len++
	}
	c.idx++
}
