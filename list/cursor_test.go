package list

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildList(vals ...int) (*List[int], []*Node[int]) {
	l := NewList[int]()
	nodes := make([]*Node[int], len(vals))
	for i, v := range vals {
		nodes[i] = NewNode(v)
		l.PushBack(nodes[i])
	}
	return l, nodes
}

func TestCursorTraversalCompleteness(t *testing.T) {
	l, nodes := buildList(0, 1, 2, 3, 4)
	cur := l.Cursor()

	if cur.Node() != nil {
		t.Fatalf("fresh cursor should start off-list")
	}
	if _, ok := cur.Index(); ok {
		t.Fatalf("off-list cursor reported an index")
	}

	// Exactly len moves visit every node once, front to back.
	for i := 0; i < l.Len(); i++ {
		cur.MoveNext()
		if cur.Node() != nodes[i] {
			t.Fatalf("move %d landed on %v, want node %d", i, cur.Node(), i)
		}
		idx, ok := cur.Index()
		if !ok || idx != i {
			t.Fatalf("Index = %d, %v, want %d, true", idx, ok, i)
		}
	}

	// One further move falls off the tail; current is the sole off-list
	// signal.
	cur.MoveNext()
	if cur.Node() != nil || cur.Value() != nil {
		t.Fatalf("cursor should be off-list past the back")
	}
	if _, ok := cur.Index(); ok {
		t.Fatalf("off-list cursor reported an index after falling off")
	}

	// And off-list wraps back to the front.
	cur.MoveNext()
	if cur.Node() != nodes[0] {
		t.Fatalf("MoveNext from off-list should land on the front")
	}
}

func TestCursorMovePrev(t *testing.T) {
	l, nodes := buildList(10, 20, 30)
	cur := l.Cursor()

	// Off-list enters at the back.
	cur.MovePrev()
	if cur.Node() != nodes[2] {
		t.Fatalf("MovePrev from off-list = %v, want back node", cur.Node())
	}
	if idx, ok := cur.Index(); !ok || idx != 2 {
		t.Fatalf("Index = %d, %v, want 2, true", idx, ok)
	}

	cur.MovePrev()
	cur.MovePrev()
	if cur.Node() != nodes[0] {
		t.Fatalf("cursor should be at the front")
	}

	// From position 0 the cursor goes off-list; no index underflow.
	cur.MovePrev()
	if cur.Node() != nil {
		t.Fatalf("MovePrev at position 0 should leave the cursor off-list")
	}
	if _, ok := cur.Index(); ok {
		t.Fatalf("off-list cursor reported an index")
	}
}

func TestCursorMovePrevEmptyList(t *testing.T) {
	l := NewList[int]()
	cur := l.Cursor()
	cur.MovePrev()
	if cur.Node() != nil {
		t.Fatalf("MovePrev on empty list should stay off-list")
	}
	cur.MoveNext()
	if cur.Node() != nil {
		t.Fatalf("MoveNext on empty list should stay off-list")
	}
}

func TestCursorValueMutates(t *testing.T) {
	l, _ := buildList(1, 2, 3)
	cur := l.Cursor()
	cur.MoveNext()
	cur.MoveNext()
	*cur.Value() = 22
	if diff := cmp.Diff([]int{1, 22, 3}, collect(l)); diff != "" {
		t.Fatalf("after mutation (-want +got):\n%s", diff)
	}
}

func TestCursorRemove(t *testing.T) {
	l, nodes := buildList(0, 1, 2, 3)
	cur := l.Cursor()
	cur.MoveNext()
	cur.MoveNext() // at node 1

	removed := cur.Remove()
	if removed != nodes[1] {
		t.Fatalf("Remove = %v, want node 1", removed)
	}
	if removed.Next() != nil || removed.Prev() != nil {
		t.Fatalf("removed node keeps links")
	}
	if cur.Node() != nodes[2] {
		t.Fatalf("cursor should advance to the successor")
	}
	// The successor takes over the removed node's position.
	if idx, ok := cur.Index(); !ok || idx != 1 {
		t.Fatalf("Index = %d, %v, want 1, true", idx, ok)
	}
	if l.Len() != 3 {
		t.Fatalf("len = %d, want 3", l.Len())
	}
	checkInvariants(t, l)

	// Removing the back leaves the cursor off-list.
	cur.MoveNext() // node 3, the back
	if cur.Remove() != nodes[3] {
		t.Fatalf("expected to remove the back node")
	}
	if cur.Node() != nil {
		t.Fatalf("cursor should be off-list after removing the back")
	}

	// Off-list Remove is a nil no-op.
	if n := cur.Remove(); n != nil {
		t.Fatalf("off-list Remove = %v, want nil", n)
	}
	if l.Len() != 2 {
		t.Fatalf("off-list Remove changed len to %d", l.Len())
	}
	checkInvariants(t, l)
}

func TestCursorRemoveOnlyNode(t *testing.T) {
	l, nodes := buildList(42)
	cur := l.Cursor()
	cur.MoveNext()
	if cur.Remove() != nodes[0] {
		t.Fatalf("expected to remove the only node")
	}
	if !l.Empty() || l.Front() != nil || l.Back() != nil {
		t.Fatalf("list not empty after removing the only node")
	}
	if cur.Node() != nil {
		t.Fatalf("cursor should be off-list")
	}
}

// TestCursorRemoveAll starts a cursor at a random position and removes until
// off-list, then drains the rest; every node must be removed exactly once.
func TestCursorRemoveAll(t *testing.T) {
	const count = 100
	l := NewList[int]()
	for i := 0; i < count; i++ {
		l.PushFront(NewNode(i))
	}

	start := rand.Intn(l.Len())
	cur := l.Cursor()
	cur.MoveNext()
	for i := 0; i < start; i++ {
		cur.MoveNext()
	}

	removals := 0
	for cur.Node() != nil {
		if cur.Remove() == nil {
			t.Fatalf("on-list Remove returned nil")
		}
		removals++
	}
	checkInvariants(t, l)
	if l.Len() != start {
		t.Fatalf("len = %d after cursor drain from position %d", l.Len(), start)
	}
	for l.PopFront() != nil {
		removals++
	}
	if removals != count {
		t.Fatalf("removed %d nodes total, want %d (start=%d)", removals, count, start)
	}
}

func TestCursorInsertBefore(t *testing.T) {
	const count = 20
	const inserts = 7
	l := NewList[int]()
	for i := 0; i < count; i++ {
		l.PushBack(NewNode(i))
	}

	pos := rand.Intn(count)
	cur := l.Cursor()
	cur.MoveNext()
	for i := 0; i < pos; i++ {
		cur.MoveNext()
	}
	at := cur.Node()

	for i := 0; i < inserts; i++ {
		cur.InsertBefore(NewNode(100 + i))
	}

	if l.Len() != count+inserts {
		t.Fatalf("len = %d, want %d", l.Len(), count+inserts)
	}
	if cur.Node() != at {
		t.Fatalf("cursor moved off its node during inserts")
	}
	// The cursor's logical position shifted by one per insert.
	if idx, ok := cur.Index(); !ok || idx != pos+inserts {
		t.Fatalf("Index = %d, %v, want %d, true", idx, ok, pos+inserts)
	}
	checkInvariants(t, l)

	got := collect(l)
	if len(got) != count+inserts {
		t.Fatalf("traversal yields %d nodes, want %d", len(got), count+inserts)
	}
	// Inserted values sit immediately before the cursor's node, in insert
	// order.
	want := append([]int{}, got[:pos]...)
	for i := 0; i < inserts; i++ {
		want = append(want, 100+i)
	}
	for i := pos; i < count; i++ {
		want = append(want, i)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order after inserts (-want +got):\n%s", diff)
	}
}

// TestCursorRandomMix interleaves cursor removals and inserts at random
// positions and checks the structural invariants after every pass.
func TestCursorRandomMix(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	l := NewList[int]()
	expected := 0
	for i := 0; i < 50; i++ {
		l.PushBack(NewNode(i))
		expected++
	}

	for pass := 0; pass < 200; pass++ {
		cur := l.Cursor()
		cur.MoveNext()
		if l.Len() > 0 {
			for i := rng.Intn(l.Len()); i > 0; i-- {
				cur.MoveNext()
			}
		}
		if rng.Intn(2) == 0 && cur.Node() != nil {
			if cur.Remove() != nil {
				expected--
			}
		} else {
			before := l.Len()
			cur.InsertBefore(NewNode(1000 + pass))
			// Off-list inserts are no-ops.
			if l.Len() != before {
				expected++
			}
		}
		if l.Len() != expected {
			t.Fatalf("pass %d: len = %d, want %d", pass, l.Len(), expected)
		}
		checkInvariants(t, l)
	}
}

func TestCursorInsertBeforeAtFront(t *testing.T) {
	l, nodes := buildList(1, 2)
	cur := l.Cursor()
	cur.MoveNext() // at front
	n := NewNode(0)
	cur.InsertBefore(n)
	if l.Front() != n {
		t.Fatalf("insert before the front should be a push front")
	}
	if cur.Node() != nodes[0] {
		t.Fatalf("cursor left its node")
	}
	if idx, ok := cur.Index(); !ok || idx != 1 {
		t.Fatalf("Index = %d, %v, want 1, true", idx, ok)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, collect(l)); diff != "" {
		t.Fatalf("order (-want +got):\n%s", diff)
	}
}

func TestCursorInsertBeforeOffList(t *testing.T) {
	l, _ := buildList(1, 2)
	cur := l.Cursor()
	cur.InsertBefore(NewNode(99)) // no current position: no-op
	if l.Len() != 2 {
		t.Fatalf("off-list InsertBefore changed len to %d", l.Len())
	}
	if diff := cmp.Diff([]int{1, 2}, collect(l)); diff != "" {
		t.Fatalf("order (-want +got):\n%s", diff)
	}
}
