package consistentHash

import (
	"fmt"
	"strconv"
	"testing"
)

func TestHashing(t *testing.T) {
	// A custom hash keyed on the numeric suffix keeps the ring predictable:
	// address "6" with replicas 2 yields virtual nodes 06 and 16.
	m := New(2, func(key []byte) uint32 {
		i, _ := strconv.Atoi(string(key))
		return uint32(i)
	})
	m.Add("6", "4", "2")

	// Ring: 2,12 ("2"), 4,14 ("4"), 6,16 ("6").
	testCases := map[string]string{
		"2":  "2",
		"11": "2",
		"23": "2", // past the highest virtual node, wraps to the start
		"7":  "2",
		"3":  "4",
		"5":  "6",
		"15": "6",
	}

	for key, want := range testCases {
		if got := m.Get(key); got != want {
			t.Errorf("Get(%s) = %s, want %s", key, got, want)
		}
	}

	// Removing a peer remaps only its keys.
	m.Remove("4")
	if got := m.Get("3"); got != "6" {
		t.Errorf("after Remove, Get(3) = %s, want 6", got)
	}
	if got := m.Get("2"); got != "2" {
		t.Errorf("after Remove, Get(2) = %s, want 2", got)
	}
}

func TestEmptyRing(t *testing.T) {
	m := New(3, nil)
	if got := m.Get("anything"); got != "" {
		t.Fatalf("Get on empty ring = %q, want empty", got)
	}
}

func TestDistribution(t *testing.T) {
	m := New(50, nil)
	peers := []string{"10.0.0.1:8000", "10.0.0.2:8000", "10.0.0.3:8000"}
	m.Add(peers...)

	counts := make(map[string]int)
	for i := 0; i < 3000; i++ {
		counts[m.Get(fmt.Sprintf("key-%d", i))]++
	}
	for _, p := range peers {
		if counts[p] == 0 {
			t.Errorf("peer %s received no keys", p)
		}
	}
}
