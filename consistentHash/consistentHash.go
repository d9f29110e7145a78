// Package consistentHash maps keys onto a ring of peer addresses so that
// adding or removing a peer only remaps a small share of keys.
package consistentHash

import (
	"fmt"
	"hash/crc32"
	"slices"
)

// Hash maps bytes to uint32.
type Hash func(data []byte) uint32

// Map contains all hashed keys. It is not safe for concurrent use; callers
// guard it with their own lock.
type Map struct {
	hash     Hash
	replicas int // virtual nodes per real node
	hashRing []uint32
	hashMap  map[uint32]string // virtual node hash -> real address
}

// New creates a Map with replicas virtual nodes per address. A nil hash
// selects crc32.ChecksumIEEE.
func New(replicas int, hash Hash) *Map {
	m := &Map{
		replicas: replicas,
		hash:     hash,
		hashMap:  make(map[uint32]string),
	}
	if m.hash == nil {
		m.hash = crc32.ChecksumIEEE
	}
	return m
}

// Add adds some addresses to the ring.
func (m *Map) Add(addrs ...string) {
	for _, addr := range addrs {
		for i := 0; i < m.replicas; i++ {
			hash := m.hash([]byte(fmt.Sprintf("%d%s", i, addr)))
			m.hashRing = append(m.hashRing, hash)
			m.hashMap[hash] = addr
		}
	}
	slices.Sort(m.hashRing)
}

// Remove drops addresses and their virtual nodes from the ring.
func (m *Map) Remove(addrs ...string) {
	for _, addr := range addrs {
		for i := 0; i < m.replicas; i++ {
			hash := m.hash([]byte(fmt.Sprintf("%d%s", i, addr)))
			idx, ok := slices.BinarySearch(m.hashRing, hash)
			if !ok {
				continue
			}
			m.hashRing = append(m.hashRing[:idx], m.hashRing[idx+1:]...)
			delete(m.hashMap, hash)
		}
	}
}

// Get returns the address closest clockwise to key's hash, or "" when the
// ring is empty.
func (m *Map) Get(key string) string {
	if len(m.hashRing) == 0 {
		return ""
	}
	hash := m.hash([]byte(key))
	// First ring entry >= hash, wrapping to the start.
	idx, _ := slices.BinarySearch(m.hashRing, hash)
	if idx == len(m.hashRing) {
		idx = 0
	}
	return m.hashMap[m.hashRing[idx]]
}
