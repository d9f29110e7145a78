// Package lru implements an LRU cache with per-entry TTLs on top of the
// intrusive list. The cache owns the node storage; the list only orders it.
package lru

import (
	"time"

	"github.com/GhostFire90/raw-list/list"
)

// entry is the payload embedded in each list node.
type entry[K comparable, V any] struct {
	key     K
	value   V
	expires int64 // unix nanoseconds, 0 means no expiry
}

func (e *entry[K, V]) expired(now int64) bool {
	return e.expires != 0 && e.expires < now
}

// Cache is an LRU cache. It is not safe for concurrent access. The
// recency order lives on an intrusive list whose nodes the cache allocates
// and owns, fulfilling the list's caller-owns-storage contract.
type Cache[K comparable, V any] struct {
	// maxEntries is the maximum number of cache entries before an entry is
	// evicted. Zero means no limit.
	maxEntries int64

	// onEvicted optionally specifies a callback function to be executed
	// when an entry is purged from the cache.
	onEvicted func(key K, value V)

	ll    *list.List[entry[K, V]]
	cache map[K]*list.Node[entry[K, V]]
}

// New creates a new Cache.
// If maxEntries is zero, the cache has no limit and it's assumed that
// eviction is done by the caller.
func New[K comparable, V any](maxEntries int64, onEvicted func(key K, value V)) *Cache[K, V] {
	return &Cache[K, V]{
		maxEntries: maxEntries,
		ll:         list.NewList[entry[K, V]](),
		cache:      make(map[K]*list.Node[entry[K, V]]),
		onEvicted:  onEvicted,
	}
}

// Add adds a value to the cache. expires is an absolute unix-nanosecond
// deadline; zero means the entry never expires.
func (c *Cache[K, V]) Add(key K, value V, expires int64) {
	if node, ok := c.cache[key]; ok {
		c.ll.MoveToFront(node)
		e := node.Elem()
		e.value = value
		e.expires = expires
		return
	}
	node := list.NewNode(entry[K, V]{key: key, value: value, expires: expires})
	c.ll.PushFront(node)
	c.cache[key] = node
	if c.maxEntries != 0 && c.Len() > c.maxEntries {
		c.RemoveOldest()
	}
}

// Get looks up a key's value from the cache.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	node, hit := c.cache[key]
	if !hit {
		return
	}
	// Expired entries are dropped on access.
	if node.Elem().expired(time.Now().UnixNano()) {
		c.removeNode(node)
		return
	}
	c.ll.MoveToFront(node)
	return node.Elem().value, true
}

// Remove removes the provided key from the cache.
func (c *Cache[K, V]) Remove(key K) {
	if node, hit := c.cache[key]; hit {
		c.removeNode(node)
	}
}

// RemoveOldest removes the least recently used entry from the cache.
func (c *Cache[K, V]) RemoveOldest() {
	if node := c.ll.Back(); node != nil {
		c.removeNode(node)
	}
}

// PurgeExpired sweeps the whole cache and drops every expired entry,
// returning the number removed. The sweep removes in place through a cursor
// rather than re-walking from the front after each removal.
func (c *Cache[K, V]) PurgeExpired() int {
	now := time.Now().UnixNano()
	removed := 0
	cur := c.ll.Cursor()
	cur.MoveNext()
	for cur.Node() != nil {
		if !cur.Value().expired(now) {
			cur.MoveNext()
			continue
		}
		node := cur.Remove()
		e := node.Elem()
		delete(c.cache, e.key)
		if c.onEvicted != nil {
			c.onEvicted(e.key, e.value)
		}
		removed++
	}
	return removed
}

func (c *Cache[K, V]) removeNode(node *list.Node[entry[K, V]]) {
	c.ll.Remove(node)
	e := node.Elem()
	delete(c.cache, e.key)
	if c.onEvicted != nil {
		c.onEvicted(e.key, e.value)
	}
}

// Len returns the number of items in the cache.
func (c *Cache[K, V]) Len() int64 {
	return int64(c.ll.Len())
}

// Clear purges all stored items from the cache.
func (c *Cache[K, V]) Clear() {
	if c.onEvicted != nil {
		for _, node := range c.cache {
			e := node.Elem()
			c.onEvicted(e.key, e.value)
		}
	}
	c.ll = list.NewList[entry[K, V]]()
	c.cache = make(map[K]*list.Node[entry[K, V]])
}
