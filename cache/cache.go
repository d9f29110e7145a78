// Package cache wraps the LRU with a lock so a group can be read and
// populated from multiple goroutines.
package cache

import (
	"sync"

	"github.com/GhostFire90/raw-list/lru"
)

type Cache[K comparable, V any] struct {
	mu  sync.Mutex // LRU reads also reorder entries, so no RWMutex
	lru *lru.Cache[K, V]
}

func New[K comparable, V any](maxEntries int64, onEvicted func(key K, value V)) *Cache[K, V] {
	return &Cache[K, V]{
		lru: lru.New[K, V](maxEntries, onEvicted),
	}
}

func (c *Cache[K, V]) Add(key K, value V, expires int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, value, expires)
}

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Get(key)
}

// PurgeExpired drops every expired entry, returning the number removed.
func (c *Cache[K, V]) PurgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.PurgeExpired()
}

func (c *Cache[K, V]) Len() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}
