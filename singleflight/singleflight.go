// Package singleflight suppresses duplicate loads: concurrent calls for the
// same key share one execution and its result.
package singleflight

import "sync"

type call[V any] struct {
	wg  sync.WaitGroup
	val V
	err error
}

type Group[V any] struct {
	mu sync.Mutex // protects m
	m  map[string]*call[V]
}

// Do executes fn, making sure only one execution for key is in flight at a
// time. Duplicate callers wait for the original and receive its results.
func (g *Group[V]) Do(key string, fn func() (V, error)) (V, error) {
	g.mu.Lock()
	if g.m == nil {
		g.m = make(map[string]*call[V])
	}
	if c, ok := g.m[key]; ok {
		g.mu.Unlock()
		c.wg.Wait()
		return c.val, c.err
	}
	c := &call[V]{}
	c.wg.Add(1)
	g.m[key] = c
	g.mu.Unlock()

	c.val, c.err = fn()
	c.wg.Done()

	g.mu.Lock()
	delete(g.m, key)
	g.mu.Unlock()

	return c.val, c.err
}
