// Package gcache ties the cache stack together: named groups front a
// locked LRU, load misses through a caller-supplied getter, and defer to a
// peer picker when another node owns the key.
package gcache

import (
	"log/slog"
	"sync"
	"time"

	"github.com/GhostFire90/raw-list/cache"
	"github.com/GhostFire90/raw-list/conf"
	"github.com/GhostFire90/raw-list/peer"
	"github.com/GhostFire90/raw-list/singleflight"
)

// A Getter loads data for a key.
type Getter[V any] interface {
	Get(key string) (V, error)
}

// A GetterFunc implements Getter with a function.
type GetterFunc[V any] func(key string) (V, error)

func (f GetterFunc[V]) Get(key string) (V, error) {
	return f(key)
}

// Group is a namespace of cached values loaded by one getter.
type Group[V any] struct {
	name      string
	getter    Getter[V]
	mainCache *cache.Cache[string, V]
	// peers is nil on single-node deployments; then every miss loads
	// locally.
	peers peer.Picker[V]
	// loader collapses concurrent loads of the same key.
	loader *singleflight.Group[V]
}

var (
	mu     sync.RWMutex
	groups = make(map[string]any)
)

// NewGroup creates and registers a Group. Groups live for the process; a
// nil getter is a programming error.
func NewGroup[V any](name string, maxEntries int64, getter Getter[V]) *Group[V] {
	if getter == nil {
		panic("nil Getter")
	}
	mu.Lock()
	defer mu.Unlock()
	g := &Group[V]{
		name:      name,
		getter:    getter,
		mainCache: cache.New[string, V](maxEntries, nil),
		loader:    &singleflight.Group[V]{},
	}
	groups[name] = g
	return g
}

// GetGroup returns the named group previously created with NewGroup, or nil
// if there's no such group (or it holds a different value type).
func GetGroup[V any](name string) *Group[V] {
	mu.RLock()
	g := groups[name]
	mu.RUnlock()
	group, ok := g.(*Group[V])
	if !ok {
		return nil
	}
	return group
}

// RegisterServer registers a peer Picker for choosing remote peers. It may
// be called at most once per group.
func (g *Group[V]) RegisterServer(peers peer.Picker[V]) {
	if g.peers != nil {
		slog.Error("RegisterServer called more than once", "group", g.name)
		return
	}
	g.peers = peers
}

func (g *Group[V]) Name() string {
	return g.name
}

// Get returns the value for key, loading it on a miss.
func (g *Group[V]) Get(key string) (V, error) {
	if v, ok := g.mainCache.Get(key); ok {
		slog.Info("[GCache] hit", "group", g.name, "key", key)
		return v, nil
	}
	return g.load(key)
}

// load fetches a missing key, preferring the owning peer, and collapses
// concurrent loads.
func (g *Group[V]) load(key string) (V, error) {
	return g.loader.Do(key, func() (V, error) {
		if g.peers != nil {
			if p, ok := g.peers.Pick(key); ok {
				value, err := g.getFromPeer(p, key)
				if err == nil {
					return value, nil
				}
				slog.Info("[GCache] failed to get from peer, loading locally", "group", g.name, "key", key, "err", err)
			}
		}
		return g.getLocally(key)
	})
}

func (g *Group[V]) getFromPeer(p peer.Fetcher[V], key string) (V, error) {
	return p.Fetch(g.name, key)
}

func (g *Group[V]) getLocally(key string) (V, error) {
	value, err := g.getter.Get(key)
	if err != nil {
		return value, err
	}
	expires := time.Now().Add(time.Duration(conf.GConfig.Expires) * time.Minute).UnixNano()
	g.populateCache(key, value, expires)
	return value, nil
}

func (g *Group[V]) populateCache(key string, value V, expires int64) {
	g.mainCache.Add(key, value, expires)
}

// PurgeExpired drops expired entries from the group's cache, returning the
// number removed. Deployments that want active expiry call this from a
// ticker; otherwise entries fall out lazily on access.
func (g *Group[V]) PurgeExpired() int {
	return g.mainCache.PurgeExpired()
}
