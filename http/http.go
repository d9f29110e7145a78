// Package httpserver provides the HTTP peer transport: each node serves its
// groups' values under a base path and fetches keys it does not own from the
// responsible peer.
package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/go-cmp/cmp"

	"github.com/GhostFire90/raw-list/conf"
	"github.com/GhostFire90/raw-list/consistentHash"
	"github.com/GhostFire90/raw-list/etcd"
	"github.com/GhostFire90/raw-list/gcache"
	"github.com/GhostFire90/raw-list/peer"
)

// HTTPPool implements peer.Picker for a pool of HTTP peers.
type HTTPPool[V any] struct {
	// this peer's identity on the ring, e.g. "10.0.0.2:8000"
	addr     string
	ip       string
	port     string
	basePath string
	mu       sync.Mutex // guards peers and httpGetters
	peers    *consistentHash.Map
	// one fetcher per remote node
	httpGetters map[string]*httpGetter[V]
}

// NewHTTPPool initializes an HTTP pool of peers.
func NewHTTPPool[V any](addr, ip, port string) *HTTPPool[V] {
	return &HTTPPool[V]{
		addr:        addr,
		ip:          ip,
		port:        port,
		basePath:    conf.GConfig.HttpBasePath,
		peers:       consistentHash.New(conf.GConfig.Replicas, nil),
		httpGetters: make(map[string]*httpGetter[V]),
	}
}

// ServeHTTP handles peer requests of the form /<basepath><groupname>/<key>.
func (p *HTTPPool[V]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slog.Info("[Server]", "addr", p.addr, "method", r.Method, "url", r.URL.Path)
	if !strings.HasPrefix(r.URL.Path, p.basePath) {
		http.Error(w, "unexpected path: "+r.URL.Path, http.StatusNotFound)
		return
	}

	parts := strings.SplitN(r.URL.Path[len(p.basePath):], "/", 2)
	if len(parts) != 2 {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	groupName, err := url.QueryUnescape(parts[0])
	if err != nil {
		http.Error(w, "bad group", http.StatusBadRequest)
		return
	}
	key, err := url.QueryUnescape(parts[1])
	if err != nil {
		http.Error(w, "bad key", http.StatusBadRequest)
		return
	}

	group := gcache.GetGroup[V](groupName)
	if group == nil {
		http.Error(w, "no such group: "+groupName, http.StatusNotFound)
		return
	}

	view, err := group.Get(key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data, err := json.Marshal(view)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(data)
}

// AddPeers adds nodes to the pool's ring.
func (p *HTTPPool[V]) AddPeers(addrs ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.peers.Add(addrs...)
	for _, addr := range addrs {
		p.httpGetters[addr] = &httpGetter[V]{baseURL: addr + p.basePath}
	}
}

// DelPeers drops nodes from the pool's ring.
func (p *HTTPPool[V]) DelPeers(addrs ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.peers.Remove(addrs...)
	for _, addr := range addrs {
		delete(p.httpGetters, addr)
	}
}

// Pick picks the peer owning key; false means the key is local. Picking
// ourselves would recurse forever, so the own address maps to local.
func (p *HTTPPool[V]) Pick(key string) (peer.Fetcher[V], bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	addr := p.peers.Get(key)
	if cmp.Equal(addr, p.addr) || addr == "" {
		return nil, false
	}
	slog.Info("[Pick] remote peer", "self", p.addr, "peer", addr)
	getter, ok := p.httpGetters[addr]
	return getter, ok
}

// httpGetter fetches values from one remote peer.
type httpGetter[V any] struct {
	baseURL string
}

// Fetch implements peer.Fetcher over HTTP; values travel as JSON.
func (h *httpGetter[V]) Fetch(group, key string) (value V, err error) {
	u := fmt.Sprintf(
		"http://%s%s/%s",
		h.baseURL,
		url.QueryEscape(group),
		url.QueryEscape(key),
	)
	res, err := http.Get(u)
	if err != nil {
		return
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return value, fmt.Errorf("server returned: %v", res.Status)
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return value, fmt.Errorf("reading response body: %v", err)
	}
	if err = json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("decoding response body: %v", err)
	}
	return
}

// Start registers the node in etcd, follows registry changes, and serves
// peer traffic until the listener fails.
func (p *HTTPPool[V]) Start() error {
	go func() {
		// Register blocks while the lease keeps renewing.
		if err := etcd.Register(&etcd.Service{
			Addr:     p.addr,
			IP:       p.ip,
			Port:     p.port,
			Protocol: "http",
		}); err != nil {
			slog.Error("[HTTPPool] registration ended", "err", err)
		}
	}()
	go etcd.WatchPeers[V](p, conf.GConfig.Prefix)

	return http.ListenAndServe(fmt.Sprintf("%s:%s", p.ip, p.port), p)
}
