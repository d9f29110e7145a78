// Package grpcserver provides the gRPC peer transport, the counterpart of
// httpserver for deployments that prefer RPC between nodes. Which host owns
// a key is decided by the consistent hash ring; values cross the wire as
// JSON inside the protobuf response.
package grpcserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc"

	"github.com/GhostFire90/raw-list/conf"
	"github.com/GhostFire90/raw-list/consistentHash"
	"github.com/GhostFire90/raw-list/etcd"
	"github.com/GhostFire90/raw-list/gcache"
	"github.com/GhostFire90/raw-list/grpc/pb/gcachepb"
	"github.com/GhostFire90/raw-list/peer"
)

// Server exposes this node's groups to its peers and implements peer.Picker
// for outgoing lookups. Server and Group are decoupled, so Server handles
// its own concurrency control.
type Server[V any] struct {
	gcachepb.UnimplementedGroupCacheServer

	Addr   string // ring identity, ip:port
	IP     string
	Port   string
	Status bool // true: running, false: stopped

	mu       sync.Mutex
	consHash *consistentHash.Map
	clients  map[string]*client[V]
}

// NewServer creates a cache server listening on ip:port.
func NewServer[V any](addr, ip, port string) (*Server[V], error) {
	if addr == "" {
		addr = fmt.Sprintf("%s:%s", ip, port)
	}
	return &Server[V]{
		Addr:     addr,
		IP:       ip,
		Port:     port,
		consHash: consistentHash.New(conf.GConfig.Replicas, nil),
		clients:  make(map[string]*client[V]),
	}, nil
}

// Get implements the GroupCache service's Get method.
func (s *Server[V]) Get(ctx context.Context, req *gcachepb.Request) (*gcachepb.Response, error) {
	groupName, key := req.GetGroup(), req.GetKey()
	resp := &gcachepb.Response{}
	slog.Info("[GRPC server] recv rpc request", "addr", s.Addr, "group", groupName, "key", key)
	if key == "" || groupName == "" {
		return resp, fmt.Errorf("key and group name are required")
	}

	g := gcache.GetGroup[V](groupName)
	if g == nil {
		return resp, fmt.Errorf("group %s not found", groupName)
	}
	view, err := g.Get(key)
	if err != nil {
		return resp, err
	}
	data, err := json.Marshal(view)
	if err != nil {
		return resp, err
	}
	resp.Value = data
	return resp, nil
}

// Start registers the node in etcd, follows registry changes, and serves
// RPCs until the listener fails or the server is stopped.
func (s *Server[V]) Start() error {
	s.mu.Lock()
	if s.Status {
		s.mu.Unlock()
		return fmt.Errorf("server %s is already started", s.Addr)
	}
	s.Status = true

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", s.IP, s.Port))
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to listen %s: %v", s.Addr, err)
	}
	grpcServer := grpc.NewServer()
	gcachepb.RegisterGroupCacheServer(grpcServer, s)

	go func() {
		// Register blocks while the lease keeps renewing; when it returns
		// the registration is gone, so stop accepting peer traffic too.
		if err := etcd.Register(&etcd.Service{
			Addr:     s.Addr,
			IP:       s.IP,
			Port:     s.Port,
			Protocol: "grpc",
		}); err != nil {
			slog.Error("[GRPC server] registration ended", "addr", s.Addr, "err", err)
		}
		if err := lis.Close(); err != nil {
			slog.Error("[GRPC server] close listener", "err", err)
		}
	}()
	go etcd.WatchPeers[V](s, conf.GConfig.Prefix)
	s.mu.Unlock()

	if err := grpcServer.Serve(lis); s.Status && err != nil {
		return fmt.Errorf("failed to serve %s: %v", s.Addr, err)
	}
	return nil
}

// AddPeers puts remote hosts on the ring so Pick can route to them.
func (s *Server[V]) AddPeers(addrs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consHash.Add(addrs...)
	for _, addr := range addrs {
		s.clients[addr] = NewClient[V](addr)
	}
}

// DelPeers drops remote hosts from the ring.
func (s *Server[V]) DelPeers(addrs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consHash.Remove(addrs...)
	for _, addr := range addrs {
		delete(s.clients, addr)
	}
}

// Pick elects the node a key lives on; false means the local cache serves
// it.
func (s *Server[V]) Pick(key string) (peer.Fetcher[V], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	addr := s.consHash.Get(key)
	if cmp.Equal(addr, s.Addr) || addr == "" {
		return nil, false
	}
	slog.Info("[GRPC server] pick remote peer", "self", s.Addr, "peer", addr)
	c, ok := s.clients[addr]
	return c, ok
}

// Stop marks the server stopped; a no-op if it is not running.
func (s *Server[V]) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Status {
		return
	}
	s.Status = false
	s.clients = nil
	s.consHash = nil
}
