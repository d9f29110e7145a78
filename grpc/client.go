package grpcserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/GhostFire90/raw-list/grpc/pb/gcachepb"
)

// client fetches cached values from one remote peer over gRPC.
type client[V any] struct {
	addr string // peer address, ip:port
}

func NewClient[V any](addr string) *client[V] {
	return &client[V]{addr: addr}
}

// Fetch implements peer.Fetcher against the peer's GroupCache service.
func (c *client[V]) Fetch(group, key string) (value V, err error) {
	conn, err := grpc.Dial(c.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return value, fmt.Errorf("dial %s: %w", c.addr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	resp, err := gcachepb.NewGroupCacheClient(conn).Get(ctx, &gcachepb.Request{
		Group: group,
		Key:   key,
	})
	if err != nil {
		return value, fmt.Errorf("fetch %s/%s from %s: %w", group, key, c.addr, err)
	}
	if err = json.Unmarshal(resp.GetValue(), &value); err != nil {
		return value, fmt.Errorf("decode %s/%s: %w", group, key, err)
	}
	return value, nil
}
