// Package etcd registers cache nodes in etcd and keeps every node's peer set
// in sync with the registry.
package etcd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/GhostFire90/raw-list/conf"
	"github.com/GhostFire90/raw-list/peer"
)

// Service describes one cache node in the registry.
type Service struct {
	Addr     string `json:"addr"` // host:port, the consistent-hash identity
	IP       string `json:"ip"`
	Port     string `json:"port"`
	Protocol string `json:"protocol"` // "http" or "grpc"
}

func serviceKey(prefix, addr string) string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(prefix, "/"), addr)
}

func newClient() (*clientv3.Client, error) {
	return clientv3.New(clientv3.Config{
		Endpoints:   conf.GConfig.EtcdEndpoints,
		DialTimeout: 5 * time.Second,
	})
}

// Register publishes svc under a leased key and blocks renewing the lease.
// It returns once the keepalive stream closes (etcd unreachable or the
// process shutting down); the lease then expires on its own and peers drop
// this node from their rings.
func Register(svc *Service) error {
	cli, err := newClient()
	if err != nil {
		return fmt.Errorf("connect to etcd: %w", err)
	}
	defer cli.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	lease, err := cli.Grant(ctx, conf.GConfig.RegisterTTL)
	cancel()
	if err != nil {
		return fmt.Errorf("grant lease: %w", err)
	}

	data, err := json.Marshal(svc)
	if err != nil {
		return err
	}
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	_, err = cli.Put(ctx, serviceKey(conf.GConfig.Prefix, svc.Addr), string(data), clientv3.WithLease(lease.ID))
	cancel()
	if err != nil {
		return fmt.Errorf("register service: %w", err)
	}

	ch, err := cli.KeepAlive(context.Background(), lease.ID)
	if err != nil {
		return fmt.Errorf("keepalive: %w", err)
	}
	slog.Info("[etcd] service registered", "addr", svc.Addr, "protocol", svc.Protocol)
	for range ch {
		// lease extended
	}
	slog.Info("[etcd] keepalive stopped", "addr", svc.Addr)
	return nil
}

// DiscoverPeers returns the addresses currently registered under prefix.
func DiscoverPeers(prefix string) ([]string, error) {
	cli, err := newClient()
	if err != nil {
		return nil, fmt.Errorf("connect to etcd: %w", err)
	}
	defer cli.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := cli.Get(ctx, prefix, clientv3.WithPrefix())
	if err != nil {
		return nil, fmt.Errorf("discover peers: %w", err)
	}

	addrs := make([]string, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		var svc Service
		if err := json.Unmarshal(kv.Value, &svc); err != nil {
			slog.Error("[etcd] bad service record", "key", string(kv.Key), "err", err)
			continue
		}
		addrs = append(addrs, svc.Addr)
	}
	return addrs, nil
}

// WatchPeers feeds registry changes under prefix into p, adding peers as
// they register and dropping them as their leases expire. It blocks for the
// life of the process.
func WatchPeers[V any](p peer.Picker[V], prefix string) {
	cli, err := newClient()
	if err != nil {
		slog.Error("[etcd] watch connect failed", "err", err)
		return
	}
	defer cli.Close()

	for resp := range cli.Watch(context.Background(), prefix, clientv3.WithPrefix()) {
		for _, ev := range resp.Events {
			switch ev.Type {
			case clientv3.EventTypePut:
				var svc Service
				if err := json.Unmarshal(ev.Kv.Value, &svc); err != nil {
					slog.Error("[etcd] bad service record", "key", string(ev.Kv.Key), "err", err)
					continue
				}
				slog.Info("[etcd] peer up", "addr", svc.Addr)
				p.AddPeers(svc.Addr)
			case clientv3.EventTypeDelete:
				// Deletes carry no value; the address is the key suffix.
				addr := strings.TrimPrefix(string(ev.Kv.Key), strings.TrimSuffix(prefix, "/")+"/")
				slog.Info("[etcd] peer down", "addr", addr)
				p.DelPeers(addr)
			}
		}
	}
}
