// Package conf holds node configuration loaded from a JSON file.
package conf

import (
	"encoding/json"
	"os"
)

type Config struct {
	// Replicas is the virtual node multiplier on the consistent hash ring.
	Replicas int `json:"replicas"`
	// Expires is the cache TTL in minutes for locally loaded values.
	Expires int64 `json:"expires"`
	// MaxEntries bounds each group's main cache. Zero means no limit.
	MaxEntries int64 `json:"max_entries"`
	// HttpBasePath is the peer endpoint prefix, e.g. "/_gcache/".
	HttpBasePath string `json:"http_base_path"`
	// Prefix is the etcd key prefix services register under.
	Prefix string `json:"prefix"`
	// EtcdEndpoints lists the etcd servers used for registration and peer
	// discovery.
	EtcdEndpoints []string `json:"etcd_endpoints"`
	// RegisterTTL is the lease TTL in seconds for service registration.
	RegisterTTL int64 `json:"register_ttl"`
}

// GConfig is the active configuration. The defaults work for a single local
// node next to a default etcd.
var GConfig = &Config{
	Replicas:      50,
	Expires:       10,
	MaxEntries:    2 << 10,
	HttpBasePath:  "/_gcache/",
	Prefix:        "/gcache/services",
	EtcdEndpoints: []string{"127.0.0.1:2379"},
	RegisterTTL:   5,
}

// Load replaces defaults with values from the JSON file at path. Fields
// absent from the file keep their defaults.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, GConfig)
}
