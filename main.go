// Command raw-list runs one cache node: it registers itself in etcd, serves
// its share of keys to peers over HTTP or gRPC, and optionally exposes a
// client-facing API endpoint.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/GhostFire90/raw-list/conf"
	"github.com/GhostFire90/raw-list/etcd"
	"github.com/GhostFire90/raw-list/gcache"
	grpcserver "github.com/GhostFire90/raw-list/grpc"
	httpserver "github.com/GhostFire90/raw-list/http"
)

// db stands in for the slow backing store a real deployment loads from.
var db = map[string]string{
	"Tom":  "630",
	"Jack": "589",
	"Sam":  "567",
}

func createGroup() *gcache.Group[string] {
	return gcache.NewGroup("scores", conf.GConfig.MaxEntries, gcache.GetterFunc[string](
		func(key string) (string, error) {
			slog.Info("[SlowDB] search key", "key", key)
			if v, ok := db[key]; ok {
				return v, nil
			}
			return "", fmt.Errorf("%s not exist", key)
		}))
}

// startAPIServer exposes a client-facing /api endpoint in front of the
// group.
func startAPIServer(apiAddr string, g *gcache.Group[string]) {
	http.HandleFunc("/api", func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("key")
		view, err := g.Get(key)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte(view))
	})
	log.Println("frontend server is running at", apiAddr)
	log.Fatal(http.ListenAndServe(apiAddr, nil))
}

func main() {
	var (
		ip       string
		port     string
		protocol string
		confPath string
		apiAddr  string
	)
	flag.StringVar(&ip, "ip", "127.0.0.1", "address to bind")
	flag.StringVar(&port, "port", "8001", "cache server port")
	flag.StringVar(&protocol, "protocol", "grpc", "peer transport: grpc or http")
	flag.StringVar(&confPath, "conf", "", "path to a JSON config file")
	flag.StringVar(&apiAddr, "api", "", "client API address, e.g. :9999 (empty: no API server)")
	flag.Parse()

	if confPath != "" {
		if err := conf.Load(confPath); err != nil {
			log.Fatalf("load config %s: %v", confPath, err)
		}
	}

	g := createGroup()
	addr := fmt.Sprintf("%s:%s", ip, port)

	// Seed the ring with whoever is already registered; the etcd watch
	// keeps it current from here on.
	addrs, err := etcd.DiscoverPeers(conf.GConfig.Prefix)
	if err != nil {
		log.Fatalf("discover peers: %v", err)
	}
	addrs = append(addrs, addr)

	if apiAddr != "" {
		go startAPIServer(apiAddr, g)
	}

	switch protocol {
	case "grpc":
		server, err := grpcserver.NewServer[string](addr, ip, port)
		if err != nil {
			log.Fatalf("create server: %v", err)
		}
		server.AddPeers(addrs...)
		g.RegisterServer(server)
		log.Println("gcache is running at", addr)
		log.Fatal(server.Start())
	case "http":
		pool := httpserver.NewHTTPPool[string](addr, ip, port)
		pool.AddPeers(addrs...)
		g.RegisterServer(pool)
		log.Println("gcache is running at", addr)
		log.Fatal(pool.Start())
	default:
		fmt.Fprintf(os.Stderr, "unknown protocol %q\n", protocol)
		os.Exit(2)
	}
}
