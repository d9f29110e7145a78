package peer

// Picker selects the peer responsible for a key.
type Picker[V any] interface {
	// Pick returns the fetcher for the peer owning key. The second return
	// is false when the key belongs to the local node.
	Pick(key string) (Fetcher[V], bool)
	AddPeers(addrs ...string)
	DelPeers(addrs ...string)
}

// Fetcher retrieves a group's value for a key from a remote peer, so every
// peer transport should implement it.
type Fetcher[V any] interface {
	Fetch(group, key string) (V, error)
}
