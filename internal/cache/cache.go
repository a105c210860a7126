// Package cache provides a sharded TTL LRU cache keyed by integer ids,
// used to keep settled orders by their order number.
package cache

// Cache defines the interface for cache operations.
type Cache[V any] interface {
	Get(key int) (V, bool)
	Set(key int, value V)
	Invalidate(key int)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}
