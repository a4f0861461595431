package cache

import "sync"

// lru is a thread-safe map with a soft size limit. When the limit is
// exceeded the least recently used quarter of the entries is evicted.
// A limit of 0 means unbounded.
type lru[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*lruEntry[V]
	softLimit int
	tick      int64 // monotonic access counter
}

type lruEntry[V any] struct {
	value V
	atime int64
}

func newLRU[K comparable, V any](softLimit int) *lru[K, V] {
	return &lru[K, V]{
		entries:   make(map[K]*lruEntry[V]),
		softLimit: softLimit,
	}
}

func (c *lru[K, V]) get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	e.atime = c.tick
	return e.value, true
}

func (c *lru[K, V]) set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	c.entries[key] = &lruEntry[V]{value: value, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

func (c *lru[K, V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest shrinks the map to three quarters of the soft limit.
// Caller must hold c.mu.
func (c *lru[K, V]) evictOldest() {
	target := max(1, c.softLimit*3/4)
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{key: k, atime: e.atime})
	}

	// Partial selection sort: only the evicted prefix needs ordering.
	for i := 0; i < toEvict; i++ {
		oldest := i
		for j := i + 1; j < len(all); j++ {
			if all[j].atime < all[oldest].atime {
				oldest = j
			}
		}
		all[i], all[oldest] = all[oldest], all[i]
		delete(c.entries, all[i].key)
	}
}
