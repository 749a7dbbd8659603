package subset

import (
	"sync"

	"github.com/hupe1980/wildmap/core"
)

// Observer receives cache lookups as they happen. The index uses it to feed
// metrics; it must be safe for concurrent use.
type Observer interface {
	CacheHit()
	CacheMiss()
}

// Cache is a thread-safe core.KeyCache with no eviction policy. Entries live
// until Clear. Population races on the same key are resolved by keeping the
// first stored slice; both candidates are identical anyway.
type Cache struct {
	mu       sync.RWMutex
	items    map[core.Key][]core.RowID
	stats    counters
	observer Observer
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{items: make(map[core.Key][]core.RowID)}
}

// SetObserver installs o as the lookup observer. Not safe to call
// concurrently with Rows.
func (c *Cache) SetObserver(o Observer) {
	c.observer = o
}

// Rows returns the cached expansion of k, computing it on a miss.
func (c *Cache) Rows(k core.Key) []core.RowID {
	c.mu.RLock()
	ids, ok := c.items[k]
	c.mu.RUnlock()

	if ok {
		c.stats.hit()
		if c.observer != nil {
			c.observer.CacheHit()
		}
		return ids
	}

	c.stats.miss()
	if c.observer != nil {
		c.observer.CacheMiss()
	}

	computed := Expand(k)

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.items[k]; ok {
		return existing
	}
	c.items[k] = computed
	return computed
}

// Len returns the number of cached keys.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Clear drops every entry. Counters are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[core.Key][]core.RowID)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   c.stats.hits.Load(),
		Misses: c.stats.misses.Load(),
		Size:   c.Len(),
	}
}
