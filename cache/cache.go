// Package cache provides the small bounded TTL cache used for review texts
// and location suggestions. Entries are advisory: a miss just means the
// caller re-executes the underlying lookup.
package cache

import (
	"sync"
	"time"
)

// Store is the cache capability the services depend on. Implementations must
// be safe for concurrent use.
type Store interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Delete(key string)
	Len() int
	Flush()
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// TTLCache is a mutex-guarded map with per-entry expiry and a hard size
// bound. Expired entries are dropped lazily on read and swept on write when
// the cache is full; if the sweep frees nothing, the entry closest to expiry
// is evicted.
type TTLCache struct {
	mu         sync.RWMutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int
}

// New creates a TTLCache holding at most maxEntries values for ttl each.
func New(maxEntries int, ttl time.Duration) *TTLCache {
	if maxEntries <= 0 {
		maxEntries = 256
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TTLCache{
		entries:    make(map[string]entry, maxEntries),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Get returns the cached value for key, or false on a miss or an expired
// entry.
func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; another goroutine may have
		// refreshed the entry in between.
		if cur, still := c.entries[key]; still && time.Now().After(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, evicting if the cache is at capacity.
func (c *TTLCache) Set(key string, value interface{}) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictLocked(now)
	}
	c.entries[key] = entry{value: value, expiresAt: now.Add(c.ttl)}
}

// evictLocked removes expired entries, and if none were expired removes the
// entry with the nearest expiry. Caller must hold the write lock.
func (c *TTLCache) evictLocked(now time.Time) {
	removed := false
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
			removed = true
		}
	}
	if removed {
		return
	}

	var oldestKey string
	var oldestExpiry time.Time
	for k, e := range c.entries {
		if oldestKey == "" || e.expiresAt.Before(oldestExpiry) {
			oldestKey = k
			oldestExpiry = e.expiresAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// Delete removes key if present.
func (c *TTLCache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Len reports the number of stored entries, including any not yet swept.
func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Flush drops every entry.
func (c *TTLCache) Flush() {
	c.mu.Lock()
	c.entries = make(map[string]entry, c.maxEntries)
	c.mu.Unlock()
}

// Noop is a Store that never retains anything. Handy in tests where caching
// behavior should stay out of the way.
type Noop struct{}

func (Noop) Get(string) (interface{}, bool) { return nil, false }
func (Noop) Set(string, interface{})        {}
func (Noop) Delete(string)                  {}
func (Noop) Len() int                       { return 0 }
func (Noop) Flush()                         {}
