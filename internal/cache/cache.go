package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	value      interface{}
	expiration int64
}

// Cache is an in-process TTL cache for read-heavy API responses. Handlers
// receive their instance explicitly; there is no package-level singleton.
type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
	ttl   time.Duration
}

// New creates a cache with the given default TTL and starts a background
// sweep of expired entries.
func New(defaultTTL time.Duration) *Cache {
	c := &Cache{
		items: make(map[string]entry),
		ttl:   defaultTTL,
	}
	go c.cleanupExpired()
	return c
}

// Set stores a value under key, with an optional per-entry TTL override.
func (c *Cache) Set(key string, value interface{}, ttl ...time.Duration) {
	duration := c.ttl
	if len(ttl) > 0 {
		duration = ttl[0]
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry{
		value:      value,
		expiration: time.Now().Add(duration).UnixNano(),
	}
}

// Get returns the cached value when present and not yet expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, found := c.items[key]
	if !found || time.Now().UnixNano() > e.expiration {
		return nil, false
	}
	return e.value, true
}

// Delete removes one key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// DeleteByPrefix invalidates every key with the given prefix. Write paths
// use this to drop all cached listings at once.
func (c *Cache) DeleteByPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

// Clear drops everything.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]entry)
}

// Size reports the number of entries, expired or not.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cache) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now().UnixNano()
		for key, e := range c.items {
			if now > e.expiration {
				delete(c.items, key)
			}
		}
		c.mu.Unlock()
	}
}
