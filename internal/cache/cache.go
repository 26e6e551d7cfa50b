package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CleanupInterval is how often expired cache entries are removed.
const CleanupInterval = 30 * time.Second

// Cache is a TTL cache for values that are expensive to fetch on every
// request, such as credentials read from a secret store.
// A zero TTL disables it: Set is a no-op and Get always misses.
type Cache struct {
	store *cache.Cache
	ttl   time.Duration
}

// New -.
func New(ttl time.Duration) *Cache {
	return &Cache{
		store: cache.New(0, CleanupInterval),
		ttl:   ttl,
	}
}

// Set stores value under key for the configured TTL.
func (c *Cache) Set(key string, value interface{}) {
	if c.ttl <= 0 {
		return
	}

	c.store.Set(key, value, c.ttl)
}

// Get returns the value and true if present and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	return c.store.Get(key)
}

// Delete evicts key so the next Get misses.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}
