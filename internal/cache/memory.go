package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/mkravets/adoptlens/internal/model"
)

// MemoryCache implements in-memory caching of parsed tables.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache.
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a table from the cache.
func (c *MemoryCache) Get(key string) (model.Table, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(model.Table), true
	}
	return nil, false
}

// Set stores a table in the cache with the given TTL.
func (c *MemoryCache) Set(key string, table model.Table, ttl time.Duration) {
	c.cache.Set(key, table, ttl)
}

// Delete removes a table from the cache.
func (c *MemoryCache) Delete(key string) {
	c.cache.Delete(key)
}

// Clear removes all cached tables.
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}
