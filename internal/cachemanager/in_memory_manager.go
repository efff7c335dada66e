// Package cachemanager wraps an in-memory TTL cache so a watch session can
// keep highlighter state for files it has already lexed.
package cachemanager

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/techee/lexilla/internal/log"
)

const DefaultExpiration = 10 * time.Minute
const DefaultCleanupInterval = 30 * time.Minute

// InMemoryCacheManager is a typed TTL cache keyed by string.
type InMemoryCacheManager[V any] struct {
	useCase string
	cache   *gocache.Cache
}

// NewInMemoryCacheManager initializes the cache; useCase labels log entries.
func NewInMemoryCacheManager[V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *InMemoryCacheManager[V] {
	return &InMemoryCacheManager[V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves an item from the cache by its key.
func (c *InMemoryCacheManager[V]) Get(key string) (V, bool) {
	var zero V

	value, found := c.cache.Get(key)
	if !found {
		return zero, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "use_case", c.useCase, "key", key)
		return zero, false
	}

	log.Debug(log.CatCache, "cache hit", "use_case", c.useCase, "key", key)
	return v, true
}

// Set stores an item with the default expiration.
func (c *InMemoryCacheManager[V]) Set(key string, value V) {
	c.cache.SetDefault(key, value)
}

// Delete removes an item from the cache.
func (c *InMemoryCacheManager[V]) Delete(key string) {
	c.cache.Delete(key)
}

// Len returns the number of cached items, including not-yet-evicted expired
// ones.
func (c *InMemoryCacheManager[V]) Len() int {
	return c.cache.ItemCount()
}
