package cache

import (
	"sync"
	"time"
)

type basicCache[T any] struct {
	freshness
	cache     map[string]cacheEntry[T]
	cacheLock sync.Mutex
}

func (c *basicCache[T]) get(key string) (T, bool) {
	c.cacheLock.Lock()
	defer c.cacheLock.Unlock()

	entry, ok := c.cache[key]
	if !ok || !c.isFresh(entry.storedAt) {
		var empty T
		return empty, false
	}

	return entry.data, true
}

func (c *basicCache[T]) set(key string, data T) {
	c.cacheLock.Lock()
	defer c.cacheLock.Unlock()

	c.cache[key] = cacheEntry[T]{data: data, storedAt: c.nowFunc()}
}

func (c *basicCache[T]) Stop() {
}

// NewBasicCache creates a map backed cache that never reclaims stale entries
func NewBasicCache[T any](ttl time.Duration, loadTimeout time.Duration, nowFunc func() time.Time) *basicCache[T] {
	return &basicCache[T]{
		freshness: freshness{
			ttl:     ttl,
			timeout: loadTimeout,
			nowFunc: nowFunc,
		},
		cache: make(map[string]cacheEntry[T]),
	}
}
