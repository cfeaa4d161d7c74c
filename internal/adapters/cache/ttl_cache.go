package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

type ttlCache[T any] struct {
	freshness
	cache *ttlcache.Cache[string, cacheEntry[T]]
}

func (c *ttlCache[T]) get(key string) (T, bool) {
	item := c.cache.Get(key)
	if item == nil {
		var empty T
		return empty, false
	}

	entry := item.Value()
	if !c.isFresh(entry.storedAt) {
		var empty T
		return empty, false
	}

	return entry.data, true
}

func (c *ttlCache[T]) set(key string, data T) {
	c.cache.Set(key, cacheEntry[T]{data: data, storedAt: c.nowFunc()}, ttlcache.DefaultTTL)
}

func (c *ttlCache[T]) Stop() {
	c.cache.Stop()
}

// NewTTLCache creates a cache where entries are served for ttl after being stored.
// Loads are given at most loadTimeout to complete.
//
// Expired entries are removed by a background janitor, call Stop to end it.
func NewTTLCache[T any](ttl time.Duration, loadTimeout time.Duration, nowFunc func() time.Time) *ttlCache[T] {
	entryTTLCache := ttlcache.New[string, cacheEntry[T]](
		ttlcache.WithTTL[string, cacheEntry[T]](ttl),
		ttlcache.WithDisableTouchOnHit[string, cacheEntry[T]](),
	)
	go entryTTLCache.Start()

	return &ttlCache[T]{
		freshness: freshness{
			ttl:     ttl,
			timeout: loadTimeout,
			nowFunc: nowFunc,
		},
		cache: entryTTLCache,
	}
}
