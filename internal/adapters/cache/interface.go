package cache

import (
	"time"

	"golang.org/x/sync/singleflight"
)

type cacheEntry[T any] struct {
	data     T
	storedAt time.Time
}

// Cache holds the latest successful result per key together with the table
// of loads currently in flight.
//
// Values handed out by a cache are shared between callers and must not be mutated.
type Cache[T any] interface {
	// get only returns entries that are still fresh
	get(key string) (T, bool)
	set(key string, data T)
	inFlight() *singleflight.Group
	loadTimeout() time.Duration

	// Stop releases any background resources held by the cache
	Stop()
}

// freshness is shared by the cache implementations
type freshness struct {
	ttl     time.Duration
	timeout time.Duration
	nowFunc func() time.Time
	flights singleflight.Group
}

func (f *freshness) isFresh(storedAt time.Time) bool {
	return f.nowFunc().Sub(storedAt) < f.ttl
}

func (f *freshness) inFlight() *singleflight.Group {
	return &f.flights
}

func (f *freshness) loadTimeout() time.Duration {
	return f.timeout
}
