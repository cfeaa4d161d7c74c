package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/Amund211/skillforge/internal/domain"
	"github.com/Amund211/skillforge/internal/logging"
)

// Loader performs the underlying call for a cache miss.
// The context carries the cache's load deadline.
type Loader[T any] func(ctx context.Context) (T, error)

// Fetch returns the fresh cached value for key, or loads it.
//
// At most one load per key runs at a time: callers arriving while a load is in
// flight wait for its result instead of starting their own. Failed loads are
// handed to every waiting caller and are not cached, so the next call starts over.
//
// The load runs detached from ctx, bounded only by the cache's load timeout.
// Cancelling ctx stops this caller from waiting, but not the load itself.
func Fetch[T any](ctx context.Context, cache Cache[T], key string, load Loader[T]) (T, error) {
	var empty T
	logger := logging.FromContext(ctx)

	if data, ok := cache.get(key); ok {
		logger.InfoContext(ctx, "Getting promotional content", "cache", "hit", "key", key)
		recordLookup(ctx, key, lookupHit)
		return data, nil
	}

	// Only written by the flight below when this call leads it, read after the result has been received
	outcome := lookupShared

	resultChan := cache.inFlight().DoChan(key, func() (any, error) {
		// A load may have completed between our lookup and claiming the key
		if data, ok := cache.get(key); ok {
			outcome = lookupHit
			return data, nil
		}

		outcome = lookupMiss
		logger.InfoContext(ctx, "Getting promotional content", "cache", "miss", "key", key)

		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cache.loadTimeout())
		defer cancel()

		data, err := load(loadCtx)
		if err != nil {
			if errors.Is(loadCtx.Err(), context.DeadlineExceeded) {
				return empty, fmt.Errorf("%w: load timed out after %s: %w", domain.ErrTemporarilyUnavailable, cache.loadTimeout(), err)
			}
			return empty, err
		}

		cache.set(key, data)
		return data, nil
	})

	select {
	case result := <-resultChan:
		switch outcome {
		case lookupHit:
			logger.InfoContext(ctx, "Getting promotional content", "cache", "hit", "key", key)
		case lookupShared:
			logger.InfoContext(ctx, "Getting promotional content", "cache", "shared", "key", key)
		}
		recordLookup(ctx, key, outcome)

		if result.Err != nil {
			if outcome == lookupMiss {
				recordLoadError(ctx, key)
			}
			return empty, fmt.Errorf("failed to load cache entry: %w", result.Err)
		}

		data, _ := result.Val.(T)
		return data, nil
	case <-ctx.Done():
		logger.InfoContext(ctx, "Stopped waiting for cache", "key", key, "ctx_error", ctx.Err())
		return empty, fmt.Errorf("stopped waiting for cache entry: %w", ctx.Err())
	}
}
