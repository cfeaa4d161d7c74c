package cache

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type lookupResult string

const (
	lookupHit    lookupResult = "hit"
	lookupMiss   lookupResult = "miss"
	lookupShared lookupResult = "shared"
)

type cacheMetricsCollection struct {
	lookupCount    metric.Int64Counter
	loadErrorCount metric.Int64Counter
}

var metrics cacheMetricsCollection

func init() {
	const name = "skillforge/cache"
	meter := otel.Meter(name)

	lookupCount, err := meter.Int64Counter(
		"cache/lookup_count",
		metric.WithDescription("Cache lookups by result (hit, miss or shared in-flight load)"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create lookup count metric: %w", err))
	}

	loadErrorCount, err := meter.Int64Counter(
		"cache/load_error_count",
		metric.WithDescription("Failed loads, shared by every caller waiting for them"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create load error count metric: %w", err))
	}

	metrics = cacheMetricsCollection{
		lookupCount:    lookupCount,
		loadErrorCount: loadErrorCount,
	}
}

// keyPrefix is the endpoint part of a key like "offers:limit=2;active=true".
// The full key is too high cardinality for a metric attribute.
func keyPrefix(key string) string {
	prefix, _, _ := strings.Cut(key, ":")
	return prefix
}

func recordLookup(ctx context.Context, key string, result lookupResult) {
	metrics.lookupCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("key_prefix", keyPrefix(key)),
		attribute.String("result", string(result)),
	))
}

func recordLoadError(ctx context.Context, key string) {
	metrics.loadErrorCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("key_prefix", keyPrefix(key)),
	))
}
