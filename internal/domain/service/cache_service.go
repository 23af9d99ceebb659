package service

import (
	"context"
	"time"
)

// TTLs per resource class. These are fixed by design; tuning happens here,
// not at call sites.
const (
	CacheTTLProduct     = time.Hour
	CacheTTLStore       = time.Hour
	CacheTTLList        = 5 * time.Minute
	CacheTTLUser        = 30 * time.Minute
	CacheTTLStats       = 15 * time.Minute
	CacheTTLLeaderboard = 5 * time.Minute
)

// CacheService is a strictly best-effort read-through cache. Backend
// errors are swallowed inside the implementation and reported as misses:
// every caller must remain correct when the cache is completely
// unavailable.
type CacheService interface {
	// Get unmarshals the cached value for key into dest and reports
	// whether a value was found. A backend error is a miss.
	Get(ctx context.Context, key string, dest any) bool

	// Set stores the value under key with the given TTL. Failures are
	// logged and swallowed.
	Set(ctx context.Context, key string, value any, ttl time.Duration)

	// Delete removes the given keys. Failures are logged and swallowed.
	Delete(ctx context.Context, keys ...string)

	// DeletePattern removes every key matching the glob pattern.
	// Failures are logged and swallowed.
	DeletePattern(ctx context.Context, pattern string)
}
