package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisCacheService implements service.CacheService on top of go-redis.
// Every backend error is logged and swallowed; the contract is that a
// broken cache degrades reads to the database, never to failures.
type redisCacheService struct {
	client *redis.Client
	logger *slog.Logger
}

// NewCacheService is the constructor for redisCacheService.
func NewCacheService(client *redis.Client, logger *slog.Logger) service.CacheService {
	return &redisCacheService{
		client: client,
		logger: logger,
	}
}

// Get unmarshals the cached value for key into dest and reports whether
// a value was found. A backend error is a miss.
func (c *redisCacheService) Get(ctx context.Context, key string, dest any) bool {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Cache get failed", slog.String("key", key), slog.Any("error", err))
		}

		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		// A corrupt entry is as good as a miss; drop it.
		c.logger.Warn("Cache entry corrupt, dropping", slog.String("key", key), slog.Any("error", err))
		c.client.Del(ctx, key)

		return false
	}

	return true
}

// Set stores the value under key with the given TTL.
func (c *redisCacheService) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Cache marshal failed", slog.String("key", key), slog.Any("error", err))

		return
	}

	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		c.logger.Warn("Cache set failed", slog.String("key", key), slog.Any("error", err))
	}
}

// Delete removes the given keys.
func (c *redisCacheService) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Cache delete failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}

// DeletePattern removes every key matching the glob pattern using SCAN,
// which stays incremental on a shared Redis.
func (c *redisCacheService) DeletePattern(ctx context.Context, pattern string) {
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("Cache scan failed", slog.String("pattern", pattern), slog.Any("error", err))

		return
	}

	c.Delete(ctx, keys...)
}
