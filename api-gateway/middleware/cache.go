package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/tair/bookmypanditji/pkg/logger"
)

// CacheConfig holds cache configuration
type CacheConfig struct {
	TTL             time.Duration
	Prefixes        []string // only GETs under these paths are cached
	CacheableStatus []int
}

// DefaultCacheConfig caches catalog listings and details for ttl
func DefaultCacheConfig(ttl time.Duration) CacheConfig {
	return CacheConfig{
		TTL:             ttl,
		Prefixes:        []string{"/api/products", "/api/pandits"},
		CacheableStatus: []int{fiber.StatusOK, fiber.StatusNotFound},
	}
}

func (cfg CacheConfig) cacheable(c *fiber.Ctx) bool {
	if c.Method() != fiber.MethodGet {
		return false
	}
	path := c.Path()
	for _, p := range cfg.Prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// CacheMiddleware serves catalog reads from Redis. Listing queries are part
// of the key, so every filter/sort/page combination is cached separately.
func CacheMiddleware(redisClient *redis.Client, config CacheConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if redisClient == nil || !config.cacheable(c) {
			return c.Next()
		}

		ctx := c.UserContext()
		cacheKey := generateCacheKey(c)

		cached, err := redisClient.Get(ctx, cacheKey).Bytes()
		if err == nil && len(cached) > 0 {
			logger.Debug(ctx).Str("path", c.Path()).Str("cache_key", cacheKey).Msg("Cache hit")
			c.Set("X-Cache", "HIT")
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
			return c.Send(cached)
		}

		err = c.Next()

		if slices.Contains(config.CacheableStatus, c.Response().StatusCode()) {
			body := c.Response().Body()
			if setErr := redisClient.Set(ctx, cacheKey, body, config.TTL).Err(); setErr != nil {
				logger.Warn(ctx).Err(setErr).Str("cache_key", cacheKey).Msg("Failed to cache response")
			} else {
				logger.Debug(ctx).
					Str("path", c.Path()).
					Dur("ttl", config.TTL).
					Int("size", len(body)).
					Msg("Response cached")
			}
			c.Set("X-Cache", "MISS")
		}
		return err
	}
}

// generateCacheKey hashes method, path and raw query
func generateCacheKey(c *fiber.Ctx) string {
	raw := fmt.Sprintf("%s:%s:%s", c.Method(), c.Path(), c.Request().URI().QueryString())
	hash := sha256.Sum256([]byte(raw))
	return "cache:catalog:" + hex.EncodeToString(hash[:])
}

// InvalidateCache drops every cached catalog response
func InvalidateCache(ctx context.Context, redisClient *redis.Client) (int, error) {
	iter := redisClient.Scan(ctx, 0, "cache:catalog:*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	if err := redisClient.Del(ctx, keys...).Err(); err != nil {
		return 0, err
	}
	logger.Info(ctx).Int("count", len(keys)).Msg("Cache invalidated")
	return len(keys), nil
}
