package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/personal-portfolio/internal/application/service"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

const (
	ProfileGenerationKey = "portfolio:profile:gen"
	profileViewKeyPrefix = "portfolio:profile:view:"
)

func profileViewKey(gen int64) string {
	return profileViewKeyPrefix + strconv.FormatInt(gen, 10)
}

type redisProfileCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger

	warnedUnavailable atomic.Bool
}

// NewRedisProfileCache wraps client. A nil client gives a cache that always
// misses and never fails, so the profile read goes straight to Postgres.
//
// Views live under a per-generation key. Invalidate increments the generation,
// which orphans the old key; it expires with the TTL.
func NewRedisProfileCache(client *redis.Client, ttl time.Duration, log logger.Logger) service.ProfileCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &redisProfileCache{client: client, ttl: ttl, logger: log}
}

func (c *redisProfileCache) unavailable() bool {
	return c.client == nil
}

func (c *redisProfileCache) warnOnce(err error) {
	if c.warnedUnavailable.CompareAndSwap(false, true) {
		c.logger.Warn("Redis unavailable, bypassing profile cache")
		if err != nil {
			c.logger.Error("Redis error", err)
		}
	}
}

func (c *redisProfileCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, ProfileGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *redisProfileCache) Get(ctx context.Context, dst any) (int64, bool, error) {
	if c.unavailable() {
		return 0, false, nil
	}
	gen, err := c.generation(ctx)
	if err != nil {
		c.warnOnce(err)
		return 0, false, err
	}
	b, err := c.client.Get(ctx, profileViewKey(gen)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return gen, false, nil
		}
		c.warnOnce(err)
		return 0, false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return gen, false, err
	}
	c.warnedUnavailable.Store(false)
	return gen, true, nil
}

func (c *redisProfileCache) Set(ctx context.Context, gen int64, v any) error {
	if c.unavailable() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, profileViewKey(gen), b, c.ttl).Err(); err != nil {
		c.warnOnce(err)
		return err
	}
	return nil
}

func (c *redisProfileCache) Invalidate(ctx context.Context) error {
	if c.unavailable() {
		return nil
	}
	if err := c.client.Incr(ctx, ProfileGenerationKey).Err(); err != nil {
		c.warnOnce(err)
		return err
	}
	return nil
}
