package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
)

// RedisConfig configures a RedisCache.
type RedisConfig struct {
	Prefix   string
	TTL      time.Duration
	Capacity int
}

// DefaultRedisConfig namespaces keys under "locsearch:" with a ten minute TTL.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Prefix:   "locsearch:",
		TTL:      10 * time.Minute,
		Capacity: DefaultCapacity,
	}
}

// RedisCache stores each query's results as JSON under prefix+sha256(query).
// A list at prefix+"index" records insertion order so the cache can be held to
// Capacity entries and cleared without a key scan.
type RedisCache struct {
	client redis.Cmdable
	cfg    RedisConfig
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client redis.Cmdable, cfg RedisConfig) *RedisCache {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	return &RedisCache{client: client, cfg: cfg}
}

func (c *RedisCache) key(query string) string {
	sum := sha256.Sum256([]byte(query))
	return c.cfg.Prefix + hex.EncodeToString(sum[:])
}

func (c *RedisCache) indexKey() string {
	return c.cfg.Prefix + "index"
}

// Get treats every failure, including an undecodable value, as a miss.
func (c *RedisCache) Get(ctx context.Context, query string) ([]domain.Location, bool) {
	data, err := c.client.Get(ctx, c.key(query)).Bytes()
	if err != nil {
		return nil, false
	}
	var results []domain.Location
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, false
	}
	return results, true
}

func (c *RedisCache) Set(ctx context.Context, query string, results []domain.Location) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("cache.RedisCache.Set: %w", err)
	}

	key := c.key(query)
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, data, c.cfg.TTL)
	pipe.LRem(ctx, c.indexKey(), 0, key)
	pipe.RPush(ctx, c.indexKey(), key)
	length := pipe.LLen(ctx, c.indexKey())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache.RedisCache.Set: %w", err)
	}

	if over := length.Val() - int64(c.cfg.Capacity); over > 0 {
		if err := c.evict(ctx, over); err != nil {
			return fmt.Errorf("cache.RedisCache.Set: %w", err)
		}
	}
	return nil
}

// evict drops the n oldest entries.
func (c *RedisCache) evict(ctx context.Context, n int64) error {
	oldest, err := c.client.LRange(ctx, c.indexKey(), 0, n-1).Result()
	if err != nil {
		return err
	}
	if len(oldest) == 0 {
		return nil
	}
	pipe := c.client.TxPipeline()
	pipe.LTrim(ctx, c.indexKey(), int64(len(oldest)), -1)
	pipe.Del(ctx, oldest...)
	_, err = pipe.Exec(ctx)
	return err
}

func (c *RedisCache) Clear(ctx context.Context) error {
	keys, err := c.client.LRange(ctx, c.indexKey(), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("cache.RedisCache.Clear: %w", err)
	}
	keys = append(keys, c.indexKey())
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache.RedisCache.Clear: %w", err)
	}
	return nil
}
