package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"bloglist-service/internal/domain/blog"
)

const summaryKey = "bloglist:stats:summary"

// RedisSummaryCache keeps the blog summary as one JSON value with a TTL.
type RedisSummaryCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisSummaryCache(rdb redis.Cmdable, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{rdb: rdb, ttl: ttl}
}

func (c *RedisSummaryCache) Get(ctx context.Context) (*blog.Summary, bool, error) {
	raw, err := c.rdb.Get(ctx, summaryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var s blog.Summary
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false, err
	}
	return &s, true, nil
}

func (c *RedisSummaryCache) Set(ctx context.Context, s blog.Summary) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, summaryKey, raw, c.ttl).Err()
}

func (c *RedisSummaryCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, summaryKey).Err()
}

// Nop never holds anything.
type Nop struct{}

func (Nop) Get(context.Context) (*blog.Summary, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, blog.Summary) error          { return nil }
func (Nop) Invalidate(context.Context) error                 { return nil }
