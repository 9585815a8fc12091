package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bloglist-service/internal/retry"
)

func NewRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	err := retry.DoWithRetry(ctx, 3, 250*time.Millisecond, func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}
