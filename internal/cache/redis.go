package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Options describes how to reach redis. An empty Addr disables the cache.
type Options struct {
	Addr     string
	Password string
	DB       int
}

type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// NewRedisClient connects and pings redis. It returns (nil, nil) when
// opts.Addr is empty so callers can treat the cache as optional.
func NewRedisClient(ctx context.Context, opts Options) (Cache, error) {
	if opts.Addr == "" {
		return nil, nil
	}
	client := redisNewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}
	return client, nil
}
