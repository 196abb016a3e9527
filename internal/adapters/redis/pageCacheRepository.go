package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultPagePrefix namespaces rendered pages inside a shared Redis.
const DefaultPagePrefix = "yatube:page:"

// PageCacheRedis keeps rendered pages in Redis with a per-key expiry.
type PageCacheRedis struct {
	Client *redis.Client
	prefix string
}

func NewPageCacheRedis(client *redis.Client, prefix string) *PageCacheRedis {
	if prefix == "" {
		prefix = DefaultPagePrefix
	}
	return &PageCacheRedis{
		Client: client,
		prefix: prefix,
	}
}

func (r *PageCacheRedis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.Client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (r *PageCacheRedis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.Client.Set(ctx, r.prefix+key, value, ttl).Err()
}

// Clear drops every page under the prefix. Other keys in the database are left alone.
func (r *PageCacheRedis) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := r.Client.Scan(ctx, cursor, r.prefix+"*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.Client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
