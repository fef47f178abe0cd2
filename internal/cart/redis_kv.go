package cart

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisKeyValue is a KeyValue backed by redis, for deployments where the
// cart should survive the process.
type RedisKeyValue struct {
	rdb *redis.Client
}

// NewRedisKeyValue wraps an existing redis client.
func NewRedisKeyValue(rdb *redis.Client) *RedisKeyValue {
	return &RedisKeyValue{rdb: rdb}
}

func (r *RedisKeyValue) Get(ctx context.Context, key string) (string, error) {
	val, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (r *RedisKeyValue) Set(ctx context.Context, key, value string) error {
	return r.rdb.Set(ctx, key, value, 0).Err()
}
