package gateway

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockTTL = 30 * time.Second

// RedisLocker implements Locker with a SetNX lock per payment id.
type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (bool, error) {
	return l.client.SetNX(ctx, key, "1", lockTTL).Result()
}

func (l *RedisLocker) Release(ctx context.Context, key string) error {
	return l.client.Del(ctx, key).Err()
}
