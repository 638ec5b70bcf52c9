package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

func NewRedisSidecar(client *redis.Client) *RedisSidecar {
	return &RedisSidecar{client: client}
}

// RedisSidecar persists session mirrors in Redis. No TTL: the mirror
// survives until the session clears or overwrites it.
type RedisSidecar struct {
	client *redis.Client
}

func (r *RedisSidecar) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, sidecarKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

func (r *RedisSidecar) Save(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, sidecarKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisSidecar) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, sidecarKey(key)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func sidecarKey(key string) string {
	return fmt.Sprintf("storefront:%s", key)
}
