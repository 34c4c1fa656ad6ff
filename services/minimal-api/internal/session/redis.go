// Package session tracks issued access tokens by their jti so that logout can
// revoke a token before it expires.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisRegistry struct {
	client *redis.Client
}

func NewRedisRegistry(redisURL string) (*RedisRegistry, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisRegistry{client: client}, nil
}

func (r *RedisRegistry) Close() error {
	return r.client.Close()
}

func key(jti string) string { return "session:" + jti }

func (r *RedisRegistry) Store(ctx context.Context, jti, email string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key(jti), email, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *RedisRegistry) Active(ctx context.Context, jti string) (bool, error) {
	_, err := r.client.Get(ctx, key(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get session: %w", err)
	}
	return true, nil
}

func (r *RedisRegistry) Revoke(ctx context.Context, jti string) error {
	if err := r.client.Del(ctx, key(jti)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
