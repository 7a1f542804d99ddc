package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis stores each key as a plain string under a common prefix.
type Redis struct {
	client *redis.Client
	prefix string
	limits limits
}

// NewRedis wraps a connected client. Keys are stored as prefix+key.
func NewRedis(client *redis.Client, prefix string, opts ...Option) *Redis {
	return &Redis{
		client: client,
		prefix: prefix,
		limits: newLimits(opts),
	}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value without expiry.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.limits.check(key, value); err != nil {
		return err
	}
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
