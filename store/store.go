// Package store is the local key-value store backing the record cache and the session page.
//
// Two backends exist: a JSON file managed by gache on the active filesystem, and Redis.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/auth"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/log"
	"github.com/vidshelf/vidshelf/where"
)

// Backend names accepted by the store.backend setting.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// ErrQuotaExceeded is returned by Set when a value is larger than the configured limit.
var ErrQuotaExceeded = errors.New("store quota exceeded")

// Store is a string key-value store. Missing keys are reported with ok=false, not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Option tunes a backend.
type Option func(*limits)

type limits struct {
	maxValueBytes int
}

// WithMaxValueBytes rejects values longer than n bytes with ErrQuotaExceeded. Zero disables the limit.
func WithMaxValueBytes(n int) Option {
	return func(l *limits) {
		l.maxValueBytes = n
	}
}

func newLimits(opts []Option) limits {
	var l limits
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

func (l limits) check(key, value string) error {
	if l.maxValueBytes > 0 && len(value) > l.maxValueBytes {
		return fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrQuotaExceeded, key, len(value), l.maxValueBytes)
	}
	return nil
}

// Open returns the backend selected by the configuration.
func Open(ctx context.Context) (Store, error) {
	opts := []Option{WithMaxValueBytes(viper.GetInt(key.StoreMaxValueBytes))}

	switch backend := viper.GetString(key.StoreBackend); backend {
	case BackendFile:
		return NewFile(where.Store(), opts...), nil
	case BackendRedis:
		password, err := auth.RedisPassword()
		if err != nil {
			log.WithError(err).Warn("reading redis password from keyring")
		}

		addr := viper.GetString(key.StoreRedisAddr)
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       viper.GetInt(key.StoreRedisDB),
		})

		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
		}

		return NewRedis(client, viper.GetString(key.StoreRedisPrefix), opts...), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q, expected %q or %q", backend, BackendFile, BackendRedis)
	}
}
