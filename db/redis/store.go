package redis

import (
	"context"
	"time"
)

// Store adapts the package-level redis helpers to the key/value surface the
// cache service consumes.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := GetRedis(ctx, key)
	if err != nil {
		if IsNilError(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value string, duration time.Duration) error {
	return SetRedis(ctx, key, value, duration)
}

func (s *Store) Del(ctx context.Context, keys ...string) error {
	return DelRedis(ctx, keys...)
}

func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	return IncrRedis(ctx, key)
}
