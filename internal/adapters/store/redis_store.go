package store

import (
	"context"
	"errors"
	"fmt"
	"waste-route-service/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps values as plain Redis strings under a common key prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	defer obs.Time(ctx, "store.redis.Get")(&err)

	if s.client == nil {
		return nil, false, errors.New("redis store: client is nil")
	}

	v, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis store: get %q: %w", key, err)
	}

	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) (err error) {
	defer obs.Time(ctx, "store.redis.Set")(&err)

	if s.client == nil {
		return errors.New("redis store: client is nil")
	}

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis store: set %q: %w", key, err)
	}

	return nil
}
