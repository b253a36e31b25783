package store

import (
	"context"
	"errors"

	"seatbook/internal/infra"
	"seatbook/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces the record keys inside a shared redis instance.
const keyPrefix = "seatbook:"

// RedisStore persists the record blobs as plain redis strings.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, infra.WrapRepoErr("failed to ping redis", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	blob, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to load state key", err)
	}
	return blob, true, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, blob []byte) error {
	if err := s.client.Set(ctx, keyPrefix+key, blob, 0).Err(); err != nil {
		return infra.WrapRepoErr("failed to save state key", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
