package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rewardlabs/points-txcore/internal/logger"
)

// RedisKVStore implements KVStore on a Redis client. Values are scoped to
// the local actor by key; an optional TTL lets stale device state age out.
type RedisKVStore struct {
	client *redis.Client
	exp    time.Duration // zero means no expiration
}

// NewRedisKVStore creates a store with an optional TTL.
func NewRedisKVStore(client *redis.Client, expiration time.Duration) *RedisKVStore {
	return &RedisKVStore{client: client, exp: expiration}
}

// Get fetches the raw value for a key; a missing key is (nil, nil).
func (s *RedisKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logger.Log.Errorw("redis get failed", "key", key, "error", err)
		return nil, err
	}
	return val, nil
}

// Set writes the raw value for a key with the configured TTL.
func (s *RedisKVStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.client.Set(ctx, key, value, s.exp).Err()
	if err != nil {
		logger.Log.Errorw("redis set failed", "key", key, "error", err)
	}
	return err
}
