package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/logger"
)

// ErrKeyNotFound is returned when a key has no value in the store.
var ErrKeyNotFound = errors.New("key not found")

// RedisKeyValueRepository is a durable key-value store backed by Redis.
type RedisKeyValueRepository struct {
	client *redis.Client
	prefix string
	exp    time.Duration // expiration of written keys, 0 keeps them forever
}

// NewRedisKeyValueRepository creates a store whose keys are namespaced by prefix.
func NewRedisKeyValueRepository(client *redis.Client, prefix string, expiration time.Duration) *RedisKeyValueRepository {
	return &RedisKeyValueRepository{
		client: client,
		prefix: prefix,
		exp:    expiration,
	}
}

// Get returns the value stored under key.
func (r *RedisKeyValueRepository) Get(ctx context.Context, key string) (string, error) {
	fullKey := r.prefix + key

	val, err := r.client.Get(ctx, fullKey).Result()

	logger.Log.Infow("redis get",
		"key", fullKey,
		"result", val,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set stores value under key.
func (r *RedisKeyValueRepository) Set(ctx context.Context, key, value string) error {
	fullKey := r.prefix + key
	err := r.client.Set(ctx, fullKey, value, r.exp).Err()

	logger.Log.Infow("redis set",
		"key", fullKey,
		"value", value,
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete removes key. Deleting a missing key is not an error.
func (r *RedisKeyValueRepository) Delete(ctx context.Context, key string) error {
	fullKey := r.prefix + key
	removed, err := r.client.Del(ctx, fullKey).Result()

	logger.Log.Infow("redis delete",
		"key", fullKey,
		"result", removed,
		"error", err,
	)

	return err
}
