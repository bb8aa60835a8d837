package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKV is the part of *redis.Client the slot needs.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type RedisSlot struct {
	redisClient redisKV
	keyPrefix   string
}

func NewRedisSlot(redisClient redisKV) *RedisSlot {
	return &RedisSlot{
		redisClient: redisClient,
		keyPrefix:   "skateshop:slot:",
	}
}

func (s *RedisSlot) Load(ctx context.Context, key string) ([]byte, error) {
	val, err := s.redisClient.Get(ctx, s.keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("failed to load slot %s: %w", key, err)
	}
	return val, nil
}

func (s *RedisSlot) Save(ctx context.Context, key string, value []byte) error {
	err := s.redisClient.Set(ctx, s.keyPrefix+key, value, 0).Err() // No expiration
	if err != nil {
		return fmt.Errorf("failed to save slot %s: %w", key, err)
	}
	return nil
}
