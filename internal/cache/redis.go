package cache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisSlot keeps the snapshot under a single Redis key with no expiry.
type RedisSlot struct {
	client *redis.Client
	key    string
}

// NewRedisSlot creates a slot using the provided Redis client and key.
func NewRedisSlot(client *redis.Client, key string) *RedisSlot {
	if client == nil {
		panic("cache.NewRedisSlot: client is nil")
	}
	return &RedisSlot{client: client, key: key}
}

// DialRedis parses a redis:// URL and returns a client for it.
func DialRedis(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func (s *RedisSlot) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisSlot) Save(ctx context.Context, data []byte) error {
	return s.client.Set(ctx, s.key, data, 0).Err()
}

// Close releases the underlying client.
func (s *RedisSlot) Close() error {
	return s.client.Close()
}
