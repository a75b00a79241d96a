package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/huytran-le/vidlens/pkg/config"
)

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// RedisCounterStore keeps the visitor counter in a single Redis key, the
// only state shared across requests.
type RedisCounterStore struct {
	client *redis.Client
	key    string
}

// NewRedisCounterStore creates a counter store on the given key
func NewRedisCounterStore(client *redis.Client, key string) *RedisCounterStore {
	if key == "" {
		key = "vidlens:visits"
	}
	return &RedisCounterStore{client: client, key: key}
}

// Current returns the counter value, initializing the key at 0 if absent
func (s *RedisCounterStore) Current(ctx context.Context) (int64, error) {
	if err := s.client.SetNX(ctx, s.key, 0, 0).Err(); err != nil {
		return 0, err
	}
	return s.client.Get(ctx, s.key).Int64()
}

// Increment adds one and returns the new value
func (s *RedisCounterStore) Increment(ctx context.Context) (int64, error) {
	return s.client.Incr(ctx, s.key).Result()
}

// Decrement subtracts one and returns the new value, floored at zero
func (s *RedisCounterStore) Decrement(ctx context.Context) (int64, error) {
	n, err := s.client.Decr(ctx, s.key).Result()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		if err := s.client.Set(ctx, s.key, 0, 0).Err(); err != nil {
			return 0, err
		}
		return 0, nil
	}
	return n, nil
}
