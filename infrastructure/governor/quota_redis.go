package governor

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisQuotaStore shares the monthly counter across service instances.
// Increment-then-expire is non-transactional: a brief overshoot
// under concurrent load across instances is tolerated.
type RedisQuotaStore struct {
	client *redis.Client
}

// NewRedisQuotaStore connects to Redis and verifies the connection
func NewRedisQuotaStore(redisURL string) (*RedisQuotaStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info().Msg("Connected to Redis quota store")
	return &RedisQuotaStore{client: client}, nil
}

// Incr increments the counter and refreshes its expiry so unused month keys
// self-clean after roll-over
func (r *RedisQuotaStore) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if ttl > 0 {
		if err := r.client.Expire(ctx, key, ttl).Err(); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to set quota key expiry")
		}
	}
	return count, nil
}

// Close releases the Redis connection
func (r *RedisQuotaStore) Close() error {
	return r.client.Close()
}
