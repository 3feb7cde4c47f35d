package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"waypoint-tour-service/internal/domain"
	"waypoint-tour-service/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "tour:directions:"

// RedisDirectionsCache keeps routes in Redis with a fixed TTL.
// A zero TTL stores entries without expiry.
type RedisDirectionsCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDirectionsCache(client *redis.Client, ttl time.Duration) *RedisDirectionsCache {
	return &RedisDirectionsCache{Client: client, TTL: ttl}
}

func (r *RedisDirectionsCache) Get(ctx context.Context, key string) (*domain.Directions, bool, error) {
	if r.Client == nil {
		return nil, false, errors.New("directions cache: redis client is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false, errors.New("get directions cache: key must not be empty")
	}

	b, err := r.Client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		obs.DirectionsCacheLookups.WithLabelValues("redis", "miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get directions cache: redis get: %w", err)
	}

	d, err := decodeDirections(b)
	if err != nil {
		return nil, false, fmt.Errorf("get directions cache key=%q: %w", key, err)
	}

	obs.DirectionsCacheLookups.WithLabelValues("redis", "hit").Inc()
	return d, true, nil
}

func (r *RedisDirectionsCache) Put(ctx context.Context, key string, d *domain.Directions) error {
	if r.Client == nil {
		return errors.New("directions cache: redis client is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("insert directions cache: key must not be empty")
	}
	if d == nil {
		return errors.New("insert directions cache: directions must be non-nil")
	}

	b, err := encodeDirections(d)
	if err != nil {
		return fmt.Errorf("insert directions cache: %w", err)
	}

	if err := r.Client.Set(ctx, redisKeyPrefix+key, b, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert directions cache key=%q: redis set: %w", key, err)
	}
	return nil
}
