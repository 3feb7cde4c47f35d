package cache

import (
	"context"
	"errors"
	"testing"
	"time"
	"waypoint-tour-service/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func sampleDirections() *domain.Directions {
	return &domain.Directions{
		Profile:         "foot-walking",
		DistanceMeters:  1234.5,
		DurationSeconds: 890.1,
		Path: []domain.Point{
			{Lat: -10.9311, Lng: -37.0979},
			{Lat: -10.9320, Lng: -37.0990},
			{Lat: -10.9311, Lng: -37.0979},
		},
		Legs: []domain.DirectionsLeg{
			{DistanceMeters: 600, DurationSeconds: 430},
			{DistanceMeters: 634.5, DurationSeconds: 460.1},
		},
	}
}

func newRedisCache(t *testing.T, ttl time.Duration) (*RedisDirectionsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisDirectionsCache(client, ttl), mr
}

func TestRedisDirectionsCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t, time.Hour)

	_, ok, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Put(ctx, "abc", sampleDirections()))
	require.True(t, mr.Exists(redisKeyPrefix+"abc"))
	require.Equal(t, time.Hour, mr.TTL(redisKeyPrefix+"abc"))

	got, ok, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, sampleDirections(), got)
}

func TestRedisDirectionsCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t, time.Minute)

	require.NoError(t, c.Put(ctx, "abc", sampleDirections()))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisDirectionsCacheRejectsEmptyKey(t *testing.T) {
	c, _ := newRedisCache(t, 0)
	require.Error(t, c.Put(context.Background(), " ", sampleDirections()))
	_, _, err := c.Get(context.Background(), "")
	require.Error(t, err)
}

// memCache is an in-memory layer used to observe chain behavior.
type memCache struct {
	m      map[string]*domain.Directions
	getErr error
	puts   int
}

func newMemCache() *memCache { return &memCache{m: map[string]*domain.Directions{}} }

func (c *memCache) Get(_ context.Context, key string) (*domain.Directions, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	d, ok := c.m[key]
	return d, ok, nil
}

func (c *memCache) Put(_ context.Context, key string, d *domain.Directions) error {
	c.puts++
	c.m[key] = d
	return nil
}

func TestChainDirectionsCacheBackfill(t *testing.T) {
	ctx := context.Background()
	fast, slow := newMemCache(), newMemCache()
	slow.m["k"] = sampleDirections()

	chain := NewChainDirectionsCache(fast, nil, slow)
	require.Equal(t, 2, chain.Len())

	got, ok, err := chain.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, sampleDirections(), got)

	// first layer is back-filled from the hit
	_, ok = fast.m["k"]
	require.True(t, ok)
	require.Equal(t, 0, slow.puts)
}

func TestChainDirectionsCacheSkipsFailingLayer(t *testing.T) {
	ctx := context.Background()
	broken, healthy := newMemCache(), newMemCache()
	broken.getErr = errors.New("connection refused")

	chain := NewChainDirectionsCache(broken, healthy)
	require.NoError(t, chain.Put(ctx, "k", sampleDirections()))
	require.Equal(t, 1, broken.puts)
	require.Equal(t, 1, healthy.puts)

	_, ok, err := chain.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = chain.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSQLDirectionsCacheNilDB(t *testing.T) {
	c := NewSQLDirectionsCache(nil)
	_, _, err := c.Get(context.Background(), "k")
	require.Error(t, err)
	require.Error(t, c.Put(context.Background(), "k", sampleDirections()))
}
