package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"waypoint-tour-service/internal/domain"
	"waypoint-tour-service/internal/platform/obs"
)

// SQLDirectionsCache is a Postgres-backed cache of routes from the external routing service.
// Keys are expected to be derived consistently by the caller.
type SQLDirectionsCache struct {
	DB *sql.DB
}

func NewSQLDirectionsCache(db *sql.DB) *SQLDirectionsCache {
	return &SQLDirectionsCache{DB: db}
}

// Fetch a cached route by key.
func (s *SQLDirectionsCache) Get(ctx context.Context, key string) (_ *domain.Directions, _ bool, err error) {
	defer obs.Time(ctx, "directions.cache.sql.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("directions cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false, errors.New("get directions cache: key must not be empty")
	}

	q := `
	SELECT payload
    FROM directions_cache
    WHERE cache_key = $1;
	`

	var payload []byte
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		obs.DirectionsCacheLookups.WithLabelValues("sql", "miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get directions cache: query directions_cache table: %w", err)
	}

	d, err := decodeDirections(payload)
	if err != nil {
		return nil, false, fmt.Errorf("get directions cache key=%q: %w", key, err)
	}

	obs.DirectionsCacheLookups.WithLabelValues("sql", "hit").Inc()
	return d, true, nil
}

// Store a route, replacing any previous entry for the key.
func (s *SQLDirectionsCache) Put(ctx context.Context, key string, d *domain.Directions) error {
	if s.DB == nil {
		return errors.New("directions cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("insert directions cache: key must not be empty")
	}
	if d == nil {
		return errors.New("insert directions cache: directions must be non-nil")
	}

	payload, err := encodeDirections(d)
	if err != nil {
		return fmt.Errorf("insert directions cache: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO directions_cache (cache_key, profile, distance_meters, payload)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (cache_key) DO UPDATE
	SET profile = EXCLUDED.profile,
		distance_meters = EXCLUDED.distance_meters,
		payload = EXCLUDED.payload,
		created_at = now();
	`, key, d.Profile, d.DistanceMeters, payload)
	if err != nil {
		return fmt.Errorf("insert directions cache key=%q: %w", key, err)
	}

	return nil
}
