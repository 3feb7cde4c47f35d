package ports

import (
	"context"
	"waypoint-tour-service/internal/domain"
)

// Port: a boundary for storing routes fetched from the external routing service.
type DirectionsCache interface {
	// Return the cached route for key; ok is false on a miss.
	Get(ctx context.Context, key string) (d *domain.Directions, ok bool, err error)
	// Store the route for key, replacing any previous entry.
	Put(ctx context.Context, key string, d *domain.Directions) error
}
