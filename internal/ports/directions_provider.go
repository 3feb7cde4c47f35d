package ports

import (
	"context"
	"waypoint-tour-service/internal/domain"
)

// Contract for the external routing service that turns a visiting order into a
// walkable route.
type DirectionsProvider interface {
	// Return a route that starts at stops[0], visits the remaining stops in order
	// and returns to stops[0].
	GetDirections(ctx context.Context, stops []domain.Point) (*domain.Directions, error)
}
