package ports

import "waypoint-tour-service/internal/domain"

// Contract for measuring the distance between two points.
// Implementations must be pure: non-negative, deterministic and free of side effects.
type DistanceMetric interface {
	// Return the distance between a and b.
	Distance(a, b domain.Point) float64
}

// Adapter to allow the use of ordinary functions as distance metrics.
type DistanceFunc func(a, b domain.Point) float64

func (f DistanceFunc) Distance(a, b domain.Point) float64 { return f(a, b) }
