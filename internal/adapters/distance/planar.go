package distance

import (
	"math"
	"waypoint-tour-service/internal/domain"
	"waypoint-tour-service/internal/ports"
)

// Planar treats (Lat, Lng) as Cartesian coordinates and returns the Euclidean
// distance. Units are whatever the coordinates are in; it is meant for tests and
// abstract layouts, not map-scale tours.
type Planar struct{}

func (Planar) Distance(a, b domain.Point) float64 {
	return math.Hypot(a.Lat-b.Lat, a.Lng-b.Lng)
}

// Counting wraps a metric and records how many distances were evaluated.
type Counting struct {
	Metric ports.DistanceMetric
	Calls  int
}

func (c *Counting) Distance(a, b domain.Point) float64 {
	c.Calls++
	return c.Metric.Distance(a, b)
}
