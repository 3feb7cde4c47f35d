package domain

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Immutable geographic point (latitude, longitude) in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// NewPoint builds a Point after rejecting non-finite or out-of-range values.
func NewPoint(lat, lng float64) (Point, error) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return Point{}, fmt.Errorf("new point: latitude %v: %w", lat, ErrInvalidCoordinate)
	}
	if math.IsNaN(lng) || math.IsInf(lng, 0) || lng < -180 || lng > 180 {
		return Point{}, fmt.Errorf("new point: longitude %v: %w", lng, ErrInvalidCoordinate)
	}
	return Point{Lat: lat, Lng: lng}, nil
}

// Return coordinates as [lng, lat] for external API compatibility.
func (p Point) CoordsToList() []float64 { return []float64{p.Lng, p.Lat} }
