package distance

import (
	"waypoint-tour-service/internal/domain"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// EarthRadiusMeters is the sphere radius used for great-circle distances.
const EarthRadiusMeters = orb.EarthRadius

// Spherical measures great-circle distance in meters with the haversine formula
// on a sphere of radius EarthRadiusMeters.
type Spherical struct{}

func NewSpherical() Spherical { return Spherical{} }

func (Spherical) Distance(a, b domain.Point) float64 {
	return geo.DistanceHaversine(toOrb(a), toOrb(b))
}

func toOrb(p domain.Point) orb.Point { return orb.Point{p.Lng, p.Lat} }
