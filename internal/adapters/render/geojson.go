package render

import (
	"errors"
	"fmt"
	"waypoint-tour-service/internal/domain"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// MinPolygonWaypoints is the smallest tour that closes into a valid GeoJSON ring
// (a linear ring needs at least four positions).
const MinPolygonWaypoints = 3

var ErrDegeneratePolygon = errors.New("a polygon needs at least three waypoints")

func toOrb(p domain.Point) orb.Point { return orb.Point{p.Lng, p.Lat} }

func lineString(points []domain.Point) orb.LineString {
	ls := make(orb.LineString, 0, len(points))
	for _, p := range points {
		ls = append(ls, toOrb(p))
	}
	return ls
}

// TourFeatureCollection renders a plan for a map client: the closed tour as a
// LineString, one Point per waypoint labeled with its visiting order, and the
// walking route when one was fetched.
func TourFeatureCollection(plan *domain.TourPlan) (*geojson.FeatureCollection, error) {
	if plan == nil || plan.Result == nil || len(plan.Result.Waypoints) == 0 {
		return nil, errors.New("render tour: empty plan")
	}
	result := plan.Result

	fc := geojson.NewFeatureCollection()

	tour := geojson.NewFeature(lineString(result.ClosedPath()))
	tour.Properties["kind"] = "tour"
	tour.Properties["strategy"] = plan.Strategy
	tour.Properties["total_distance"] = result.TotalDistance
	tour.Properties["leg_distances"] = result.LegDistances
	tour.Properties["description"] = plan.Description
	fc.Append(tour)

	for i, w := range result.Waypoints {
		f := geojson.NewFeature(toOrb(w.Point))
		f.ID = w.ID
		f.Properties["kind"] = "waypoint"
		f.Properties["label"] = w.ID
		f.Properties["order"] = i
		f.Properties["home"] = i == 0
		fc.Append(f)
	}

	if plan.Directions != nil && len(plan.Directions.Path) >= 2 {
		route := geojson.NewFeature(lineString(plan.Directions.Path))
		route.Properties["kind"] = "directions"
		route.Properties["profile"] = plan.Directions.Profile
		route.Properties["distance_meters"] = plan.Directions.DistanceMeters
		route.Properties["duration_seconds"] = plan.Directions.DurationSeconds
		fc.Append(route)
	}

	return fc, nil
}

// PolygonFeature renders the tour order as a closed polygon ring.
func PolygonFeature(result *domain.TourResult) (*geojson.Feature, error) {
	if result == nil || len(result.Waypoints) < 2 {
		return nil, fmt.Errorf("render polygon: %w", domain.ErrInsufficientPoints)
	}
	if len(result.Waypoints) < MinPolygonWaypoints {
		return nil, fmt.Errorf("render polygon: %w", ErrDegeneratePolygon)
	}

	ring := orb.Ring(lineString(result.ClosedPath()))
	f := geojson.NewFeature(orb.Polygon{ring})
	f.Properties["kind"] = "polygon"
	f.Properties["total_distance"] = result.TotalDistance

	labels := make([]string, 0, len(result.Waypoints))
	for _, w := range result.Waypoints {
		labels = append(labels, w.ID)
	}
	f.Properties["labels"] = labels

	return f, nil
}
