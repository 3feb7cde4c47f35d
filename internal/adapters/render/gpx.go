package render

import (
	"errors"
	"fmt"
	"waypoint-tour-service/internal/domain"

	"github.com/tkrajina/gpxgo/gpx"
)

// TourGPX renders a plan as a GPX 1.1 document: the waypoints, a route in
// visiting order that returns home, and the walking track when present.
func TourGPX(plan *domain.TourPlan, labelPrefix string) ([]byte, error) {
	if plan == nil || plan.Result == nil || len(plan.Result.Waypoints) == 0 {
		return nil, errors.New("render gpx: empty plan")
	}
	result := plan.Result

	name := func(w domain.Waypoint) string {
		if labelPrefix == "" {
			return w.ID
		}
		return labelPrefix + " " + w.ID
	}

	doc := &gpx.GPX{
		Creator:     "waypoint-tour-service",
		Name:        plan.Strategy + " tour",
		Description: plan.Description,
	}

	route := gpx.GPXRoute{Name: plan.Description}
	for _, w := range result.Waypoints {
		pt := gpx.GPXPoint{
			Point: gpx.Point{Latitude: w.Point.Lat, Longitude: w.Point.Lng},
			Name:  name(w),
		}
		doc.Waypoints = append(doc.Waypoints, pt)
		route.Points = append(route.Points, pt)
	}
	home := result.Waypoints[0]
	route.Points = append(route.Points, gpx.GPXPoint{
		Point: gpx.Point{Latitude: home.Point.Lat, Longitude: home.Point.Lng},
		Name:  name(home),
	})
	doc.Routes = append(doc.Routes, route)

	if plan.Directions != nil && len(plan.Directions.Path) > 0 {
		seg := gpx.GPXTrackSegment{}
		for _, p := range plan.Directions.Path {
			seg.Points = append(seg.Points, gpx.GPXPoint{Point: gpx.Point{Latitude: p.Lat, Longitude: p.Lng}})
		}
		doc.Tracks = append(doc.Tracks, gpx.GPXTrack{
			Name:     plan.Directions.Profile,
			Segments: []gpx.GPXTrackSegment{seg},
		})
	}

	b, err := doc.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return nil, fmt.Errorf("render gpx: %w", err)
	}
	return b, nil
}
