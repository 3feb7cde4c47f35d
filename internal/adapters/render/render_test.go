package render

import (
	"encoding/json"
	"testing"
	"waypoint-tour-service/internal/domain"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/require"
	"github.com/tkrajina/gpxgo/gpx"
)

func samplePlan() *domain.TourPlan {
	result := &domain.TourResult{
		Waypoints: []domain.Waypoint{
			{ID: "1", Point: domain.Point{Lat: -10.9311, Lng: -37.0979}},
			{ID: "3", Point: domain.Point{Lat: -10.9350, Lng: -37.0990}},
			{ID: "2", Point: domain.Point{Lat: -10.9330, Lng: -37.0985}},
		},
		TotalDistance: 1000,
		LegDistances:  []float64{400, 250, 350},
	}
	return &domain.TourPlan{
		Strategy:      "exact",
		Result:        result,
		Description:   result.Describe("Point"),
		RoutingStatus: domain.RoutingSkipped,
	}
}

func TestTourFeatureCollection(t *testing.T) {
	fc, err := TourFeatureCollection(samplePlan())
	require.NoError(t, err)
	require.Len(t, fc.Features, 4)

	line, ok := fc.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	require.Len(t, line, 4)
	require.Equal(t, line[0], line[len(line)-1])
	require.Equal(t, orb.Point{-37.0979, -10.9311}, line[0])

	require.Equal(t, "3", fc.Features[2].Properties["label"])
	require.Equal(t, 1, fc.Features[2].Properties["order"])

	// survives a JSON round trip as valid GeoJSON
	b, err := json.Marshal(fc)
	require.NoError(t, err)
	back, err := geojson.UnmarshalFeatureCollection(b)
	require.NoError(t, err)
	require.Len(t, back.Features, 4)
}

func TestTourFeatureCollectionWithDirections(t *testing.T) {
	plan := samplePlan()
	plan.Directions = &domain.Directions{
		Profile: "foot-walking",
		Path:    plan.Result.ClosedPath(),
	}

	fc, err := TourFeatureCollection(plan)
	require.NoError(t, err)
	require.Len(t, fc.Features, 5)
	require.Equal(t, "directions", fc.Features[4].Properties["kind"])
}

func TestPolygonFeature(t *testing.T) {
	f, err := PolygonFeature(samplePlan().Result)
	require.NoError(t, err)

	poly, ok := f.Geometry.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, poly, 1)
	require.True(t, poly[0].Closed())
	require.Len(t, poly[0], 4)

	_, err = PolygonFeature(&domain.TourResult{Waypoints: []domain.Waypoint{{ID: "1"}}})
	require.ErrorIs(t, err, domain.ErrInsufficientPoints)
	twoPoints := samplePlan().Result
	twoPoints.Waypoints = twoPoints.Waypoints[:2]
	_, err = PolygonFeature(twoPoints)
	require.ErrorIs(t, err, ErrDegeneratePolygon)
}

func TestTourGPX(t *testing.T) {
	b, err := TourGPX(samplePlan(), "Point")
	require.NoError(t, err)

	doc, err := gpx.ParseBytes(b)
	require.NoError(t, err)
	require.Len(t, doc.Waypoints, 3)
	require.Equal(t, "Point 3", doc.Waypoints[1].Name)
	require.Len(t, doc.Routes, 1)
	require.Len(t, doc.Routes[0].Points, 4)
	require.InDelta(t, -10.9311, doc.Routes[0].Points[3].Latitude, 1e-9)
	require.Empty(t, doc.Tracks)
}
