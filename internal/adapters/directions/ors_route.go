package directions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"waypoint-tour-service/internal/domain"
	"waypoint-tour-service/internal/platform/obs"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type routeRequest struct {
	Coordinates  [][]float64 `json:"coordinates"`
	Instructions bool        `json:"instructions"`
}

// fetchRoute asks the OpenRouteService directions endpoint for a route through
// coords in order and decodes the GeoJSON response.
func (o *ORSProvider) fetchRoute(
	ctx context.Context,
	coords []domain.Point,
) (_ *domain.Directions, err error) {
	defer obs.Time(ctx, "ors.fetchRoute")(&err)

	if len(coords) < 2 {
		return nil, errors.New("route needs at least two coordinates")
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", o.baseURL, o.profile)

	bodyObj := routeRequest{
		Coordinates:  make([][]float64, 0, len(coords)),
		Instructions: false,
	}
	for _, c := range coords {
		bodyObj.Coordinates = append(bodyObj.Coordinates, c.CoordsToList())
	}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return nil, fmt.Errorf("marshal route request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("route request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read route response: %w", err)
	}

	return decodeRoute(raw, o.profile, len(coords)-1)
}

// decodeRoute converts an ORS GeoJSON directions response into Directions.
// wantLegs is the number of segments the request implies (stops - 1).
func decodeRoute(raw []byte, profile string, wantLegs int) (*domain.Directions, error) {
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("decode route response: %w", err)
	}
	if len(fc.Features) == 0 {
		return nil, errors.New("route response has no features")
	}

	feature := fc.Features[0]
	line, ok := feature.Geometry.(orb.LineString)
	if !ok {
		return nil, fmt.Errorf("route geometry is %T, want LineString", feature.Geometry)
	}

	summary, ok := feature.Properties["summary"].(map[string]interface{})
	if !ok {
		return nil, errors.New("route response has no summary")
	}

	out := &domain.Directions{
		Profile:         profile,
		DistanceMeters:  number(summary["distance"]),
		DurationSeconds: number(summary["duration"]),
		Path:            make([]domain.Point, 0, len(line)),
	}
	for _, p := range line {
		out.Path = append(out.Path, domain.Point{Lat: p.Lat(), Lng: p.Lon()})
	}

	segments, _ := feature.Properties["segments"].([]interface{})
	for _, s := range segments {
		seg, ok := s.(map[string]interface{})
		if !ok {
			continue
		}
		out.Legs = append(out.Legs, domain.DirectionsLeg{
			DistanceMeters:  number(seg["distance"]),
			DurationSeconds: number(seg["duration"]),
		})
	}
	if len(out.Legs) != wantLegs {
		return nil, fmt.Errorf("route returned %d legs, want %d", len(out.Legs), wantLegs)
	}

	return out, nil
}

// ORS omits zero-valued metrics, so a missing key reads as 0.
func number(v interface{}) float64 {
	f, _ := v.(float64)
	return f
}
