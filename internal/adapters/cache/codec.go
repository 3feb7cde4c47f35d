package cache

import (
	"encoding/json"
	"fmt"
	"waypoint-tour-service/internal/domain"
)

// Stored form of domain.Directions. Points are [lng, lat] pairs.
type directionsRecord struct {
	Profile         string       `json:"profile"`
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
	Path            [][2]float64 `json:"path"`
	Legs            []legRecord  `json:"legs"`
}

type legRecord struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
}

func encodeDirections(d *domain.Directions) ([]byte, error) {
	rec := directionsRecord{
		Profile:         d.Profile,
		DistanceMeters:  d.DistanceMeters,
		DurationSeconds: d.DurationSeconds,
		Path:            make([][2]float64, 0, len(d.Path)),
		Legs:            make([]legRecord, 0, len(d.Legs)),
	}
	for _, p := range d.Path {
		rec.Path = append(rec.Path, [2]float64{p.Lng, p.Lat})
	}
	for _, l := range d.Legs {
		rec.Legs = append(rec.Legs, legRecord(l))
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode directions: %w", err)
	}
	return b, nil
}

func decodeDirections(b []byte) (*domain.Directions, error) {
	var rec directionsRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode directions: %w", err)
	}

	d := &domain.Directions{
		Profile:         rec.Profile,
		DistanceMeters:  rec.DistanceMeters,
		DurationSeconds: rec.DurationSeconds,
		Path:            make([]domain.Point, 0, len(rec.Path)),
		Legs:            make([]domain.DirectionsLeg, 0, len(rec.Legs)),
	}
	for _, c := range rec.Path {
		d.Path = append(d.Path, domain.Point{Lng: c[0], Lat: c[1]})
	}
	for _, l := range rec.Legs {
		d.Legs = append(d.Legs, domain.DirectionsLeg(l))
	}
	return d, nil
}
