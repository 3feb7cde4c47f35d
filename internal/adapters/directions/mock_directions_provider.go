package directions

import (
	"context"
	"errors"
	"waypoint-tour-service/internal/adapters/distance"
	"waypoint-tour-service/internal/domain"
)

// MockProvider returns a straight-line route through the stops. It is used by
// tests and by local runs without an ORS key when MOCK_DIRECTIONS is set.
type MockProvider struct {
	Err   error
	Calls int
}

func (m *MockProvider) GetDirections(_ context.Context, stops []domain.Point) (*domain.Directions, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if len(stops) < 2 {
		return nil, errors.New("mock directions: need at least two stops")
	}

	metric := distance.NewSpherical()
	const walkingSpeed = 1.4 // m/s

	out := &domain.Directions{Profile: "mock"}
	for i := range stops {
		from, to := stops[i], stops[(i+1)%len(stops)]
		d := metric.Distance(from, to)
		out.Legs = append(out.Legs, domain.DirectionsLeg{DistanceMeters: d, DurationSeconds: d / walkingSpeed})
		out.DistanceMeters += d
		out.DurationSeconds += d / walkingSpeed
		out.Path = append(out.Path, from)
	}
	out.Path = append(out.Path, stops[0])

	return out, nil
}
