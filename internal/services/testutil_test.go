package services

import (
	"math/rand"
	"testing"
	"waypoint-tour-service/internal/domain"

	"github.com/stretchr/testify/require"
)

func wp(id string, lat, lng float64) domain.Waypoint {
	return domain.Waypoint{ID: id, Point: domain.Point{Lat: lat, Lng: lng}}
}

// scenario: home at (0,0), A(0,1), B(0,2), C(1,0)
func scenarioWaypoints() []domain.Waypoint {
	return []domain.Waypoint{
		wp("home", 0, 0),
		wp("A", 0, 1),
		wp("B", 0, 2),
		wp("C", 1, 0),
	}
}

// Deterministic pseudo-random waypoints around a city-sized area.
func randomWaypoints(seed int64, n int) []domain.Waypoint {
	r := rand.New(rand.NewSource(seed))
	out := make([]domain.Waypoint, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, wp(domain.SequentialLabel(i), -10.93+r.Float64()*0.05, -37.10+r.Float64()*0.05))
	}
	return out
}

func ids(t *domain.TourResult) []string {
	out := make([]string, 0, len(t.Waypoints))
	for _, w := range t.Waypoints {
		out = append(out, w.ID)
	}
	return out
}

// requireValidTour checks the permutation, home-first and closed-tour properties.
func requireValidTour(t *testing.T, input []domain.Waypoint, tour *domain.TourResult) {
	t.Helper()

	require.NotNil(t, tour)
	require.Len(t, tour.Waypoints, len(input))
	require.Equal(t, input[0], tour.Waypoints[0], "tour must start at home")

	seen := make(map[string]int, len(input))
	for _, w := range tour.Waypoints {
		seen[w.ID]++
	}
	for _, w := range input {
		require.Equal(t, 1, seen[w.ID], "waypoint %s must appear exactly once", w.ID)
	}

	require.Len(t, tour.LegDistances, len(tour.Waypoints))
	sum := 0.0
	for _, d := range tour.LegDistances {
		require.GreaterOrEqual(t, d, 0.0)
		sum += d
	}
	require.InDelta(t, tour.TotalDistance, sum, 1e-9)
}
