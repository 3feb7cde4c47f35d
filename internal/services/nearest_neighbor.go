package services

import (
	"errors"
	"fmt"
	"waypoint-tour-service/internal/domain"
	"waypoint-tour-service/internal/ports"
)

// Build a closed tour using a greedy nearest-neighbor heuristic.
//
// Starting at waypoints[0], the algorithm repeatedly moves to the closest
// waypoint not yet visited and finally returns home. It never revisits a
// decision, so the result is fast but not globally optimal.
// Ties go to the candidate encountered first in input order, which keeps the
// output deterministic for a fixed input.
//
// The input slice is not modified.
func GreedyTour(waypoints []domain.Waypoint, metric ports.DistanceMetric) (*domain.TourResult, error) {
	tour, _, err := greedyTour(waypoints, metric)
	return tour, err
}

func greedyTour(waypoints []domain.Waypoint, metric ports.DistanceMetric) (*domain.TourResult, domain.SolveStats, error) {
	var stats domain.SolveStats

	if len(waypoints) < 2 {
		return nil, stats, fmt.Errorf("greedy tour: got %d waypoints: %w", len(waypoints), domain.ErrInsufficientPoints)
	}
	if metric == nil {
		return nil, stats, errors.New("greedy tour: distance metric must be non-nil")
	}

	home := waypoints[0]

	remaining := make([]domain.Waypoint, len(waypoints)-1)
	copy(remaining, waypoints[1:])

	ordered := make([]domain.Waypoint, 0, len(waypoints))
	ordered = append(ordered, home)
	legs := make([]float64, 0, len(waypoints))

	current := home
	total := 0.0

	for len(remaining) > 0 {
		closestIdx := 0
		closestDistance := metric.Distance(current.Point, remaining[0].Point)
		stats.DistanceEvaluations++

		// Select next stop by minimum distance (greedy step).
		for i := 1; i < len(remaining); i++ {
			d := metric.Distance(current.Point, remaining[i].Point)
			stats.DistanceEvaluations++
			if d < closestDistance {
				closestDistance = d
				closestIdx = i
			}
		}

		next := remaining[closestIdx]
		ordered = append(ordered, next)
		legs = append(legs, closestDistance)
		total += closestDistance

		remaining = append(remaining[:closestIdx], remaining[closestIdx+1:]...)
		current = next
	}

	// Close the tour.
	back := metric.Distance(current.Point, home.Point)
	stats.DistanceEvaluations++
	legs = append(legs, back)
	total += back

	return &domain.TourResult{
		Waypoints:     ordered,
		TotalDistance: total,
		LegDistances:  legs,
	}, stats, nil
}
