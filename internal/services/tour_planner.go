package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"waypoint-tour-service/internal/domain"
	"waypoint-tour-service/internal/platform/obs"
	"waypoint-tour-service/internal/ports"
)

// Strategy selects the tour builder.
type Strategy string

const (
	StrategyGreedy Strategy = "greedy"
	StrategyExact  Strategy = "exact"
)

// DefaultMaxExactWaypoints keeps exhaustive search interactive (9! leaves).
const DefaultMaxExactWaypoints = 10

var (
	ErrUnknownStrategy  = errors.New("unknown strategy")
	ErrTooManyWaypoints = errors.New("too many waypoints for strategy")
)

// ParseStrategy maps a user-supplied name to a Strategy. An empty name selects greedy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyGreedy:
		return StrategyGreedy, nil
	case StrategyExact:
		return StrategyExact, nil
	}
	return "", fmt.Errorf("parse strategy %q: %w", s, ErrUnknownStrategy)
}

type PlanTourRequest struct {
	Strategy       Strategy
	Waypoints      []domain.Waypoint
	WithDirections bool
	LabelPrefix    string
	// Zero means DefaultMaxExactWaypoints.
	MaxExactWaypoints int
	Prune             bool
}

// SolveTour runs the builder selected by strategy.
func SolveTour(
	strategy Strategy,
	waypoints []domain.Waypoint,
	metric ports.DistanceMetric,
	opts ExactOptions,
) (*domain.TourResult, domain.SolveStats, error) {
	switch strategy {
	case StrategyGreedy:
		return greedyTour(waypoints, metric)
	case StrategyExact:
		return ExactTour(waypoints, metric, opts)
	}
	return nil, domain.SolveStats{}, fmt.Errorf("solve tour: strategy %q: %w", strategy, ErrUnknownStrategy)
}

// PlanTour computes a tour for the requested strategy, describes it and, when
// asked, fetches a walking route for it from the external routing service.
//
// A routing failure is reported through RoutingStatus; the tour itself is
// still returned because it does not depend on the routing service.
func PlanTour(
	ctx context.Context,
	req PlanTourRequest,
	metric ports.DistanceMetric,
	provider ports.DirectionsProvider,
) (_ *domain.TourPlan, err error) {
	defer obs.Time(ctx, "plan.tour")(&err)

	if len(req.Waypoints) < 2 {
		return nil, fmt.Errorf("plan tour: %w", domain.ErrInsufficientPoints)
	}

	maxExact := req.MaxExactWaypoints
	if maxExact <= 0 {
		maxExact = DefaultMaxExactWaypoints
	}
	if req.Strategy == StrategyExact && len(req.Waypoints) > maxExact {
		return nil, fmt.Errorf(
			"plan tour: %d waypoints, exact limit %d: %w",
			len(req.Waypoints), maxExact, ErrTooManyWaypoints,
		)
	}

	start := time.Now()
	result, stats, err := SolveTour(req.Strategy, req.Waypoints, metric, ExactOptions{Prune: req.Prune})
	if err != nil {
		return nil, fmt.Errorf("plan tour: %w", err)
	}
	obs.ObserveSolve(string(req.Strategy), time.Since(start), stats)

	plan := &domain.TourPlan{
		Strategy:      string(req.Strategy),
		Result:        result,
		Description:   result.Describe(req.LabelPrefix),
		RoutingStatus: domain.RoutingSkipped,
		Stats:         stats,
	}

	if !req.WithDirections {
		return plan, nil
	}
	if provider == nil {
		plan.RoutingStatus = domain.RoutingDisabled
		return plan, nil
	}

	dir, derr := provider.GetDirections(ctx, result.Path())
	if derr != nil {
		log.Printf("req_id=%s op=plan.tour directions failed: %v", obs.RequestID(ctx), derr)
		plan.RoutingStatus = domain.RoutingFailed
		obs.DirectionsRequests.WithLabelValues(string(domain.RoutingFailed)).Inc()
		return plan, nil
	}

	plan.Directions = dir
	plan.RoutingStatus = domain.RoutingOK
	obs.DirectionsRequests.WithLabelValues(string(domain.RoutingOK)).Inc()

	return plan, nil
}
