package services

import (
	"errors"
	"fmt"
	"math"
	"waypoint-tour-service/internal/domain"
	"waypoint-tour-service/internal/ports"
)

// ExactOptions tunes the exhaustive search without changing its answer.
type ExactOptions struct {
	// Prune abandons a partial path once its distance already reaches the best
	// complete tour. Distances are non-negative, so a pruned branch can never
	// produce a strictly shorter tour and the result is identical.
	Prune bool
}

// Find the shortest closed tour by exhaustive depth-first backtracking.
//
// Every ordering of waypoints[1:] is explored, trying candidates in input
// order, with waypoints[0] fixed as home. A complete tour replaces the best
// one only when strictly shorter, so among equal-length tours the first one
// discovered wins.
//
// The search visits (n-1)! leaves; it is meant for interactive sizes only and
// has no internal clock. Callers should cap n.
func ExactTour(
	waypoints []domain.Waypoint,
	metric ports.DistanceMetric,
	opts ExactOptions,
) (*domain.TourResult, domain.SolveStats, error) {
	if len(waypoints) < 2 {
		return nil, domain.SolveStats{}, fmt.Errorf("exact tour: got %d waypoints: %w", len(waypoints), domain.ErrInsufficientPoints)
	}
	if metric == nil {
		return nil, domain.SolveStats{}, errors.New("exact tour: distance metric must be non-nil")
	}

	s := newExactSearch(waypoints, metric, opts)
	s.run()

	if s.bestPath == nil {
		return nil, s.stats, errors.New("exact tour: no complete tour found")
	}

	ordered := make([]domain.Waypoint, 0, s.n)
	legs := make([]float64, 0, s.n)
	total := 0.0
	for i, idx := range s.bestPath {
		ordered = append(ordered, waypoints[idx])

		nextIdx := 0
		if i+1 < len(s.bestPath) {
			nextIdx = s.bestPath[i+1]
		}
		leg := s.dist[idx][nextIdx]
		legs = append(legs, leg)
		total += leg
	}

	return &domain.TourResult{
		Waypoints:     ordered,
		TotalDistance: total,
		LegDistances:  legs,
	}, s.stats, nil
}

// searchFrame is one level of the explicit DFS stack.
type searchFrame struct {
	node int     // waypoint index at this depth
	next int     // next candidate index to try from node
	dist float64 // path distance from home to node
}

// exactSearch owns all mutable state of a single ExactTour call.
type exactSearch struct {
	n     int
	dist  [][]float64
	prune bool

	visited []bool
	path    []int

	bestPath     []int
	bestDistance float64

	stats domain.SolveStats
}

func newExactSearch(waypoints []domain.Waypoint, metric ports.DistanceMetric, opts ExactOptions) *exactSearch {
	n := len(waypoints)

	s := &exactSearch{
		n:            n,
		dist:         make([][]float64, n),
		prune:        opts.Prune,
		visited:      make([]bool, n),
		path:         make([]int, 0, n),
		bestDistance: math.Inf(1),
	}

	// The metric is pure, so each ordered pair is evaluated once up front.
	for i := 0; i < n; i++ {
		s.dist[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			s.dist[i][j] = metric.Distance(waypoints[i].Point, waypoints[j].Point)
			s.stats.DistanceEvaluations++
		}
	}

	return s
}

func (s *exactSearch) run() {
	s.visited[0] = true
	s.path = append(s.path, 0)
	stack := make([]searchFrame, 1, s.n)
	stack[0] = searchFrame{node: 0, next: 1}
	s.stats.Nodes++

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// All waypoints placed: close the tour and compare.
		if len(s.path) == s.n {
			s.stats.Leaves++
			total := top.dist + s.dist[top.node][0]
			if total < s.bestDistance {
				s.bestDistance = total
				s.bestPath = append(s.bestPath[:0], s.path...)
			}
			stack = s.pop(stack)
			continue
		}

		c := top.next
		for c < s.n && s.visited[c] {
			c++
		}
		if c == s.n {
			stack = s.pop(stack)
			continue
		}
		top.next = c + 1

		nextDist := top.dist + s.dist[top.node][c]
		if s.prune && nextDist >= s.bestDistance {
			s.stats.Pruned++
			continue
		}

		s.visited[c] = true
		s.path = append(s.path, c)
		stack = append(stack, searchFrame{node: c, next: 1, dist: nextDist})
		s.stats.Nodes++
	}
}

// pop undoes the top frame: the node is unmarked and removed from the path.
func (s *exactSearch) pop(stack []searchFrame) []searchFrame {
	top := stack[len(stack)-1]
	s.visited[top.node] = false
	s.path = s.path[:len(s.path)-1]
	return stack[:len(stack)-1]
}
