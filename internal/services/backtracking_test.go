package services

import (
	"math"
	"testing"
	"waypoint-tour-service/internal/adapters/distance"
	"waypoint-tour-service/internal/domain"
	"waypoint-tour-service/internal/ports"

	"github.com/stretchr/testify/require"
)

func TestExactTourScenario(t *testing.T) {
	in := scenarioWaypoints()

	tour, stats, err := ExactTour(in, distance.Planar{}, ExactOptions{})
	require.NoError(t, err)
	requireValidTour(t, in, tour)

	// home→A→B→C and its reverse home→C→B→A both cost 3+√5.
	require.InDelta(t, 3+math.Sqrt(5), tour.TotalDistance, 1e-12)
	order := ids(tour)
	require.Contains(t, [][]string{
		{"home", "A", "B", "C"},
		{"home", "C", "B", "A"},
	}, order)

	require.Equal(t, 6, stats.Leaves)
	require.Equal(t, 12, stats.DistanceEvaluations)
}

func TestExactTourFindsShorterTourThanGreedy(t *testing.T) {
	// Greedy walks the near column first and pays a long closing leg.
	in := []domain.Waypoint{
		wp("H", 0, 0),
		wp("1", 0, 1),
		wp("2", 0, 2.5),
		wp("3", 0, 4.5),
		wp("4", 1.2, 0.5),
	}

	greedy, err := GreedyTour(in, distance.Planar{})
	require.NoError(t, err)
	exact, _, err := ExactTour(in, distance.Planar{}, ExactOptions{})
	require.NoError(t, err)

	requireValidTour(t, in, exact)
	require.Less(t, exact.TotalDistance, greedy.TotalDistance)
}

func TestExactTourTwoWaypoints(t *testing.T) {
	in := []domain.Waypoint{wp("1", 0, 0), wp("2", 3, 4)}

	tour, stats, err := ExactTour(in, distance.Planar{}, ExactOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, ids(tour))
	require.Equal(t, 10.0, tour.TotalDistance)
	require.Equal(t, []float64{5, 5}, tour.LegDistances)
	require.Equal(t, 1, stats.Leaves)
}

func TestExactTourInsufficientPoints(t *testing.T) {
	_, _, err := ExactTour(nil, distance.Planar{}, ExactOptions{})
	require.ErrorIs(t, err, domain.ErrInsufficientPoints)

	_, _, err = ExactTour([]domain.Waypoint{wp("1", 0, 0)}, distance.Planar{}, ExactOptions{})
	require.ErrorIs(t, err, domain.ErrInsufficientPoints)
}

func TestExactTourCoincidentPoints(t *testing.T) {
	in := []domain.Waypoint{wp("1", 5, 5), wp("2", 5, 5), wp("3", 5, 6)}

	tour, _, err := ExactTour(in, distance.NewSpherical(), ExactOptions{})
	require.NoError(t, err)
	requireValidTour(t, in, tour)
	require.Contains(t, tour.LegDistances, 0.0)
}

func TestExactTourFirstImprovementWinsTies(t *testing.T) {
	// Square: both directions around the perimeter cost 4; the DFS meets
	// home→1→2→3 before its reverse, and equal totals never replace the best.
	in := []domain.Waypoint{wp("0", 0, 0), wp("1", 0, 1), wp("2", 1, 1), wp("3", 1, 0)}

	tour, _, err := ExactTour(in, distance.Planar{}, ExactOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2", "3"}, ids(tour))
	require.Equal(t, 4.0, tour.TotalDistance)
}

func TestExactTourNeverWorseThanGreedy(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		in := randomWaypoints(seed, 7)

		greedy, err := GreedyTour(in, distance.NewSpherical())
		require.NoError(t, err)
		exact, _, err := ExactTour(in, distance.NewSpherical(), ExactOptions{})
		require.NoError(t, err)

		requireValidTour(t, in, greedy)
		requireValidTour(t, in, exact)
		require.LessOrEqual(t, exact.TotalDistance, greedy.TotalDistance+1e-9, "seed %d", seed)
	}
}

func TestExactTourEightPoints(t *testing.T) {
	in := randomWaypoints(11, 8)

	tour, stats, err := ExactTour(in, distance.NewSpherical(), ExactOptions{})
	require.NoError(t, err)
	requireValidTour(t, in, tour)
	require.Equal(t, 5040, stats.Leaves)
	require.Zero(t, stats.Pruned)

	// The optimum does not depend on the order the non-home waypoints are given in.
	permuted := []domain.Waypoint{in[0], in[5], in[2], in[7], in[1], in[6], in[3], in[4]}
	other, otherStats, err := ExactTour(permuted, distance.NewSpherical(), ExactOptions{})
	require.NoError(t, err)
	requireValidTour(t, permuted, other)
	require.Equal(t, 5040, otherStats.Leaves)
	require.InDelta(t, tour.TotalDistance, other.TotalDistance, 1e-6)
}

func TestExactTourPruningKeepsAnswer(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		in := randomWaypoints(seed, 8)

		full, fullStats, err := ExactTour(in, distance.NewSpherical(), ExactOptions{})
		require.NoError(t, err)
		pruned, prunedStats, err := ExactTour(in, distance.NewSpherical(), ExactOptions{Prune: true})
		require.NoError(t, err)

		require.Equal(t, full, pruned, "seed %d", seed)
		require.Less(t, prunedStats.Leaves, fullStats.Leaves, "seed %d", seed)
		require.Positive(t, prunedStats.Pruned)
	}
}

func TestExactTourDeterministicAndPure(t *testing.T) {
	in := randomWaypoints(5, 7)
	snapshot := append([]domain.Waypoint(nil), in...)

	first, _, err := ExactTour(in, distance.NewSpherical(), ExactOptions{})
	require.NoError(t, err)
	second, _, err := ExactTour(in, distance.NewSpherical(), ExactOptions{})
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, snapshot, in)
}

func TestExactTourNoCompleteTour(t *testing.T) {
	nan := func(a, b domain.Point) float64 { return math.NaN() }

	_, _, err := ExactTour([]domain.Waypoint{wp("1", 0, 0), wp("2", 1, 1)}, ports.DistanceFunc(nan), ExactOptions{})
	require.Error(t, err)
}
