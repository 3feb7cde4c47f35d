package obs

import (
	"net/http"
	"time"
	"waypoint-tour-service/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var msBuckets = []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000, 5000}

var (
	ToursSolved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tour_solves_total",
		Help: "Total number of tours built, by strategy",
	}, []string{"strategy"})
	SolveDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tour_solve_duration_ms",
		Help:    "Tour builder duration in milliseconds",
		Buckets: msBuckets,
	}, []string{"strategy"})
	SearchLeaves = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tour_exact_leaves",
		Help:    "Complete tours evaluated by the exact solver per call",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})
	DirectionsRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tour_directions_requests_total",
		Help: "Directions lookups by outcome",
	}, []string{"status"})
	DirectionsCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tour_directions_cache_lookups_total",
		Help: "Directions cache lookups by layer and result",
	}, []string{"layer", "result"})
	OperationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tour_operation_duration_ms",
		Help:    "Duration of timed operations in milliseconds",
		Buckets: msBuckets,
	}, []string{"op"})
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tour_http_requests_total",
		Help: "HTTP requests by route pattern and status code",
	}, []string{"path", "status"})
)

func init() {
	prometheus.MustRegister(
		ToursSolved,
		SolveDurationMs,
		SearchLeaves,
		DirectionsRequests,
		DirectionsCacheLookups,
		OperationDuration,
		HTTPRequests,
	)
}

// ObserveSolve records one tour build.
func ObserveSolve(strategy string, dur time.Duration, stats domain.SolveStats) {
	ToursSolved.WithLabelValues(strategy).Inc()
	SolveDurationMs.WithLabelValues(strategy).Observe(float64(dur.Microseconds()) / 1000)
	if stats.Leaves > 0 {
		SearchLeaves.Observe(float64(stats.Leaves))
	}
}

func Handler() http.Handler { return promhttp.Handler() }
