package api

import (
	"net/http"
	"waypoint-tour-service/internal/api/handlers"
	"waypoint-tour-service/internal/platform/obs"
	"waypoint-tour-service/internal/ports"
)

type RouterConfig struct {
	Metric            ports.DistanceMetric
	Provider          ports.DirectionsProvider
	MaxWaypoints      int
	MaxExactWaypoints int
	LabelPrefix       string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	tourHandler := &handlers.TourHandler{
		Metric:            cfg.Metric,
		Provider:          cfg.Provider,
		MaxWaypoints:      cfg.MaxWaypoints,
		MaxExactWaypoints: cfg.MaxExactWaypoints,
		LabelPrefix:       cfg.LabelPrefix,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/tours", tourHandler.Plan)
	mux.HandleFunc("/tours/geojson", tourHandler.GeoJSON)
	mux.HandleFunc("/tours/gpx", tourHandler.GPX)
	mux.HandleFunc("/polygons", tourHandler.Polygon)
	mux.Handle("/metrics", obs.Handler())

	// requestID runs first so the logging middleware sees the id.
	return requestIDMiddleware(loggingMiddleware(mux))
}
