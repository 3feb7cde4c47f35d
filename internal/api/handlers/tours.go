package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"waypoint-tour-service/internal/adapters/render"
	"waypoint-tour-service/internal/api/dto"
	"waypoint-tour-service/internal/domain"
	"waypoint-tour-service/internal/platform/obs"
	"waypoint-tour-service/internal/ports"
	"waypoint-tour-service/internal/services"
)

const maxBodyBytes = 1 << 20

// TourHandler exposes tour planning and its rendered forms.
type TourHandler struct {
	Metric            ports.DistanceMetric
	Provider          ports.DirectionsProvider
	MaxWaypoints      int
	MaxExactWaypoints int
	LabelPrefix       string
}

// Plan computes a tour and returns it as JSON.
func (h *TourHandler) Plan(w http.ResponseWriter, r *http.Request) {
	plan, _, ok := h.plan(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, toTourResponse(plan))
}

// GeoJSON computes a tour and returns it as a GeoJSON FeatureCollection.
func (h *TourHandler) GeoJSON(w http.ResponseWriter, r *http.Request) {
	plan, _, ok := h.plan(w, r)
	if !ok {
		return
	}

	fc, err := render.TourFeatureCollection(plan)
	if err != nil {
		log.Printf("req_id=%s render geojson failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(fc); err != nil {
		log.Printf("req_id=%s encode failed: method=%s path=%s err=%v", obs.RequestID(r.Context()), r.Method, r.URL.Path, err)
	}
}

// GPX computes a tour and returns it as a GPX document.
func (h *TourHandler) GPX(w http.ResponseWriter, r *http.Request) {
	plan, prefix, ok := h.plan(w, r)
	if !ok {
		return
	}

	b, err := render.TourGPX(plan, prefix)
	if err != nil {
		log.Printf("req_id=%s render gpx failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/gpx+xml")
	w.Header().Set("Content-Disposition", `attachment; filename="tour.gpx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(b); err != nil {
		log.Printf("req_id=%s write gpx failed: %v", obs.RequestID(r.Context()), err)
	}
}

// Polygon orders the waypoints greedily and returns the closed ring as a GeoJSON Feature.
func (h *TourHandler) Polygon(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	waypoints, ok := h.waypoints(w, r, req)
	if !ok {
		return
	}

	result, err := services.GreedyTour(waypoints, h.Metric)
	if err != nil {
		h.writePlanError(w, r, err)
		return
	}

	f, err := render.PolygonFeature(result)
	if errors.Is(err, render.ErrDegeneratePolygon) {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		h.writePlanError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(f); err != nil {
		log.Printf("req_id=%s encode failed: method=%s path=%s err=%v", obs.RequestID(r.Context()), r.Method, r.URL.Path, err)
	}
}

// plan decodes and validates the request and runs the planner. On failure it has
// already written the response and returns ok=false.
func (h *TourHandler) plan(w http.ResponseWriter, r *http.Request) (*domain.TourPlan, string, bool) {
	req, ok := h.decode(w, r)
	if !ok {
		return nil, "", false
	}

	strategy, err := services.ParseStrategy(req.Strategy)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "strategy must be \"greedy\" or \"exact\"")
		return nil, "", false
	}

	waypoints, ok := h.waypoints(w, r, req)
	if !ok {
		return nil, "", false
	}

	prefix := h.LabelPrefix
	if req.LabelPrefix != nil {
		prefix = strings.TrimSpace(*req.LabelPrefix)
	}

	svcReq := services.PlanTourRequest{
		Strategy:          strategy,
		Waypoints:         waypoints,
		WithDirections:    req.Directions,
		LabelPrefix:       prefix,
		MaxExactWaypoints: h.MaxExactWaypoints,
		Prune:             req.Prune,
	}

	plan, err := services.PlanTour(r.Context(), svcReq, h.Metric, h.Provider)
	if err != nil {
		h.writePlanError(w, r, err)
		return nil, "", false
	}

	return plan, prefix, true
}

func (h *TourHandler) decode(w http.ResponseWriter, r *http.Request) (*dto.TourRequest, bool) {
	if !allowMethod(w, r, http.MethodPost) {
		return nil, false
	}

	var req dto.TourRequest

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return nil, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return nil, false
	}

	return &req, true
}

func (h *TourHandler) waypoints(w http.ResponseWriter, r *http.Request, req *dto.TourRequest) ([]domain.Waypoint, bool) {
	if h.MaxWaypoints > 0 && len(req.Waypoints) > h.MaxWaypoints {
		writeError(w, r, http.StatusUnprocessableEntity, fmt.Sprintf("at most %d waypoints are allowed", h.MaxWaypoints))
		return nil, false
	}

	waypoints, err := toWaypoints(req.Waypoints)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return waypoints, true
}

// toWaypoints validates coordinates and assigns placement-order labels to
// waypoints sent without an id.
func toWaypoints(in []dto.WaypointRequest) ([]domain.Waypoint, error) {
	out := make([]domain.Waypoint, 0, len(in))
	seen := make(map[string]struct{}, len(in))

	for i, wr := range in {
		if wr.Lat == nil || wr.Lng == nil {
			return nil, fmt.Errorf("waypoint %d: lat and lng are required", i+1)
		}

		p, err := domain.NewPoint(*wr.Lat, *wr.Lng)
		if err != nil {
			return nil, fmt.Errorf("waypoint %d: coordinates out of range", i+1)
		}

		id := strings.TrimSpace(wr.ID)
		if id == "" {
			id = domain.SequentialLabel(i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("waypoint %d: duplicate id %q", i+1, id)
		}
		seen[id] = struct{}{}

		out = append(out, domain.Waypoint{ID: id, Point: p})
	}

	return out, nil
}

func (h *TourHandler) writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientPoints):
		writeError(w, r, http.StatusUnprocessableEntity, "at least two waypoints are required")
	case errors.Is(err, services.ErrTooManyWaypoints):
		limit := h.MaxExactWaypoints
		if limit <= 0 {
			limit = services.DefaultMaxExactWaypoints
		}
		writeError(w, r, http.StatusUnprocessableEntity, fmt.Sprintf("exact strategy supports at most %d waypoints", limit))
	case errors.Is(err, services.ErrUnknownStrategy):
		writeError(w, r, http.StatusBadRequest, "strategy must be \"greedy\" or \"exact\"")
	default:
		log.Printf("req_id=%s plan tour failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func toTourResponse(p *domain.TourPlan) dto.TourResponse {
	res := dto.TourResponse{
		Strategy:      p.Strategy,
		Waypoints:     make([]dto.WaypointResponse, 0, len(p.Result.Waypoints)),
		TotalDistance: p.Result.TotalDistance,
		LegDistances:  p.Result.LegDistances,
		Description:   p.Description,
		RoutingStatus: string(p.RoutingStatus),
		Stats: dto.StatsResponse{
			DistanceEvaluations: p.Stats.DistanceEvaluations,
			Nodes:               p.Stats.Nodes,
			Leaves:              p.Stats.Leaves,
			Pruned:              p.Stats.Pruned,
		},
	}
	for _, wp := range p.Result.Waypoints {
		res.Waypoints = append(res.Waypoints, dto.WaypointResponse{
			ID:  wp.ID,
			Lat: wp.Point.Lat,
			Lng: wp.Point.Lng,
		})
	}

	if d := p.Directions; d != nil {
		dr := &dto.DirectionsResponse{
			Profile:         d.Profile,
			DistanceMeters:  d.DistanceMeters,
			DurationSeconds: d.DurationSeconds,
			Path:            make([]dto.LatLng, 0, len(d.Path)),
			Legs:            make([]dto.DirectionsLegResponse, 0, len(d.Legs)),
		}
		for _, pt := range d.Path {
			dr.Path = append(dr.Path, dto.LatLng{Lat: pt.Lat, Lng: pt.Lng})
		}
		for _, l := range d.Legs {
			dr.Legs = append(dr.Legs, dto.DirectionsLegResponse{
				DistanceMeters:  l.DistanceMeters,
				DurationSeconds: l.DurationSeconds,
			})
		}
		res.Directions = dr
	}

	return res
}
