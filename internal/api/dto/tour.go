package dto

type WaypointRequest struct {
	ID  string   `json:"id"`
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type TourRequest struct {
	Strategy    string            `json:"strategy"`
	Waypoints   []WaypointRequest `json:"waypoints"`
	Directions  bool              `json:"directions"`
	LabelPrefix *string           `json:"label_prefix"`
	Prune       bool              `json:"prune"`
}

type WaypointResponse struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type DirectionsLegResponse struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type DirectionsResponse struct {
	Profile         string                  `json:"profile"`
	DistanceMeters  float64                 `json:"distance_meters"`
	DurationSeconds float64                 `json:"duration_seconds"`
	Path            []LatLng                `json:"path"`
	Legs            []DirectionsLegResponse `json:"legs"`
}

type StatsResponse struct {
	DistanceEvaluations int `json:"distance_evaluations"`
	Nodes               int `json:"nodes"`
	Leaves              int `json:"leaves"`
	Pruned              int `json:"pruned"`
}

type TourResponse struct {
	Strategy      string              `json:"strategy"`
	Waypoints     []WaypointResponse  `json:"waypoints"`
	TotalDistance float64             `json:"total_distance_meters"`
	LegDistances  []float64           `json:"leg_distances_meters"`
	Description   string              `json:"description"`
	RoutingStatus string              `json:"routing_status"`
	Directions    *DirectionsResponse `json:"directions,omitempty"`
	Stats         StatsResponse       `json:"stats"`
}
