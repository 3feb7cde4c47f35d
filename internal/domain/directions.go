package domain

// One leg of a walking route between consecutive tour stops.
type DirectionsLeg struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// Represents the route returned by the external routing service for a tour.
// Path is the polyline to draw; Legs follow the tour order including the
// closing leg back to home.
type Directions struct {
	Profile         string
	DistanceMeters  float64
	DurationSeconds float64
	Path            []Point
	Legs            []DirectionsLeg
}
