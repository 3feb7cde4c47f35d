package domain

// RoutingStatus reports what happened when the external routing service was asked
// for a route. Routing failures never invalidate the computed tour.
type RoutingStatus string

const (
	RoutingOK       RoutingStatus = "OK"
	RoutingFailed   RoutingStatus = "FAILED"
	RoutingDisabled RoutingStatus = "DISABLED"
	RoutingSkipped  RoutingStatus = "SKIPPED"
)

// Search effort spent by a tour builder.
type SolveStats struct {
	DistanceEvaluations int
	Nodes               int
	Leaves              int
	Pruned              int
}

// Represents a planned tour handed to rendering and description consumers.
type TourPlan struct {
	Strategy      string
	Result        *TourResult
	Description   string
	Directions    *Directions
	RoutingStatus RoutingStatus
	Stats         SolveStats
}
