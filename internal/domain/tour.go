package domain

import "strings"

const DescriptionSeparator = " → "

// Represents a closed visiting order over a waypoint set.
// Waypoints[0] is the home waypoint; the tour implicitly returns to it.
// LegDistances[i] is the distance from Waypoints[i] to Waypoints[i+1], and the
// final entry is the closing leg back to home, so both slices have equal length.
// A TourResult is derived data: it is rebuilt on every solve.
type TourResult struct {
	Waypoints     []Waypoint
	TotalDistance float64
	LegDistances  []float64
}

// Home returns the fixed start/end waypoint.
func (t *TourResult) Home() Waypoint { return t.Waypoints[0] }

// Path returns the ordered points of the tour without repeating home.
func (t *TourResult) Path() []Point {
	out := make([]Point, 0, len(t.Waypoints))
	for _, w := range t.Waypoints {
		out = append(out, w.Point)
	}
	return out
}

// ClosedPath returns the ordered points with home appended at the end.
func (t *TourResult) ClosedPath() []Point {
	if len(t.Waypoints) == 0 {
		return nil
	}
	return append(t.Path(), t.Home().Point)
}

// Describe joins the waypoint labels in visiting order and appends the
// return to home, e.g. "Point 1 → Point 3 → Point 2 → Point 1".
// An empty prefix leaves labels bare.
func (t *TourResult) Describe(prefix string) string {
	if len(t.Waypoints) == 0 {
		return ""
	}

	label := func(w Waypoint) string {
		if prefix == "" {
			return w.ID
		}
		return prefix + " " + w.ID
	}

	parts := make([]string, 0, len(t.Waypoints)+1)
	for _, w := range t.Waypoints {
		parts = append(parts, label(w))
	}
	parts = append(parts, label(t.Waypoints[0]))

	return strings.Join(parts, DescriptionSeparator)
}
