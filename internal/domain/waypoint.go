package domain

import (
	"errors"
	"strconv"
)

// ErrInsufficientPoints is returned by tour builders when fewer than two
// waypoints are supplied.
var ErrInsufficientPoints = errors.New("at least two waypoints are required")

// A labeled point placed by the user.
// Identity is the ID: two waypoints at the same coordinates are still distinct.
type Waypoint struct {
	ID    string
	Point Point
}

// SequentialLabel returns the label assigned to the waypoint placed at index i
// ("1" for the first marker, "2" for the second, ...).
func SequentialLabel(i int) string {
	return strconv.Itoa(i + 1)
}
