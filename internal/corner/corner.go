// Package corner decides which way a corner cabinet's door opens. The
// answer depends only on which room corner the cabinet occupies, never on
// the view it is drawn in.
package corner

import (
	"strings"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
)

// DefaultTolerance is how close, in centimeters, an element must be to both walls of a corner
const DefaultTolerance = 30.0

// doorMatrix opens the door away from the adjacent side wall
var doorMatrix = map[layout.CornerPosition]layout.DoorSide{
	layout.CornerFrontLeft:  layout.DoorSideRight,
	layout.CornerFrontRight: layout.DoorSideLeft,
	layout.CornerBackLeft:   layout.DoorSideRight,
	layout.CornerBackRight:  layout.DoorSideLeft,
}

// DetectCornerPosition classifies the corner an element's footprint sits in.
// It returns false when the element is not within tolerance of any corner.
// A non-positive tolerance uses DefaultTolerance.
func DetectCornerPosition(e layout.DesignElement, room layout.RoomDimensions, tolerance float64) (layout.CornerPosition, bool) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	x, y := e.Position.X, e.Position.Y
	w, d := e.Dimensions.Width, e.Dimensions.Depth

	nearLeft := x <= tolerance
	nearRight := x+w >= room.Width-tolerance
	nearFront := y <= tolerance
	nearBack := y+d >= room.Height-tolerance

	switch {
	case nearLeft && nearFront:
		return layout.CornerFrontLeft, true
	case nearRight && nearFront:
		return layout.CornerFrontRight, true
	case nearLeft && nearBack:
		return layout.CornerBackLeft, true
	case nearRight && nearBack:
		return layout.CornerBackRight, true
	}
	return "", false
}

// DoorSideFor returns the fixed door side for a corner
func DoorSideFor(c layout.CornerPosition) (layout.DoorSide, bool) {
	side, ok := doorMatrix[c]
	return side, ok
}

// Resolution explains how a door side was chosen
type Resolution struct {
	DoorSide layout.DoorSide       `json:"door_side"`
	Corner   layout.CornerPosition `json:"corner,omitempty"`
	Manual   bool                  `json:"manual"`
}

// ResolveDoorSide picks the door side for an element. A manual left or right
// override wins; otherwise the corner matrix decides. The view identifier is
// accepted for call-site symmetry with the renderer and does not change the result.
// Elements outside every corner fall back to opening right.
func ResolveDoorSide(e layout.DesignElement, room layout.RoomDimensions, _ string) Resolution {
	if e.CornerDoorSide == layout.DoorSideLeft || e.CornerDoorSide == layout.DoorSideRight {
		return Resolution{DoorSide: e.CornerDoorSide, Manual: true}
	}

	c, ok := DetectCornerPosition(e, room, DefaultTolerance)
	if !ok {
		return Resolution{DoorSide: layout.DoorSideRight}
	}
	side, _ := DoorSideFor(c)
	return Resolution{DoorSide: side, Corner: c}
}

// IsCornerComponent reports whether an element is a corner unit
func IsCornerComponent(e layout.DesignElement) bool {
	return strings.Contains(strings.ToLower(e.ComponentID), "corner") ||
		strings.Contains(strings.ToLower(e.Type), "corner")
}
