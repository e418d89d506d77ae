// Package layout provides the data model shared by the geometric core:
// room dimensions, coordinate spaces, design elements and component metadata.
package layout

import (
	"strings"

	"github.com/KirkDiggler/layout-api/internal/errors"
)

// WallType identifies one of the four walls of a rectangular room
type WallType string

// String returns the wall name
func (w WallType) String() string {
	return string(w)
}

// IsSide reports whether the wall runs along the room's depth axis
func (w WallType) IsSide() bool {
	return w == WallLeft || w == WallRight
}

// AllWalls lists the walls in render order
var AllWalls = []WallType{WallFront, WallBack, WallLeft, WallRight}

// ParseWallType parses an exact wall name
func ParseWallType(s string) (WallType, error) {
	switch WallType(strings.ToLower(strings.TrimSpace(s))) {
	case WallFront:
		return WallFront, nil
	case WallBack:
		return WallBack, nil
	case WallLeft:
		return WallLeft, nil
	case WallRight:
		return WallRight, nil
	default:
		return "", errors.InvalidArgumentf("unknown wall type: %q", s)
	}
}

// WallFromView resolves a view identifier to its wall by prefix.
// View identifiers may carry suffixes ("front-dup2", "left_copy"), so
// "front-2" resolves to the front wall. The plan view returns false.
func WallFromView(view string) (WallType, bool) {
	v := strings.ToLower(strings.TrimSpace(view))
	for _, w := range AllWalls {
		if strings.HasPrefix(v, string(w)) {
			return w, true
		}
	}
	return "", false
}

// RoomDimensions are the inner dimensions of a room in centimeters.
// Height is the room's second planar axis (its depth), not the vertical extent.
type RoomDimensions struct {
	Width         float64 `json:"width" yaml:"width"`
	Height        float64 `json:"height" yaml:"height"`
	CeilingHeight float64 `json:"ceiling_height" yaml:"ceiling_height"`
}

// Depth returns the planar depth of the room
func (d RoomDimensions) Depth() float64 {
	return d.Height
}

// Validate checks that every dimension is positive
func (d RoomDimensions) Validate() error {
	vb := errors.NewValidationBuilder()
	if d.Width <= 0 {
		vb.Fieldf("width", "must be positive, got %g", d.Width)
	}
	if d.Height <= 0 {
		vb.Fieldf("height", "must be positive, got %g", d.Height)
	}
	if d.CeilingHeight <= 0 {
		vb.Fieldf("ceiling_height", "must be positive, got %g", d.CeilingHeight)
	}
	return vb.Build()
}

// RoomTemplate holds the default geometry for a room type
type RoomTemplate struct {
	RoomType      string         `json:"room_type"`
	Name          string         `json:"name"`
	Dimensions    RoomDimensions `json:"dimensions"`
	WallThickness float64        `json:"wall_thickness"`
}

// PlanCoordinates is a position inside the room's inner usable space.
// Origin is the inner front-left corner; Z is height above the floor.
type PlanCoordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// CanvasCoordinates are rendering-space units at a given zoom
type CanvasCoordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ElevationCoordinates are a wall's face-on coordinates: X along the wall, Y up
type ElevationCoordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WorldCoordinates are 3D coordinates centered on the room, Y up
type WorldCoordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}
