package layout

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/KirkDiggler/layout-api/internal/errors"
)

// DoorSide is the side a door swings open on
type DoorSide string

// CornerPosition classifies which room corner an element occupies
type CornerPosition string

// Position places an element in plan space; Rotation is in degrees
type Position struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Rotation float64 `json:"rotation"`
}

// Dimensions of an element in centimeters
type Dimensions struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

// DesignElement is a placed component in a room design
type DesignElement struct {
	ID             string     `json:"id"`
	ComponentID    string     `json:"component_id"`
	Type           string     `json:"type"`
	Position       Position   `json:"position"`
	Dimensions     Dimensions `json:"dimensions"`
	CornerDoorSide DoorSide   `json:"corner_door_side,omitempty"`

	// Component is ComponentID split into base id and orientation, set by
	// Resolve when the element is decoded
	Component ComponentRef `json:"-"`
}

// Resolve parses ComponentID into Component
func (e *DesignElement) Resolve() {
	e.Component = ParseComponentRef(e.ComponentID)
}

// UnmarshalJSON decodes the element and resolves its component reference
func (e *DesignElement) UnmarshalJSON(data []byte) error {
	type plain DesignElement
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = DesignElement(p)
	e.Resolve()
	return nil
}

// IsCounterTop reports whether the element is a counter-top run
func (e DesignElement) IsCounterTop() bool {
	return strings.EqualFold(e.Type, ElementTypeCounterTop)
}

// QuarterTurned reports whether the rotation puts the element's width along the depth axis
func (e DesignElement) QuarterTurned() bool {
	r := math.Mod(math.Abs(e.Position.Rotation), 180)
	return math.Abs(r-90) < 1
}

// MoveTo returns a copy of the element at the given plan position
func (e DesignElement) MoveTo(x, y float64) DesignElement {
	e.Position.X = x
	e.Position.Y = y
	return e
}

// Validate checks the vertical placement invariants against a room
func (e DesignElement) Validate(room RoomDimensions) error {
	vb := errors.NewValidationBuilder()
	if e.Position.Z < 0 {
		vb.Fieldf("position.z", "must not be negative, got %g", e.Position.Z)
	}
	if e.Position.Z+e.Dimensions.Height > room.CeilingHeight {
		vb.Fieldf("dimensions.height", "top at %g exceeds ceiling height %g",
			e.Position.Z+e.Dimensions.Height, room.CeilingHeight)
	}
	if e.Dimensions.Width < 0 || e.Dimensions.Depth < 0 || e.Dimensions.Height < 0 {
		vb.Field("dimensions", "must not be negative")
	}
	return vb.Build()
}

// ParseDoorSide parses a manual door-side override. Empty input means auto.
func ParseDoorSide(s string) (DoorSide, error) {
	switch DoorSide(strings.ToLower(strings.TrimSpace(s))) {
	case "", DoorSideAuto:
		return DoorSideAuto, nil
	case DoorSideLeft:
		return DoorSideLeft, nil
	case DoorSideRight:
		return DoorSideRight, nil
	default:
		return "", errors.InvalidArgumentf("unknown door side: %q", s)
	}
}
