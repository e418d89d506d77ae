package room

import (
	"github.com/KirkDiggler/layout-api/internal/corner"
	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/geometry"
	"github.com/KirkDiggler/layout-api/internal/position"
	"github.com/KirkDiggler/layout-api/internal/transform"
)

// Space names a coordinate system a point can be expressed in
type Space string

// Coordinate spaces
const (
	SpacePlan      Space = "plan"
	SpaceWorld     Space = "world"
	SpaceElevation Space = "elevation"
	SpaceCanvas    Space = "canvas"
)

// ActivateRoomInput describes the room to activate. Dimensions win over
// RoomType; with neither set the request is invalid.
type ActivateRoomInput struct {
	RoomID        string
	RoomType      string
	Dimensions    *layout.RoomDimensions
	WallThickness float64
}

// ActivateRoomOutput describes the activated room
type ActivateRoomOutput struct {
	RoomID        string
	Dimensions    layout.RoomDimensions
	WallThickness float64
	InnerBounds   transform.Bounds
	Walls         map[layout.WallType]transform.WallPosition
	// Replaced is true when an engine was already registered under RoomID
	Replaced bool
}

// ReleaseRoomInput names the room to release
type ReleaseRoomInput struct {
	RoomID string
}

// ReleaseRoomOutput is empty
type ReleaseRoomOutput struct{}

// ListRoomTemplatesInput is empty
type ListRoomTemplatesInput struct{}

// ListRoomTemplatesOutput lists the stored room templates
type ListRoomTemplatesOutput struct {
	Templates []layout.RoomTemplate
}

// Point is a coordinate triple interpreted by its Space. Elevation and
// canvas points use X and Y only.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// TransformPointInput converts a point from one space into every other
type TransformPointInput struct {
	RoomID string
	From   Space
	Point  Point
	// Wall is required for elevation input and enables elevation output
	Wall layout.WallType
	// Projection is required for canvas input and enables canvas output
	Projection *transform.Projection
}

// TransformPointOutput holds the point in each space that could be computed
type TransformPointOutput struct {
	Plan      layout.PlanCoordinates
	World     layout.WorldCoordinates
	Elevation *layout.ElevationCoordinates
	Canvas    *layout.CanvasCoordinates
	// InsideRoom is false when the plan point lies outside the room volume
	InsideRoom bool
	Problem    string
}

// CheckConsistencyInput is a plan point and the projection to round-trip it through
type CheckConsistencyInput struct {
	RoomID     string
	Point      layout.PlanCoordinates
	Projection *transform.Projection
}

// CheckConsistencyOutput holds the per-transform round-trip errors
type CheckConsistencyOutput struct {
	Consistency transform.Consistency
}

// CalculateElementPositionInput places one element in one elevation view
type CalculateElementPositionInput struct {
	RoomID      string
	Element     layout.DesignElement
	View        string
	Zoom        float64
	CanvasWidth float64
	Pan         layout.CanvasCoordinates
	TopMargin   float64
	ViewWidth   float64
}

// CalculateElementPositionOutput holds the element's canvas span and the room frame
type CalculateElementPositionOutput struct {
	Position     position.Result
	RoomPosition position.RoomPosition
}

// ValidatePlacementInput is a candidate drop against the already placed elements.
// RoomID is optional; when set suggested positions stay inside the room.
type ValidatePlacementInput struct {
	RoomID    string
	Candidate layout.DesignElement
	Placed    []layout.DesignElement
}

// ValidatePlacementOutput holds the collision verdict
type ValidatePlacementOutput struct {
	Result layout.CollisionResult
	// MissingMetadata lists component ids the catalog could not resolve
	MissingMetadata []string
}

// ResolveCornerDoorInput asks for the door side of one element
type ResolveCornerDoorInput struct {
	RoomID  string
	Element layout.DesignElement
	View    string
}

// ResolveCornerDoorOutput holds the chosen door side
type ResolveCornerDoorOutput struct {
	Resolution        corner.Resolution
	IsCornerComponent bool
}

// ValidateRoomGeometryInput is an authored room geometry
type ValidateRoomGeometryInput struct {
	Geometry layout.RoomGeometry
}

// ValidateRoomGeometryOutput holds the validation report
type ValidateRoomGeometryOutput struct {
	Report *geometry.Report
}
