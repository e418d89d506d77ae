// Package transform converts between plan, elevation, canvas and world
// coordinates for one room. An Engine is immutable once built; callers
// hold it for as long as the room is active.
package transform

import (
	"math"
	"strings"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
)

// Tolerance is the maximum round-trip error, in centimeters, for a consistent transform
const Tolerance = 0.1

// Engine holds the dimensions of a single room
type Engine struct {
	dims          layout.RoomDimensions
	wallThickness float64
}

// Option configures an Engine
type Option func(*Engine)

// WithWallThickness overrides the default 10 cm wall thickness
func WithWallThickness(cm float64) Option {
	return func(e *Engine) {
		e.wallThickness = cm
	}
}

// New builds an engine for a room. Dimensions must be positive.
func New(dims layout.RoomDimensions, opts ...Option) (*Engine, error) {
	if err := dims.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid room dimensions")
	}

	e := &Engine{
		dims:          dims,
		wallThickness: layout.DefaultWallThickness,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.wallThickness < 0 {
		return nil, errors.InvalidArgumentf("wall thickness must not be negative, got %g", e.wallThickness)
	}

	return e, nil
}

// Dimensions returns the room's inner dimensions
func (e *Engine) Dimensions() layout.RoomDimensions {
	return e.dims
}

// WallThickness returns the wall thickness in centimeters
func (e *Engine) WallThickness() float64 {
	return e.wallThickness
}

// PlanToWorld maps a plan point to room-centered world space.
// World Y is up, so plan z becomes world y and plan y becomes world z.
func (e *Engine) PlanToWorld(p layout.PlanCoordinates) layout.WorldCoordinates {
	return layout.WorldCoordinates{
		X: p.X - e.dims.Width/2,
		Y: p.Z,
		Z: p.Y - e.dims.Height/2,
	}
}

// WorldToPlan is the exact inverse of PlanToWorld
func (e *Engine) WorldToPlan(w layout.WorldCoordinates) layout.PlanCoordinates {
	return layout.PlanCoordinates{
		X: w.X + e.dims.Width/2,
		Y: w.Z + e.dims.Height/2,
		Z: w.Y,
	}
}

// WallLength returns the horizontal extent of a wall's elevation
func (e *Engine) WallLength(wall layout.WallType) float64 {
	if wall.IsSide() {
		return e.dims.Height
	}
	return e.dims.Width
}

// PlanToElevation projects a plan point onto a wall's face-on view.
// Each wall is seen from inside the room, so back and left run reversed.
func (e *Engine) PlanToElevation(p layout.PlanCoordinates, wall layout.WallType) layout.ElevationCoordinates {
	var h float64
	switch wall {
	case layout.WallBack:
		h = e.dims.Width - p.X
	case layout.WallLeft:
		h = e.dims.Height - p.Y
	case layout.WallRight:
		h = p.Y
	default:
		h = p.X
	}
	return layout.ElevationCoordinates{X: h, Y: p.Z}
}

// ElevationToPlan maps an elevation point back to plan space, flush against the wall
func (e *Engine) ElevationToPlan(el layout.ElevationCoordinates, wall layout.WallType) layout.PlanCoordinates {
	switch wall {
	case layout.WallBack:
		return layout.PlanCoordinates{X: e.dims.Width - el.X, Y: e.dims.Height, Z: el.Y}
	case layout.WallLeft:
		return layout.PlanCoordinates{X: 0, Y: e.dims.Height - el.X, Z: el.Y}
	case layout.WallRight:
		return layout.PlanCoordinates{X: e.dims.Width, Y: el.X, Z: el.Y}
	default:
		return layout.PlanCoordinates{X: el.X, Y: 0, Z: el.Y}
	}
}

// Bounds is an axis-aligned plan rectangle
type Bounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// InnerRoomBounds returns the usable floor between the inner wall faces
func (e *Engine) InnerRoomBounds() Bounds {
	return Bounds{MinX: 0, MinY: 0, MaxX: e.dims.Width, MaxY: e.dims.Height}
}

// WallPosition locates a wall on its perpendicular plan axis
type WallPosition struct {
	Centerline float64 `json:"centerline"`
	InnerFace  float64 `json:"inner_face"`
}

// WallPositions returns centerline and inner face per wall. Front and back
// are y values; left and right are x values.
func (e *Engine) WallPositions() map[layout.WallType]WallPosition {
	half := e.wallThickness / 2
	return map[layout.WallType]WallPosition{
		layout.WallFront: {Centerline: -half, InnerFace: 0},
		layout.WallBack:  {Centerline: e.dims.Height + half, InnerFace: e.dims.Height},
		layout.WallLeft:  {Centerline: -half, InnerFace: 0},
		layout.WallRight: {Centerline: e.dims.Width + half, InnerFace: e.dims.Width},
	}
}

// ValidatePlanCoordinates reports an OutOfRange error for points outside the room volume
func (e *Engine) ValidatePlanCoordinates(p layout.PlanCoordinates) error {
	var problems []string
	if !inRange(p.X, 0, e.dims.Width) {
		problems = append(problems, "x")
	}
	if !inRange(p.Y, 0, e.dims.Height) {
		problems = append(problems, "y")
	}
	if !inRange(p.Z, 0, e.dims.CeilingHeight) {
		problems = append(problems, "z")
	}
	if len(problems) == 0 {
		return nil
	}

	return errors.OutOfRangef("plan point (%g, %g, %g) outside room on %s",
		p.X, p.Y, p.Z, strings.Join(problems, ", ")).
		WithMeta("width", e.dims.Width).
		WithMeta("height", e.dims.Height).
		WithMeta("ceiling_height", e.dims.CeilingHeight)
}

// ClampToRoom moves a footprint's origin so the footprint stays inside the
// inner wall faces. Footprints larger than the room pin to the origin.
func (e *Engine) ClampToRoom(x, y, width, depth float64) (float64, float64) {
	return clamp(x, 0, math.Max(0, e.dims.Width-width)),
		clamp(y, 0, math.Max(0, e.dims.Height-depth))
}

func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
