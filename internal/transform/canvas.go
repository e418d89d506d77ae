package transform

import (
	"math"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
)

// Projection describes how a view is drawn on the canvas. An empty Wall is
// the top-down plan view. Mirror reflects an elevation across the wall extent.
type Projection struct {
	Wall   layout.WallType          `json:"wall,omitempty"`
	Zoom   float64                  `json:"zoom"`
	Origin layout.CanvasCoordinates `json:"origin"`
	Mirror bool                     `json:"mirror,omitempty"`
}

// PlanProjection returns a plan-view projection at the given zoom
func PlanProjection(zoom float64) Projection {
	return Projection{Zoom: zoom}
}

// ElevationProjection returns a projection for a wall's view
func ElevationProjection(wall layout.WallType, zoom float64) Projection {
	return Projection{Wall: wall, Zoom: zoom}
}

// Validate rejects projections that cannot be inverted
func (p Projection) Validate() error {
	vb := errors.NewValidationBuilder()
	vb.Positive("zoom", p.Zoom)
	if p.Wall != "" {
		if _, err := layout.ParseWallType(string(p.Wall)); err != nil {
			vb.InvalidField("wall", err.Error())
		}
	}
	return vb.Build()
}

// IsPlan reports whether the projection is the top-down view
func (p Projection) IsPlan() bool {
	return p.Wall == ""
}

// PlanToCanvas converts a plan point to canvas units under a projection.
// Zoom must be positive.
func (e *Engine) PlanToCanvas(pt layout.PlanCoordinates, proj Projection) layout.CanvasCoordinates {
	if proj.IsPlan() {
		return layout.CanvasCoordinates{
			X: proj.Origin.X + pt.X*proj.Zoom,
			Y: proj.Origin.Y + pt.Y*proj.Zoom,
		}
	}

	el := e.PlanToElevation(pt, proj.Wall)
	h := el.X
	if proj.Mirror {
		h = e.WallLength(proj.Wall) - h
	}
	return layout.CanvasCoordinates{
		X: proj.Origin.X + h*proj.Zoom,
		Y: proj.Origin.Y + (e.dims.CeilingHeight-el.Y)*proj.Zoom,
	}
}

// CanvasToPlan inverts PlanToCanvas. Elevation views recover the point
// flush against the projected wall.
func (e *Engine) CanvasToPlan(c layout.CanvasCoordinates, proj Projection) layout.PlanCoordinates {
	if proj.IsPlan() {
		return layout.PlanCoordinates{
			X: (c.X - proj.Origin.X) / proj.Zoom,
			Y: (c.Y - proj.Origin.Y) / proj.Zoom,
		}
	}

	h := (c.X - proj.Origin.X) / proj.Zoom
	if proj.Mirror {
		h = e.WallLength(proj.Wall) - h
	}
	z := e.dims.CeilingHeight - (c.Y-proj.Origin.Y)/proj.Zoom
	return e.ElevationToPlan(layout.ElevationCoordinates{X: h, Y: z}, proj.Wall)
}

// Consistency is the round-trip error of each transform pair for one point
type Consistency struct {
	WorldError     float64                     `json:"world_error"`
	ElevationError map[layout.WallType]float64 `json:"elevation_error"`
	CanvasError    float64                     `json:"canvas_error"`
	Consistent     bool                        `json:"consistent"`
}

// ValidateConsistency round-trips a plan point through world space, every
// wall's elevation and the given projection. Elevation errors compare only
// the along-wall and vertical axes since the inverse lands on the wall.
func (e *Engine) ValidateConsistency(p layout.PlanCoordinates, proj Projection) Consistency {
	result := Consistency{
		ElevationError: make(map[layout.WallType]float64, len(layout.AllWalls)),
	}

	back := e.WorldToPlan(e.PlanToWorld(p))
	result.WorldError = distance3(p, back)
	worst := result.WorldError

	for _, wall := range layout.AllWalls {
		got := e.ElevationToPlan(e.PlanToElevation(p, wall), wall)
		var along float64
		if wall.IsSide() {
			along = got.Y - p.Y
		} else {
			along = got.X - p.X
		}
		errCM := math.Hypot(along, got.Z-p.Z)
		result.ElevationError[wall] = errCM
		worst = math.Max(worst, errCM)
	}

	c := e.CanvasToPlan(e.PlanToCanvas(p, proj), proj)
	if proj.IsPlan() {
		result.CanvasError = math.Hypot(c.X-p.X, c.Y-p.Y)
	} else {
		pe := e.PlanToElevation(p, proj.Wall)
		ce := e.PlanToElevation(c, proj.Wall)
		result.CanvasError = math.Hypot(ce.X-pe.X, ce.Y-pe.Y)
	}
	worst = math.Max(worst, result.CanvasError)

	result.Consistent = worst < Tolerance
	return result
}

func distance3(a, b layout.PlanCoordinates) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
