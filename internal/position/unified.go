package position

import (
	"math"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
)

// Unified computes both side walls with the same normalized-y formula and
// reflects the left wall's span about the view center afterwards.
// On side walls it is rotation-aware: a quarter-turned element presents its
// depth along the wall. Front and back views always use the width.
type Unified struct{}

// Name returns the strategy name
func (Unified) Name() string {
	return StrategyUnified
}

// Calculate rejects unknown views and non-positive zoom
func (Unified) Calculate(in Input) (Result, error) {
	wall, ok := layout.WallFromView(in.View)
	if !ok {
		return Result{}, errors.InvalidArgumentf("view %q is not a wall view", in.View)
	}
	if in.Zoom <= 0 || math.IsNaN(in.Zoom) {
		return Result{}, errors.InvalidArgumentf("zoom must be positive, got %g", in.Zoom)
	}

	e := in.Element
	res := Result{Wall: wall, Strategy: StrategyUnified}

	extent := in.Room.Width
	pos := e.Position.X
	if wall.IsSide() {
		extent = in.Room.Depth()
		pos = e.Position.Y
	}

	vw := viewWidth(in, extent)
	res.PreMirrorX = pos / extent * vw
	res.ElementWidth = alongWall(e, wall) / extent * vw

	if wall == layout.WallLeft {
		res.XPos = in.RoomOffset.X + vw - res.PreMirrorX - res.ElementWidth
	} else {
		res.XPos = in.RoomOffset.X + res.PreMirrorX
	}

	vertical(in, &res)
	return res, nil
}

// alongWall returns the element's extent parallel to the wall
func alongWall(e layout.DesignElement, wall layout.WallType) float64 {
	if !wall.IsSide() {
		return e.Dimensions.Width
	}

	along, across := e.Dimensions.Width, e.Dimensions.Depth
	if e.IsCounterTop() {
		along, across = across, along
	}
	if e.QuarterTurned() {
		along = across
	}
	return along
}
