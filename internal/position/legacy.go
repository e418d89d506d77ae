package position

import (
	"github.com/KirkDiggler/layout-api/internal/entities/layout"
)

// Legacy reproduces the original formulas. The left wall mirrors the
// element's y analytically using its depth while the right wall uses y
// directly, so elements whose width differs from their depth land in
// different places on the two side views. Unknown views draw as front.
type Legacy struct{}

// Name returns the strategy name
func (Legacy) Name() string {
	return StrategyLegacy
}

// Calculate never returns an error
func (Legacy) Calculate(in Input) (Result, error) {
	e := in.Element
	wall, ok := layout.WallFromView(in.View)
	if !ok {
		wall = layout.WallFront
	}

	res := Result{Wall: wall, Strategy: StrategyLegacy}

	if !wall.IsSide() {
		w := in.Room.Width
		vw := viewWidth(in, w)
		res.PreMirrorX = e.Position.X / w * vw
		res.XPos = in.RoomOffset.X + res.PreMirrorX
		res.ElementWidth = e.Dimensions.Width / w * vw
		vertical(in, &res)
		return res, nil
	}

	d := in.Room.Depth()
	vw := viewWidth(in, d)

	along := e.Dimensions.Width
	if e.IsCounterTop() {
		along = e.Dimensions.Depth
	}
	res.ElementWidth = along / d * vw

	if wall == layout.WallLeft {
		res.PreMirrorX = (d - e.Position.Y - e.Dimensions.Depth) / d * vw
	} else {
		res.PreMirrorX = e.Position.Y / d * vw
	}
	res.XPos = in.RoomOffset.X + res.PreMirrorX

	vertical(in, &res)
	return res, nil
}
