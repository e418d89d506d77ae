// Package position computes where an element's silhouette is drawn in a
// wall elevation view. Two strategies exist: Legacy reproduces the
// original per-wall formulas, Unified shares one side-view formula for both
// side walls and mirrors the left wall afterwards. Select picks one from
// the unified-positioning flag and guards Unified with a Legacy fallback.
package position

import (
	"log/slog"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
)

//go:generate mockgen -destination=mock/mock.go -package=positionmock github.com/KirkDiggler/layout-api/internal/position Calculator

// Strategy names
const (
	StrategyLegacy  = "legacy"
	StrategyUnified = "unified"
)

// Input is everything needed to place one element in one view
type Input struct {
	Element layout.DesignElement
	Room    layout.RoomDimensions
	// RoomOffset is the inner room's top-left on the canvas, see CalculateRoomPosition
	RoomOffset layout.CanvasCoordinates
	// View is a wall view identifier, matched by prefix
	View string
	Zoom float64
	// ViewWidth overrides the derived pixel width of the view when positive
	ViewWidth float64
}

// Result is the element's horizontal span and vertical silhouette in canvas units
type Result struct {
	XPos          float64         `json:"x_pos"`
	ElementWidth  float64         `json:"element_width"`
	YPos          float64         `json:"y_pos"`
	ElementHeight float64         `json:"element_height"`
	PreMirrorX    float64         `json:"pre_mirror_x"`
	Wall          layout.WallType `json:"wall"`
	Strategy      string          `json:"strategy"`
}

// Calculator computes an element's position for a view
type Calculator interface {
	Calculate(input Input) (Result, error)
	Name() string
}

// Select returns the calculator for the flag value. The unified strategy is
// always wrapped so a failure recomputes with legacy.
func Select(useUnified bool, logger *slog.Logger) Calculator {
	if !useUnified {
		return Legacy{}
	}
	return WithFallback(Unified{}, Legacy{}, logger)
}

// viewWidth returns the explicit width or the room extent for the wall at zoom
func viewWidth(in Input, extent float64) float64 {
	if in.ViewWidth > 0 {
		return in.ViewWidth
	}
	return extent * in.Zoom
}

// vertical places the silhouette below the ceiling line
func vertical(in Input, res *Result) {
	e := in.Element
	res.YPos = in.RoomOffset.Y + (in.Room.CeilingHeight-e.Position.Z-e.Dimensions.Height)*in.Zoom
	res.ElementHeight = e.Dimensions.Height * in.Zoom
}
