package position

import (
	"github.com/KirkDiggler/layout-api/internal/entities/layout"
)

// RoomInput describes how a room is framed on the canvas for one view
type RoomInput struct {
	Room          layout.RoomDimensions
	View          string
	Zoom          float64
	CanvasWidth   float64
	Pan           layout.CanvasCoordinates
	WallThickness float64
	TopMargin     float64
}

// RoomPosition holds the canvas offsets of the inner room and its outer wall line
type RoomPosition struct {
	Inner layout.CanvasCoordinates `json:"inner"`
	Outer layout.CanvasCoordinates `json:"outer"`
}

// CalculateRoomPosition centers the room horizontally at the top of the canvas.
// Side views use the room depth as the horizontal extent. Pan shifts both
// offsets by exactly its amount.
func CalculateRoomPosition(in RoomInput) RoomPosition {
	extent := in.Room.Width
	if wall, ok := layout.WallFromView(in.View); ok && wall.IsSide() {
		extent = in.Room.Depth()
	}

	pad := in.WallThickness * in.Zoom
	inner := layout.CanvasCoordinates{
		X: (in.CanvasWidth-extent*in.Zoom)/2 + in.Pan.X,
		Y: in.TopMargin + pad + in.Pan.Y,
	}

	return RoomPosition{
		Inner: inner,
		Outer: layout.CanvasCoordinates{X: inner.X - pad, Y: inner.Y - pad},
	}
}
