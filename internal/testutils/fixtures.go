package testutils

import (
	"fmt"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
)

// Room returns a 400 x 600 room with a 240 ceiling
func Room() layout.RoomDimensions {
	return layout.RoomDimensions{Width: 400, Height: 600, CeilingHeight: 240}
}

// ElementBuilder builds design elements for tests
type ElementBuilder struct {
	element layout.DesignElement
}

// NewElement starts a 60 x 60 x 90 base cabinet at the origin
func NewElement(id string) *ElementBuilder {
	return &ElementBuilder{
		element: layout.DesignElement{
			ID:          id,
			ComponentID: "base-cabinet-60",
			Type:        layout.ElementTypeCabinet,
			Dimensions:  layout.Dimensions{Width: 60, Depth: 60, Height: 90},
		},
	}
}

// WithComponent sets the component id
func (b *ElementBuilder) WithComponent(componentID string) *ElementBuilder {
	b.element.ComponentID = componentID
	return b
}

// WithType sets the element type
func (b *ElementBuilder) WithType(elementType string) *ElementBuilder {
	b.element.Type = elementType
	return b
}

// At sets the plan position
func (b *ElementBuilder) At(x, y float64) *ElementBuilder {
	b.element.Position.X = x
	b.element.Position.Y = y
	return b
}

// Elevated sets the height above the floor
func (b *ElementBuilder) Elevated(z float64) *ElementBuilder {
	b.element.Position.Z = z
	return b
}

// Rotated sets the rotation in degrees
func (b *ElementBuilder) Rotated(deg float64) *ElementBuilder {
	b.element.Position.Rotation = deg
	return b
}

// Sized sets width, depth and height
func (b *ElementBuilder) Sized(width, depth, height float64) *ElementBuilder {
	b.element.Dimensions = layout.Dimensions{Width: width, Depth: depth, Height: height}
	return b
}

// WithDoorSide sets the manual corner door override
func (b *ElementBuilder) WithDoorSide(side layout.DoorSide) *ElementBuilder {
	b.element.CornerDoorSide = side
	return b
}

// Build returns the element with its component reference resolved
func (b *ElementBuilder) Build() layout.DesignElement {
	b.element.Resolve()
	return b.element
}

// Metadata returns catalog metadata for a layer with the default height band
func Metadata(componentID string, layer layout.LayerType, canOverlap ...layout.LayerType) layout.ComponentMetadata {
	minH, maxH := layout.DefaultMinHeightCM, layout.DefaultMaxHeightCM
	switch layer {
	case layout.LayerBase:
		minH, maxH = 0, 90
	case layout.LayerWall:
		minH, maxH = 140, 220
	case layout.LayerTall:
		minH, maxH = 0, 220
	}
	return layout.ComponentMetadata{
		ComponentID:      componentID,
		LayerType:        layer,
		MinHeightCM:      minH,
		MaxHeightCM:      maxH,
		CanOverlapLayers: canOverlap,
	}
}

// SquareGeometry returns a valid closed-box room geometry of the given size
func SquareGeometry(width, depth float64) layout.RoomGeometry {
	corners := []layout.Point2D{{X: 0, Y: 0}, {X: width, Y: 0}, {X: width, Y: depth}, {X: 0, Y: depth}}
	thickness := layout.DefaultWallThickness

	walls := make([]layout.WallSegment, len(corners))
	for i := range corners {
		walls[i] = layout.WallSegment{
			ID:        fmt.Sprintf("wall-%d", i+1),
			Start:     corners[i],
			End:       corners[(i+1)%len(corners)],
			Height:    240,
			Thickness: &thickness,
		}
	}

	return layout.RoomGeometry{
		Floor: layout.Floor{Vertices: corners},
		Walls: walls,
		Ceiling: layout.Ceiling{Zones: []layout.CeilingZone{{
			ID:       "main",
			Type:     layout.CeilingFlat,
			Vertices: corners,
			Height:   240,
		}}},
		BoundingBox: layout.BoundingBox{MinX: 0, MinY: 0, MaxX: width, MaxY: depth},
		Metadata:    layout.GeometryMetadata{TotalFloorArea: width * depth},
	}
}
