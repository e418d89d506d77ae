package layout

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Ceiling zone kinds
const (
	CeilingFlat    = "flat"
	CeilingVaulted = "vaulted"
	CeilingSloped  = "sloped"
)

// Point2D is a vertex in plan space.
// It decodes from either [x, y] or {"x": .., "y": ..}.
type Point2D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// UnmarshalJSON accepts both the pair and object forms
func (p *Point2D) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err == nil {
		return p.fromPair(pair)
	}

	type plain Point2D
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("point must be [x, y] or {x, y}: %w", err)
	}
	*p = Point2D(obj)
	return nil
}

// UnmarshalYAML accepts both the pair and mapping forms
func (p *Point2D) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var pair []float64
		if err := node.Decode(&pair); err != nil {
			return err
		}
		return p.fromPair(pair)
	}

	type plain Point2D
	var obj plain
	if err := node.Decode(&obj); err != nil {
		return err
	}
	*p = Point2D(obj)
	return nil
}

func (p *Point2D) fromPair(pair []float64) error {
	if len(pair) != 2 {
		return fmt.Errorf("point must have exactly 2 coordinates, got %d", len(pair))
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// Floor is the room's floor outline
type Floor struct {
	Vertices []Point2D `json:"vertices" yaml:"vertices"`
}

// WallSegment is one authored wall
type WallSegment struct {
	ID        string   `json:"id,omitempty" yaml:"id,omitempty"`
	Start     Point2D  `json:"start" yaml:"start"`
	End       Point2D  `json:"end" yaml:"end"`
	Height    float64  `json:"height" yaml:"height"`
	Thickness *float64 `json:"thickness,omitempty" yaml:"thickness,omitempty"`
}

// CeilingZone is a region of the ceiling with its own height profile
type CeilingZone struct {
	ID         string    `json:"id,omitempty" yaml:"id,omitempty"`
	Type       string    `json:"type,omitempty" yaml:"type,omitempty"`
	Vertices   []Point2D `json:"vertices" yaml:"vertices"`
	Height     float64   `json:"height" yaml:"height"`
	ApexHeight *float64  `json:"apex_height,omitempty" yaml:"apex_height,omitempty"`
	Slope      *float64  `json:"slope,omitempty" yaml:"slope,omitempty"`
}

// Ceiling groups the ceiling zones
type Ceiling struct {
	Zones []CeilingZone `json:"zones" yaml:"zones"`
}

// BoundingBox is the stored axis-aligned extent of the floor
type BoundingBox struct {
	MinX float64 `json:"min_x" yaml:"min_x"`
	MinY float64 `json:"min_y" yaml:"min_y"`
	MaxX float64 `json:"max_x" yaml:"max_x"`
	MaxY float64 `json:"max_y" yaml:"max_y"`
}

// GeometryMetadata is derived data stored alongside the geometry
type GeometryMetadata struct {
	TotalFloorArea float64 `json:"total_floor_area" yaml:"total_floor_area"`
}

// RoomGeometry is the authored description of a room's shape
type RoomGeometry struct {
	Floor       Floor            `json:"floor" yaml:"floor"`
	Walls       []WallSegment    `json:"walls" yaml:"walls"`
	Ceiling     Ceiling          `json:"ceiling" yaml:"ceiling"`
	BoundingBox BoundingBox      `json:"bounding_box" yaml:"bounding_box"`
	Metadata    GeometryMetadata `json:"metadata" yaml:"metadata"`
}
