package layout_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
)

func TestWallFromView(t *testing.T) {
	testCases := []struct {
		view   string
		wall   layout.WallType
		wantOK bool
	}{
		{"front", layout.WallFront, true},
		{"front-dup2", layout.WallFront, true},
		{"back", layout.WallBack, true},
		{"LEFT", layout.WallLeft, true},
		{"right_copy", layout.WallRight, true},
		{"plan", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.view, func(t *testing.T) {
			wall, ok := layout.WallFromView(tc.view)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wall, wall)
		})
	}
}

func TestParseWallType(t *testing.T) {
	wall, err := layout.ParseWallType(" Back ")
	require.NoError(t, err)
	assert.Equal(t, layout.WallBack, wall)

	_, err = layout.ParseWallType("front-2")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestParseComponentRef(t *testing.T) {
	testCases := []struct {
		id          string
		baseID      string
		orientation layout.Orientation
	}{
		{"base-cabinet-60", "base-cabinet-60", layout.OrientationNone},
		{"base-cabinet-60-ns", "base-cabinet-60", layout.OrientationNS},
		{"wall-unit-80-EW", "wall-unit-80", layout.OrientationEW},
		{"-ns", "-ns", layout.OrientationNone},
		{"columns", "columns", layout.OrientationNone},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			ref := layout.ParseComponentRef(tc.id)
			assert.Equal(t, tc.id, ref.ID)
			assert.Equal(t, tc.baseID, ref.BaseID)
			assert.Equal(t, tc.orientation, ref.Orientation)
			assert.Equal(t, tc.orientation != layout.OrientationNone, ref.Oriented())
		})
	}
}

func TestParseLayerType(t *testing.T) {
	l, ok := layout.ParseLayerType(" Tall ")
	assert.True(t, ok)
	assert.Equal(t, layout.LayerTall, l)

	l, ok = layout.ParseLayerType("plinth")
	assert.False(t, ok)
	assert.Equal(t, layout.LayerType("plinth"), l)
}

func TestRoomDimensionsValidate(t *testing.T) {
	assert.NoError(t, layout.RoomDimensions{Width: 400, Height: 600, CeilingHeight: 250}.Validate())

	err := layout.RoomDimensions{Width: 0, Height: 600, CeilingHeight: -1}.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "width")
	assert.Contains(t, err.Error(), "ceiling_height")
}

func TestDesignElementValidate(t *testing.T) {
	room := layout.RoomDimensions{Width: 400, Height: 600, CeilingHeight: 240}

	ok := layout.DesignElement{
		Position:   layout.Position{Z: 150},
		Dimensions: layout.Dimensions{Width: 60, Depth: 35, Height: 70},
	}
	assert.NoError(t, ok.Validate(room))

	tooTall := ok
	tooTall.Dimensions.Height = 100
	assert.Error(t, tooTall.Validate(room))

	below := ok
	below.Position.Z = -5
	assert.Error(t, below.Validate(room))
}

func TestDesignElementDecodeResolvesComponent(t *testing.T) {
	var e layout.DesignElement
	require.NoError(t, json.Unmarshal([]byte(`{"id":"c1","component_id":"corner-base-90-EW","dimensions":{"width":90}}`), &e))

	assert.Equal(t, "c1", e.ID)
	assert.Equal(t, 90.0, e.Dimensions.Width)
	assert.Equal(t, layout.ComponentRef{
		ID:          "corner-base-90-EW",
		BaseID:      "corner-base-90",
		Orientation: layout.OrientationEW,
	}, e.Component)

	var plain layout.DesignElement
	require.NoError(t, json.Unmarshal([]byte(`{"id":"c2","component_id":"worktop"}`), &plain))
	assert.False(t, plain.Component.Oriented())
	assert.Equal(t, "worktop", plain.Component.BaseID)
}

func TestDesignElementQuarterTurned(t *testing.T) {
	for _, rot := range []float64{90, 270, -90, 450} {
		e := layout.DesignElement{Position: layout.Position{Rotation: rot}}
		assert.True(t, e.QuarterTurned(), "rotation %v", rot)
	}
	for _, rot := range []float64{0, 180, 45, 360} {
		e := layout.DesignElement{Position: layout.Position{Rotation: rot}}
		assert.False(t, e.QuarterTurned(), "rotation %v", rot)
	}
}

func TestParseDoorSide(t *testing.T) {
	side, err := layout.ParseDoorSide("")
	require.NoError(t, err)
	assert.Equal(t, layout.DoorSideAuto, side)

	side, err = layout.ParseDoorSide("Left")
	require.NoError(t, err)
	assert.Equal(t, layout.DoorSideLeft, side)

	_, err = layout.ParseDoorSide("up")
	assert.Error(t, err)
}

func TestPoint2DDecoding(t *testing.T) {
	var floor layout.Floor
	require.NoError(t, json.Unmarshal([]byte(`{"vertices":[[0,0],{"x":10,"y":0},[10,10]]}`), &floor))
	assert.Equal(t, []layout.Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, floor.Vertices)

	var bad layout.Floor
	assert.Error(t, json.Unmarshal([]byte(`{"vertices":[[0,0,1]]}`), &bad))

	var yamlFloor layout.Floor
	src := "vertices:\n  - [0, 0]\n  - {x: 5, y: 5}\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &yamlFloor))
	assert.Equal(t, []layout.Point2D{{X: 0, Y: 0}, {X: 5, Y: 5}}, yamlFloor.Vertices)
}

func TestComponentMetadataAllowsOverlap(t *testing.T) {
	m := layout.ComponentMetadata{
		LayerType:        layout.LayerFinishing,
		CanOverlapLayers: []layout.LayerType{layout.LayerBase, layout.LayerWall},
	}
	assert.True(t, m.AllowsOverlapWith(layout.LayerBase))
	assert.False(t, m.AllowsOverlapWith(layout.LayerTall))
}
