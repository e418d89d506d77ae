package corner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/layout-api/internal/corner"
	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/testutils"
)

func TestDetectCornerPosition(t *testing.T) {
	room := testutils.Room()

	testCases := []struct {
		name   string
		x, y   float64
		want   layout.CornerPosition
		wantOK bool
	}{
		{"front left", 0, 0, layout.CornerFrontLeft, true},
		{"front left within tolerance", 25, 30, layout.CornerFrontLeft, true},
		{"front right", 310, 0, layout.CornerFrontRight, true},
		{"back left", 0, 510, layout.CornerBackLeft, true},
		{"back right", 310, 510, layout.CornerBackRight, true},
		{"middle", 150, 250, "", false},
		{"front wall only", 150, 0, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := testutils.NewElement("corner-1").At(tc.x, tc.y).Sized(90, 90, 90).Build()
			got, ok := corner.DetectCornerPosition(e, room, corner.DefaultTolerance)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDetectCornerPositionDefaultsTolerance(t *testing.T) {
	e := testutils.NewElement("corner-1").At(29, 29).Sized(90, 90, 90).Build()
	got, ok := corner.DetectCornerPosition(e, testutils.Room(), 0)
	assert.True(t, ok)
	assert.Equal(t, layout.CornerFrontLeft, got)
}

func TestDoorSideMatrix(t *testing.T) {
	testCases := map[layout.CornerPosition]layout.DoorSide{
		layout.CornerFrontLeft:  layout.DoorSideRight,
		layout.CornerFrontRight: layout.DoorSideLeft,
		layout.CornerBackLeft:   layout.DoorSideRight,
		layout.CornerBackRight:  layout.DoorSideLeft,
	}
	for c, want := range testCases {
		got, ok := corner.DoorSideFor(c)
		assert.True(t, ok)
		assert.Equal(t, want, got, string(c))
	}

	_, ok := corner.DoorSideFor("middle")
	assert.False(t, ok)
}

func TestResolveDoorSideIgnoresView(t *testing.T) {
	e := testutils.NewElement("corner-1").
		WithComponent("corner-base-90").
		At(0, 0).
		Sized(90, 90, 90).
		Build()

	for _, view := range []string{"front", "back", "left", "right"} {
		got := corner.ResolveDoorSide(e, testutils.Room(), view)
		assert.Equal(t, layout.DoorSideRight, got.DoorSide, view)
		assert.Equal(t, layout.CornerFrontLeft, got.Corner, view)
		assert.False(t, got.Manual)
	}
}

func TestResolveDoorSideOverride(t *testing.T) {
	e := testutils.NewElement("corner-1").At(0, 0).Sized(90, 90, 90).
		WithDoorSide(layout.DoorSideLeft).Build()

	got := corner.ResolveDoorSide(e, testutils.Room(), "left")
	assert.Equal(t, layout.DoorSideLeft, got.DoorSide)
	assert.True(t, got.Manual)

	auto := testutils.NewElement("corner-2").At(310, 510).Sized(90, 90, 90).
		WithDoorSide(layout.DoorSideAuto).Build()
	got = corner.ResolveDoorSide(auto, testutils.Room(), "front")
	assert.Equal(t, layout.DoorSideLeft, got.DoorSide)
	assert.Equal(t, layout.CornerBackRight, got.Corner)
}

func TestIsCornerComponent(t *testing.T) {
	assert.True(t, corner.IsCornerComponent(testutils.NewElement("a").WithComponent("Corner-Base-90").Build()))
	assert.True(t, corner.IsCornerComponent(testutils.NewElement("b").WithType("corner-cabinet").Build()))
	assert.False(t, corner.IsCornerComponent(testutils.NewElement("c").Build()))
}
