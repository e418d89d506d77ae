package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/transform"
)

func newEngine(t *testing.T) *transform.Engine {
	t.Helper()
	e, err := transform.New(layout.RoomDimensions{Width: 400, Height: 600, CeilingHeight: 240})
	require.NoError(t, err)
	return e
}

func TestPlanCanvasRoundTrip(t *testing.T) {
	e := newEngine(t)
	proj := transform.Projection{Zoom: 1.5, Origin: layout.CanvasCoordinates{X: 40, Y: 20}}

	p := layout.PlanCoordinates{X: 120, Y: 333}
	c := e.PlanToCanvas(p, proj)
	assert.Equal(t, layout.CanvasCoordinates{X: 220, Y: 519.5}, c)

	back := e.CanvasToPlan(c, proj)
	assert.InDelta(t, p.X, back.X, transform.Tolerance)
	assert.InDelta(t, p.Y, back.Y, transform.Tolerance)
}

func TestElevationCanvas(t *testing.T) {
	e := newEngine(t)
	proj := transform.ElevationProjection(layout.WallFront, 2)

	c := e.PlanToCanvas(layout.PlanCoordinates{X: 100, Y: 0, Z: 90}, proj)
	assert.Equal(t, layout.CanvasCoordinates{X: 200, Y: 300}, c)

	mirrored := proj
	mirrored.Mirror = true
	m := e.PlanToCanvas(layout.PlanCoordinates{X: 100, Y: 0, Z: 90}, mirrored)
	assert.Equal(t, layout.CanvasCoordinates{X: 600, Y: 300}, m)
}

func TestElevationCanvasRoundTripAllWalls(t *testing.T) {
	e := newEngine(t)
	p := layout.PlanCoordinates{X: 75, Y: 410, Z: 150}

	for _, wall := range layout.AllWalls {
		for _, mirror := range []bool{false, true} {
			proj := transform.Projection{Wall: wall, Zoom: 0.75, Origin: layout.CanvasCoordinates{X: 10, Y: 5}, Mirror: mirror}
			back := e.CanvasToPlan(e.PlanToCanvas(p, proj), proj)

			want := e.PlanToElevation(p, wall)
			got := e.PlanToElevation(back, wall)
			assert.InDelta(t, want.X, got.X, transform.Tolerance, "wall %s mirror %v", wall, mirror)
			assert.InDelta(t, want.Y, got.Y, transform.Tolerance, "wall %s mirror %v", wall, mirror)
		}
	}
}

func TestFrontElevationSymmetry(t *testing.T) {
	e := newEngine(t)
	proj := transform.ElevationProjection(layout.WallFront, 1.25)
	viewWidth := e.WallLength(layout.WallFront) * proj.Zoom

	left := e.PlanToCanvas(layout.PlanCoordinates{X: 100}, proj)
	right := e.PlanToCanvas(layout.PlanCoordinates{X: 300}, proj)
	assert.InDelta(t, left.X-proj.Origin.X, proj.Origin.X+viewWidth-right.X, 1e-9)
}

func TestValidateConsistency(t *testing.T) {
	e := newEngine(t)

	for _, proj := range []transform.Projection{
		transform.PlanProjection(1),
		transform.ElevationProjection(layout.WallLeft, 0.5),
		{Wall: layout.WallBack, Zoom: 2, Mirror: true},
	} {
		for _, p := range []layout.PlanCoordinates{{X: 0, Y: 0}, {X: 200, Y: 300, Z: 100}, {X: 400, Y: 600, Z: 240}} {
			result := e.ValidateConsistency(p, proj)
			assert.True(t, result.Consistent, "point %+v projection %+v", p, proj)
			assert.Len(t, result.ElevationError, 4)
		}
	}
}

func TestProjectionValidate(t *testing.T) {
	assert.NoError(t, transform.PlanProjection(1).Validate())
	assert.Error(t, transform.PlanProjection(0).Validate())
	assert.Error(t, transform.Projection{Wall: "ceiling", Zoom: 1}.Validate())
}
