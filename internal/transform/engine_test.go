package transform_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
	"github.com/KirkDiggler/layout-api/internal/transform"
)

type EngineTestSuite struct {
	suite.Suite
	engine *transform.Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	engine, err := transform.New(layout.RoomDimensions{Width: 400, Height: 600, CeilingHeight: 240})
	s.Require().NoError(err)
	s.engine = engine
}

func (s *EngineTestSuite) points() []layout.PlanCoordinates {
	return []layout.PlanCoordinates{
		{X: 0, Y: 0},
		{X: 200, Y: 300},
		{X: 400, Y: 600},
		{X: 37.5, Y: 512.25, Z: 140},
	}
}

func (s *EngineTestSuite) TestNewRejectsBadDimensions() {
	_, err := transform.New(layout.RoomDimensions{Width: 0, Height: 600, CeilingHeight: 240})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = transform.New(layout.RoomDimensions{Width: 400, Height: 600, CeilingHeight: 240},
		transform.WithWallThickness(-1))
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestWorldRoundTrip() {
	for _, p := range s.points() {
		got := s.engine.WorldToPlan(s.engine.PlanToWorld(p))
		s.Assert().InDelta(p.X, got.X, transform.Tolerance)
		s.Assert().InDelta(p.Y, got.Y, transform.Tolerance)
		s.Assert().InDelta(p.Z, got.Z, transform.Tolerance)
	}
}

func (s *EngineTestSuite) TestPlanToWorldCentersRoom() {
	s.Assert().Equal(layout.WorldCoordinates{X: 0, Y: 0, Z: 0},
		s.engine.PlanToWorld(layout.PlanCoordinates{X: 200, Y: 300}))
	s.Assert().Equal(layout.WorldCoordinates{X: -200, Y: 90, Z: -300},
		s.engine.PlanToWorld(layout.PlanCoordinates{X: 0, Y: 0, Z: 90}))
}

func (s *EngineTestSuite) TestPlanToElevation() {
	p := layout.PlanCoordinates{X: 100, Y: 150, Z: 80}

	testCases := []struct {
		wall layout.WallType
		want layout.ElevationCoordinates
	}{
		{layout.WallFront, layout.ElevationCoordinates{X: 100, Y: 80}},
		{layout.WallBack, layout.ElevationCoordinates{X: 300, Y: 80}},
		{layout.WallLeft, layout.ElevationCoordinates{X: 450, Y: 80}},
		{layout.WallRight, layout.ElevationCoordinates{X: 150, Y: 80}},
	}

	for _, tc := range testCases {
		s.Run(string(tc.wall), func() {
			s.Assert().Equal(tc.want, s.engine.PlanToElevation(p, tc.wall))
		})
	}
}

func (s *EngineTestSuite) TestElevationToPlanIsFlush() {
	p := layout.PlanCoordinates{X: 100, Y: 150, Z: 80}

	testCases := []struct {
		wall layout.WallType
		want layout.PlanCoordinates
	}{
		{layout.WallFront, layout.PlanCoordinates{X: 100, Y: 0, Z: 80}},
		{layout.WallBack, layout.PlanCoordinates{X: 100, Y: 600, Z: 80}},
		{layout.WallLeft, layout.PlanCoordinates{X: 0, Y: 150, Z: 80}},
		{layout.WallRight, layout.PlanCoordinates{X: 400, Y: 150, Z: 80}},
	}

	for _, tc := range testCases {
		s.Run(string(tc.wall), func() {
			got := s.engine.ElevationToPlan(s.engine.PlanToElevation(p, tc.wall), tc.wall)
			s.Assert().Equal(tc.want, got)
		})
	}
}

func (s *EngineTestSuite) TestWallPositions() {
	positions := s.engine.WallPositions()
	s.Assert().Equal(transform.WallPosition{Centerline: -5, InnerFace: 0}, positions[layout.WallFront])
	s.Assert().Equal(transform.WallPosition{Centerline: 605, InnerFace: 600}, positions[layout.WallBack])
	s.Assert().Equal(transform.WallPosition{Centerline: -5, InnerFace: 0}, positions[layout.WallLeft])
	s.Assert().Equal(transform.WallPosition{Centerline: 405, InnerFace: 400}, positions[layout.WallRight])

	thick, err := transform.New(s.engine.Dimensions(), transform.WithWallThickness(20))
	s.Require().NoError(err)
	s.Assert().Equal(410.0, thick.WallPositions()[layout.WallRight].Centerline)
	s.Assert().Equal(20.0, thick.WallThickness())
}

func (s *EngineTestSuite) TestInnerRoomBounds() {
	s.Assert().Equal(transform.Bounds{MinX: 0, MinY: 0, MaxX: 400, MaxY: 600}, s.engine.InnerRoomBounds())
}

func (s *EngineTestSuite) TestValidatePlanCoordinates() {
	s.Assert().NoError(s.engine.ValidatePlanCoordinates(layout.PlanCoordinates{X: 400, Y: 600, Z: 240}))

	err := s.engine.ValidatePlanCoordinates(layout.PlanCoordinates{X: -1, Y: 10, Z: 300})
	s.Require().Error(err)
	s.Assert().True(errors.IsOutOfRange(err))
	s.Assert().Contains(err.Error(), "x, z")
}

func (s *EngineTestSuite) TestClampToRoom() {
	x, y := s.engine.ClampToRoom(380, -10, 60, 60)
	s.Assert().Equal(340.0, x)
	s.Assert().Equal(0.0, y)

	x, y = s.engine.ClampToRoom(50, 50, 500, 60)
	s.Assert().Equal(0.0, x)
	s.Assert().Equal(50.0, y)
}
