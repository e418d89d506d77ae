package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
	"github.com/KirkDiggler/layout-api/internal/geometry"
	"github.com/KirkDiggler/layout-api/internal/testutils"
)

type ValidatorTestSuite struct {
	suite.Suite
	room layout.RoomGeometry
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	s.room = testutils.SquareGeometry(10, 10)
}

func ptr(v float64) *float64 { return &v }

func (s *ValidatorTestSuite) messages(findings []geometry.Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.String()
	}
	return out
}

func (s *ValidatorTestSuite) TestValidSquareRoom() {
	report := geometry.ValidateRoomGeometry(s.room)
	s.Assert().True(report.Valid)
	s.Assert().Empty(report.Errors)
	s.Assert().Empty(report.Warnings)
	s.Assert().Equal("0 errors, 0 warnings", report.Summary)
	s.Assert().NoError(report.Err())
}

func (s *ValidatorTestSuite) TestFloorPolygon() {
	s.Run("square has no findings", func() {
		report := geometry.ValidateFloorPolygon(pts(0, 0, 10, 0, 10, 10, 0, 10))
		s.Assert().True(report.Valid)
		s.Assert().Empty(report.Warnings)
	})

	s.Run("two vertices fail", func() {
		report := geometry.ValidateFloorPolygon(pts(0, 0, 10, 10))
		s.Assert().False(report.Valid)
		s.Require().Len(report.Errors, 1)
		s.Assert().Contains(report.Errors[0].Message, "at least 3 vertices")
	})

	s.Run("bow tie fails", func() {
		report := geometry.ValidateFloorPolygon(pts(0, 0, 10, 10, 10, 0, 0, 10))
		s.Assert().False(report.Valid)
		s.Require().Len(report.Errors, 1)
		s.Assert().Contains(report.Errors[0].Message, "intersects")
	})

	s.Run("duplicates warn", func() {
		report := geometry.ValidateFloorPolygon(pts(0, 0, 10, 0, 10, 0, 10, 10, 0, 10, 0, 0))
		s.Assert().True(report.Valid)
		s.Assert().Len(report.Warnings, 2)
	})

	s.Run("too many vertices warn", func() {
		var many []layout.Point2D
		for i := 0; i < 101; i++ {
			many = append(many, layout.Point2D{X: float64(i) * 10, Y: float64(i%2) * 5})
		}
		many = append(many, layout.Point2D{X: 1000, Y: 500}, layout.Point2D{X: 0, Y: 500})
		report := geometry.ValidateFloorPolygon(many)
		s.Assert().Contains(s.messages(report.Warnings)[0], "more than 100")
	})

	s.Run("short edge warns", func() {
		report := geometry.ValidateFloorPolygon(pts(0, 0, 10, 0, 10, 10, 0.5, 10, 0, 10))
		s.Assert().True(report.Valid)
		s.Require().Len(report.Warnings, 1)
		s.Assert().Equal("floor.edges[3]", report.Warnings[0].Path)
	})

	s.Run("all duplicates collapse", func() {
		report := geometry.ValidateFloorPolygon(pts(1, 1, 1, 1, 1, 1))
		s.Assert().False(report.Valid)
	})
}

func (s *ValidatorTestSuite) TestWalls() {
	s.Run("too few walls", func() {
		report := geometry.ValidateWalls(s.room.Walls[:2])
		s.Assert().False(report.Valid)
	})

	s.Run("non-positive height", func() {
		walls := append([]layout.WallSegment(nil), s.room.Walls...)
		walls[1].Height = 0
		report := geometry.ValidateWalls(walls)
		s.Assert().False(report.Valid)
		s.Assert().Equal("walls[1].height", report.Errors[0].Path)
	})

	s.Run("tall and thick walls warn", func() {
		walls := append([]layout.WallSegment(nil), s.room.Walls...)
		walls[0].Height = 520
		walls[2].Thickness = ptr(60)
		report := geometry.ValidateWalls(walls)
		s.Assert().True(report.Valid)
		s.Assert().Len(report.Warnings, 2)
	})

	s.Run("zero thickness fails", func() {
		walls := append([]layout.WallSegment(nil), s.room.Walls...)
		walls[3].Thickness = ptr(0)
		s.Assert().False(geometry.ValidateWalls(walls).Valid)
	})

	s.Run("zero length fails", func() {
		walls := append([]layout.WallSegment(nil), s.room.Walls...)
		walls[0].End = walls[0].Start
		report := geometry.ValidateWalls(walls)
		s.Assert().False(report.Valid)
	})

	s.Run("gap warns but passes", func() {
		walls := append([]layout.WallSegment(nil), s.room.Walls...)
		walls[1].Start = layout.Point2D{X: 10.5, Y: 0}
		report := geometry.ValidateWalls(walls)
		s.Assert().True(report.Valid)
		s.Require().Len(report.Warnings, 1)
		s.Assert().Equal("walls[0].end", report.Warnings[0].Path)
	})

	s.Run("gap within tolerance is silent", func() {
		walls := append([]layout.WallSegment(nil), s.room.Walls...)
		walls[1].Start = layout.Point2D{X: 10.05, Y: 0}
		s.Assert().Empty(geometry.ValidateWalls(walls).Warnings)
	})
}

func (s *ValidatorTestSuite) TestCeiling() {
	zone := s.room.Ceiling.Zones[0]

	s.Run("no zones", func() {
		s.Assert().False(geometry.ValidateCeiling(layout.Ceiling{}).Valid)
	})

	s.Run("degenerate zone", func() {
		z := zone
		z.Vertices = z.Vertices[:2]
		z.Height = -1
		report := geometry.ValidateCeiling(layout.Ceiling{Zones: []layout.CeilingZone{z}})
		s.Assert().Len(report.Errors, 2)
	})

	s.Run("unusual height warns", func() {
		z := zone
		z.Height = 180
		report := geometry.ValidateCeiling(layout.Ceiling{Zones: []layout.CeilingZone{z}})
		s.Assert().True(report.Valid)
		s.Assert().Len(report.Warnings, 1)
	})

	s.Run("vaulted apex", func() {
		z := zone
		z.Type = layout.CeilingVaulted
		s.Assert().Len(geometry.ValidateCeiling(layout.Ceiling{Zones: []layout.CeilingZone{z}}).Warnings, 1)

		z.ApexHeight = ptr(240)
		s.Assert().Len(geometry.ValidateCeiling(layout.Ceiling{Zones: []layout.CeilingZone{z}}).Warnings, 1)

		z.ApexHeight = ptr(320)
		s.Assert().Empty(geometry.ValidateCeiling(layout.Ceiling{Zones: []layout.CeilingZone{z}}).Warnings)
	})

	s.Run("sloped range", func() {
		z := zone
		z.Type = layout.CeilingSloped
		z.Slope = ptr(50)
		s.Assert().Len(geometry.ValidateCeiling(layout.Ceiling{Zones: []layout.CeilingZone{z}}).Warnings, 1)

		z.Slope = ptr(45)
		s.Assert().Empty(geometry.ValidateCeiling(layout.Ceiling{Zones: []layout.CeilingZone{z}}).Warnings)
	})
}

func (s *ValidatorTestSuite) TestBoundingBox() {
	box := layout.BoundingBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}

	s.Assert().True(geometry.ValidateBoundingBox(pts(0, 0, 10.05, 10), box).Valid)

	report := geometry.ValidateBoundingBox(pts(0, 0, 10.2, 10), box)
	s.Assert().False(report.Valid)
	s.Assert().Equal("floor.vertices[1]", report.Errors[0].Path)
}

func (s *ValidatorTestSuite) TestMetadata() {
	square := pts(0, 0, 10, 0, 10, 10, 0, 10)

	s.Assert().Empty(geometry.ValidateMetadata(square, layout.GeometryMetadata{TotalFloorArea: 100.5}).Warnings)
	s.Assert().Len(geometry.ValidateMetadata(square, layout.GeometryMetadata{TotalFloorArea: 102}).Warnings, 1)
	s.Assert().Len(geometry.ValidateMetadata(square, layout.GeometryMetadata{}).Warnings, 1)
	s.Assert().Empty(geometry.ValidateMetadata(pts(0, 0, 1, 1), layout.GeometryMetadata{TotalFloorArea: 5}).Warnings)
}

func (s *ValidatorTestSuite) TestReportErr() {
	g := s.room
	g.Floor.Vertices = pts(0, 0, 10, 10)

	report := geometry.ValidateRoomGeometry(g)
	s.Require().False(report.Valid)

	err := report.Err()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "at least 3 vertices")
	s.Assert().NotEmpty(errors.GetMeta(err)["errors"])
}
