package roomtemplate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
	"github.com/KirkDiggler/layout-api/internal/repositories/roomtemplate"
	"github.com/KirkDiggler/layout-api/internal/testutils"
)

type SQLiteTemplateTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo roomtemplate.Repository
}

func TestSQLiteTemplateSuite(t *testing.T) {
	suite.Run(t, new(SQLiteTemplateTestSuite))
}

func (s *SQLiteTemplateTestSuite) SetupTest() {
	s.ctx = context.Background()
	repo, err := roomtemplate.NewSQLite(s.ctx, &roomtemplate.SQLiteConfig{
		DB:   testutils.CreateTestSQLite(s.T()),
		Seed: true,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SQLiteTemplateTestSuite) TestNewSQLiteValidatesConfig() {
	_, err := roomtemplate.NewSQLite(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = roomtemplate.NewSQLite(s.ctx, &roomtemplate.SQLiteConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *SQLiteTemplateTestSuite) TestGetSeeded() {
	out, err := s.repo.Get(s.ctx, roomtemplate.GetInput{RoomType: " Kitchen "})
	s.Require().NoError(err)
	s.Assert().Equal("kitchen", out.Template.RoomType)
	s.Assert().Equal(layout.RoomDimensions{Width: 600, Height: 400, CeilingHeight: 240}, out.Template.Dimensions)
	s.Assert().Equal(10.0, out.Template.WallThickness)
}

func (s *SQLiteTemplateTestSuite) TestGetErrors() {
	_, err := s.repo.Get(s.ctx, roomtemplate.GetInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, roomtemplate.GetInput{RoomType: "garage"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Equal("garage", errors.GetMeta(err)["room_type"])
}

func (s *SQLiteTemplateTestSuite) TestList() {
	out, err := s.repo.List(s.ctx, roomtemplate.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Templates, len(roomtemplate.DefaultTemplates))
	s.Assert().Equal("bathroom", out.Templates[0].RoomType)
	s.Assert().Equal("utility", out.Templates[len(out.Templates)-1].RoomType)
}

func (s *SQLiteTemplateTestSuite) TestUpsert() {
	_, err := s.repo.Upsert(s.ctx, roomtemplate.UpsertInput{Template: layout.RoomTemplate{
		RoomType:   "Garage",
		Dimensions: layout.RoomDimensions{Width: 550, Height: 300, CeilingHeight: 230},
	}})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, roomtemplate.GetInput{RoomType: "garage"})
	s.Require().NoError(err)
	s.Assert().Equal("garage", out.Template.Name)
	s.Assert().Equal(layout.DefaultWallThickness, out.Template.WallThickness)

	_, err = s.repo.Upsert(s.ctx, roomtemplate.UpsertInput{Template: layout.RoomTemplate{
		RoomType:      "kitchen",
		Name:          "Big Kitchen",
		Dimensions:    layout.RoomDimensions{Width: 800, Height: 500, CeilingHeight: 260},
		WallThickness: 12,
	}})
	s.Require().NoError(err)

	out, err = s.repo.Get(s.ctx, roomtemplate.GetInput{RoomType: "kitchen"})
	s.Require().NoError(err)
	s.Assert().Equal("Big Kitchen", out.Template.Name)
	s.Assert().Equal(800.0, out.Template.Dimensions.Width)
}

func (s *SQLiteTemplateTestSuite) TestUpsertValidates() {
	_, err := s.repo.Upsert(s.ctx, roomtemplate.UpsertInput{Template: layout.RoomTemplate{
		RoomType:   "",
		Dimensions: layout.RoomDimensions{Width: -1},
	}})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "room_type")
	s.Assert().Contains(err.Error(), "dimensions")
}

func (s *SQLiteTemplateTestSuite) TestSeedIsIdempotent() {
	db := testutils.CreateTestSQLite(s.T())
	for i := 0; i < 2; i++ {
		_, err := roomtemplate.NewSQLite(s.ctx, &roomtemplate.SQLiteConfig{DB: db, Seed: true})
		s.Require().NoError(err)
	}

	repo, err := roomtemplate.NewSQLite(s.ctx, &roomtemplate.SQLiteConfig{DB: db})
	s.Require().NoError(err)
	out, err := repo.List(s.ctx, roomtemplate.ListInput{})
	s.Require().NoError(err)
	s.Assert().Len(out.Templates, len(roomtemplate.DefaultTemplates))
}
