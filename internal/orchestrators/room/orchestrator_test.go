package room_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
	"github.com/KirkDiggler/layout-api/internal/orchestrators/room"
	"github.com/KirkDiggler/layout-api/internal/pkg/idgen"
	"github.com/KirkDiggler/layout-api/internal/position"
	positionmock "github.com/KirkDiggler/layout-api/internal/position/mock"
	"github.com/KirkDiggler/layout-api/internal/repositories/component"
	componentmock "github.com/KirkDiggler/layout-api/internal/repositories/component/mock"
	"github.com/KirkDiggler/layout-api/internal/repositories/roomtemplate"
	roomtemplatemock "github.com/KirkDiggler/layout-api/internal/repositories/roomtemplate/mock"
	"github.com/KirkDiggler/layout-api/internal/services/flags"
	flagsmock "github.com/KirkDiggler/layout-api/internal/services/flags/mock"
	"github.com/KirkDiggler/layout-api/internal/testutils"
	"github.com/KirkDiggler/layout-api/internal/transform"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx            context.Context
	ctrl           *gomock.Controller
	mockTemplates  *roomtemplatemock.MockRepository
	mockComponents *componentmock.MockRepository
	mockFlags      *flagsmock.MockEvaluator
	orchestrator   room.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockTemplates = roomtemplatemock.NewMockRepository(s.ctrl)
	s.mockComponents = componentmock.NewMockRepository(s.ctrl)
	s.mockFlags = flagsmock.NewMockEvaluator(s.ctrl)

	o, err := room.NewOrchestrator(&room.Config{
		RoomTemplates: s.mockTemplates,
		Components:    s.mockComponents,
		Flags:         s.mockFlags,
		IDGenerator:   idgen.NewCounter(idgen.KindRoom),
	})
	s.Require().NoError(err)
	s.orchestrator = o
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// activate registers the 400 x 600 x 240 fixture room as "r1"
func (s *OrchestratorTestSuite) activate() {
	dims := testutils.Room()
	_, err := s.orchestrator.ActivateRoom(s.ctx, &room.ActivateRoomInput{RoomID: "r1", Dimensions: &dims})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidatesConfig() {
	_, err := room.NewOrchestrator(&room.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "RoomTemplates")
	s.Assert().Contains(err.Error(), "Flags")
}

func (s *OrchestratorTestSuite) TestActivateRoomWithDimensions() {
	dims := testutils.Room()
	out, err := s.orchestrator.ActivateRoom(s.ctx, &room.ActivateRoomInput{Dimensions: &dims})
	s.Require().NoError(err)

	s.Assert().Equal("room_1", out.RoomID)
	s.Assert().Equal(dims, out.Dimensions)
	s.Assert().Equal(layout.DefaultWallThickness, out.WallThickness)
	s.Assert().Equal(transform.Bounds{MaxX: 400, MaxY: 600}, out.InnerBounds)
	s.Assert().Equal(-5.0, out.Walls[layout.WallFront].Centerline)
	s.Assert().Equal(605.0, out.Walls[layout.WallBack].Centerline)
	s.Assert().False(out.Replaced)
}

func (s *OrchestratorTestSuite) TestActivateRoomSkipsSuppliedID() {
	dims := testutils.Room()
	_, err := s.orchestrator.ActivateRoom(s.ctx, &room.ActivateRoomInput{RoomID: "room_1", Dimensions: &dims})
	s.Require().NoError(err)

	out, err := s.orchestrator.ActivateRoom(s.ctx, &room.ActivateRoomInput{Dimensions: &dims})
	s.Require().NoError(err)
	s.Assert().Equal("room_2", out.RoomID)
	s.Assert().False(out.Replaced)
}

func (s *OrchestratorTestSuite) TestActivateRoomRejectsBarePrefixID() {
	dims := testutils.Room()
	_, err := s.orchestrator.ActivateRoom(s.ctx, &room.ActivateRoomInput{RoomID: " room_ ", Dimensions: &dims})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal("room_", errors.GetMeta(err)["room_id"])

	_, err = s.orchestrator.TransformPoint(s.ctx, &room.TransformPointInput{RoomID: "room_"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestActivateRoomFromTemplate() {
	s.mockTemplates.EXPECT().
		Get(s.ctx, roomtemplate.GetInput{RoomType: "kitchen"}).
		Return(&roomtemplate.GetOutput{Template: layout.RoomTemplate{
			RoomType:      "kitchen",
			Dimensions:    layout.RoomDimensions{Width: 600, Height: 400, CeilingHeight: 240},
			WallThickness: 12,
		}}, nil)

	out, err := s.orchestrator.ActivateRoom(s.ctx, &room.ActivateRoomInput{RoomID: "k1", RoomType: "kitchen"})
	s.Require().NoError(err)
	s.Assert().Equal(600.0, out.Dimensions.Width)
	s.Assert().Equal(12.0, out.WallThickness)
}

func (s *OrchestratorTestSuite) TestActivateRoomTemplateNotFound() {
	s.mockTemplates.EXPECT().Get(s.ctx, gomock.Any()).Return(nil, errors.NotFound("room template garage not found"))

	_, err := s.orchestrator.ActivateRoom(s.ctx, &room.ActivateRoomInput{RoomType: "garage"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestActivateRoomRejectsBadInput() {
	_, err := s.orchestrator.ActivateRoom(s.ctx, &room.ActivateRoomInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ActivateRoom(s.ctx, &room.ActivateRoomInput{
		Dimensions: &layout.RoomDimensions{Width: 0, Height: 600, CeilingHeight: 240},
	})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestActivateRoomTwiceReplaces() {
	s.activate()
	dims := layout.RoomDimensions{Width: 300, Height: 300, CeilingHeight: 250}
	out, err := s.orchestrator.ActivateRoom(s.ctx, &room.ActivateRoomInput{RoomID: "r1", Dimensions: &dims})
	s.Require().NoError(err)
	s.Assert().True(out.Replaced)
}

func (s *OrchestratorTestSuite) TestReleaseRoom() {
	s.activate()

	_, err := s.orchestrator.ReleaseRoom(s.ctx, &room.ReleaseRoomInput{RoomID: "r1"})
	s.Require().NoError(err)

	_, err = s.orchestrator.TransformPoint(s.ctx, &room.TransformPointInput{RoomID: "r1"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.orchestrator.ReleaseRoom(s.ctx, &room.ReleaseRoomInput{RoomID: "r1"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListRoomTemplates() {
	templates := []layout.RoomTemplate{{RoomType: "bathroom"}, {RoomType: "kitchen"}}
	s.mockTemplates.EXPECT().List(s.ctx, roomtemplate.ListInput{}).Return(&roomtemplate.ListOutput{Templates: templates}, nil)

	out, err := s.orchestrator.ListRoomTemplates(s.ctx, &room.ListRoomTemplatesInput{})
	s.Require().NoError(err)
	s.Assert().Equal(templates, out.Templates)
}

func (s *OrchestratorTestSuite) TestTransformPointFromPlan() {
	s.activate()
	proj := transform.PlanProjection(2)

	out, err := s.orchestrator.TransformPoint(s.ctx, &room.TransformPointInput{
		RoomID:     "r1",
		From:       room.SpacePlan,
		Point:      room.Point{X: 100, Y: 50, Z: 30},
		Wall:       layout.WallFront,
		Projection: &proj,
	})
	s.Require().NoError(err)

	s.Assert().Equal(layout.WorldCoordinates{X: -100, Y: 30, Z: -250}, out.World)
	s.Require().NotNil(out.Elevation)
	s.Assert().Equal(layout.ElevationCoordinates{X: 100, Y: 30}, *out.Elevation)
	s.Require().NotNil(out.Canvas)
	s.Assert().Equal(layout.CanvasCoordinates{X: 200, Y: 100}, *out.Canvas)
	s.Assert().True(out.InsideRoom)
}

func (s *OrchestratorTestSuite) TestTransformPointFromElevation() {
	s.activate()

	out, err := s.orchestrator.TransformPoint(s.ctx, &room.TransformPointInput{
		RoomID: "r1",
		From:   room.SpaceElevation,
		Point:  room.Point{X: 150, Y: 90},
		Wall:   layout.WallLeft,
	})
	s.Require().NoError(err)
	s.Assert().Equal(layout.PlanCoordinates{X: 0, Y: 450, Z: 90}, out.Plan)
	s.Assert().Nil(out.Canvas)
}

func (s *OrchestratorTestSuite) TestTransformPointReportsOutsideRoom() {
	s.activate()

	out, err := s.orchestrator.TransformPoint(s.ctx, &room.TransformPointInput{
		RoomID: "r1",
		From:   room.SpaceWorld,
		Point:  room.Point{X: 250, Y: 10, Z: 0},
	})
	s.Require().NoError(err)
	s.Assert().Equal(450.0, out.Plan.X)
	s.Assert().False(out.InsideRoom)
	s.Assert().Contains(out.Problem, "x")
}

func (s *OrchestratorTestSuite) TestTransformPointRejectsMissingContext() {
	s.activate()

	_, err := s.orchestrator.TransformPoint(s.ctx, &room.TransformPointInput{RoomID: "r1", From: room.SpaceElevation})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.TransformPoint(s.ctx, &room.TransformPointInput{RoomID: "r1", From: room.SpaceCanvas})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.TransformPoint(s.ctx, &room.TransformPointInput{RoomID: "r1", From: "isometric"})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.TransformPoint(s.ctx, &room.TransformPointInput{RoomID: "r1", Wall: "ceiling"})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCheckConsistency() {
	s.activate()

	proj := transform.ElevationProjection(layout.WallBack, 1.5)
	out, err := s.orchestrator.CheckConsistency(s.ctx, &room.CheckConsistencyInput{
		RoomID:     "r1",
		Point:      layout.PlanCoordinates{X: 200, Y: 300, Z: 120},
		Projection: &proj,
	})
	s.Require().NoError(err)
	s.Assert().True(out.Consistency.Consistent)
	s.Assert().Less(out.Consistency.WorldError, transform.Tolerance)

	out, err = s.orchestrator.CheckConsistency(s.ctx, &room.CheckConsistencyInput{RoomID: "r1"})
	s.Require().NoError(err)
	s.Assert().True(out.Consistency.Consistent)
}

func (s *OrchestratorTestSuite) TestCalculateElementPositionFlagOff() {
	s.activate()
	s.mockFlags.EXPECT().IsEnabled(s.ctx, flags.FlagUnifiedPositioning).Return(false)

	out, err := s.orchestrator.CalculateElementPosition(s.ctx, &room.CalculateElementPositionInput{
		RoomID:      "r1",
		Element:     testutils.NewElement("e1").At(100, 0).Build(),
		View:        "front",
		Zoom:        1,
		CanvasWidth: 600,
		TopMargin:   20,
	})
	s.Require().NoError(err)

	s.Assert().Equal(layout.CanvasCoordinates{X: 100, Y: 30}, out.RoomPosition.Inner)
	s.Assert().Equal(layout.CanvasCoordinates{X: 90, Y: 20}, out.RoomPosition.Outer)
	s.Assert().Equal(position.StrategyLegacy, out.Position.Strategy)
	s.Assert().InDelta(200, out.Position.XPos, 1e-9)
	s.Assert().InDelta(60, out.Position.ElementWidth, 1e-9)
	s.Assert().InDelta(180, out.Position.YPos, 1e-9)
}

func (s *OrchestratorTestSuite) TestCalculateElementPositionLeftWallByFlag() {
	s.activate()
	element := testutils.NewElement("e1").At(0, 100).Sized(80, 60, 90).Build()
	input := &room.CalculateElementPositionInput{
		RoomID:      "r1",
		Element:     element,
		View:        "left-dup2",
		Zoom:        1,
		CanvasWidth: 600,
	}

	s.mockFlags.EXPECT().IsEnabled(s.ctx, flags.FlagUnifiedPositioning).Return(true)
	unified, err := s.orchestrator.CalculateElementPosition(s.ctx, input)
	s.Require().NoError(err)
	s.Assert().Equal(position.StrategyUnified, unified.Position.Strategy)
	s.Assert().InDelta(420, unified.Position.XPos, 1e-9)

	s.mockFlags.EXPECT().IsEnabled(s.ctx, flags.FlagUnifiedPositioning).Return(false)
	legacy, err := s.orchestrator.CalculateElementPosition(s.ctx, input)
	s.Require().NoError(err)
	s.Assert().Equal(position.StrategyLegacy, legacy.Position.Strategy)
	s.Assert().InDelta(440, legacy.Position.XPos, 1e-9)
}

func (s *OrchestratorTestSuite) TestCalculateElementPositionUsesSelectedCalculator() {
	mockCalc := positionmock.NewMockCalculator(s.ctrl)
	o, err := room.NewOrchestrator(&room.Config{
		RoomTemplates: s.mockTemplates,
		Components:    s.mockComponents,
		Flags:         s.mockFlags,
		SelectCalculator: func(useUnified bool, _ *slog.Logger) position.Calculator {
			s.Assert().True(useUnified)
			return mockCalc
		},
	})
	s.Require().NoError(err)

	dims := testutils.Room()
	_, err = o.ActivateRoom(s.ctx, &room.ActivateRoomInput{RoomID: "r1", Dimensions: &dims})
	s.Require().NoError(err)

	s.mockFlags.EXPECT().IsEnabled(s.ctx, flags.FlagUnifiedPositioning).Return(true)
	mockCalc.EXPECT().Calculate(gomock.Any()).Return(position.Result{}, errors.Internal("boom"))

	_, err = o.CalculateElementPosition(s.ctx, &room.CalculateElementPositionInput{
		RoomID:  "r1",
		Element: testutils.NewElement("e1").Build(),
		View:    "back",
		Zoom:    1,
	})
	s.Assert().True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestCalculateElementPositionValidatesInput() {
	s.activate()

	_, err := s.orchestrator.CalculateElementPosition(s.ctx, &room.CalculateElementPositionInput{
		RoomID:  "r1",
		Element: testutils.NewElement("e1").Build(),
		View:    "plan",
		Zoom:    0,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "zoom")
	s.Assert().Contains(err.Error(), "view")

	_, err = s.orchestrator.CalculateElementPosition(s.ctx, &room.CalculateElementPositionInput{
		RoomID:  "r1",
		Element: testutils.NewElement("e1").Elevated(200).Build(),
		View:    "front",
		Zoom:    1,
	})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestValidatePlacementSnaps() {
	s.activate()
	placed := []layout.DesignElement{testutils.NewElement("a").At(0, 0).Build()}
	candidate := testutils.NewElement("b").At(55, 0).Build()

	s.mockComponents.EXPECT().
		BatchGet(s.ctx, component.BatchGetInput{ComponentIDs: []string{"base-cabinet-60"}}).
		Return(&component.BatchGetOutput{Metadata: map[string]layout.ComponentMetadata{
			"base-cabinet-60": testutils.Metadata("base-cabinet-60", layout.LayerBase),
		}}, nil)

	out, err := s.orchestrator.ValidatePlacement(s.ctx, &room.ValidatePlacementInput{
		RoomID:    "r1",
		Candidate: candidate,
		Placed:    placed,
	})
	s.Require().NoError(err)

	s.Assert().False(out.Result.IsValid)
	s.Assert().Equal([]string{"a"}, out.Result.CollidingElements)
	s.Require().NotNil(out.Result.SuggestedPosition)
	s.Assert().Equal(60.0, out.Result.SuggestedPosition.X)
	s.Assert().Empty(out.MissingMetadata)
	s.Assert().Equal(55.0, candidate.Position.X)
}

func (s *OrchestratorTestSuite) TestValidatePlacementMetadataFailureIsPermissive() {
	placed := []layout.DesignElement{testutils.NewElement("a").At(0, 0).Build()}
	candidate := testutils.NewElement("b").At(30, 0).Build()

	s.mockComponents.EXPECT().BatchGet(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("catalog down"))

	out, err := s.orchestrator.ValidatePlacement(s.ctx, &room.ValidatePlacementInput{
		Candidate: candidate,
		Placed:    placed,
	})
	s.Require().NoError(err)
	s.Assert().True(out.Result.IsValid)
	s.Assert().Equal([]string{"base-cabinet-60"}, out.MissingMetadata)
}

func (s *OrchestratorTestSuite) TestValidatePlacementUnknownRoom() {
	_, err := s.orchestrator.ValidatePlacement(s.ctx, &room.ValidatePlacementInput{RoomID: "nope"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestResolveCornerDoor() {
	s.activate()

	out, err := s.orchestrator.ResolveCornerDoor(s.ctx, &room.ResolveCornerDoorInput{
		RoomID: "r1",
		Element: testutils.NewElement("c1").
			WithComponent("corner-base-cabinet-90").
			At(0, 0).
			Sized(90, 90, 90).
			Build(),
		View: "front",
	})
	s.Require().NoError(err)
	s.Assert().Equal(layout.CornerFrontLeft, out.Resolution.Corner)
	s.Assert().Equal(layout.DoorSideRight, out.Resolution.DoorSide)
	s.Assert().False(out.Resolution.Manual)
	s.Assert().True(out.IsCornerComponent)
}

func (s *OrchestratorTestSuite) TestResolveCornerDoorManualOverride() {
	s.activate()

	out, err := s.orchestrator.ResolveCornerDoor(s.ctx, &room.ResolveCornerDoorInput{
		RoomID:  "r1",
		Element: testutils.NewElement("c1").At(0, 0).WithDoorSide(layout.DoorSideLeft).Build(),
		View:    "left",
	})
	s.Require().NoError(err)
	s.Assert().Equal(layout.DoorSideLeft, out.Resolution.DoorSide)
	s.Assert().True(out.Resolution.Manual)
}

func (s *OrchestratorTestSuite) TestValidateRoomGeometry() {
	out, err := s.orchestrator.ValidateRoomGeometry(s.ctx, &room.ValidateRoomGeometryInput{
		Geometry: testutils.SquareGeometry(400, 300),
	})
	s.Require().NoError(err)
	s.Assert().True(out.Report.Valid)

	bad := testutils.SquareGeometry(400, 300)
	bad.Walls = bad.Walls[:2]
	out, err = s.orchestrator.ValidateRoomGeometry(s.ctx, &room.ValidateRoomGeometryInput{Geometry: bad})
	s.Require().NoError(err)
	s.Assert().False(out.Report.Valid)
	s.Assert().NotEmpty(out.Report.Errors)
}
