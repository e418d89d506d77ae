package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/reflection"
	reflectionv1 "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	apiv1alpha1 "github.com/KirkDiggler/layout-api/internal/api/v1alpha1"
	"github.com/KirkDiggler/layout-api/internal/corner"
	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
	"github.com/KirkDiggler/layout-api/internal/geometry"
	v1alpha1 "github.com/KirkDiggler/layout-api/internal/handlers/layout/v1alpha1"
	"github.com/KirkDiggler/layout-api/internal/orchestrators/room"
	roommock "github.com/KirkDiggler/layout-api/internal/orchestrators/room/mock"
	"github.com/KirkDiggler/layout-api/internal/position"
	"github.com/KirkDiggler/layout-api/internal/transform"
)

type HandlerTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	mockRoomService *roommock.MockService
	handler         *v1alpha1.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockRoomService = roommock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{RoomService: s.mockRoomService})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) dial(srv *grpc.Server) *grpc.ClientConn {
	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	s.T().Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })
	return conn
}

func cabinet(id string, x float64) *apiv1alpha1.DesignElement {
	return &apiv1alpha1.DesignElement{
		Id:          id,
		ComponentId: "base-cabinet-60",
		Type:        layout.ElementTypeCabinet,
		Position:    &apiv1alpha1.Placement{X: x},
		Dimensions:  &apiv1alpha1.Dimensions{Width: 60, Depth: 60, Height: 90},
	}
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestActivateRoom() {
	dims := layout.RoomDimensions{Width: 400, Height: 600, CeilingHeight: 240}
	s.mockRoomService.EXPECT().
		ActivateRoom(s.ctx, &room.ActivateRoomInput{RoomID: "r1", Dimensions: &dims}).
		Return(&room.ActivateRoomOutput{
			RoomID:        "r1",
			Dimensions:    dims,
			WallThickness: 10,
			InnerBounds:   transform.Bounds{MaxX: 400, MaxY: 600},
			Walls: map[layout.WallType]transform.WallPosition{
				layout.WallLeft:  {Centerline: -5, InnerFace: 0},
				layout.WallFront: {Centerline: 605, InnerFace: 600},
			},
		}, nil)

	resp, err := s.handler.ActivateRoom(s.ctx, &apiv1alpha1.ActivateRoomRequest{
		RoomId:     "r1",
		Dimensions: &apiv1alpha1.RoomDimensions{Width: 400, Height: 600, CeilingHeight: 240},
	})
	s.Require().NoError(err)
	s.Assert().Equal("r1", resp.GetRoomId())
	s.Assert().Equal(400.0, resp.GetInnerBounds().GetMaxX())
	s.Require().Len(resp.GetWalls(), 2)
	s.Assert().Equal(apiv1alpha1.Wall_WALL_FRONT, resp.GetWalls()[0].GetWall())
	s.Assert().Equal(605.0, resp.GetWalls()[0].GetCenterline())
	s.Assert().Equal(apiv1alpha1.Wall_WALL_LEFT, resp.GetWalls()[1].GetWall())
}

func (s *HandlerTestSuite) TestActivateRoomRequiresShape() {
	_, err := s.handler.ActivateRoom(s.ctx, &apiv1alpha1.ActivateRoomRequest{RoomId: "r1"})
	s.Require().Error(err)
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestReleaseRoomNotFound() {
	s.mockRoomService.EXPECT().
		ReleaseRoom(s.ctx, &room.ReleaseRoomInput{RoomID: "gone"}).
		Return(nil, errors.NotFound("room gone is not active").WithMeta("room_id", "gone"))

	_, err := s.handler.ReleaseRoom(s.ctx, &apiv1alpha1.ReleaseRoomRequest{RoomId: "gone"})
	s.Require().Error(err)
	s.Assert().Equal(codes.NotFound, status.Code(err))
	s.Assert().Equal("gone", errors.GetMeta(errors.FromGRPCError(err))["room_id"])
}

func (s *HandlerTestSuite) TestReleaseRoomRequiresID() {
	_, err := s.handler.ReleaseRoom(s.ctx, &apiv1alpha1.ReleaseRoomRequest{})
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestListRoomTemplates() {
	s.mockRoomService.EXPECT().
		ListRoomTemplates(s.ctx, gomock.Any()).
		Return(&room.ListRoomTemplatesOutput{Templates: []layout.RoomTemplate{{
			RoomType:      "kitchen",
			Name:          "Kitchen",
			Dimensions:    layout.RoomDimensions{Width: 400, Height: 600, CeilingHeight: 240},
			WallThickness: 10,
		}}}, nil)

	resp, err := s.handler.ListRoomTemplates(s.ctx, &apiv1alpha1.ListRoomTemplatesRequest{})
	s.Require().NoError(err)
	s.Require().Len(resp.GetTemplates(), 1)
	s.Assert().Equal("kitchen", resp.GetTemplates()[0].GetRoomType())
	s.Assert().Equal(240.0, resp.GetTemplates()[0].GetDimensions().GetCeilingHeight())
}

func (s *HandlerTestSuite) TestTransformPointConvertsProjection() {
	elevation := layout.ElevationCoordinates{X: 100, Y: 30}
	s.mockRoomService.EXPECT().
		TransformPoint(s.ctx, &room.TransformPointInput{
			RoomID: "r1",
			From:   room.SpacePlan,
			Point:  room.Point{X: 100, Y: 50, Z: 30},
			Wall:   layout.WallFront,
			Projection: &transform.Projection{
				Wall: layout.WallFront,
				Zoom: 2,
			},
		}).
		Return(&room.TransformPointOutput{
			Plan:       layout.PlanCoordinates{X: 100, Y: 50, Z: 30},
			Elevation:  &elevation,
			InsideRoom: true,
		}, nil)

	resp, err := s.handler.TransformPoint(s.ctx, &apiv1alpha1.TransformPointRequest{
		RoomId:     "r1",
		From:       apiv1alpha1.CoordinateSpace_COORDINATE_SPACE_PLAN,
		Point:      &apiv1alpha1.Point3D{X: 100, Y: 50, Z: 30},
		Wall:       apiv1alpha1.Wall_WALL_FRONT,
		Projection: &apiv1alpha1.Projection{Wall: apiv1alpha1.Wall_WALL_FRONT, Zoom: 2},
	})
	s.Require().NoError(err)
	s.Assert().Equal(100.0, resp.GetElevation().GetX())
	s.Assert().Equal(30.0, resp.GetElevation().GetY())
	s.Assert().Nil(resp.GetCanvas())
	s.Assert().True(resp.GetInsideRoom())
}

func (s *HandlerTestSuite) TestTransformPointRejectsUnknownSpace() {
	_, err := s.handler.TransformPoint(s.ctx, &apiv1alpha1.TransformPointRequest{
		RoomId: "r1",
		From:   apiv1alpha1.CoordinateSpace(42),
	})
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestCheckConsistency() {
	s.mockRoomService.EXPECT().
		CheckConsistency(s.ctx, gomock.Any()).
		Return(&room.CheckConsistencyOutput{Consistency: transform.Consistency{
			ElevationError: map[layout.WallType]float64{layout.WallLeft: 0.01},
			Consistent:     true,
		}}, nil)

	resp, err := s.handler.CheckConsistency(s.ctx, &apiv1alpha1.CheckConsistencyRequest{RoomId: "r1"})
	s.Require().NoError(err)
	s.Assert().True(resp.GetConsistent())
	s.Require().Len(resp.GetElevationErrors(), 1)
	s.Assert().Equal(apiv1alpha1.Wall_WALL_LEFT, resp.GetElevationErrors()[0].GetWall())
	s.Assert().Equal(0.01, resp.GetElevationErrors()[0].GetError())
}

func (s *HandlerTestSuite) TestCalculateElementPosition() {
	s.mockRoomService.EXPECT().
		CalculateElementPosition(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *room.CalculateElementPositionInput) (*room.CalculateElementPositionOutput, error) {
			s.Assert().Equal("left", in.View)
			s.Assert().Equal("base-cabinet-60", in.Element.Component.ID)
			return &room.CalculateElementPositionOutput{
				Position: position.Result{XPos: 420, ElementWidth: 80, Wall: layout.WallLeft, Strategy: position.StrategyUnified},
				RoomPosition: position.RoomPosition{
					Inner: layout.CanvasCoordinates{X: 0, Y: 10},
					Outer: layout.CanvasCoordinates{X: -10, Y: 0},
				},
			}, nil
		})

	resp, err := s.handler.CalculateElementPosition(s.ctx, &apiv1alpha1.CalculateElementPositionRequest{
		RoomId:  "r1",
		Element: cabinet("e1", 0),
		View:    "left",
		Zoom:    1,
	})
	s.Require().NoError(err)
	s.Assert().Equal(apiv1alpha1.Wall_WALL_LEFT, resp.GetPosition().GetWall())
	s.Assert().Equal("unified", resp.GetPosition().GetStrategy())
	s.Assert().Equal(420.0, resp.GetPosition().GetXPos())
	s.Assert().Equal(-10.0, resp.GetRoomOuter().GetX())
}

func (s *HandlerTestSuite) TestCalculateElementPositionRequiresView() {
	_, err := s.handler.CalculateElementPosition(s.ctx, &apiv1alpha1.CalculateElementPositionRequest{RoomId: "r1"})
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestValidatePlacementRequiresCandidate() {
	_, err := s.handler.ValidatePlacement(s.ctx, &apiv1alpha1.ValidatePlacementRequest{})
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestResolveCornerDoorPassesOverride() {
	element := cabinet("c1", 0)
	element.CornerDoorSide = apiv1alpha1.DoorSide_DOOR_SIDE_LEFT

	s.mockRoomService.EXPECT().
		ResolveCornerDoor(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *room.ResolveCornerDoorInput) (*room.ResolveCornerDoorOutput, error) {
			s.Assert().Equal(layout.DoorSideLeft, in.Element.CornerDoorSide)
			return &room.ResolveCornerDoorOutput{
				Resolution: corner.Resolution{DoorSide: layout.DoorSideLeft, Manual: true},
			}, nil
		})

	resp, err := s.handler.ResolveCornerDoor(s.ctx, &apiv1alpha1.ResolveCornerDoorRequest{RoomId: "r1", Element: element})
	s.Require().NoError(err)
	s.Assert().Equal(apiv1alpha1.DoorSide_DOOR_SIDE_LEFT, resp.GetDoorSide())
	s.Assert().True(resp.GetManual())
}

func (s *HandlerTestSuite) TestResolveCornerDoorRejectsUnknownSide() {
	element := cabinet("c1", 0)
	element.CornerDoorSide = apiv1alpha1.DoorSide(9)

	_, err := s.handler.ResolveCornerDoor(s.ctx, &apiv1alpha1.ResolveCornerDoorRequest{RoomId: "r1", Element: element})
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestValidateRoomGeometry() {
	report := geometry.NewReport()
	report.AddError("walls", "at least %d walls required, got %d", 3, 2)
	report.AddWarning("ceiling.zones[0].height", "unusual ceiling height %g", 650.0)

	s.mockRoomService.EXPECT().
		ValidateRoomGeometry(s.ctx, gomock.Any()).
		Return(&room.ValidateRoomGeometryOutput{Report: report}, nil)

	resp, err := s.handler.ValidateRoomGeometry(s.ctx, &apiv1alpha1.ValidateRoomGeometryRequest{})
	s.Require().NoError(err)
	s.Assert().False(resp.GetValid())
	s.Require().Len(resp.GetErrors(), 1)
	s.Assert().True(proto.Equal(
		&apiv1alpha1.Finding{Path: "walls", Message: "at least 3 walls required, got 2"},
		resp.GetErrors()[0],
	))
	s.Assert().Len(resp.GetWarnings(), 1)
	s.Assert().Equal("1 errors, 1 warnings", resp.GetSummary())
}

// TestOverBufconn exercises the generated service descriptor end to end
func (s *HandlerTestSuite) TestOverBufconn() {
	srv := grpc.NewServer()
	apiv1alpha1.RegisterLayoutServiceServer(srv, s.handler)
	client := apiv1alpha1.NewLayoutServiceClient(s.dial(srv))

	s.mockRoomService.EXPECT().
		ValidatePlacement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *room.ValidatePlacementInput) (*room.ValidatePlacementOutput, error) {
			s.Assert().Equal(55.0, in.Candidate.Position.X)
			s.Require().Len(in.Placed, 1)
			s.Assert().Equal("a", in.Placed[0].ID)
			return &room.ValidatePlacementOutput{Result: layout.CollisionResult{
				IsValid:           false,
				CollidingElements: []string{"a"},
				Reason:            "overlaps 1 element(s); snapped to neighbour",
				SuggestedPosition: &layout.PlanCoordinates{X: 60},
			}}, nil
		})

	resp, err := client.ValidatePlacement(context.Background(), &apiv1alpha1.ValidatePlacementRequest{
		Candidate: cabinet("b", 55),
		Placed:    []*apiv1alpha1.DesignElement{cabinet("a", 0)},
	})
	s.Require().NoError(err)
	s.Assert().False(resp.GetResult().GetIsValid())
	s.Assert().Equal([]string{"a"}, resp.GetResult().GetCollidingElements())
	s.Require().NotNil(resp.GetResult().GetSuggestedPosition())
	s.Assert().Equal(60.0, resp.GetResult().GetSuggestedPosition().GetX())

	s.mockRoomService.EXPECT().
		ReleaseRoom(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("room r9 is not active").WithMeta("room_id", "r9"))

	_, err = client.ReleaseRoom(context.Background(), &apiv1alpha1.ReleaseRoomRequest{RoomId: "r9"})
	s.Require().Error(err)
	converted := errors.FromGRPCError(err)
	s.Assert().True(errors.IsNotFound(converted))
	s.Assert().Equal("r9", errors.GetMeta(converted)["room_id"])
}

func (s *HandlerTestSuite) TestReflectionServesLayoutService() {
	srv := grpc.NewServer()
	apiv1alpha1.RegisterLayoutServiceServer(srv, s.handler)
	reflection.Register(srv)

	stream, err := reflectionv1.NewServerReflectionClient(s.dial(srv)).ServerReflectionInfo(s.ctx)
	s.Require().NoError(err)

	s.Require().NoError(stream.Send(&reflectionv1.ServerReflectionRequest{
		MessageRequest: &reflectionv1.ServerReflectionRequest_ListServices{},
	}))
	listed, err := stream.Recv()
	s.Require().NoError(err)
	var services []string
	for _, svc := range listed.GetListServicesResponse().GetService() {
		services = append(services, svc.GetName())
	}
	s.Assert().Contains(services, apiv1alpha1.LayoutService_ServiceDesc.ServiceName)

	s.Require().NoError(stream.Send(&reflectionv1.ServerReflectionRequest{
		MessageRequest: &reflectionv1.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: "layout.v1alpha1.LayoutService",
		},
	}))
	found, err := stream.Recv()
	s.Require().NoError(err)
	s.Require().Nil(found.GetErrorResponse())

	files := found.GetFileDescriptorResponse().GetFileDescriptorProto()
	s.Require().NotEmpty(files)
	var fd descriptorpb.FileDescriptorProto
	s.Require().NoError(proto.Unmarshal(files[0], &fd))
	s.Assert().Equal("layout/v1alpha1/layout.proto", fd.GetName())
	s.Require().Len(fd.GetService(), 1)
	s.Assert().Len(fd.GetService()[0].GetMethod(), 9)
	s.Require().NoError(stream.CloseSend())
}
