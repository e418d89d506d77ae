// Package v1alpha1 handles the layout grpc service interface
package v1alpha1

import (
	"context"

	apiv1alpha1 "github.com/KirkDiggler/layout-api/internal/api/v1alpha1"
	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
	"github.com/KirkDiggler/layout-api/internal/orchestrators/room"
)

// HandlerConfig holds dependencies for the layout handler
type HandlerConfig struct {
	RoomService room.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.RoomService == nil {
		return errors.InvalidArgument("room service is required")
	}
	return nil
}

// Handler implements the layout gRPC service
type Handler struct {
	apiv1alpha1.UnimplementedLayoutServiceServer
	roomService room.Service
}

var _ apiv1alpha1.LayoutServiceServer = (*Handler)(nil)

// NewHandler creates a new layout handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		roomService: cfg.RoomService,
	}, nil
}

// ActivateRoom registers a room's transform engine
func (h *Handler) ActivateRoom(
	ctx context.Context,
	req *apiv1alpha1.ActivateRoomRequest,
) (*apiv1alpha1.ActivateRoomResponse, error) {
	if req.GetDimensions() == nil && req.GetRoomType() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("dimensions or room_type is required"))
	}

	out, err := h.roomService.ActivateRoom(ctx, &room.ActivateRoomInput{
		RoomID:        req.GetRoomId(),
		RoomType:      req.GetRoomType(),
		Dimensions:    convertProtoRoomDimensions(req.GetDimensions()),
		WallThickness: req.GetWallThickness(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ActivateRoomResponse{
		RoomId:        out.RoomID,
		Dimensions:    convertRoomDimensionsToProto(out.Dimensions),
		WallThickness: out.WallThickness,
		InnerBounds:   convertBoundsToProto(out.InnerBounds),
		Walls:         convertWallPositionsToProto(out.Walls),
		Replaced:      out.Replaced,
	}, nil
}

// ReleaseRoom tears down a room's transform engine
func (h *Handler) ReleaseRoom(
	ctx context.Context,
	req *apiv1alpha1.ReleaseRoomRequest,
) (*apiv1alpha1.ReleaseRoomResponse, error) {
	if req.GetRoomId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("room_id is required"))
	}

	if _, err := h.roomService.ReleaseRoom(ctx, &room.ReleaseRoomInput{RoomID: req.GetRoomId()}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &apiv1alpha1.ReleaseRoomResponse{}, nil
}

// ListRoomTemplates returns the stored room templates
func (h *Handler) ListRoomTemplates(
	ctx context.Context,
	_ *apiv1alpha1.ListRoomTemplatesRequest,
) (*apiv1alpha1.ListRoomTemplatesResponse, error) {
	out, err := h.roomService.ListRoomTemplates(ctx, &room.ListRoomTemplatesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	templates := make([]*apiv1alpha1.RoomTemplate, len(out.Templates))
	for i, t := range out.Templates {
		templates[i] = convertRoomTemplateToProto(t)
	}
	return &apiv1alpha1.ListRoomTemplatesResponse{Templates: templates}, nil
}

// TransformPoint converts a point between coordinate spaces
func (h *Handler) TransformPoint(
	ctx context.Context,
	req *apiv1alpha1.TransformPointRequest,
) (*apiv1alpha1.TransformPointResponse, error) {
	if req.GetRoomId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("room_id is required"))
	}

	from, err := convertProtoSpace(req.GetFrom())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	wall, err := convertProtoWall(req.GetWall())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	projection, err := convertProtoProjection(req.GetProjection())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	pt := req.GetPoint()
	out, err := h.roomService.TransformPoint(ctx, &room.TransformPointInput{
		RoomID:     req.GetRoomId(),
		From:       from,
		Point:      room.Point{X: pt.GetX(), Y: pt.GetY(), Z: pt.GetZ()},
		Wall:       wall,
		Projection: projection,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &apiv1alpha1.TransformPointResponse{
		Plan:       &apiv1alpha1.Point3D{X: out.Plan.X, Y: out.Plan.Y, Z: out.Plan.Z},
		World:      &apiv1alpha1.Point3D{X: out.World.X, Y: out.World.Y, Z: out.World.Z},
		InsideRoom: out.InsideRoom,
		Problem:    out.Problem,
	}
	if out.Elevation != nil {
		resp.Elevation = &apiv1alpha1.Point2D{X: out.Elevation.X, Y: out.Elevation.Y}
	}
	if out.Canvas != nil {
		resp.Canvas = convertCanvasToProto(*out.Canvas)
	}
	return resp, nil
}

// CheckConsistency reports round-trip errors for a plan point
func (h *Handler) CheckConsistency(
	ctx context.Context,
	req *apiv1alpha1.CheckConsistencyRequest,
) (*apiv1alpha1.CheckConsistencyResponse, error) {
	if req.GetRoomId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("room_id is required"))
	}

	projection, err := convertProtoProjection(req.GetProjection())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	pt := req.GetPoint()
	out, err := h.roomService.CheckConsistency(ctx, &room.CheckConsistencyInput{
		RoomID:     req.GetRoomId(),
		Point:      layout.PlanCoordinates{X: pt.GetX(), Y: pt.GetY(), Z: pt.GetZ()},
		Projection: projection,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	c := out.Consistency
	return &apiv1alpha1.CheckConsistencyResponse{
		WorldError:      c.WorldError,
		ElevationErrors: convertElevationErrorsToProto(c.ElevationError),
		CanvasError:     c.CanvasError,
		Consistent:      c.Consistent,
	}, nil
}

// CalculateElementPosition places an element in an elevation view
func (h *Handler) CalculateElementPosition(
	ctx context.Context,
	req *apiv1alpha1.CalculateElementPositionRequest,
) (*apiv1alpha1.CalculateElementPositionResponse, error) {
	if req.GetRoomId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("room_id is required"))
	}
	if req.GetView() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("view is required"))
	}

	element, err := convertProtoElement(req.GetElement())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.roomService.CalculateElementPosition(ctx, &room.CalculateElementPositionInput{
		RoomID:      req.GetRoomId(),
		Element:     element,
		View:        req.GetView(),
		Zoom:        req.GetZoom(),
		CanvasWidth: req.GetCanvasWidth(),
		Pan:         convertProtoCanvas(req.GetPan()),
		TopMargin:   req.GetTopMargin(),
		ViewWidth:   req.GetViewWidth(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.CalculateElementPositionResponse{
		Position:  convertElementPositionToProto(out.Position),
		RoomInner: convertCanvasToProto(out.RoomPosition.Inner),
		RoomOuter: convertCanvasToProto(out.RoomPosition.Outer),
	}, nil
}

// ValidatePlacement checks a dropped element for collisions
func (h *Handler) ValidatePlacement(
	ctx context.Context,
	req *apiv1alpha1.ValidatePlacementRequest,
) (*apiv1alpha1.ValidatePlacementResponse, error) {
	if req.GetCandidate().GetId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("candidate.id is required"))
	}

	candidate, err := convertProtoElement(req.GetCandidate())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	placed, err := convertProtoElements(req.GetPlaced())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.roomService.ValidatePlacement(ctx, &room.ValidatePlacementInput{
		RoomID:    req.GetRoomId(),
		Candidate: candidate,
		Placed:    placed,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ValidatePlacementResponse{
		Result:          convertCollisionResultToProto(out.Result),
		MissingMetadata: out.MissingMetadata,
	}, nil
}

// ResolveCornerDoor picks the door side of a corner unit
func (h *Handler) ResolveCornerDoor(
	ctx context.Context,
	req *apiv1alpha1.ResolveCornerDoorRequest,
) (*apiv1alpha1.ResolveCornerDoorResponse, error) {
	if req.GetRoomId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("room_id is required"))
	}

	element, err := convertProtoElement(req.GetElement())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.roomService.ResolveCornerDoor(ctx, &room.ResolveCornerDoorInput{
		RoomID:  req.GetRoomId(),
		Element: element,
		View:    req.GetView(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ResolveCornerDoorResponse{
		DoorSide:          convertDoorSideToProto(out.Resolution.DoorSide),
		Corner:            string(out.Resolution.Corner),
		Manual:            out.Resolution.Manual,
		IsCornerComponent: out.IsCornerComponent,
	}, nil
}

// ValidateRoomGeometry validates an authored room geometry
func (h *Handler) ValidateRoomGeometry(
	ctx context.Context,
	req *apiv1alpha1.ValidateRoomGeometryRequest,
) (*apiv1alpha1.ValidateRoomGeometryResponse, error) {
	out, err := h.roomService.ValidateRoomGeometry(ctx, &room.ValidateRoomGeometryInput{
		Geometry: convertProtoRoomGeometry(req.GetGeometry()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ValidateRoomGeometryResponse{
		Valid:    out.Report.Valid,
		Errors:   convertFindingsToProto(out.Report.Errors),
		Warnings: convertFindingsToProto(out.Report.Warnings),
		Summary:  out.Report.Summary,
	}, nil
}
