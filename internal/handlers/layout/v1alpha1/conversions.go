package v1alpha1

import (
	"google.golang.org/protobuf/proto"

	apiv1alpha1 "github.com/KirkDiggler/layout-api/internal/api/v1alpha1"
	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
	"github.com/KirkDiggler/layout-api/internal/geometry"
	"github.com/KirkDiggler/layout-api/internal/orchestrators/room"
	"github.com/KirkDiggler/layout-api/internal/position"
	"github.com/KirkDiggler/layout-api/internal/transform"
)

// convertProtoWall maps a proto wall to the domain. Unspecified is the empty wall.
func convertProtoWall(wall apiv1alpha1.Wall) (layout.WallType, error) {
	switch wall {
	case apiv1alpha1.Wall_WALL_UNSPECIFIED:
		return "", nil
	case apiv1alpha1.Wall_WALL_FRONT:
		return layout.WallFront, nil
	case apiv1alpha1.Wall_WALL_BACK:
		return layout.WallBack, nil
	case apiv1alpha1.Wall_WALL_LEFT:
		return layout.WallLeft, nil
	case apiv1alpha1.Wall_WALL_RIGHT:
		return layout.WallRight, nil
	default:
		return "", errors.InvalidArgumentf("unknown wall: %d", wall)
	}
}

func convertWallToProto(wall layout.WallType) apiv1alpha1.Wall {
	switch wall {
	case layout.WallFront:
		return apiv1alpha1.Wall_WALL_FRONT
	case layout.WallBack:
		return apiv1alpha1.Wall_WALL_BACK
	case layout.WallLeft:
		return apiv1alpha1.Wall_WALL_LEFT
	case layout.WallRight:
		return apiv1alpha1.Wall_WALL_RIGHT
	default:
		return apiv1alpha1.Wall_WALL_UNSPECIFIED
	}
}

// convertProtoSpace maps a proto coordinate space. Unspecified reads as plan.
func convertProtoSpace(space apiv1alpha1.CoordinateSpace) (room.Space, error) {
	switch space {
	case apiv1alpha1.CoordinateSpace_COORDINATE_SPACE_UNSPECIFIED,
		apiv1alpha1.CoordinateSpace_COORDINATE_SPACE_PLAN:
		return room.SpacePlan, nil
	case apiv1alpha1.CoordinateSpace_COORDINATE_SPACE_WORLD:
		return room.SpaceWorld, nil
	case apiv1alpha1.CoordinateSpace_COORDINATE_SPACE_ELEVATION:
		return room.SpaceElevation, nil
	case apiv1alpha1.CoordinateSpace_COORDINATE_SPACE_CANVAS:
		return room.SpaceCanvas, nil
	default:
		return "", errors.InvalidArgumentf("unknown coordinate space: %d", space)
	}
}

// convertProtoDoorSide maps a manual override. Unspecified means auto.
func convertProtoDoorSide(side apiv1alpha1.DoorSide) (layout.DoorSide, error) {
	switch side {
	case apiv1alpha1.DoorSide_DOOR_SIDE_UNSPECIFIED, apiv1alpha1.DoorSide_DOOR_SIDE_AUTO:
		return layout.DoorSideAuto, nil
	case apiv1alpha1.DoorSide_DOOR_SIDE_LEFT:
		return layout.DoorSideLeft, nil
	case apiv1alpha1.DoorSide_DOOR_SIDE_RIGHT:
		return layout.DoorSideRight, nil
	default:
		return "", errors.InvalidArgumentf("unknown door side: %d", side)
	}
}

func convertDoorSideToProto(side layout.DoorSide) apiv1alpha1.DoorSide {
	switch side {
	case layout.DoorSideAuto:
		return apiv1alpha1.DoorSide_DOOR_SIDE_AUTO
	case layout.DoorSideLeft:
		return apiv1alpha1.DoorSide_DOOR_SIDE_LEFT
	case layout.DoorSideRight:
		return apiv1alpha1.DoorSide_DOOR_SIDE_RIGHT
	default:
		return apiv1alpha1.DoorSide_DOOR_SIDE_UNSPECIFIED
	}
}

func convertProtoRoomDimensions(dims *apiv1alpha1.RoomDimensions) *layout.RoomDimensions {
	if dims == nil {
		return nil
	}
	return &layout.RoomDimensions{
		Width:         dims.GetWidth(),
		Height:        dims.GetHeight(),
		CeilingHeight: dims.GetCeilingHeight(),
	}
}

func convertRoomDimensionsToProto(dims layout.RoomDimensions) *apiv1alpha1.RoomDimensions {
	return &apiv1alpha1.RoomDimensions{
		Width:         dims.Width,
		Height:        dims.Height,
		CeilingHeight: dims.CeilingHeight,
	}
}

func convertRoomTemplateToProto(t layout.RoomTemplate) *apiv1alpha1.RoomTemplate {
	return &apiv1alpha1.RoomTemplate{
		RoomType:      t.RoomType,
		Name:          t.Name,
		Dimensions:    convertRoomDimensionsToProto(t.Dimensions),
		WallThickness: t.WallThickness,
	}
}

func convertBoundsToProto(b transform.Bounds) *apiv1alpha1.Bounds {
	return &apiv1alpha1.Bounds{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
}

// convertWallPositionsToProto lists the walls in render order
func convertWallPositionsToProto(walls map[layout.WallType]transform.WallPosition) []*apiv1alpha1.WallPosition {
	out := make([]*apiv1alpha1.WallPosition, 0, len(walls))
	for _, wall := range layout.AllWalls {
		pos, ok := walls[wall]
		if !ok {
			continue
		}
		out = append(out, &apiv1alpha1.WallPosition{
			Wall:       convertWallToProto(wall),
			Centerline: pos.Centerline,
			InnerFace:  pos.InnerFace,
		})
	}
	return out
}

func convertElevationErrorsToProto(errs map[layout.WallType]float64) []*apiv1alpha1.WallError {
	out := make([]*apiv1alpha1.WallError, 0, len(errs))
	for _, wall := range layout.AllWalls {
		e, ok := errs[wall]
		if !ok {
			continue
		}
		out = append(out, &apiv1alpha1.WallError{Wall: convertWallToProto(wall), Error: e})
	}
	return out
}

func convertProtoProjection(p *apiv1alpha1.Projection) (*transform.Projection, error) {
	if p == nil {
		return nil, nil
	}
	wall, err := convertProtoWall(p.GetWall())
	if err != nil {
		return nil, err
	}
	return &transform.Projection{
		Wall:   wall,
		Zoom:   p.GetZoom(),
		Origin: convertProtoCanvas(p.GetOrigin()),
		Mirror: p.GetMirror(),
	}, nil
}

func convertProtoCanvas(p *apiv1alpha1.Point2D) layout.CanvasCoordinates {
	return layout.CanvasCoordinates{X: p.GetX(), Y: p.GetY()}
}

func convertCanvasToProto(c layout.CanvasCoordinates) *apiv1alpha1.Point2D {
	return &apiv1alpha1.Point2D{X: c.X, Y: c.Y}
}

// convertProtoElement decodes an element and resolves its component reference
func convertProtoElement(e *apiv1alpha1.DesignElement) (layout.DesignElement, error) {
	side, err := convertProtoDoorSide(e.GetCornerDoorSide())
	if err != nil {
		return layout.DesignElement{}, err
	}

	element := layout.DesignElement{
		ID:          e.GetId(),
		ComponentID: e.GetComponentId(),
		Type:        e.GetType(),
		Position: layout.Position{
			X:        e.GetPosition().GetX(),
			Y:        e.GetPosition().GetY(),
			Z:        e.GetPosition().GetZ(),
			Rotation: e.GetPosition().GetRotation(),
		},
		Dimensions: layout.Dimensions{
			Width:  e.GetDimensions().GetWidth(),
			Depth:  e.GetDimensions().GetDepth(),
			Height: e.GetDimensions().GetHeight(),
		},
		CornerDoorSide: side,
	}
	element.Resolve()
	return element, nil
}

func convertProtoElements(elements []*apiv1alpha1.DesignElement) ([]layout.DesignElement, error) {
	out := make([]layout.DesignElement, len(elements))
	for i, e := range elements {
		converted, err := convertProtoElement(e)
		if err != nil {
			return nil, errors.Wrapf(err, "placed[%d]", i)
		}
		out[i] = converted
	}
	return out, nil
}

func convertElementPositionToProto(p position.Result) *apiv1alpha1.ElementPosition {
	return &apiv1alpha1.ElementPosition{
		XPos:          p.XPos,
		ElementWidth:  p.ElementWidth,
		YPos:          p.YPos,
		ElementHeight: p.ElementHeight,
		PreMirrorX:    p.PreMirrorX,
		Wall:          convertWallToProto(p.Wall),
		Strategy:      p.Strategy,
	}
}

func convertCollisionResultToProto(r layout.CollisionResult) *apiv1alpha1.CollisionResult {
	out := &apiv1alpha1.CollisionResult{
		IsValid:           r.IsValid,
		CollidingElements: r.CollidingElements,
		Reason:            r.Reason,
	}
	if r.SuggestedPosition != nil {
		out.SuggestedPosition = &apiv1alpha1.Point3D{
			X: r.SuggestedPosition.X,
			Y: r.SuggestedPosition.Y,
			Z: r.SuggestedPosition.Z,
		}
	}
	return out
}

func convertFindingsToProto(findings []geometry.Finding) []*apiv1alpha1.Finding {
	out := make([]*apiv1alpha1.Finding, len(findings))
	for i, f := range findings {
		out[i] = &apiv1alpha1.Finding{Path: f.Path, Message: f.Message}
	}
	return out
}

func convertProtoPoints(points []*apiv1alpha1.Point2D) []layout.Point2D {
	if points == nil {
		return nil
	}
	out := make([]layout.Point2D, len(points))
	for i, p := range points {
		out[i] = layout.Point2D{X: p.GetX(), Y: p.GetY()}
	}
	return out
}

func convertPointsToProto(points []layout.Point2D) []*apiv1alpha1.Point2D {
	if points == nil {
		return nil
	}
	out := make([]*apiv1alpha1.Point2D, len(points))
	for i, p := range points {
		out[i] = &apiv1alpha1.Point2D{X: p.X, Y: p.Y}
	}
	return out
}

func convertProtoRoomGeometry(g *apiv1alpha1.RoomGeometry) layout.RoomGeometry {
	out := layout.RoomGeometry{
		Floor: layout.Floor{Vertices: convertProtoPoints(g.GetFloor().GetVertices())},
		BoundingBox: layout.BoundingBox{
			MinX: g.GetBoundingBox().GetMinX(),
			MinY: g.GetBoundingBox().GetMinY(),
			MaxX: g.GetBoundingBox().GetMaxX(),
			MaxY: g.GetBoundingBox().GetMaxY(),
		},
		Metadata: layout.GeometryMetadata{TotalFloorArea: g.GetMetadata().GetTotalFloorArea()},
	}

	for _, w := range g.GetWalls() {
		seg := layout.WallSegment{
			ID:     w.GetId(),
			Start:  layout.Point2D{X: w.GetStart().GetX(), Y: w.GetStart().GetY()},
			End:    layout.Point2D{X: w.GetEnd().GetX(), Y: w.GetEnd().GetY()},
			Height: w.GetHeight(),
		}
		if w.Thickness != nil {
			seg.Thickness = proto.Float64(w.GetThickness())
		}
		out.Walls = append(out.Walls, seg)
	}

	for _, z := range g.GetCeiling().GetZones() {
		zone := layout.CeilingZone{
			ID:       z.GetId(),
			Type:     z.GetType(),
			Vertices: convertProtoPoints(z.GetVertices()),
			Height:   z.GetHeight(),
		}
		if z.ApexHeight != nil {
			zone.ApexHeight = proto.Float64(z.GetApexHeight())
		}
		if z.Slope != nil {
			zone.Slope = proto.Float64(z.GetSlope())
		}
		out.Ceiling.Zones = append(out.Ceiling.Zones, zone)
	}
	return out
}

// ConvertRoomGeometryToProto encodes an authored geometry for the
// ValidateRoomGeometry call. Absent optional values stay unset.
func ConvertRoomGeometryToProto(g layout.RoomGeometry) *apiv1alpha1.RoomGeometry {
	out := &apiv1alpha1.RoomGeometry{
		Floor: &apiv1alpha1.Floor{Vertices: convertPointsToProto(g.Floor.Vertices)},
		BoundingBox: &apiv1alpha1.Bounds{
			MinX: g.BoundingBox.MinX,
			MinY: g.BoundingBox.MinY,
			MaxX: g.BoundingBox.MaxX,
			MaxY: g.BoundingBox.MaxY,
		},
		Ceiling:  &apiv1alpha1.Ceiling{},
		Metadata: &apiv1alpha1.GeometryMetadata{TotalFloorArea: g.Metadata.TotalFloorArea},
	}

	for _, w := range g.Walls {
		seg := &apiv1alpha1.WallSegment{
			Id:     w.ID,
			Start:  &apiv1alpha1.Point2D{X: w.Start.X, Y: w.Start.Y},
			End:    &apiv1alpha1.Point2D{X: w.End.X, Y: w.End.Y},
			Height: w.Height,
		}
		if w.Thickness != nil {
			seg.Thickness = proto.Float64(*w.Thickness)
		}
		out.Walls = append(out.Walls, seg)
	}

	for _, z := range g.Ceiling.Zones {
		zone := &apiv1alpha1.CeilingZone{
			Id:       z.ID,
			Type:     z.Type,
			Vertices: convertPointsToProto(z.Vertices),
			Height:   z.Height,
		}
		if z.ApexHeight != nil {
			zone.ApexHeight = proto.Float64(*z.ApexHeight)
		}
		if z.Slope != nil {
			zone.Slope = proto.Float64(*z.Slope)
		}
		out.Ceiling.Zones = append(out.Ceiling.Zones, zone)
	}
	return out
}
