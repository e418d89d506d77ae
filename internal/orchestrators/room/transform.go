package room

import (
	"context"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
	"github.com/KirkDiggler/layout-api/internal/transform"
)

// TransformPoint converts the input point to plan space and from there into
// every space the request supplies enough context for
func (o *orchestrator) TransformPoint(_ context.Context, input *TransformPointInput) (*TransformPointOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	engine, err := o.engine(input.RoomID)
	if err != nil {
		return nil, err
	}

	var wall layout.WallType
	if input.Wall != "" {
		wall, err = layout.ParseWallType(string(input.Wall))
		if err != nil {
			return nil, err
		}
	}
	if input.Projection != nil {
		if err := input.Projection.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid projection")
		}
	}

	var plan layout.PlanCoordinates
	pt := input.Point
	switch input.From {
	case SpacePlan, "":
		plan = layout.PlanCoordinates{X: pt.X, Y: pt.Y, Z: pt.Z}
	case SpaceWorld:
		plan = engine.WorldToPlan(layout.WorldCoordinates{X: pt.X, Y: pt.Y, Z: pt.Z})
	case SpaceElevation:
		if wall == "" {
			return nil, errors.InvalidArgument("wall is required for elevation input")
		}
		plan = engine.ElevationToPlan(layout.ElevationCoordinates{X: pt.X, Y: pt.Y}, wall)
	case SpaceCanvas:
		if input.Projection == nil {
			return nil, errors.InvalidArgument("projection is required for canvas input")
		}
		plan = engine.CanvasToPlan(layout.CanvasCoordinates{X: pt.X, Y: pt.Y}, *input.Projection)
	default:
		return nil, errors.InvalidArgumentf("unknown coordinate space: %q", input.From)
	}

	out := &TransformPointOutput{
		Plan:       plan,
		World:      engine.PlanToWorld(plan),
		InsideRoom: true,
	}
	if wall != "" {
		el := engine.PlanToElevation(plan, wall)
		out.Elevation = &el
	}
	if input.Projection != nil {
		c := engine.PlanToCanvas(plan, *input.Projection)
		out.Canvas = &c
	}
	if err := engine.ValidatePlanCoordinates(plan); err != nil {
		out.InsideRoom = false
		out.Problem = errors.GetMessage(err)
	}
	return out, nil
}

// CheckConsistency round-trips a plan point through every transform pair.
// Without a projection the plan view at zoom 1 is used.
func (o *orchestrator) CheckConsistency(ctx context.Context, input *CheckConsistencyInput) (*CheckConsistencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	engine, err := o.engine(input.RoomID)
	if err != nil {
		return nil, err
	}

	proj := transform.PlanProjection(1)
	if input.Projection != nil {
		if err := input.Projection.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid projection")
		}
		proj = *input.Projection
	}

	result := engine.ValidateConsistency(input.Point, proj)
	if !result.Consistent {
		o.logger.WarnContext(ctx, "coordinate transforms inconsistent",
			"room_id", input.RoomID,
			"world_error", result.WorldError,
			"canvas_error", result.CanvasError)
	}
	return &CheckConsistencyOutput{Consistency: result}, nil
}
