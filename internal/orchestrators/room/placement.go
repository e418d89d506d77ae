package room

import (
	"context"

	"github.com/KirkDiggler/layout-api/internal/catalog"
	"github.com/KirkDiggler/layout-api/internal/collision"
	"github.com/KirkDiggler/layout-api/internal/corner"
	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
	"github.com/KirkDiggler/layout-api/internal/geometry"
	"github.com/KirkDiggler/layout-api/internal/position"
	"github.com/KirkDiggler/layout-api/internal/repositories/component"
	"github.com/KirkDiggler/layout-api/internal/services/flags"
)

// CalculateElementPosition evaluates the unified-positioning flag, then
// places the element with the selected calculator inside the room frame
func (o *orchestrator) CalculateElementPosition(ctx context.Context, input *CalculateElementPositionInput) (*CalculateElementPositionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	engine, err := o.engine(input.RoomID)
	if err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	vb.Positive("zoom", input.Zoom)
	if _, ok := layout.WallFromView(input.View); !ok {
		vb.Fieldf("view", "must name a wall, got %q", input.View)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	room := engine.Dimensions()
	if err := input.Element.Validate(room); err != nil {
		return nil, errors.Wrapf(err, "invalid element %s", input.Element.ID)
	}

	frame := position.CalculateRoomPosition(position.RoomInput{
		Room:          room,
		View:          input.View,
		Zoom:          input.Zoom,
		CanvasWidth:   input.CanvasWidth,
		Pan:           input.Pan,
		WallThickness: engine.WallThickness(),
		TopMargin:     input.TopMargin,
	})

	useUnified := o.flags.IsEnabled(ctx, flags.FlagUnifiedPositioning)
	calc := o.selectCalc(useUnified, o.logger)

	result, err := calc.Calculate(position.Input{
		Element:    input.Element,
		Room:       room,
		RoomOffset: frame.Inner,
		View:       input.View,
		Zoom:       input.Zoom,
		ViewWidth:  input.ViewWidth,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to position element %s", input.Element.ID)
	}

	return &CalculateElementPositionOutput{
		Position:     result,
		RoomPosition: frame,
	}, nil
}

// ValidatePlacement loads metadata for every involved component and runs the
// collision engine. A metadata failure is logged and the check proceeds
// with whatever was loaded, which the engine treats permissively.
func (o *orchestrator) ValidatePlacement(ctx context.Context, input *ValidatePlacementInput) (*ValidatePlacementOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	cfg := &collision.Config{Logger: o.logger}
	if input.RoomID != "" {
		engine, err := o.engine(input.RoomID)
		if err != nil {
			return nil, err
		}
		dims := engine.Dimensions()
		cfg.Room = &dims
	}

	ids := catalog.LookupIDs(append([]layout.DesignElement{input.Candidate}, input.Placed...)...)

	var (
		entries []layout.ComponentMetadata
		missing []string
	)
	if len(ids) > 0 {
		loaded, err := o.components.BatchGet(ctx, component.BatchGetInput{ComponentIDs: ids})
		if err != nil {
			o.logger.WarnContext(ctx, "component metadata unavailable, checking permissively",
				"candidate_id", input.Candidate.ID,
				"component_count", len(ids),
				"error", err)
			missing = ids
		} else {
			entries = make([]layout.ComponentMetadata, 0, len(loaded.Metadata))
			for _, m := range loaded.Metadata {
				entries = append(entries, m)
			}
			missing = loaded.Missing
		}
	}

	cfg.Catalog = catalog.NewSnapshot(entries, o.logger)
	engine, err := collision.New(cfg)
	if err != nil {
		return nil, err
	}

	return &ValidatePlacementOutput{
		Result:          engine.Check(input.Candidate, input.Placed),
		MissingMetadata: missing,
	}, nil
}

// ResolveCornerDoor picks the door side of an element from its corner
func (o *orchestrator) ResolveCornerDoor(_ context.Context, input *ResolveCornerDoorInput) (*ResolveCornerDoorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	engine, err := o.engine(input.RoomID)
	if err != nil {
		return nil, err
	}

	return &ResolveCornerDoorOutput{
		Resolution:        corner.ResolveDoorSide(input.Element, engine.Dimensions(), input.View),
		IsCornerComponent: corner.IsCornerComponent(input.Element),
	}, nil
}

// ValidateRoomGeometry returns the validation report. An invalid geometry
// is a report with errors, not a failed call.
func (o *orchestrator) ValidateRoomGeometry(ctx context.Context, input *ValidateRoomGeometryInput) (*ValidateRoomGeometryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	report := geometry.ValidateRoomGeometry(input.Geometry)
	if !report.Valid {
		o.logger.InfoContext(ctx, "room geometry rejected", "summary", report.Summary)
	}
	return &ValidateRoomGeometryOutput{Report: report}, nil
}
