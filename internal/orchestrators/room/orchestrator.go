// Package room implements the room orchestrator. It owns the transform
// engine of every active room and resolves the asynchronous collaborators
// (templates, component metadata, flags) before calling into the
// synchronous geometry packages.
package room

//go:generate mockgen -destination=mock/mock_service.go -package=roommock github.com/KirkDiggler/layout-api/internal/orchestrators/room Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/layout-api/internal/errors"
	"github.com/KirkDiggler/layout-api/internal/pkg/idgen"
	"github.com/KirkDiggler/layout-api/internal/position"
	"github.com/KirkDiggler/layout-api/internal/repositories/component"
	"github.com/KirkDiggler/layout-api/internal/repositories/roomtemplate"
	"github.com/KirkDiggler/layout-api/internal/services/flags"
	"github.com/KirkDiggler/layout-api/internal/transform"
)

const (
	errRoomIDEmpty = "room id cannot be empty"
)

// Service defines the room orchestrator operations
type Service interface {
	// Room lifecycle
	ActivateRoom(ctx context.Context, input *ActivateRoomInput) (*ActivateRoomOutput, error)
	ReleaseRoom(ctx context.Context, input *ReleaseRoomInput) (*ReleaseRoomOutput, error)
	ListRoomTemplates(ctx context.Context, input *ListRoomTemplatesInput) (*ListRoomTemplatesOutput, error)

	// Coordinate transforms
	TransformPoint(ctx context.Context, input *TransformPointInput) (*TransformPointOutput, error)
	CheckConsistency(ctx context.Context, input *CheckConsistencyInput) (*CheckConsistencyOutput, error)

	// Placement
	CalculateElementPosition(ctx context.Context, input *CalculateElementPositionInput) (*CalculateElementPositionOutput, error)
	ValidatePlacement(ctx context.Context, input *ValidatePlacementInput) (*ValidatePlacementOutput, error)
	ResolveCornerDoor(ctx context.Context, input *ResolveCornerDoorInput) (*ResolveCornerDoorOutput, error)

	// Geometry
	ValidateRoomGeometry(ctx context.Context, input *ValidateRoomGeometryInput) (*ValidateRoomGeometryOutput, error)
}

// CalculatorSelector picks the position calculator for the unified flag value
type CalculatorSelector func(useUnified bool, logger *slog.Logger) position.Calculator

// Config holds the dependencies for the room orchestrator
type Config struct {
	RoomTemplates roomtemplate.Repository
	Components    component.Repository
	Flags         flags.Evaluator
	IDGenerator   idgen.Generator
	Logger        *slog.Logger
	// SelectCalculator defaults to position.Select
	SelectCalculator CalculatorSelector
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.RoomTemplates == nil {
		vb.RequiredField("RoomTemplates")
	}
	if c.Components == nil {
		vb.RequiredField("Components")
	}
	if c.Flags == nil {
		vb.RequiredField("Flags")
	}
	return vb.Build()
}

type orchestrator struct {
	roomTemplates roomtemplate.Repository
	components    component.Repository
	flags         flags.Evaluator
	idGen         idgen.Generator
	logger        *slog.Logger
	selectCalc    CalculatorSelector

	mu      sync.RWMutex
	engines map[string]*transform.Engine
}

// NewOrchestrator creates a new room orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		roomTemplates: cfg.RoomTemplates,
		components:    cfg.Components,
		flags:         cfg.Flags,
		idGen:         cfg.IDGenerator,
		logger:        cfg.Logger,
		selectCalc:    cfg.SelectCalculator,
		engines:       make(map[string]*transform.Engine),
	}
	if o.idGen == nil {
		o.idGen = idgen.NewRandom(idgen.KindRoom)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.selectCalc == nil {
		o.selectCalc = position.Select
	}
	return o, nil
}

// ActivateRoom builds a transform engine for the room and registers it.
// Activating an id that is already registered replaces its engine.
func (o *orchestrator) ActivateRoom(ctx context.Context, input *ActivateRoomInput) (*ActivateRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roomID := strings.TrimSpace(input.RoomID)
	if suffix, ok := idgen.Split(roomID, idgen.KindRoom); ok && suffix == "" {
		return nil, errors.InvalidArgumentf("room id %q has no suffix", roomID).
			WithMeta("room_id", roomID)
	}

	var (
		dims      = input.Dimensions
		thickness = input.WallThickness
	)
	if dims == nil {
		if strings.TrimSpace(input.RoomType) == "" {
			return nil, errors.InvalidArgument("dimensions or room type is required")
		}

		tmpl, err := o.roomTemplates.Get(ctx, roomtemplate.GetInput{RoomType: input.RoomType})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load template for room type %s", input.RoomType)
		}
		dims = &tmpl.Template.Dimensions
		if thickness == 0 {
			thickness = tmpl.Template.WallThickness
		}
	}

	var opts []transform.Option
	if thickness != 0 {
		opts = append(opts, transform.WithWallThickness(thickness))
	}
	engine, err := transform.New(*dims, opts...)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	if roomID == "" {
		roomID, err = idgen.Allocate(o.idGen, func(id string) bool {
			_, ok := o.engines[id]
			return ok
		})
		if err != nil {
			o.mu.Unlock()
			return nil, errors.Wrap(err, "failed to allocate room id")
		}
	}
	_, replaced := o.engines[roomID]
	o.engines[roomID] = engine
	o.mu.Unlock()

	o.logger.InfoContext(ctx, "room activated",
		"room_id", roomID,
		"width", engine.Dimensions().Width,
		"height", engine.Dimensions().Height,
		"ceiling_height", engine.Dimensions().CeilingHeight,
		"replaced", replaced)

	return &ActivateRoomOutput{
		RoomID:        roomID,
		Dimensions:    engine.Dimensions(),
		WallThickness: engine.WallThickness(),
		InnerBounds:   engine.InnerRoomBounds(),
		Walls:         engine.WallPositions(),
		Replaced:      replaced,
	}, nil
}

// ReleaseRoom drops the room's engine
func (o *orchestrator) ReleaseRoom(ctx context.Context, input *ReleaseRoomInput) (*ReleaseRoomOutput, error) {
	if input == nil || strings.TrimSpace(input.RoomID) == "" {
		return nil, errors.InvalidArgument(errRoomIDEmpty)
	}

	o.mu.Lock()
	_, ok := o.engines[input.RoomID]
	delete(o.engines, input.RoomID)
	o.mu.Unlock()

	if !ok {
		return nil, errors.RoomNotActive(input.RoomID)
	}

	o.logger.InfoContext(ctx, "room released", "room_id", input.RoomID)
	return &ReleaseRoomOutput{}, nil
}

// ListRoomTemplates returns the stored room templates
func (o *orchestrator) ListRoomTemplates(ctx context.Context, _ *ListRoomTemplatesInput) (*ListRoomTemplatesOutput, error) {
	out, err := o.roomTemplates.List(ctx, roomtemplate.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list room templates")
	}
	return &ListRoomTemplatesOutput{Templates: out.Templates}, nil
}

// engine returns the active engine for a room
func (o *orchestrator) engine(roomID string) (*transform.Engine, error) {
	if strings.TrimSpace(roomID) == "" {
		return nil, errors.InvalidArgument(errRoomIDEmpty)
	}

	o.mu.RLock()
	engine, ok := o.engines[roomID]
	o.mu.RUnlock()

	if !ok {
		return nil, errors.RoomNotActive(roomID)
	}
	return engine, nil
}
