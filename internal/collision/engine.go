// Package collision decides whether a dropped element may sit where the
// user released it and, when it may not, proposes the nearest acceptable
// position: first a magnetic snap flush against a compatible neighbour,
// then a radial probe around the requested point.
package collision

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/KirkDiggler/layout-api/internal/catalog"
	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
)

// Search defaults in centimeters
const (
	DefaultSnapRadius = 10.0
	DefaultRadialStep = 10.0
	DefaultRadialMax  = 100.0
	MaxSnapNeighbors  = 4
)

// Config configures an Engine
type Config struct {
	Catalog catalog.Lookup
	// Room constrains suggested positions to the inner room when set
	Room       *layout.RoomDimensions
	Logger     *slog.Logger
	SnapRadius float64
	RadialStep float64
	RadialMax  float64
}

// Validate checks the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Room != nil {
		if err := c.Room.Validate(); err != nil {
			vb.InvalidField("Room", err.Error())
		}
	}
	if c.SnapRadius < 0 {
		vb.Field("SnapRadius", "must not be negative")
	}
	if c.RadialStep < 0 {
		vb.Field("RadialStep", "must not be negative")
	}
	if c.RadialMax < 0 {
		vb.Field("RadialMax", "must not be negative")
	}
	return vb.Build()
}

// Engine checks placements against a catalog snapshot. It holds no
// per-check state and never mutates the elements it is given.
type Engine struct {
	catalog    catalog.Lookup
	room       *layout.RoomDimensions
	logger     *slog.Logger
	snapRadius float64
	radialStep float64
	radialMax  float64
}

// New creates an engine; zero search distances take the defaults
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	e := &Engine{
		catalog:    cfg.Catalog,
		room:       cfg.Room,
		logger:     cfg.Logger,
		snapRadius: orDefault(cfg.SnapRadius, DefaultSnapRadius),
		radialStep: orDefault(cfg.RadialStep, DefaultRadialStep),
		radialMax:  orDefault(cfg.RadialMax, DefaultRadialMax),
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e, nil
}

// Check validates a candidate placement against the placed elements. An
// element in placed with the candidate's id is the candidate's previous
// position and is skipped. Failure to find a position is reported in the
// result, never as an error.
func (e *Engine) Check(candidate layout.DesignElement, placed []layout.DesignElement) layout.CollisionResult {
	c := newChecker(e, placed)

	colliding := c.conflicts(candidate)
	outside := !e.inRoom(candidate)
	if len(colliding) == 0 && !outside {
		return layout.CollisionResult{IsValid: true, CollidingElements: []string{}}
	}

	result := layout.CollisionResult{
		IsValid:           false,
		CollidingElements: colliding,
		Reason:            conflictReason(colliding, outside),
	}

	requested := layout.PlanCoordinates{X: candidate.Position.X, Y: candidate.Position.Y, Z: candidate.Position.Z}

	if pos, ok := c.snap(candidate); ok {
		result.SuggestedPosition = &pos
		result.Reason += "; snapped to neighbour"
		e.logger.Debug("placement snapped",
			"element_id", candidate.ID, "from_x", requested.X, "from_y", requested.Y, "to_x", pos.X, "to_y", pos.Y)
		return result
	}

	if pos, ok := c.radial(candidate); ok {
		result.SuggestedPosition = &pos
		result.Reason += "; moved to nearest free position"
		e.logger.Debug("placement moved by radial search",
			"element_id", candidate.ID, "from_x", requested.X, "from_y", requested.Y, "to_x", pos.X, "to_y", pos.Y)
		return result
	}

	result.Reason += fmt.Sprintf("; no collision-free position within %g cm", e.radialMax)
	return result
}

// Conflicts returns the ids of placed elements the candidate collides with
func (e *Engine) Conflicts(candidate layout.DesignElement, placed []layout.DesignElement) []string {
	return newChecker(e, placed).conflicts(candidate)
}

func (e *Engine) inRoom(el layout.DesignElement) bool {
	if e.room == nil {
		return true
	}
	x, y := el.Position.X, el.Position.Y
	w, d := el.Dimensions.Width, el.Dimensions.Depth
	return x >= 0 && y >= 0 && x+w <= e.room.Width && y+d <= e.room.Height
}

func conflictReason(colliding []string, outside bool) string {
	switch {
	case outside && len(colliding) > 0:
		return fmt.Sprintf("outside the room and overlaps %d element(s)", len(colliding))
	case outside:
		return "outside the room"
	default:
		return fmt.Sprintf("overlaps %d element(s)", len(colliding))
	}
}

func orDefault(v, def float64) float64 {
	if v == 0 || math.IsNaN(v) {
		return def
	}
	return v
}
