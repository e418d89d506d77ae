// Package flags evaluates feature flags for the layout core. Evaluation
// never fails: any storage error reads as disabled.
package flags

//go:generate mockgen -destination=mock/mock_evaluator.go -package=flagsmock github.com/KirkDiggler/layout-api/internal/services/flags Evaluator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/layout-api/internal/errors"
	"github.com/KirkDiggler/layout-api/internal/pkg/clock"
	"github.com/KirkDiggler/layout-api/internal/repositories/featureflag"
)

// FlagUnifiedPositioning switches elevation rendering to the unified calculator
const FlagUnifiedPositioning = "unified_elevation_positioning"

const defaultTTL = 30 * time.Second

// Evaluator answers whether a flag is enabled
type Evaluator interface {
	IsEnabled(ctx context.Context, name string) bool
}

// Config holds the evaluator's dependencies
type Config struct {
	Repository featureflag.Repository
	Clock      clock.Clock
	TTL        time.Duration
	Logger     *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("repository")
	}
	if c.TTL < 0 {
		vb.Field("ttl", "cannot be negative")
	}
	return vb.Build()
}

type evaluator struct {
	repo   featureflag.Repository
	clock  clock.Clock
	ttl    time.Duration
	logger *slog.Logger

	mu    sync.Mutex
	cache map[string]clock.Expiring[bool]
}

// NewEvaluator creates a caching evaluator
func NewEvaluator(cfg *Config) (Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	e := &evaluator{
		repo:   cfg.Repository,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
		logger: cfg.Logger,
		cache:  make(map[string]clock.Expiring[bool]),
	}
	if e.clock == nil {
		e.clock = clock.New()
	}
	if e.ttl == 0 {
		e.ttl = defaultTTL
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e, nil
}

// IsEnabled returns the cached value while fresh. A missing flag is cached
// as disabled; other failures return false and are retried on the next call.
func (e *evaluator) IsEnabled(ctx context.Context, name string) bool {
	now := e.clock.Now()

	e.mu.Lock()
	entry, ok := e.cache[name]
	e.mu.Unlock()
	if ok && entry.Fresh(now) {
		return entry.Value
	}

	out, err := e.repo.Get(ctx, featureflag.GetInput{Name: name})
	switch {
	case err == nil:
		e.remember(name, out.Enabled, now)
		return out.Enabled
	case errors.IsNotFound(err):
		e.remember(name, false, now)
		return false
	default:
		e.logger.WarnContext(ctx, "flag evaluation failed, treating as disabled",
			"flag", name,
			"error", err)
		return false
	}
}

func (e *evaluator) remember(name string, enabled bool, now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache[name] = clock.NewExpiring(enabled, now, e.ttl)
}
