package featureflag

import (
	"context"
	"strconv"
	"strings"

	"github.com/KirkDiggler/layout-api/internal/errors"
	redisclient "github.com/KirkDiggler/layout-api/internal/redis"
)

const (
	// Key pattern: layout:flag:{name}
	flagNamespace = "flag"

	errNameEmpty = "flag name cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for feature flags
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get reads a flag. Values are parsed with strconv.ParseBool so operators
// can write 1/0 or true/false by hand.
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	raw, err := r.client.Get(ctx, redisclient.Key(flagNamespace, name)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("flag %s not found", name).WithMeta(errors.MetaFlag, name)
		}
		return nil, errors.Unavailablef("failed to read flag %s: %v", name, err)
	}

	enabled, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return nil, errors.InvalidArgumentf("flag %s has non-boolean value %q", name, raw)
	}

	return &GetOutput{Enabled: enabled}, nil
}

// Set writes a flag without expiry
func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	if err := r.client.Set(ctx, redisclient.Key(flagNamespace, name), strconv.FormatBool(input.Enabled), 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store flag %s", name)
	}
	return &SetOutput{}, nil
}
