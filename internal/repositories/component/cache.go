package component

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
	redisclient "github.com/KirkDiggler/layout-api/internal/redis"
)

// Key pattern: layout:component:meta:{component_id}
const defaultCacheTTL = 10 * time.Minute

// CacheConfig holds the configuration for the Redis read-through cache
type CacheConfig struct {
	Next   Repository
	Client redisclient.Client
	TTL    time.Duration
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *CacheConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Next == nil {
		return errors.InvalidArgument("next repository is required")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type cachedRepository struct {
	next   Repository
	client redisclient.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ Repository = (*cachedRepository)(nil)

// NewCached wraps a repository with a Redis read-through cache.
// Redis failures are logged and the lookup falls through to next.
func NewCached(cfg *CacheConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultCacheTTL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &cachedRepository{
		next:   cfg.Next,
		client: cfg.Client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func (r *cachedRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ComponentID == "" {
		return nil, errors.InvalidArgument(errComponentIDEmpty)
	}

	raw, err := r.client.Get(ctx, cacheKey(input.ComponentID)).Result()
	switch {
	case err == nil:
		var m layout.ComponentMetadata
		if jsonErr := json.Unmarshal([]byte(raw), &m); jsonErr == nil {
			return &GetOutput{Metadata: m}, nil
		}
		r.logger.Warn("discarding corrupt cache entry", "component_id", input.ComponentID)
	case err != redisclient.Nil:
		r.logger.Warn("component cache read failed", "component_id", input.ComponentID, "error", err)
	}

	out, err := r.next.Get(ctx, input)
	if err != nil {
		return nil, err
	}
	r.store(ctx, []layout.ComponentMetadata{out.Metadata})
	return out, nil
}

func (r *cachedRepository) BatchGet(ctx context.Context, input BatchGetInput) (*BatchGetOutput, error) {
	ids := uniqueIDs(input.ComponentIDs)
	out := &BatchGetOutput{Metadata: make(map[string]layout.ComponentMetadata, len(ids))}
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = cacheKey(id)
	}

	misses := ids
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		r.logger.Warn("component cache batch read failed", "count", len(ids), "error", err)
	} else {
		misses = nil
		for i, v := range values {
			s, ok := v.(string)
			if !ok {
				misses = append(misses, ids[i])
				continue
			}
			var m layout.ComponentMetadata
			if err := json.Unmarshal([]byte(s), &m); err != nil {
				r.logger.Warn("discarding corrupt cache entry", "component_id", ids[i])
				misses = append(misses, ids[i])
				continue
			}
			out.Metadata[ids[i]] = m
		}
	}

	if len(misses) == 0 {
		return out, nil
	}

	loaded, err := r.next.BatchGet(ctx, BatchGetInput{ComponentIDs: misses})
	if err != nil {
		return nil, err
	}

	fresh := make([]layout.ComponentMetadata, 0, len(loaded.Metadata))
	for id, m := range loaded.Metadata {
		out.Metadata[id] = m
		fresh = append(fresh, m)
	}
	out.Missing = loaded.Missing
	r.store(ctx, fresh)
	return out, nil
}

func (r *cachedRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	out, err := r.next.Put(ctx, input)
	if err != nil {
		return nil, err
	}

	if len(input.Metadata) > 0 {
		keys := make([]string, len(input.Metadata))
		for i, m := range input.Metadata {
			keys[i] = cacheKey(m.ComponentID)
		}
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			r.logger.Warn("component cache invalidation failed", "count", len(keys), "error", err)
		}
	}
	return out, nil
}

func (r *cachedRepository) store(ctx context.Context, entries []layout.ComponentMetadata) {
	if len(entries) == 0 {
		return
	}

	pipe := r.client.Pipeline()
	for _, m := range entries {
		data, err := json.Marshal(m)
		if err != nil {
			continue
		}
		pipe.Set(ctx, cacheKey(m.ComponentID), data, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Warn("component cache write failed", "count", len(entries), "error", err)
	}
}

func cacheKey(componentID string) string {
	return redisclient.Key("component", "meta", componentID)
}
