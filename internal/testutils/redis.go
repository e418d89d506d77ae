// Package testutils provides test helpers: in-memory Redis, temp SQLite
// databases and fixture builders for rooms and design elements.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/layout-api/internal/redis"
)

// NewRedisWithServer returns a client backed by miniredis, along with the
// server so tests can seed cached component metadata or fast-forward TTLs
func NewRedisWithServer(t *testing.T, seed func(mr *miniredis.Miniredis)) (redis.Client, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	if seed != nil {
		seed(mr)
	}

	client, err := redis.Connect([]string{mr.Addr()}, &redis.Options{MaxRetries: -1})
	require.NoError(t, err, "failed to connect to miniredis")

	cleanup := func() {
		_ = client.Close()
		mr.Close()
	}

	return client, mr, cleanup
}
