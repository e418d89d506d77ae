package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/layout-api/internal/errors"
	"github.com/KirkDiggler/layout-api/internal/sqlite"
)

func TestOpenRequiresPath(t *testing.T) {
	_, err := sqlite.Open("")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestOpenAndMigrate(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "nested", "layout.db"))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	err = sqlite.Migrate(ctx, db,
		`CREATE TABLE walls (name TEXT PRIMARY KEY)`,
		`INSERT INTO walls (name) VALUES ('front'), ('back')`,
	)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM walls`).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestMigrateRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "layout.db"))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	err = sqlite.Migrate(ctx, db,
		`CREATE TABLE walls (name TEXT PRIMARY KEY)`,
		`INSERT INTO nope VALUES (1)`,
	)
	require.Error(t, err)

	var n int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE name = 'walls'`).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
