package testutils

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/layout-api/internal/sqlite"
)

// CreateTestSQLite opens a fresh database file in a temp dir.
// The database is closed when the test ends.
func CreateTestSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "layout-test.db"))
	require.NoError(t, err, "failed to open sqlite")

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
