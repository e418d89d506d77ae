// Package sqlite opens the embedded SQLite database that backs the
// room template and component catalog repositories.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// registers the "sqlite3" database/sql driver
	_ "github.com/ncruces/go-sqlite3/driver"
	// bundles the wasm build of SQLite
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/KirkDiggler/layout-api/internal/errors"
)

// Open opens (creating if needed) the database file at path.
// A single connection is kept so writers never contend for the file lock.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.InvalidArgument("sqlite: path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create directory for %s", path)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite database")
	}

	return db, nil
}

// Migrate applies the schema statements in order inside one transaction
func Migrate(ctx context.Context, db *sql.DB, statements ...string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin migration")
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "failed to apply migration statement %d", i)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit migration")
	}
	return nil
}
