package component

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/layout-api/internal/catalog"
	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
	"github.com/KirkDiggler/layout-api/internal/sqlite"
)

const (
	schema = `CREATE TABLE IF NOT EXISTS components (
	component_id       TEXT PRIMARY KEY,
	layer_type         TEXT NOT NULL,
	min_height_cm      REAL NOT NULL DEFAULT 0,
	max_height_cm      REAL NOT NULL DEFAULT 300,
	can_overlap_layers TEXT NOT NULL DEFAULT '[]'
)`

	selectColumns = `SELECT component_id, layer_type, min_height_cm, max_height_cm, can_overlap_layers FROM components`

	errComponentIDEmpty = "component id cannot be empty"
)

// DefaultComponents are seeded into an empty catalog
var DefaultComponents = []layout.ComponentMetadata{
	{ComponentID: "base-cabinet-60", LayerType: layout.LayerBase, MinHeightCM: 0, MaxHeightCM: 90},
	{ComponentID: "base-cabinet-80", LayerType: layout.LayerBase, MinHeightCM: 0, MaxHeightCM: 90},
	{ComponentID: "corner-base-cabinet-90", LayerType: layout.LayerBase, MinHeightCM: 0, MaxHeightCM: 90},
	{ComponentID: "wall-unit-60", LayerType: layout.LayerWall, MinHeightCM: 140, MaxHeightCM: 220},
	{ComponentID: "wall-unit-80", LayerType: layout.LayerWall, MinHeightCM: 140, MaxHeightCM: 220},
	{ComponentID: "tall-larder-60", LayerType: layout.LayerTall, MinHeightCM: 0, MaxHeightCM: 220},
	{ComponentID: "worktop-300", LayerType: layout.LayerFinishing, MinHeightCM: 88, MaxHeightCM: 92,
		CanOverlapLayers: []layout.LayerType{layout.LayerBase}},
	{ComponentID: "cornice-120", LayerType: layout.LayerFinishing, MinHeightCM: 218, MaxHeightCM: 226,
		CanOverlapLayers: []layout.LayerType{layout.LayerWall, layout.LayerTall}},
	{ComponentID: "plinth-60", LayerType: layout.LayerFinishing, MinHeightCM: 0, MaxHeightCM: 15,
		CanOverlapLayers: []layout.LayerType{layout.LayerBase, layout.LayerTall}},
}

// SQLiteConfig contains configuration for the SQLite catalog
type SQLiteConfig struct {
	DB     *sql.DB
	Logger *slog.Logger
	// Seed inserts DefaultComponents for ids not already stored
	Seed bool
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

type sqliteRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ Repository = (*sqliteRepository)(nil)

// NewSQLite creates the schema if needed and returns the catalog repository
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	if err := sqlite.Migrate(ctx, cfg.DB, schema); err != nil {
		return nil, errors.Wrap(err, "failed to migrate components")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := &sqliteRepository{db: cfg.DB, logger: logger}
	if cfg.Seed {
		for _, m := range DefaultComponents {
			if err := r.insert(ctx, m, true); err != nil {
				return nil, errors.Wrapf(err, "failed to seed component %s", m.ComponentID)
			}
		}
	}
	return r, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if strings.TrimSpace(input.ComponentID) == "" {
		return nil, errors.InvalidArgument(errComponentIDEmpty)
	}

	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE component_id = ?`, input.ComponentID)
	m, err := scanMetadata(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("component %s not found", input.ComponentID).
				WithComponent(input.ComponentID)
		}
		return nil, errors.Wrapf(err, "failed to get component %s", input.ComponentID)
	}

	return &GetOutput{Metadata: catalog.Normalize(m, r.logger)}, nil
}

func (r *sqliteRepository) BatchGet(ctx context.Context, input BatchGetInput) (*BatchGetOutput, error) {
	out := &BatchGetOutput{Metadata: make(map[string]layout.ComponentMetadata, len(input.ComponentIDs))}
	ids := uniqueIDs(input.ComponentIDs)
	if len(ids) == 0 {
		return out, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")

	rows, err := r.db.QueryContext(ctx, selectColumns+` WHERE component_id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to batch get components")
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		m, err := scanMetadata(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan component")
		}
		out.Metadata[m.ComponentID] = catalog.Normalize(m, r.logger)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate components")
	}

	for _, id := range ids {
		if _, ok := out.Metadata[id]; !ok {
			out.Missing = append(out.Missing, id)
		}
	}
	return out, nil
}

func (r *sqliteRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	vb := errors.NewValidationBuilder()
	for i, m := range input.Metadata {
		if strings.TrimSpace(m.ComponentID) == "" {
			vb.Fieldf("metadata", "entry %d: %s", i, errComponentIDEmpty)
		}
		if m.MaxHeightCM < m.MinHeightCM {
			vb.Fieldf("metadata", "entry %d: max height %g below min height %g", i, m.MaxHeightCM, m.MinHeightCM)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	for _, m := range input.Metadata {
		if err := r.insert(ctx, m, false); err != nil {
			return nil, errors.Wrapf(err, "failed to store component %s", m.ComponentID)
		}
	}
	return &PutOutput{Stored: len(input.Metadata)}, nil
}

func (r *sqliteRepository) insert(ctx context.Context, m layout.ComponentMetadata, ignoreExisting bool) error {
	overlaps := m.CanOverlapLayers
	if overlaps == nil {
		overlaps = []layout.LayerType{}
	}
	encoded, err := json.Marshal(overlaps)
	if err != nil {
		return err
	}

	query := `INSERT INTO components (component_id, layer_type, min_height_cm, max_height_cm, can_overlap_layers)
		VALUES (?, ?, ?, ?, ?)`
	if ignoreExisting {
		query += ` ON CONFLICT (component_id) DO NOTHING`
	} else {
		query += ` ON CONFLICT (component_id) DO UPDATE SET
			layer_type = excluded.layer_type,
			min_height_cm = excluded.min_height_cm,
			max_height_cm = excluded.max_height_cm,
			can_overlap_layers = excluded.can_overlap_layers`
	}

	_, err = r.db.ExecContext(ctx, query, m.ComponentID, string(m.LayerType), m.MinHeightCM, m.MaxHeightCM, string(encoded))
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMetadata(s scanner) (layout.ComponentMetadata, error) {
	var (
		m        layout.ComponentMetadata
		layer    string
		overlaps string
	)
	if err := s.Scan(&m.ComponentID, &layer, &m.MinHeightCM, &m.MaxHeightCM, &overlaps); err != nil {
		return m, err
	}
	m.LayerType = layout.LayerType(layer)
	if err := json.Unmarshal([]byte(overlaps), &m.CanOverlapLayers); err != nil {
		return m, errors.Wrapf(err, "invalid can_overlap_layers for %s", m.ComponentID)
	}
	return m, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
