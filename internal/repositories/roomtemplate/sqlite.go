package roomtemplate

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
	"github.com/KirkDiggler/layout-api/internal/sqlite"
)

const (
	schema = `CREATE TABLE IF NOT EXISTS room_templates (
	room_type      TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	width          REAL NOT NULL CHECK (width > 0),
	depth          REAL NOT NULL CHECK (depth > 0),
	ceiling_height REAL NOT NULL CHECK (ceiling_height > 0),
	wall_thickness REAL NOT NULL DEFAULT 10
)`

	selectColumns = `SELECT room_type, name, width, depth, ceiling_height, wall_thickness FROM room_templates`

	errRoomTypeEmpty = "room type cannot be empty"
)

// DefaultTemplates are seeded into an empty store
var DefaultTemplates = []layout.RoomTemplate{
	{RoomType: "kitchen", Name: "Kitchen", Dimensions: layout.RoomDimensions{Width: 600, Height: 400, CeilingHeight: 240}, WallThickness: 10},
	{RoomType: "bathroom", Name: "Bathroom", Dimensions: layout.RoomDimensions{Width: 300, Height: 250, CeilingHeight: 240}, WallThickness: 10},
	{RoomType: "bedroom", Name: "Bedroom", Dimensions: layout.RoomDimensions{Width: 400, Height: 400, CeilingHeight: 250}, WallThickness: 10},
	{RoomType: "living-room", Name: "Living Room", Dimensions: layout.RoomDimensions{Width: 500, Height: 450, CeilingHeight: 250}, WallThickness: 15},
	{RoomType: "utility", Name: "Utility Room", Dimensions: layout.RoomDimensions{Width: 250, Height: 200, CeilingHeight: 240}, WallThickness: 10},
}

// SQLiteConfig contains configuration for the SQLite template repository
type SQLiteConfig struct {
	DB *sql.DB
	// Seed inserts DefaultTemplates for room types not already stored
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
	db *sql.DB
}

var _ Repository = (*sqliteRepository)(nil)

// NewSQLite creates the schema if needed and returns the repository
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	if err := sqlite.Migrate(ctx, cfg.DB, schema); err != nil {
		return nil, errors.Wrap(err, "failed to migrate room templates")
	}

	r := &sqliteRepository{db: cfg.DB}
	if cfg.Seed {
		if err := r.seed(ctx); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *sqliteRepository) seed(ctx context.Context) error {
	for _, t := range DefaultTemplates {
		_, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO room_templates (room_type, name, width, depth, ceiling_height, wall_thickness)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			t.RoomType, t.Name, t.Dimensions.Width, t.Dimensions.Height, t.Dimensions.CeilingHeight, t.WallThickness)
		if err != nil {
			return errors.Wrapf(err, "failed to seed room template %s", t.RoomType)
		}
	}
	return nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	roomType := normalize(input.RoomType)
	if roomType == "" {
		return nil, errors.InvalidArgument(errRoomTypeEmpty)
	}

	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE room_type = ?`, roomType)
	t, err := scanTemplate(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("room template %s not found", roomType).
				WithMeta(errors.MetaRoomType, roomType)
		}
		return nil, errors.Wrapf(err, "failed to get room template %s", roomType)
	}

	return &GetOutput{Template: t}, nil
}

func (r *sqliteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` ORDER BY room_type`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list room templates")
	}
	defer func() { _ = rows.Close() }()

	templates := []layout.RoomTemplate{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan room template")
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate room templates")
	}

	return &ListOutput{Templates: templates}, nil
}

func (r *sqliteRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	t := input.Template
	t.RoomType = normalize(t.RoomType)

	vb := errors.NewValidationBuilder()
	vb.Required("room_type", t.RoomType)
	if err := t.Dimensions.Validate(); err != nil {
		vb.InvalidField("dimensions", errors.GetMessage(err))
	}
	if t.WallThickness < 0 {
		vb.Field("wall_thickness", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if t.WallThickness == 0 {
		t.WallThickness = layout.DefaultWallThickness
	}
	if t.Name == "" {
		t.Name = t.RoomType
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO room_templates (room_type, name, width, depth, ceiling_height, wall_thickness)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (room_type) DO UPDATE SET
			name = excluded.name,
			width = excluded.width,
			depth = excluded.depth,
			ceiling_height = excluded.ceiling_height,
			wall_thickness = excluded.wall_thickness`,
		t.RoomType, t.Name, t.Dimensions.Width, t.Dimensions.Height, t.Dimensions.CeilingHeight, t.WallThickness)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store room template %s", t.RoomType)
	}

	return &UpsertOutput{Template: t}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTemplate(s scanner) (layout.RoomTemplate, error) {
	var t layout.RoomTemplate
	err := s.Scan(&t.RoomType, &t.Name, &t.Dimensions.Width, &t.Dimensions.Height, &t.Dimensions.CeilingHeight, &t.WallThickness)
	return t, err
}

func normalize(roomType string) string {
	return strings.ToLower(strings.TrimSpace(roomType))
}
