// Package roomtemplate provides the room template store: default
// dimensions and wall thickness per room type
package roomtemplate

//go:generate mockgen -destination=mock/mock_repository.go -package=roomtemplatemock github.com/KirkDiggler/layout-api/internal/repositories/roomtemplate Repository

import (
	"context"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
)

// Repository defines the interface for room template persistence
type Repository interface {
	// Get retrieves the template for a room type
	// Returns errors.InvalidArgument for an empty room type
	// Returns errors.NotFound if no template exists
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every template ordered by room type
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Upsert creates or replaces a template
	// Returns errors.InvalidArgument for invalid dimensions
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)
}

// GetInput defines the input for getting a template
type GetInput struct {
	RoomType string
}

// GetOutput defines the output for getting a template
type GetOutput struct {
	Template layout.RoomTemplate
}

// ListInput defines the input for listing templates
type ListInput struct{}

// ListOutput defines the output for listing templates
type ListOutput struct {
	Templates []layout.RoomTemplate
}

// UpsertInput defines the input for storing a template
type UpsertInput struct {
	Template layout.RoomTemplate
}

// UpsertOutput defines the output for storing a template
type UpsertOutput struct {
	Template layout.RoomTemplate
}
