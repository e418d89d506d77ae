// Package component provides the component metadata store consulted
// by placement validation
package component

//go:generate mockgen -destination=mock/mock_repository.go -package=componentmock github.com/KirkDiggler/layout-api/internal/repositories/component Repository

import (
	"context"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
)

// Repository defines the interface for component metadata persistence
type Repository interface {
	// Get retrieves metadata for a single component id
	// Returns errors.NotFound if the component is not in the catalog
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// BatchGet retrieves metadata for many ids at once.
	// Unknown ids are reported in Missing rather than as an error.
	BatchGet(ctx context.Context, input BatchGetInput) (*BatchGetOutput, error)

	// Put creates or replaces catalog entries
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}

// GetInput defines the input for getting component metadata
type GetInput struct {
	ComponentID string
}

// GetOutput defines the output for getting component metadata
type GetOutput struct {
	Metadata layout.ComponentMetadata
}

// BatchGetInput defines the input for batch lookups
type BatchGetInput struct {
	ComponentIDs []string
}

// BatchGetOutput defines the output for batch lookups
type BatchGetOutput struct {
	Metadata map[string]layout.ComponentMetadata
	Missing  []string
}

// PutInput defines the input for storing metadata
type PutInput struct {
	Metadata []layout.ComponentMetadata
}

// PutOutput defines the output for storing metadata
type PutOutput struct {
	Stored int
}
