// Package featureflag provides read and write access to stored feature flags
package featureflag

//go:generate mockgen -destination=mock/mock_repository.go -package=featureflagmock github.com/KirkDiggler/layout-api/internal/repositories/featureflag Repository

import "context"

// Repository defines the interface for feature flag storage
type Repository interface {
	// Get retrieves a flag value
	// Returns errors.NotFound if the flag has never been set
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set stores a flag value
	Set(ctx context.Context, input SetInput) (*SetOutput, error)
}

// GetInput defines the input for reading a flag
type GetInput struct {
	Name string
}

// GetOutput defines the output for reading a flag
type GetOutput struct {
	Enabled bool
}

// SetInput defines the input for storing a flag
type SetInput struct {
	Name    string
	Enabled bool
}

// SetOutput defines the output for storing a flag
type SetOutput struct{}
