// Package saveslot persists serialized game-state snapshots under a save key
package saveslot

//go:generate mockgen -destination=mock/mock_repository.go -package=saveslotmock github.com/KirkDiggler/trivia-quest/internal/repositories/save_slot Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/trivia-quest/internal/errors"
)

// Repository stores opaque save payloads by key.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Get retrieves the payload stored under a key
	// Returns errors.InvalidArgument for an empty key
	// Returns errors.NotFound if nothing has been saved under the key
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set replaces the payload stored under a key
	// Returns errors.InvalidArgument for an empty key or payload
	// Returns errors.Internal for storage failures
	Set(ctx context.Context, input SetInput) (*SetOutput, error)
}

// GetInput defines the input for loading a save
type GetInput struct {
	Key string
}

// GetOutput defines the output for loading a save
type GetOutput struct {
	Payload []byte
	// UpdatedAt is zero when the backend does not track write times
	UpdatedAt time.Time
}

// SetInput defines the input for writing a save
type SetInput struct {
	Key     string
	Payload []byte
}

// SetOutput defines the output for writing a save
type SetOutput struct {
	UpdatedAt time.Time
}

const (
	errKeyEmpty     = "save key cannot be empty"
	errPayloadEmpty = "save payload cannot be empty"
)

func validateSet(input SetInput) error {
	if input.Key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}
	if len(input.Payload) == 0 {
		return errors.InvalidArgument(errPayloadEmpty)
	}
	return nil
}
