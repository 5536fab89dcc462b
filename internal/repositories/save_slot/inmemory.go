package saveslot

import (
	"context"
	"sync"

	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/pkg/clock"
)

// InMemoryRepository implements Repository using process memory
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]GetOutput
	sets  int
}

// NewInMemory creates a new in-memory repository. A nil clock uses wall time.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]GetOutput),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get returns a copy of the stored payload
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	saved, ok := r.store[input.Key]
	if !ok {
		return nil, errors.NotFound("save not found")
	}

	return &GetOutput{
		Payload:   append([]byte(nil), saved.Payload...),
		UpdatedAt: saved.UpdatedAt,
	}, nil
}

// Set stores a copy of the payload
func (r *InMemoryRepository) Set(_ context.Context, input SetInput) (*SetOutput, error) {
	if err := validateSet(input); err != nil {
		return nil, err
	}

	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Key] = GetOutput{
		Payload:   append([]byte(nil), input.Payload...),
		UpdatedAt: now,
	}
	r.sets++

	return &SetOutput{UpdatedAt: now}, nil
}

// Writes reports how many Set calls have succeeded
func (r *InMemoryRepository) Writes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sets
}
