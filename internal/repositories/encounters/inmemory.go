package encounters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-crawl/internal/entities"
	"github.com/KirkDiggler/rpg-crawl/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage.
// Encounters are held by reference; the combat orchestrator is the only
// writer.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Encounter
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.Encounter),
	}
}

// Save stores an encounter
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateEncounter(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Encounter.ID]; exists {
		return nil, errors.AlreadyExistsf("encounter %s already exists", input.Encounter.ID)
	}
	r.store[input.Encounter.ID] = input.Encounter

	return &SaveOutput{Success: true}, nil
}

// Get retrieves an encounter by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	enc, exists := r.store[input.EncounterID]
	if !exists {
		return nil, errors.NotFoundf("encounter %s not found", input.EncounterID)
	}

	return &GetOutput{Encounter: enc}, nil
}

// Update replaces an existing encounter
func (r *InMemoryRepository) Update(_ context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateEncounter(&SaveInput{Encounter: input.Encounter}); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Encounter.ID]; !exists {
		return nil, errors.NotFoundf("encounter %s not found", input.Encounter.ID)
	}
	r.store[input.Encounter.ID] = input.Encounter

	return &UpdateOutput{Success: true}, nil
}

// Delete removes an encounter
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.EncounterID]; !exists {
		return nil, errors.NotFoundf("encounter %s not found", input.EncounterID)
	}
	delete(r.store, input.EncounterID)

	return &DeleteOutput{Success: true}, nil
}

func validateEncounter(input *SaveInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if input.Encounter == nil {
		return errors.InvalidArgument("encounter is required")
	}
	if input.Encounter.ID == "" {
		return errors.InvalidArgument("encounter ID is required")
	}
	return nil
}
