// Package encounters stores live encounters between turns
package encounters

//go:generate mockgen -destination=mock/mock_repository.go -package=encountersmock github.com/KirkDiggler/rpg-crawl/internal/repositories/encounters Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-crawl/internal/entities"
)

// Repository defines the storage interface for encounters
type Repository interface {
	// Save stores a new encounter
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves an encounter by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Update replaces an existing encounter
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// Delete removes an encounter
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// SaveInput contains the encounter to store
type SaveInput struct {
	Encounter *entities.Encounter
}

// SaveOutput contains the result of storing an encounter
type SaveOutput struct {
	Success bool
}

// GetInput identifies the encounter to load
type GetInput struct {
	EncounterID string
}

// GetOutput contains the loaded encounter
type GetOutput struct {
	Encounter *entities.Encounter
}

// UpdateInput contains the encounter to replace
type UpdateInput struct {
	Encounter *entities.Encounter
}

// UpdateOutput contains the result of an update
type UpdateOutput struct {
	Success bool
}

// DeleteInput identifies the encounter to remove
type DeleteInput struct {
	EncounterID string
}

// DeleteOutput contains the result of a delete
type DeleteOutput struct {
	Success bool
}
