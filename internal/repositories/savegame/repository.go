// Package savegame persists the party between sessions in named slots
package savegame

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-crawl/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=savegamemock github.com/KirkDiggler/rpg-crawl/internal/repositories/savegame Repository

// Slot is one saved game
type Slot struct {
	SlotID  string                `json:"slot_id"`
	Name    string                `json:"name"`
	Party   []*entities.Character `json:"party"`
	Gold    int                   `json:"gold"`
	SavedAt time.Time             `json:"saved_at"`
}

// SaveInput contains the slot to write. An existing slot with the same ID
// is overwritten.
type SaveInput struct {
	Slot *Slot
}

// SaveOutput contains the slot as stored
type SaveOutput struct {
	Slot *Slot
}

// GetInput identifies the slot to load
type GetInput struct {
	SlotID string
}

// GetOutput contains the loaded slot
type GetOutput struct {
	Slot *Slot
}

// ListInput is empty; every slot is listed
type ListInput struct{}

// ListOutput contains every slot ordered by slot ID
type ListOutput struct {
	Slots []*Slot
}

// DeleteInput identifies the slot to remove
type DeleteInput struct {
	SlotID string
}

// DeleteOutput is empty on success
type DeleteOutput struct{}

// Repository defines the interface for save slot storage
type Repository interface {
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}
