// Package combatlog provides the repository for encounter narration logs
package combatlog

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=combatlogmock github.com/KirkDiggler/rpg-crawl/internal/repositories/combatlog Repository

// Log is the narration of one encounter
type Log struct {
	EncounterID string
	Entries     []Entry
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Entry is a single narrated line
type Entry struct {
	Round int
	// Actor is the id of the combatant acting, empty for system lines
	Actor   string
	Message string
}

// AppendInput contains entries to add to an encounter's log
type AppendInput struct {
	EncounterID string
	Entries     []Entry
}

// AppendOutput contains the log after the append
type AppendOutput struct {
	Log *Log
}

// GetInput contains parameters for retrieving a log
type GetInput struct {
	EncounterID string
}

// GetOutput contains the retrieved log
type GetOutput struct {
	Log *Log
}

// DeleteInput contains parameters for deleting a log
type DeleteInput struct {
	EncounterID string
}

// DeleteOutput contains the result of deleting a log
type DeleteOutput struct {
	EntriesDeleted int
}

// Repository defines the interface for combat log storage
type Repository interface {
	// Append adds entries, creating the log with the configured TTL on first use
	Append(ctx context.Context, input *AppendInput) (*AppendOutput, error)

	// Get retrieves a log by encounter ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes a log
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}
