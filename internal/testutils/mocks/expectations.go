// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-crawl/internal/entities"
	"github.com/KirkDiggler/rpg-crawl/internal/errors"
	"github.com/KirkDiggler/rpg-crawl/internal/repositories/combatlog"
	combatlogmock "github.com/KirkDiggler/rpg-crawl/internal/repositories/combatlog/mock"
	"github.com/KirkDiggler/rpg-crawl/internal/repositories/encounters"
	encountersmock "github.com/KirkDiggler/rpg-crawl/internal/repositories/encounters/mock"
	"github.com/KirkDiggler/rpg-crawl/internal/repositories/savegame"
	savegamemock "github.com/KirkDiggler/rpg-crawl/internal/repositories/savegame/mock"
)

// ExpectEncounterGet sets up a mock expectation for loading an encounter
func ExpectEncounterGet(
	ctx context.Context, mockRepo *encountersmock.MockRepository,
	encounterID string, enc *entities.Encounter, err error,
) *gomock.Call {
	call := mockRepo.EXPECT().Get(ctx, &encounters.GetInput{EncounterID: encounterID})
	if err != nil {
		return call.Return(nil, err)
	}
	return call.Return(&encounters.GetOutput{Encounter: enc}, nil)
}

// ExpectEncounterSave sets up a mock expectation for storing a new
// encounter and returns err from it
func ExpectEncounterSave(ctx context.Context, mockRepo *encountersmock.MockRepository, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *encounters.SaveInput) (*encounters.SaveOutput, error) {
			if err != nil {
				return nil, err
			}
			return &encounters.SaveOutput{Success: true}, nil
		})
}

// ExpectEncounterUpdate sets up a mock expectation for updating an encounter
func ExpectEncounterUpdate(ctx context.Context, mockRepo *encountersmock.MockRepository, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *encounters.UpdateInput) (*encounters.UpdateOutput, error) {
			if err != nil {
				return nil, err
			}
			return &encounters.UpdateOutput{Success: true}, nil
		})
}

// ExpectSlotGet sets up a mock expectation for loading a save slot
func ExpectSlotGet(
	ctx context.Context, mockRepo *savegamemock.MockRepository,
	slotID string, slot *savegame.Slot, err error,
) *gomock.Call {
	call := mockRepo.EXPECT().Get(ctx, &savegame.GetInput{SlotID: slotID})
	if err != nil {
		return call.Return(nil, err)
	}
	return call.Return(&savegame.GetOutput{Slot: slot}, nil)
}

// ExpectSlotSave sets up a mock expectation for writing a save slot. The
// stored copy is stamped with a fixed time.
func ExpectSlotSave(ctx context.Context, mockRepo *savegamemock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *savegame.SaveInput) (*savegame.SaveOutput, error) {
			stored := *input.Slot
			stored.SavedAt = clock.Now()
			return &savegame.SaveOutput{Slot: &stored}, nil
		})
}

// ExpectCombatLogAppend sets up a mock expectation for appending to an
// encounter's combat log. Appended entries are collected into sink when
// it is not nil.
func ExpectCombatLogAppend(
	ctx context.Context, mockRepo *combatlogmock.MockRepository,
	encounterID string, sink *[]combatlog.Entry,
) *gomock.Call {
	return mockRepo.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *combatlog.AppendInput) (*combatlog.AppendOutput, error) {
			if input.EncounterID != encounterID {
				return nil, errors.InvalidArgumentf("unexpected encounter %s", input.EncounterID)
			}
			if sink != nil {
				*sink = append(*sink, input.Entries...)
			}
			return &combatlog.AppendOutput{Log: &combatlog.Log{
				EncounterID: encounterID,
				Entries:     input.Entries,
				CreatedAt:   clock.Now(),
			}}, nil
		})
}

var clock = &testClock{}

type testClock struct{}

func (c *testClock) Now() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}
