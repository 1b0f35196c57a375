package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the bus
const (
	EventSpellCast          = "spell.cast"
	EventSpellFizzled       = "spell.fizzled"
	EventCombatantAttacked  = "combatant.attacked"
	EventCombatantDamaged   = "combatant.damaged"
	EventCombatantHealed    = "combatant.healed"
	EventCombatantDefeated  = "combatant.defeated"
	EventEncounterStarted   = "encounter.started"
	EventEncounterEnded     = "encounter.ended"
	EventCharacterLeveledUp = "character.leveled_up"
)

// Event context keys
const (
	KeyAmount      = "amount"
	KeySpellID     = "spell_id"
	KeyEncounterID = "encounter_id"
	KeyOutcome     = "outcome"
	KeyLevel       = "level"
)

// Publish sends an event when bus is set. Handler failures are logged and
// never interrupt the action that raised the event.
func Publish(
	ctx context.Context,
	bus events.EventBus,
	eventType string,
	source, target core.Entity,
	data map[string]any,
) {
	if bus == nil {
		return
	}

	event := events.NewGameEvent(eventType, source, target)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := bus.Publish(ctx, event); err != nil {
		slog.Warn("event handler failed",
			"event_type", eventType,
			"error", err)
	}
}
