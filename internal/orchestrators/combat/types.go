package combat

import (
	"github.com/KirkDiggler/rpg-crawl/internal/entities"
)

// Action is what a player chooses on their turn
type Action string

// Actions
const (
	ActionAttack    Action = "attack"
	ActionCastSpell Action = "cast_spell"
	ActionDefend    Action = "defend"
	ActionRun       Action = "run"
)

// ResultNoTargets is returned when an attack finds no living monster
const ResultNoTargets = "no targets"

// StartEncounterInput is the request for StartEncounter
type StartEncounterInput struct {
	Party    []*entities.Character
	Monsters []*entities.Monster
}

// StartEncounterOutput carries the new encounter. Messages include any
// monster turns resolved before the first player acts.
type StartEncounterOutput struct {
	Encounter *entities.Encounter
	Messages  []string
}

// ExecutePlayerActionInput is the request for ExecutePlayerAction.
// TargetIndex indexes the encounter's monsters; AllyIndex indexes the
// party and is used by ally-targeted spells.
type ExecutePlayerActionInput struct {
	EncounterID string
	Action      Action
	TargetIndex int
	SpellID     string
	AllyIndex   int
}

// ExecutePlayerActionOutput reports the action and everything that
// happened until the next player turn or the end of combat
type ExecutePlayerActionOutput struct {
	// Result narrates the player's own action
	Result    string
	Messages  []string
	State     entities.EncounterState
	Outcome   entities.Outcome
	Round     int
	Encounter *entities.Encounter
}

// GetEncounterInput is the request for GetEncounter
type GetEncounterInput struct {
	EncounterID string
}

// GetEncounterOutput returns the encounter as stored
type GetEncounterOutput struct {
	Encounter *entities.Encounter
}
