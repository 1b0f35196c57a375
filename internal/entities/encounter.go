package entities

import (
	"time"
)

// EncounterState is where an encounter sits in the turn loop
type EncounterState string

// Encounter states
const (
	EncounterAwaitingPlayer  EncounterState = "awaiting_player_action"
	EncounterResolvingAction EncounterState = "resolving_action"
	EncounterCheckingVictory EncounterState = "checking_victory"
	EncounterEnded           EncounterState = "ended"
)

// Outcome is how an encounter finished
type Outcome string

// Outcomes
const (
	OutcomeNone    Outcome = ""
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
	OutcomeFled    Outcome = "fled"
)

// TurnEntry is one slot in the turn order
type TurnEntry struct {
	CombatantID string `json:"combatant_id"`
	Initiative  int    `json:"initiative"`
	IsPlayer    bool   `json:"is_player"`
}

// Encounter is a battle between the party and a group of monsters.
// Defeated combatants stay in TurnOrder and are skipped when their turn
// comes up.
type Encounter struct {
	ID          string          `json:"id"`
	Party       []*Character    `json:"party"`
	Monsters    []*Monster      `json:"monsters"`
	TurnOrder   []TurnEntry     `json:"turn_order"`
	CurrentTurn int             `json:"current_turn"`
	Round       int             `json:"round"`
	State       EncounterState  `json:"state"`
	Outcome     Outcome         `json:"outcome,omitempty"`
	Defending   map[string]bool `json:"defending,omitempty"`
	Experience  int             `json:"experience,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`

	// ArmorClassShifts is the net spell shift per combatant id, undone
	// when the encounter ends
	ArmorClassShifts map[string]int `json:"armor_class_shifts,omitempty"`
}

// ShiftArmorClass records a spell's armor class change on a combatant
func (e *Encounter) ShiftArmorClass(id string, delta int) {
	if delta == 0 {
		return
	}
	if e.ArmorClassShifts == nil {
		e.ArmorClassShifts = make(map[string]int)
	}
	e.ArmorClassShifts[id] += delta
}

// RevertArmorClass undoes every recorded shift
func (e *Encounter) RevertArmorClass() {
	for id, delta := range e.ArmorClassShifts {
		if c := e.Combatant(id); c != nil {
			c.AdjustArmorClass(-delta)
		}
	}
	clear(e.ArmorClassShifts)
}

// IsOver reports whether the encounter has ended
func (e *Encounter) IsOver() bool {
	return e.State == EncounterEnded
}

// Current returns the entry whose turn it is
func (e *Encounter) Current() *TurnEntry {
	if e.CurrentTurn < 0 || e.CurrentTurn >= len(e.TurnOrder) {
		return nil
	}
	return &e.TurnOrder[e.CurrentTurn]
}

// Combatant finds a party member or monster by id
func (e *Encounter) Combatant(id string) Combatant {
	for _, c := range e.Party {
		if c.ID == id {
			return c
		}
	}
	for _, m := range e.Monsters {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// PartyCombatants returns the party as combatants
func (e *Encounter) PartyCombatants() []Combatant {
	out := make([]Combatant, len(e.Party))
	for i, c := range e.Party {
		out[i] = c
	}
	return out
}

// MonsterCombatants returns the monsters as combatants
func (e *Encounter) MonsterCombatants() []Combatant {
	out := make([]Combatant, len(e.Monsters))
	for i, m := range e.Monsters {
		out[i] = m
	}
	return out
}
