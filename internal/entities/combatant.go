// Package entities defines the party characters and monsters the engine
// fights with, and the vitals helpers that keep their HP and MP in range.
package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Combatant is the shape the engine reads and mutates. Characters and
// monsters store their vitals under different fields; each type adapts
// its own fields to this interface.
type Combatant interface {
	core.Entity

	GetName() string
	GetLevel() int
	GetAgility() int

	GetHP() int
	GetMaxHP() int
	SetHP(hp int)

	GetMP() int
	GetMaxMP() int
	SetMP(mp int)

	GetArmorClass() int
	AdjustArmorClass(delta int)
	GetMagicResistance() int
	Resists(damageType DamageType) bool

	// GetAttackDice is the damage expression used by a plain attack
	GetAttackDice() string

	IsAlive() bool
	SetDefeated(defeated bool)
}

// Caster is a combatant that can cast spells
type Caster interface {
	Combatant

	GetClassID() string
	GetStat(stat Stat) int
	KnowsSpell(spellID string) bool
}

// Living filters out defeated combatants, keeping order
func Living[T Combatant](all []T) []T {
	out := make([]T, 0, len(all))
	for _, c := range all {
		if c.IsAlive() {
			out = append(out, c)
		}
	}
	return out
}

// AnyAlive reports whether at least one combatant is still standing
func AnyAlive[T Combatant](all []T) bool {
	for _, c := range all {
		if c.IsAlive() {
			return true
		}
	}
	return false
}
