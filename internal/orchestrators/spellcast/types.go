package spellcast

import (
	"github.com/KirkDiggler/rpg-crawl/internal/entities"
)

// Failure messages callers may match on
const (
	MessageNotEnoughMP = "not enough MP"
	MessageNoTargets   = "no targets"
)

// EffectKind labels what an Effect changed
type EffectKind string

// Effect kinds
const (
	EffectKindDamage     EffectKind = "damage"
	EffectKindHeal       EffectKind = "heal"
	EffectKindArmorClass EffectKind = "armor_class"
	EffectKindUtility    EffectKind = "utility"
)

// CastContext is the battlefield a spell is cast into. Build a fresh one
// for every cast.
type CastContext struct {
	// Target is the explicit choice for single-target spells
	Target   entities.Combatant
	InCombat bool
	Allies   []entities.Combatant
	Enemies  []entities.Combatant
}

// CastSpellInput is the request for CastSpell
type CastSpellInput struct {
	Caster  entities.Caster
	SpellID string
	Context *CastContext
}

// Effect is what a cast did to one target
type Effect struct {
	TargetID string
	Kind     EffectKind
	// Amount is the HP actually removed or restored, or the armor class
	// shift for buffs and debuffs
	Amount   int
	Defeated bool
}

// CastResult reports a cast. Failures are results, not errors.
type CastResult struct {
	Success    bool
	Fizzled    bool
	MPConsumed int
	Messages   []string
	Effects    []Effect
}

func (r *CastResult) say(msg string) {
	r.Messages = append(r.Messages, msg)
}

func failed(msg string) *CastResult {
	return &CastResult{Messages: []string{msg}}
}
