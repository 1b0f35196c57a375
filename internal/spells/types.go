// Package spells holds the spell catalog and the per-class learning tables.
// Both are immutable once loaded; build a Registry at startup and pass it
// to whatever needs it.
package spells

import (
	"github.com/KirkDiggler/rpg-crawl/internal/entities"
)

// School groups spells by the stat that powers them
type School string

// Schools
const (
	SchoolArcane School = "arcane"
	SchoolDivine School = "divine"
)

// CastingStat returns the stat a school draws power from
func (s School) CastingStat() entities.Stat {
	if s == SchoolDivine {
		return entities.StatPiety
	}
	return entities.StatIntelligence
}

func (s School) valid() bool {
	return s == SchoolArcane || s == SchoolDivine
}

// EffectType is what a spell does to its targets
type EffectType string

// Effect types
const (
	EffectDamage  EffectType = "damage"
	EffectHeal    EffectType = "heal"
	EffectBuff    EffectType = "buff"
	EffectDebuff  EffectType = "debuff"
	EffectUtility EffectType = "utility"
)

func (e EffectType) valid() bool {
	switch e {
	case EffectDamage, EffectHeal, EffectBuff, EffectDebuff, EffectUtility:
		return true
	}
	return false
}

// CombatOnly reports whether the effect needs an encounter. Armor class
// shifts last only as long as the encounter that reverts them.
func (e EffectType) CombatOnly() bool {
	return e == EffectDamage || e == EffectBuff || e == EffectDebuff
}

// TargetPolicy is who a spell lands on
type TargetPolicy string

// Target policies
const (
	TargetSingleEnemy TargetPolicy = "single-enemy"
	TargetSingleAlly  TargetPolicy = "single-ally"
	TargetAllEnemies  TargetPolicy = "all-enemies"
	TargetAllAllies   TargetPolicy = "all-allies"
	TargetSelf        TargetPolicy = "self"
)

func (t TargetPolicy) valid() bool {
	switch t {
	case TargetSingleEnemy, TargetSingleAlly, TargetAllEnemies, TargetAllAllies, TargetSelf:
		return true
	}
	return false
}

// IsGroup reports whether the policy hits every living member of a side
func (t TargetPolicy) IsGroup() bool {
	return t == TargetAllEnemies || t == TargetAllAllies
}

// NeedsTarget reports whether the caller has to name a target
func (t TargetPolicy) NeedsTarget() bool {
	return t == TargetSingleEnemy || t == TargetSingleAlly
}

// Definition is one catalog entry
type Definition struct {
	ID          string              `yaml:"id"`
	Name        string              `yaml:"name"`
	School      School              `yaml:"school"`
	Level       int                 `yaml:"level"`
	MPCost      int                 `yaml:"mp_cost"`
	Effect      EffectType          `yaml:"effect"`
	Target      TargetPolicy        `yaml:"target"`
	Magnitude   string              `yaml:"magnitude"`
	Scaling     float64             `yaml:"scaling"`
	DamageType  entities.DamageType `yaml:"damage_type,omitempty"`
	Description string              `yaml:"description"`
}
