package entities

import (
	"slices"
)

// Monster is an enemy in an encounter. Monsters keep their current HP in
// CurrentHP and their maximum in HitPoints and have no mana pool.
type Monster struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Kind            string       `json:"kind"`
	Level           int          `json:"level"`
	CurrentHP       int          `json:"current_hp"`
	HitPoints       int          `json:"hit_points"`
	ArmorClass      int          `json:"armor_class"`
	MagicResistance int          `json:"magic_resistance"`
	Resistances     []DamageType `json:"resistances,omitempty"`
	Agility         int          `json:"agility"`
	AttackDice      string       `json:"attack_dice"`
	ExperienceValue int          `json:"experience_value"`
	Defeated        bool         `json:"defeated"`
}

var _ Combatant = (*Monster)(nil)

// GetID implements core.Entity
func (m *Monster) GetID() string { return m.ID }

// GetType implements core.Entity
func (m *Monster) GetType() string { return TypeMonster }

func (m *Monster) GetName() string    { return m.Name }
func (m *Monster) GetLevel() int      { return m.Level }
func (m *Monster) GetAgility() int    { return m.Agility }
func (m *Monster) GetHP() int         { return m.CurrentHP }
func (m *Monster) GetMaxHP() int      { return m.HitPoints }
func (m *Monster) SetHP(hp int)       { m.CurrentHP = hp }
func (m *Monster) GetArmorClass() int { return m.ArmorClass }

// GetMP is always zero; monsters do not cast
func (m *Monster) GetMP() int { return 0 }

// GetMaxMP is always zero
func (m *Monster) GetMaxMP() int { return 0 }

// SetMP is a no-op
func (m *Monster) SetMP(int) {}

// AdjustArmorClass shifts AC by delta
func (m *Monster) AdjustArmorClass(delta int) { m.ArmorClass += delta }

// GetMagicResistance returns magic resistance clamped to [0,100]
func (m *Monster) GetMagicResistance() int { return clampPercent(m.MagicResistance) }

// Resists reports an elemental resistance
func (m *Monster) Resists(damageType DamageType) bool {
	return slices.Contains(m.Resistances, damageType)
}

// GetAttackDice falls back to a weak claw
func (m *Monster) GetAttackDice() string {
	if m.AttackDice == "" {
		return "1d3"
	}
	return m.AttackDice
}

// IsAlive reports whether the monster is still in the fight
func (m *Monster) IsAlive() bool { return !m.Defeated && m.CurrentHP > 0 }

// SetDefeated marks the monster defeated
func (m *Monster) SetDefeated(defeated bool) { m.Defeated = defeated }
