package entities

import (
	"slices"
)

// Stats are a character's six attributes
type Stats struct {
	Strength     int `json:"strength"`
	Intelligence int `json:"intelligence"`
	Piety        int `json:"piety"`
	Vitality     int `json:"vitality"`
	Agility      int `json:"agility"`
	Luck         int `json:"luck"`
}

// Character is a party member. Every field is plain data so a party
// round-trips through a JSON save slot unchanged.
type Character struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	ClassID         string       `json:"class_id"`
	Level           int          `json:"level"`
	Experience      int          `json:"experience"`
	HP              int          `json:"hp"`
	MaxHP           int          `json:"max_hp"`
	MP              int          `json:"mp"`
	MaxMP           int          `json:"max_mp"`
	Stats           Stats        `json:"stats"`
	ArmorClass      int          `json:"armor_class"`
	Resistances     []DamageType `json:"resistances,omitempty"`
	MagicResistance int          `json:"magic_resistance"`
	WeaponDice      string       `json:"weapon_dice"`
	KnownSpells     []string     `json:"known_spells,omitempty"`
	Dead            bool         `json:"dead"`
}

var _ Caster = (*Character)(nil)

// GetID implements core.Entity
func (c *Character) GetID() string { return c.ID }

// GetType implements core.Entity
func (c *Character) GetType() string { return TypeCharacter }

func (c *Character) GetName() string    { return c.Name }
func (c *Character) GetLevel() int      { return c.Level }
func (c *Character) GetAgility() int    { return c.Stats.Agility }
func (c *Character) GetHP() int         { return c.HP }
func (c *Character) GetMaxHP() int      { return c.MaxHP }
func (c *Character) SetHP(hp int)       { c.HP = hp }
func (c *Character) GetMP() int         { return c.MP }
func (c *Character) GetMaxMP() int      { return c.MaxMP }
func (c *Character) SetMP(mp int)       { c.MP = mp }
func (c *Character) GetArmorClass() int { return c.ArmorClass }
func (c *Character) GetClassID() string { return c.ClassID }

// AdjustArmorClass shifts AC by delta; lower is better
func (c *Character) AdjustArmorClass(delta int) { c.ArmorClass += delta }

// GetMagicResistance returns magic resistance clamped to [0,100]
func (c *Character) GetMagicResistance() int { return clampPercent(c.MagicResistance) }

// Resists reports an elemental resistance
func (c *Character) Resists(damageType DamageType) bool {
	return slices.Contains(c.Resistances, damageType)
}

// GetAttackDice falls back to bare hands
func (c *Character) GetAttackDice() string {
	if c.WeaponDice == "" {
		return "1d2"
	}
	return c.WeaponDice
}

// IsAlive reports whether the character can still act
func (c *Character) IsAlive() bool { return !c.Dead && c.HP > 0 }

// SetDefeated marks the character dead or restores the flag
func (c *Character) SetDefeated(defeated bool) { c.Dead = defeated }

// GetStat returns the named attribute
func (c *Character) GetStat(stat Stat) int {
	switch stat {
	case StatStrength:
		return c.Stats.Strength
	case StatIntelligence:
		return c.Stats.Intelligence
	case StatPiety:
		return c.Stats.Piety
	case StatVitality:
		return c.Stats.Vitality
	case StatAgility:
		return c.Stats.Agility
	case StatLuck:
		return c.Stats.Luck
	default:
		return 0
	}
}

// KnowsSpell reports whether the spell is in the character's spellbook
func (c *Character) KnowsSpell(spellID string) bool {
	return slices.Contains(c.KnownSpells, spellID)
}

// LearnSpell adds a spell to the spellbook; it returns false when the
// spell was already known
func (c *Character) LearnSpell(spellID string) bool {
	if c.KnowsSpell(spellID) {
		return false
	}
	c.KnownSpells = append(c.KnownSpells, spellID)
	return true
}

// GainExperience adds xp and applies any level-ups it earns, raising max
// HP and MP by the class growth. Current HP and MP rise by the same
// amounts. It returns the number of levels gained.
func (c *Character) GainExperience(xp int) int {
	if xp <= 0 || !c.IsAlive() {
		return 0
	}
	c.Experience += xp

	gained := 0
	growth := GrowthFor(c.ClassID)
	for c.Level < MaxLevel {
		next := ExperienceForLevel(c.Level + 1)
		if next < 0 || c.Experience < next {
			break
		}
		c.Level++
		gained++
		c.MaxHP += growth.HPPerLevel
		c.HP += growth.HPPerLevel
		c.MaxMP += growth.MPPerLevel
		c.MP += growth.MPPerLevel
	}
	return gained
}

func clampPercent(v int) int {
	return max(0, min(100, v))
}
