// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-crawl/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test characters
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder creates a new builder with minimal defaults
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: &entities.Character{
			ID:         "char-test-123",
			Name:       "Test Character",
			ClassID:    entities.ClassFighter,
			Level:      1,
			HP:         10,
			MaxHP:      10,
			ArmorClass: 10,
			Stats:      entities.Stats{Strength: 10, Intelligence: 10, Piety: 10, Vitality: 10, Agility: 10, Luck: 10},
		},
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithClass sets the class
func (b *CharacterBuilder) WithClass(classID string) *CharacterBuilder {
	b.character.ClassID = classID
	return b
}

// WithLevel sets the level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithHP sets current and max HP
func (b *CharacterBuilder) WithHP(hp, maxHP int) *CharacterBuilder {
	b.character.HP = hp
	b.character.MaxHP = maxHP
	return b
}

// WithMP sets current and max MP
func (b *CharacterBuilder) WithMP(mp, maxMP int) *CharacterBuilder {
	b.character.MP = mp
	b.character.MaxMP = maxMP
	return b
}

// WithStat sets a single stat
func (b *CharacterBuilder) WithStat(stat entities.Stat, value int) *CharacterBuilder {
	s := &b.character.Stats
	switch stat {
	case entities.StatStrength:
		s.Strength = value
	case entities.StatIntelligence:
		s.Intelligence = value
	case entities.StatPiety:
		s.Piety = value
	case entities.StatVitality:
		s.Vitality = value
	case entities.StatAgility:
		s.Agility = value
	case entities.StatLuck:
		s.Luck = value
	}
	return b
}

// WithArmorClass sets the armor class
func (b *CharacterBuilder) WithArmorClass(ac int) *CharacterBuilder {
	b.character.ArmorClass = ac
	return b
}

// WithSpells sets the known spells
func (b *CharacterBuilder) WithSpells(spellIDs ...string) *CharacterBuilder {
	b.character.KnownSpells = spellIDs
	return b
}

// WithWeapon sets the weapon damage dice
func (b *CharacterBuilder) WithWeapon(dice string) *CharacterBuilder {
	b.character.WeaponDice = dice
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character
}

// MonsterBuilder provides a fluent interface for building test monsters
type MonsterBuilder struct {
	monster *entities.Monster
}

// NewMonsterBuilder creates a new builder with minimal defaults
func NewMonsterBuilder() *MonsterBuilder {
	return &MonsterBuilder{
		monster: &entities.Monster{
			ID:              "mon-test-123",
			Name:            "Test Monster",
			Kind:            "slime",
			Level:           1,
			CurrentHP:       10,
			HitPoints:       10,
			ArmorClass:      10,
			Agility:         8,
			AttackDice:      "1d3",
			ExperienceValue: 50,
		},
	}
}

// WithID sets the monster ID
func (b *MonsterBuilder) WithID(id string) *MonsterBuilder {
	b.monster.ID = id
	return b
}

// WithName sets the monster name
func (b *MonsterBuilder) WithName(name string) *MonsterBuilder {
	b.monster.Name = name
	return b
}

// WithHP sets current and max HP
func (b *MonsterBuilder) WithHP(hp int) *MonsterBuilder {
	b.monster.CurrentHP = hp
	b.monster.HitPoints = hp
	return b
}

// WithMagicResistance sets magic resistance
func (b *MonsterBuilder) WithMagicResistance(mr int) *MonsterBuilder {
	b.monster.MagicResistance = mr
	return b
}

// WithResistances sets elemental resistances
func (b *MonsterBuilder) WithResistances(types ...entities.DamageType) *MonsterBuilder {
	b.monster.Resistances = types
	return b
}

// WithAgility sets agility
func (b *MonsterBuilder) WithAgility(agility int) *MonsterBuilder {
	b.monster.Agility = agility
	return b
}

// WithArmorClass sets armor class
func (b *MonsterBuilder) WithArmorClass(ac int) *MonsterBuilder {
	b.monster.ArmorClass = ac
	return b
}

// WithAttack sets the attack dice
func (b *MonsterBuilder) WithAttack(dice string) *MonsterBuilder {
	b.monster.AttackDice = dice
	return b
}

// WithExperience sets the experience awarded
func (b *MonsterBuilder) WithExperience(xp int) *MonsterBuilder {
	b.monster.ExperienceValue = xp
	return b
}

// Build returns the built monster
func (b *MonsterBuilder) Build() *entities.Monster {
	return b.monster
}
