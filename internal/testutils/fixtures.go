package testutils

import (
	"github.com/KirkDiggler/rpg-crawl/internal/entities"
)

// CreateTestFighter creates a level 1 fighter at full health
func CreateTestFighter(id string) *entities.Character {
	return &entities.Character{
		ID:         id,
		Name:       "Gorn",
		ClassID:    entities.ClassFighter,
		Level:      1,
		HP:         14,
		MaxHP:      14,
		Stats:      entities.Stats{Strength: 16, Intelligence: 8, Piety: 8, Vitality: 15, Agility: 11, Luck: 9},
		ArmorClass: 4,
		WeaponDice: "1d8+1",
	}
}

// CreateTestMage creates a level 1 mage who knows the level 1 arcane spells
func CreateTestMage(id string) *entities.Character {
	return &entities.Character{
		ID:          id,
		Name:        "Elira",
		ClassID:     entities.ClassMage,
		Level:       1,
		HP:          6,
		MaxHP:       6,
		MP:          10,
		MaxMP:       10,
		Stats:       entities.Stats{Strength: 7, Intelligence: 17, Piety: 9, Vitality: 9, Agility: 12, Luck: 10},
		ArmorClass:  10,
		WeaponDice:  "1d4",
		KnownSpells: []string{"magic_missile", "shield"},
	}
}

// CreateTestPriest creates a level 1 priest who knows the level 1 divine spells
func CreateTestPriest(id string) *entities.Character {
	return &entities.Character{
		ID:          id,
		Name:        "Brother Ansel",
		ClassID:     entities.ClassPriest,
		Level:       1,
		HP:          10,
		MaxHP:       10,
		MP:          30,
		MaxMP:       30,
		Stats:       entities.Stats{Strength: 10, Intelligence: 9, Piety: 16, Vitality: 12, Agility: 9, Luck: 11},
		ArmorClass:  7,
		WeaponDice:  "1d6",
		KnownSpells: []string{"heal", "holy_smite"},
	}
}

// CreateTestParty creates a fighter, mage and priest
func CreateTestParty() []*entities.Character {
	return []*entities.Character{
		CreateTestFighter("char_fighter"),
		CreateTestMage("char_mage"),
		CreateTestPriest("char_priest"),
	}
}

// CreateTestMonster creates a plain monster with no resistances
func CreateTestMonster(id string, hp int) *entities.Monster {
	return &entities.Monster{
		ID:              id,
		Name:            "Goblin",
		Kind:            "goblin",
		Level:           1,
		CurrentHP:       hp,
		HitPoints:       hp,
		ArmorClass:      10,
		Agility:         8,
		AttackDice:      "1d4",
		ExperienceValue: 60,
	}
}
