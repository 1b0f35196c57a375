package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-crawl/internal/entities"
)

func TestEncounter_Lookups(t *testing.T) {
	hero := &entities.Character{ID: "char_1", HP: 5, MaxHP: 5}
	orc := &entities.Monster{ID: "mon_1", CurrentHP: 3, HitPoints: 3}
	enc := &entities.Encounter{
		Party:    []*entities.Character{hero},
		Monsters: []*entities.Monster{orc},
		TurnOrder: []entities.TurnEntry{
			{CombatantID: "mon_1"},
			{CombatantID: "char_1", IsPlayer: true},
		},
		CurrentTurn: 1,
	}

	assert.Equal(t, "char_1", enc.Current().CombatantID)
	assert.Same(t, hero, enc.Combatant("char_1"))
	assert.Same(t, orc, enc.Combatant("mon_1"))
	assert.Nil(t, enc.Combatant("nobody"))
	assert.Len(t, enc.PartyCombatants(), 1)
	assert.Len(t, enc.MonsterCombatants(), 1)

	enc.CurrentTurn = 5
	assert.Nil(t, enc.Current())
	assert.False(t, enc.IsOver())
}

func TestEncounter_RevertArmorClass(t *testing.T) {
	hero := &entities.Character{ID: "char_1", ArmorClass: 10}
	orc := &entities.Monster{ID: "mon_1", ArmorClass: 6}
	enc := &entities.Encounter{
		Party:    []*entities.Character{hero},
		Monsters: []*entities.Monster{orc},
	}

	for range 10 {
		hero.AdjustArmorClass(-2)
		enc.ShiftArmorClass(hero.ID, -2)
	}
	orc.AdjustArmorClass(3)
	enc.ShiftArmorClass(orc.ID, 3)
	enc.ShiftArmorClass("gone", 0)

	assert.Equal(t, map[string]int{"char_1": -20, "mon_1": 3}, enc.ArmorClassShifts)

	enc.RevertArmorClass()

	assert.Equal(t, 10, hero.ArmorClass)
	assert.Equal(t, 6, orc.ArmorClass)
	assert.Empty(t, enc.ArmorClassShifts)
}
