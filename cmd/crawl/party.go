package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/rpg-crawl/internal/entities"
)

// newParty builds the stock party used when no save slot is loaded
func newParty() []*entities.Character {
	return []*entities.Character{
		{
			ID:         "char_gorn",
			Name:       "Gorn",
			ClassID:    entities.ClassFighter,
			Level:      1,
			HP:         16,
			MaxHP:      16,
			Stats:      entities.Stats{Strength: 17, Intelligence: 8, Piety: 8, Vitality: 15, Agility: 11, Luck: 9},
			ArmorClass: 4,
			WeaponDice: "1d8+1",
		},
		{
			ID:          "char_elira",
			Name:        "Elira",
			ClassID:     entities.ClassMage,
			Level:       1,
			HP:          7,
			MaxHP:       7,
			MP:          12,
			MaxMP:       12,
			Stats:       entities.Stats{Strength: 7, Intelligence: 17, Piety: 9, Vitality: 9, Agility: 12, Luck: 10},
			ArmorClass:  10,
			WeaponDice:  "1d4",
			KnownSpells: []string{"magic_missile", "shield"},
		},
		{
			ID:          "char_ansel",
			Name:        "Ansel",
			ClassID:     entities.ClassPriest,
			Level:       1,
			HP:          11,
			MaxHP:       11,
			MP:          12,
			MaxMP:       12,
			Stats:       entities.Stats{Strength: 11, Intelligence: 9, Piety: 16, Vitality: 12, Agility: 9, Luck: 11},
			ArmorClass:  7,
			WeaponDice:  "1d6",
			KnownSpells: []string{"heal", "holy_smite"},
		},
	}
}

type bestiaryEntry struct {
	name       string
	kind       string
	level      int
	hp         int
	armorClass int
	mr         int
	resists    []entities.DamageType
	agility    int
	attack     string
	xp         int
}

var bestiary = []bestiaryEntry{
	{name: "Goblin", kind: "goblin", level: 1, hp: 8, armorClass: 10, agility: 8, attack: "1d4", xp: 60},
	{name: "Kobold", kind: "kobold", level: 1, hp: 6, armorClass: 9, agility: 10, attack: "1d3", xp: 40},
	{name: "Orc", kind: "orc", level: 2, hp: 14, armorClass: 8, agility: 7, attack: "1d6+1", xp: 110},
	{
		name: "Fire Imp", kind: "imp", level: 3, hp: 10, armorClass: 7, mr: 20,
		resists: []entities.DamageType{entities.DamageFire}, agility: 13, attack: "1d5", xp: 150,
	},
}

// newMonsters cycles through the bestiary. Repeated kinds get a letter
// suffix so targets can be told apart.
func newMonsters(count int) []*entities.Monster {
	monsters := make([]*entities.Monster, 0, count)
	for i := range count {
		b := bestiary[i%len(bestiary)]
		name := b.name
		if count > len(bestiary) {
			name = fmt.Sprintf("%s %c", b.name, 'A'+rune(i/len(bestiary)))
		}
		monsters = append(monsters, &entities.Monster{
			ID:              fmt.Sprintf("mon_%d", i+1),
			Name:            name,
			Kind:            b.kind,
			Level:           b.level,
			CurrentHP:       b.hp,
			HitPoints:       b.hp,
			ArmorClass:      b.armorClass,
			MagicResistance: b.mr,
			Resistances:     b.resists,
			Agility:         b.agility,
			AttackDice:      b.attack,
			ExperienceValue: b.xp,
		})
	}
	return monsters
}

func printParty(w io.Writer, party []*entities.Character) {
	for _, c := range party {
		status := ""
		if !c.IsAlive() {
			status = " (dead)"
		}
		fmt.Fprintf(w, "  %-10s %-8s L%-2d HP %3d/%-3d MP %3d/%-3d XP %d%s\n",
			c.Name, c.ClassID, c.Level, c.HP, c.MaxHP, c.MP, c.MaxMP, c.Experience, status)
		if len(c.KnownSpells) > 0 {
			fmt.Fprintf(w, "             spells: %s\n", strings.Join(c.KnownSpells, ", "))
		}
	}
}
