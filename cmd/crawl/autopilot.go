package main

import (
	"github.com/KirkDiggler/rpg-crawl/internal/entities"
	"github.com/KirkDiggler/rpg-crawl/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-crawl/internal/spells"
)

// chooseAction picks the acting character's move for a simulated battle.
// A badly hurt ally gets healed first, then the strongest affordable
// damage spell is cast, and otherwise the character swings at the first
// monster still standing.
func chooseAction(enc *entities.Encounter, registry *spells.Registry) *combat.ExecutePlayerActionInput {
	input := &combat.ExecutePlayerActionInput{
		EncounterID: enc.ID,
		Action:      combat.ActionAttack,
		TargetIndex: firstLivingMonster(enc),
	}

	actor := actingCharacter(enc)
	if actor == nil {
		return input
	}

	if def, ally := pickHeal(enc, actor, registry); def != nil {
		input.Action = combat.ActionCastSpell
		input.SpellID = def.ID
		input.AllyIndex = ally
		return input
	}

	if def := pickDamageSpell(enc, actor, registry); def != nil {
		input.Action = combat.ActionCastSpell
		input.SpellID = def.ID
	}
	return input
}

func actingCharacter(enc *entities.Encounter) *entities.Character {
	entry := enc.Current()
	if entry == nil || !entry.IsPlayer {
		return nil
	}
	for _, c := range enc.Party {
		if c.ID == entry.CombatantID {
			return c
		}
	}
	return nil
}

func firstLivingMonster(enc *entities.Encounter) int {
	for i, m := range enc.Monsters {
		if m.IsAlive() {
			return i
		}
	}
	return 0
}

func castable(actor *entities.Character, def *spells.Definition) bool {
	return actor.Level >= def.Level && actor.MP >= def.MPCost
}

// knownSpells returns the actor's castable spells with the given effect
func knownSpells(actor *entities.Character, registry *spells.Registry, effect spells.EffectType) []*spells.Definition {
	var out []*spells.Definition
	for _, id := range actor.KnownSpells {
		def, ok := registry.GetSpellByID(id)
		if ok && def.Effect == effect && castable(actor, def) {
			out = append(out, def)
		}
	}
	return out
}

// pickHeal returns a heal and the ally index to aim it at when a living
// ally is below half health
func pickHeal(enc *entities.Encounter, actor *entities.Character, registry *spells.Registry) (*spells.Definition, int) {
	worst, wounded := -1, 0
	for i, c := range enc.Party {
		if !c.IsAlive() || c.HP*2 >= c.MaxHP {
			continue
		}
		wounded++
		if worst < 0 || c.HP*enc.Party[worst].MaxHP < enc.Party[worst].HP*c.MaxHP {
			worst = i
		}
	}
	if worst < 0 {
		return nil, 0
	}

	var best *spells.Definition
	for _, def := range knownSpells(actor, registry, spells.EffectHeal) {
		if def.Target == spells.TargetAllAllies && wounded < 2 {
			continue
		}
		if best == nil || def.Level > best.Level {
			best = def
		}
	}
	return best, worst
}

// pickDamageSpell prefers group spells when more than one monster stands,
// then higher level
func pickDamageSpell(enc *entities.Encounter, actor *entities.Character, registry *spells.Registry) *spells.Definition {
	crowd := len(entities.Living(enc.Monsters)) > 1

	var best *spells.Definition
	bestScore := -1
	for _, def := range knownSpells(actor, registry, spells.EffectDamage) {
		score := def.Level
		if crowd && def.Target.IsGroup() {
			score += 10
		}
		if score > bestScore {
			best, bestScore = def, score
		}
	}
	return best
}
