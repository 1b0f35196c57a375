// Package spellcast resolves a single spell cast: legality, MP, fizzle,
// power scaling, targeting and resistance.
package spellcast

//go:generate mockgen -destination=mock/mock_service.go -package=spellcastmock github.com/KirkDiggler/rpg-crawl/internal/orchestrators/spellcast Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-crawl/internal/dice"
	"github.com/KirkDiggler/rpg-crawl/internal/engine"
	"github.com/KirkDiggler/rpg-crawl/internal/entities"
	"github.com/KirkDiggler/rpg-crawl/internal/errors"
	"github.com/KirkDiggler/rpg-crawl/internal/spells"
)

// Service casts spells
type Service interface {
	// CastSpell always returns a well formed result for game-rule failures
	// (unknown spell, not enough MP, fizzle, no target). The error is
	// reserved for malformed input.
	CastSpell(ctx context.Context, input *CastSpellInput) (*CastResult, error)
}

// Config holds the dependencies for the spell caster
type Config struct {
	Registry *spells.Registry
	Roller   *dice.Roller

	// Balance defaults to engine.DefaultBalance
	Balance *engine.Balance

	// EventBus is optional
	EventBus events.EventBus

	// DisableFizzle skips the fizzle roll for deterministic runs
	DisableFizzle bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type orchestrator struct {
	registry      *spells.Registry
	roller        *dice.Roller
	balance       engine.Balance
	eventBus      events.EventBus
	disableFizzle bool
}

// NewOrchestrator creates a spell caster
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	balance := engine.DefaultBalance()
	if cfg.Balance != nil {
		balance = *cfg.Balance
	}

	return &orchestrator{
		registry:      cfg.Registry,
		roller:        cfg.Roller,
		balance:       balance,
		eventBus:      cfg.EventBus,
		disableFizzle: cfg.DisableFizzle,
	}, nil
}

func (o *orchestrator) CastSpell(ctx context.Context, input *CastSpellInput) (*CastResult, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Caster == nil {
		return nil, errors.InvalidArgument("caster is required")
	}

	castCtx := input.Context
	if castCtx == nil {
		castCtx = &CastContext{}
	}
	caster := input.Caster

	def, ok := o.registry.GetSpellByID(input.SpellID)
	if !ok {
		return failed(fmt.Sprintf("unknown spell %q", input.SpellID)), nil
	}

	if !caster.IsAlive() {
		return failed(fmt.Sprintf("%s cannot cast while defeated", caster.GetName())), nil
	}
	if !caster.KnowsSpell(def.ID) {
		return failed(fmt.Sprintf("%s does not know %s", caster.GetName(), def.Name)), nil
	}
	if caster.GetLevel() < def.Level {
		return failed(fmt.Sprintf("%s requires level %d", def.Name, def.Level)), nil
	}
	if !castCtx.InCombat && def.Effect.CombatOnly() {
		return failed(fmt.Sprintf("%s can only be cast in combat", def.Name)), nil
	}

	if caster.GetMP() < def.MPCost {
		return failed(MessageNotEnoughMP), nil
	}

	targets, msg := o.resolveTargets(def, caster, castCtx)
	if len(targets) == 0 {
		return failed(msg), nil
	}

	// Once MP is spent the cast always completes: fizzle or effect.
	entities.SpendMP(caster, def.MPCost)
	result := &CastResult{MPConsumed: def.MPCost}
	result.say(fmt.Sprintf("%s casts %s!", caster.GetName(), def.Name))

	stat := caster.GetStat(def.School.CastingStat())
	if o.fizzles(caster.GetLevel(), stat) {
		result.Fizzled = true
		result.say("The spell fizzles!")
		slog.Debug("spell fizzled",
			"caster_id", caster.GetID(),
			"spell_id", def.ID)
		engine.Publish(ctx, o.eventBus, engine.EventSpellFizzled, caster, nil, map[string]any{
			engine.KeySpellID: def.ID,
		})
		return result, nil
	}

	power := o.balance.SpellPower(caster.GetLevel(), stat)
	roll := o.rollMagnitude(def)

	engine.Publish(ctx, o.eventBus, engine.EventSpellCast, caster, nil, map[string]any{
		engine.KeySpellID: def.ID,
	})

	if def.Effect == spells.EffectUtility && def.Description != "" {
		result.say(def.Description)
	}
	for _, target := range targets {
		effect := o.applyEffect(ctx, def, caster, target, roll, power, result)
		result.Effects = append(result.Effects, effect)
	}
	result.Success = true

	slog.Debug("spell cast",
		"caster_id", caster.GetID(),
		"spell_id", def.ID,
		"targets", len(targets),
		"power", power,
		"roll", roll)

	return result, nil
}

// resolveTargets picks targets per policy. An empty slice comes back with
// the failure message to report.
func (o *orchestrator) resolveTargets(
	def *spells.Definition,
	caster entities.Caster,
	castCtx *CastContext,
) ([]entities.Combatant, string) {
	switch def.Target {
	case spells.TargetSelf:
		return []entities.Combatant{caster}, ""
	case spells.TargetSingleEnemy, spells.TargetSingleAlly:
		if castCtx.Target == nil {
			return nil, MessageNoTargets
		}
		if !castCtx.Target.IsAlive() {
			return nil, fmt.Sprintf("%s is already defeated", castCtx.Target.GetName())
		}
		return []entities.Combatant{castCtx.Target}, ""
	case spells.TargetAllEnemies:
		return entities.Living(castCtx.Enemies), MessageNoTargets
	case spells.TargetAllAllies:
		return entities.Living(castCtx.Allies), MessageNoTargets
	default:
		return nil, MessageNoTargets
	}
}

func (o *orchestrator) fizzles(level, stat int) bool {
	if o.disableFizzle {
		return false
	}
	fizzled, err := o.roller.Chance(o.balance.FizzleChance(level, stat))
	if err != nil {
		slog.Error("fizzle roll failed", "error", err)
		return false
	}
	return fizzled
}

// rollMagnitude rolls once per cast so every target of a group spell
// faces the same magnitude before its own resistances
func (o *orchestrator) rollMagnitude(def *spells.Definition) int {
	roll, err := o.roller.Roll(def.Magnitude)
	if err == nil {
		return roll
	}

	slog.Error("magnitude roll failed",
		"spell_id", def.ID,
		"magnitude", def.Magnitude,
		"error", err)
	expr, parseErr := dice.Parse(def.Magnitude)
	if parseErr != nil {
		return 0
	}
	return expr.Min()
}

func (o *orchestrator) applyEffect(
	ctx context.Context,
	def *spells.Definition,
	caster entities.Caster,
	target entities.Combatant,
	roll int,
	power float64,
	result *CastResult,
) Effect {
	effect := Effect{TargetID: target.GetID()}

	switch def.Effect {
	case spells.EffectDamage:
		amount := o.balance.ScaleMagnitude(roll, power, def.Scaling)
		amount = engine.ApplyMagicResistance(amount, target.GetMagicResistance())
		if def.DamageType != "" {
			amount = engine.ApplyElementalResistance(amount, target.Resists(def.DamageType))
		}
		dealt := entities.ApplyDamage(target, amount)

		effect.Kind = EffectKindDamage
		effect.Amount = dealt
		result.say(fmt.Sprintf("%s takes %d damage.", target.GetName(), dealt))
		engine.Publish(ctx, o.eventBus, engine.EventCombatantDamaged, caster, target, map[string]any{
			engine.KeyAmount:  dealt,
			engine.KeySpellID: def.ID,
		})

		if !target.IsAlive() {
			effect.Defeated = true
			result.say(fmt.Sprintf("%s is defeated!", target.GetName()))
			engine.Publish(ctx, o.eventBus, engine.EventCombatantDefeated, caster, target, nil)
		}

	case spells.EffectHeal:
		amount := o.balance.ScaleMagnitude(roll, power, def.Scaling)
		healed := entities.ApplyHealing(target, amount)

		effect.Kind = EffectKindHeal
		effect.Amount = healed
		result.say(fmt.Sprintf("%s recovers %d HP.", target.GetName(), healed))
		engine.Publish(ctx, o.eventBus, engine.EventCombatantHealed, caster, target, map[string]any{
			engine.KeyAmount:  healed,
			engine.KeySpellID: def.ID,
		})

	case spells.EffectBuff:
		shift := max(roll, 0)
		target.AdjustArmorClass(-shift)

		effect.Kind = EffectKindArmorClass
		effect.Amount = -shift
		result.say(fmt.Sprintf("%s's armor class improves by %d.", target.GetName(), shift))

	case spells.EffectDebuff:
		shift := engine.ApplyMagicResistance(roll, target.GetMagicResistance())
		target.AdjustArmorClass(shift)

		effect.Kind = EffectKindArmorClass
		effect.Amount = shift
		if shift == 0 {
			result.say(fmt.Sprintf("%s resists.", target.GetName()))
		} else {
			result.say(fmt.Sprintf("%s's armor class worsens by %d.", target.GetName(), shift))
		}

	default:
		effect.Kind = EffectKindUtility
	}

	return effect
}
