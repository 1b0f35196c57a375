// Package combat runs encounters between the party and monsters: turn
// order, player actions, monster turns and the victory or defeat that
// ends them.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/rpg-crawl/internal/orchestrators/combat Service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-crawl/internal/dice"
	"github.com/KirkDiggler/rpg-crawl/internal/engine"
	"github.com/KirkDiggler/rpg-crawl/internal/entities"
	"github.com/KirkDiggler/rpg-crawl/internal/errors"
	"github.com/KirkDiggler/rpg-crawl/internal/orchestrators/spellcast"
	"github.com/KirkDiggler/rpg-crawl/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-crawl/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-crawl/internal/repositories/combatlog"
	"github.com/KirkDiggler/rpg-crawl/internal/repositories/encounters"
	"github.com/KirkDiggler/rpg-crawl/internal/spells"
)

// initiativeDie is added to agility when rolling turn order
const initiativeDie = 6

// Service defines the interface for combat operations
type Service interface {
	// StartEncounter rolls turn order and resolves monster turns up to the
	// first player turn
	StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error)

	// ExecutePlayerAction resolves the current player's action, then every
	// monster turn until a player must act again or combat ends
	ExecutePlayerAction(ctx context.Context, input *ExecutePlayerActionInput) (*ExecutePlayerActionOutput, error)

	// GetEncounter returns the encounter as stored
	GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	EncounterRepo encounters.Repository
	SpellCaster   spellcast.Service
	Registry      *spells.Registry
	Roller        *dice.Roller
	IDGenerator   idgen.Generator

	// Optional
	Clock         clock.Clock
	Balance       *engine.Balance
	EventBus      events.EventBus
	CombatLogRepo combatlog.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EncounterRepo == nil {
		vb.RequiredField("EncounterRepo")
	}
	if c.SpellCaster == nil {
		vb.RequiredField("SpellCaster")
	}
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	encounterRepo encounters.Repository
	spellCaster   spellcast.Service
	registry      *spells.Registry
	roller        *dice.Roller
	idGen         idgen.Generator
	clock         clock.Clock
	balance       engine.Balance
	eventBus      events.EventBus
	combatLog     combatlog.Repository
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	balance := engine.DefaultBalance()
	if cfg.Balance != nil {
		balance = *cfg.Balance
	}

	return &orchestrator{
		encounterRepo: cfg.EncounterRepo,
		spellCaster:   cfg.SpellCaster,
		registry:      cfg.Registry,
		roller:        cfg.Roller,
		idGen:         cfg.IDGenerator,
		clock:         c,
		balance:       balance,
		eventBus:      cfg.EventBus,
		combatLog:     cfg.CombatLogRepo,
	}, nil
}

// StartEncounter creates an encounter and rolls initiative
func (o *orchestrator) StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCombatants(input); err != nil {
		return nil, err
	}
	if !entities.AnyAlive(input.Party) {
		return nil, errors.FailedPrecondition("party has no living members")
	}
	if !entities.AnyAlive(input.Monsters) {
		return nil, errors.FailedPrecondition("no living monsters to fight")
	}

	enc := &entities.Encounter{
		ID:        o.idGen.Generate(),
		Party:     input.Party,
		Monsters:  input.Monsters,
		Round:     1,
		State:     entities.EncounterAwaitingPlayer,
		Defending: make(map[string]bool),
		CreatedAt: o.clock.Now(),
	}
	enc.TurnOrder = o.rollInitiative(enc)

	n := newNarrator(enc)
	n.say("", announce(enc.Monsters))

	slog.Info("encounter started",
		"encounter_id", enc.ID,
		"party_size", len(enc.Party),
		"monster_count", len(enc.Monsters))
	engine.Publish(ctx, o.eventBus, engine.EventEncounterStarted, nil, nil, map[string]any{
		engine.KeyEncounterID: enc.ID,
	})

	o.settle(ctx, enc, n)

	if _, err := o.encounterRepo.Save(ctx, &encounters.SaveInput{Encounter: enc}); err != nil {
		return nil, errors.Wrap(err, "failed to save encounter")
	}
	o.appendLog(ctx, enc.ID, n.entries)

	return &StartEncounterOutput{
		Encounter: enc,
		Messages:  n.messages(),
	}, nil
}

// ExecutePlayerAction resolves one player action
func (o *orchestrator) ExecutePlayerAction(
	ctx context.Context,
	input *ExecutePlayerActionInput,
) (*ExecutePlayerActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}
	switch input.Action {
	case ActionAttack, ActionCastSpell, ActionDefend, ActionRun:
	default:
		return nil, errors.InvalidArgumentf("unknown action %q", input.Action)
	}

	got, err := o.encounterRepo.Get(ctx, &encounters.GetInput{EncounterID: input.EncounterID})
	if err != nil {
		return nil, err
	}
	enc := got.Encounter

	if enc.IsOver() {
		return nil, errors.FailedPreconditionf("encounter %s has already ended", enc.ID).
			WithMeta("outcome", string(enc.Outcome))
	}

	actor, err := currentPlayer(enc)
	if err != nil {
		return nil, err
	}

	if enc.Defending == nil {
		enc.Defending = make(map[string]bool)
	}

	n := newNarrator(enc)
	enc.State = entities.EncounterResolvingAction

	result := ""
	consumed := true
	switch input.Action {
	case ActionAttack:
		result, err = o.playerAttack(ctx, enc, actor, input.TargetIndex, n)
	case ActionCastSpell:
		consumed, err = o.playerCast(ctx, enc, actor, input, n)
	case ActionDefend:
		enc.Defending[actor.ID] = true
		n.say(actor.ID, fmt.Sprintf("%s takes a defensive stance.", actor.Name))
	case ActionRun:
		o.playerRun(ctx, enc, actor, n)
	}
	if err != nil {
		enc.State = entities.EncounterAwaitingPlayer
		return nil, err
	}
	if result == "" {
		result = strings.Join(n.messages(), " ")
	}

	if consumed {
		if !o.checkOutcome(ctx, enc, n) {
			o.advance(enc)
			o.settle(ctx, enc, n)
		}
	} else {
		enc.State = entities.EncounterAwaitingPlayer
	}

	if _, err := o.encounterRepo.Update(ctx, &encounters.UpdateInput{Encounter: enc}); err != nil {
		return nil, errors.Wrap(err, "failed to update encounter")
	}
	o.appendLog(ctx, enc.ID, n.entries)

	slog.Info("player action resolved",
		"encounter_id", enc.ID,
		"character_id", actor.ID,
		"action", input.Action,
		"round", enc.Round,
		"state", enc.State)

	return &ExecutePlayerActionOutput{
		Result:    result,
		Messages:  n.messages(),
		State:     enc.State,
		Outcome:   enc.Outcome,
		Round:     enc.Round,
		Encounter: enc,
	}, nil
}

// GetEncounter returns the encounter as stored
func (o *orchestrator) GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	got, err := o.encounterRepo.Get(ctx, &encounters.GetInput{EncounterID: input.EncounterID})
	if err != nil {
		return nil, err
	}

	return &GetEncounterOutput{Encounter: got.Encounter}, nil
}

func validateCombatants(input *StartEncounterInput) error {
	vb := errors.NewValidationBuilder()

	if len(input.Party) == 0 {
		vb.RequiredField("Party")
	}
	if len(input.Monsters) == 0 {
		vb.RequiredField("Monsters")
	}

	seen := make(map[string]bool)
	check := func(field string, i int, id string) {
		switch {
		case id == "":
			vb.Fieldf(field, "entry %d has no id", i)
		case seen[id]:
			vb.Fieldf(field, "duplicate combatant id %q", id)
		}
		seen[id] = true
	}
	for i, c := range input.Party {
		if c == nil {
			vb.Fieldf("Party", "entry %d is nil", i)
			continue
		}
		if c.MaxHP <= 0 {
			vb.Fieldf("Party", "%s has no max HP", c.ID)
		}
		check("Party", i, c.ID)
	}
	for i, m := range input.Monsters {
		if m == nil {
			vb.Fieldf("Monsters", "entry %d is nil", i)
			continue
		}
		if m.HitPoints <= 0 {
			vb.Fieldf("Monsters", "%s has no hit points", m.ID)
		}
		check("Monsters", i, m.ID)
	}

	return vb.Build()
}

// rollInitiative orders combatants by agility + 1d6, highest first. Ties
// keep party-then-monster listing order.
func (o *orchestrator) rollInitiative(enc *entities.Encounter) []entities.TurnEntry {
	order := make([]entities.TurnEntry, 0, len(enc.Party)+len(enc.Monsters))
	for _, c := range enc.Party {
		order = append(order, entities.TurnEntry{
			CombatantID: c.ID,
			Initiative:  c.GetAgility() + o.die(initiativeDie),
			IsPlayer:    true,
		})
	}
	for _, m := range enc.Monsters {
		order = append(order, entities.TurnEntry{
			CombatantID: m.ID,
			Initiative:  m.GetAgility() + o.die(initiativeDie),
		})
	}

	slices.SortStableFunc(order, func(a, b entities.TurnEntry) int {
		return cmp.Compare(b.Initiative, a.Initiative)
	})
	return order
}

func currentPlayer(enc *entities.Encounter) (*entities.Character, error) {
	entry := enc.Current()
	if entry == nil || !entry.IsPlayer {
		return nil, errors.FailedPreconditionf("encounter %s is not waiting on a player", enc.ID)
	}
	for _, c := range enc.Party {
		if c.ID == entry.CombatantID && c.IsAlive() {
			return c, nil
		}
	}
	return nil, errors.FailedPreconditionf("encounter %s is not waiting on a player", enc.ID)
}

// settle runs the turn loop from the current slot until a living player
// must act or the encounter ends. Defeated combatants are skipped.
func (o *orchestrator) settle(ctx context.Context, enc *entities.Encounter, n *narrator) {
	for !o.checkOutcome(ctx, enc, n) {
		entry := enc.Current()
		actor := enc.Combatant(entry.CombatantID)
		if actor == nil || !actor.IsAlive() {
			o.advance(enc)
			continue
		}

		if entry.IsPlayer {
			// a defensive stance lasts until the defender acts again
			delete(enc.Defending, actor.GetID())
			enc.State = entities.EncounterAwaitingPlayer
			return
		}

		o.monsterTurn(ctx, enc, actor, n)
		o.advance(enc)
	}
}

func (o *orchestrator) advance(enc *entities.Encounter) {
	enc.CurrentTurn++
	if enc.CurrentTurn >= len(enc.TurnOrder) {
		enc.CurrentTurn = 0
		enc.Round++
	}
}

// checkOutcome ends the encounter when a side has no one standing
func (o *orchestrator) checkOutcome(ctx context.Context, enc *entities.Encounter, n *narrator) bool {
	if enc.IsOver() {
		return true
	}
	enc.State = entities.EncounterCheckingVictory

	switch {
	case !entities.AnyAlive(enc.Monsters):
		n.say("", "All monsters are defeated!")
		o.finish(ctx, enc, entities.OutcomeVictory, n)
		return true
	case !entities.AnyAlive(enc.Party):
		n.say("", "The party has fallen...")
		o.finish(ctx, enc, entities.OutcomeDefeat, n)
		return true
	}
	return false
}

func (o *orchestrator) finish(ctx context.Context, enc *entities.Encounter, outcome entities.Outcome, n *narrator) {
	enc.State = entities.EncounterEnded
	enc.Outcome = outcome
	clear(enc.Defending)
	enc.RevertArmorClass()

	if outcome == entities.OutcomeVictory {
		o.awardExperience(ctx, enc, n)
	}

	slog.Info("encounter ended",
		"encounter_id", enc.ID,
		"outcome", outcome,
		"round", enc.Round)
	engine.Publish(ctx, o.eventBus, engine.EventEncounterEnded, nil, nil, map[string]any{
		engine.KeyEncounterID: enc.ID,
		engine.KeyOutcome:     string(outcome),
	})
}

// awardExperience splits monster experience among the living party and
// teaches newly unlocked spells on level up
func (o *orchestrator) awardExperience(ctx context.Context, enc *entities.Encounter, n *narrator) {
	total := 0
	for _, m := range enc.Monsters {
		total += m.ExperienceValue
	}
	survivors := entities.Living(enc.Party)
	share := o.balance.ExperienceShare(total, len(survivors))
	enc.Experience = share
	if share == 0 {
		return
	}

	n.say("", fmt.Sprintf("Each survivor gains %d experience.", share))
	for _, c := range survivors {
		if c.GainExperience(share) == 0 {
			continue
		}
		n.say(c.ID, fmt.Sprintf("%s reaches level %d!", c.Name, c.Level))
		for _, id := range o.registry.LearnSpells(c, c.Level) {
			if def, ok := o.registry.GetSpellByID(id); ok {
				n.say(c.ID, fmt.Sprintf("%s learns %s.", c.Name, def.Name))
			}
		}
		engine.Publish(ctx, o.eventBus, engine.EventCharacterLeveledUp, c, nil, map[string]any{
			engine.KeyLevel: c.Level,
		})
	}
}

func (o *orchestrator) monsterTurn(ctx context.Context, enc *entities.Encounter, monster entities.Combatant, n *narrator) {
	enc.State = entities.EncounterResolvingAction

	targets := entities.Living(enc.PartyCombatants())
	if len(targets) == 0 {
		return
	}
	target := targets[o.die(len(targets))-1]
	o.resolveAttack(ctx, enc, monster, target, n)
}

func (o *orchestrator) playerAttack(
	ctx context.Context,
	enc *entities.Encounter,
	actor *entities.Character,
	targetIndex int,
	n *narrator,
) (string, error) {
	living := entities.Living(enc.Monsters)
	if len(living) == 0 {
		n.say(actor.ID, "There is nothing left to attack.")
		return ResultNoTargets, nil
	}
	if targetIndex < 0 || targetIndex >= len(enc.Monsters) {
		return "", errors.InvalidArgumentf("target index %d out of range", targetIndex)
	}

	target := enc.Monsters[targetIndex]
	if !target.IsAlive() {
		target = living[0]
		n.say(actor.ID, fmt.Sprintf("%s turns to face %s.", actor.Name, target.Name))
	}

	o.resolveAttack(ctx, enc, actor, target, n)
	return "", nil
}

// playerCast reports whether the turn was used. A cast refused before MP
// is spent leaves the player free to choose again.
func (o *orchestrator) playerCast(
	ctx context.Context,
	enc *entities.Encounter,
	actor *entities.Character,
	input *ExecutePlayerActionInput,
	n *narrator,
) (bool, error) {
	if input.SpellID == "" {
		return false, errors.InvalidArgument("spell ID is required")
	}

	castCtx := &spellcast.CastContext{
		InCombat: true,
		Allies:   enc.PartyCombatants(),
		Enemies:  enc.MonsterCombatants(),
	}

	if def, ok := o.registry.GetSpellByID(input.SpellID); ok {
		switch def.Target {
		case spells.TargetSingleEnemy:
			if input.TargetIndex < 0 || input.TargetIndex >= len(enc.Monsters) {
				return false, errors.InvalidArgumentf("target index %d out of range", input.TargetIndex)
			}
			target := enc.Monsters[input.TargetIndex]
			if living := entities.Living(enc.Monsters); !target.IsAlive() && len(living) > 0 {
				target = living[0]
			}
			castCtx.Target = target
		case spells.TargetSingleAlly:
			if input.AllyIndex < 0 || input.AllyIndex >= len(enc.Party) {
				return false, errors.InvalidArgumentf("ally index %d out of range", input.AllyIndex)
			}
			castCtx.Target = enc.Party[input.AllyIndex]
		}
	}

	result, err := o.spellCaster.CastSpell(ctx, &spellcast.CastSpellInput{
		Caster:  actor,
		SpellID: input.SpellID,
		Context: castCtx,
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to cast spell")
	}

	for _, msg := range result.Messages {
		n.say(actor.ID, msg)
	}
	for _, effect := range result.Effects {
		if effect.Kind == spellcast.EffectKindArmorClass {
			enc.ShiftArmorClass(effect.TargetID, effect.Amount)
		}
	}
	return result.Success || result.MPConsumed > 0, nil
}

func (o *orchestrator) playerRun(ctx context.Context, enc *entities.Encounter, actor *entities.Character, n *narrator) {
	party := averageAgility(entities.Living(enc.PartyCombatants()))
	monsters := averageAgility(entities.Living(enc.MonsterCombatants()))

	if !o.chance(o.balance.FleeChance(party, monsters)) {
		n.say(actor.ID, "The party fails to escape!")
		return
	}

	n.say(actor.ID, "The party flees!")
	o.finish(ctx, enc, entities.OutcomeFled, n)
}

// resolveAttack rolls to hit against armor class, then weapon damage.
// Defending targets take half, never less than 1.
func (o *orchestrator) resolveAttack(
	ctx context.Context,
	enc *entities.Encounter,
	attacker, target entities.Combatant,
	n *narrator,
) {
	engine.Publish(ctx, o.eventBus, engine.EventCombatantAttacked, attacker, target, nil)

	if !o.chance(o.balance.HitChance(attacker.GetLevel(), target.GetArmorClass())) {
		n.say(attacker.GetID(), fmt.Sprintf("%s misses %s.", attacker.GetName(), target.GetName()))
		return
	}

	damage := o.rollDamage(attacker.GetAttackDice())
	if enc.Defending[target.GetID()] {
		damage = max(damage/2, 1)
	}
	dealt := entities.ApplyDamage(target, damage)

	n.say(attacker.GetID(), fmt.Sprintf("%s hits %s for %d damage.", attacker.GetName(), target.GetName(), dealt))
	engine.Publish(ctx, o.eventBus, engine.EventCombatantDamaged, attacker, target, map[string]any{
		engine.KeyAmount: dealt,
	})

	if !target.IsAlive() {
		n.say(attacker.GetID(), fmt.Sprintf("%s is defeated!", target.GetName()))
		engine.Publish(ctx, o.eventBus, engine.EventCombatantDefeated, attacker, target, nil)
	}
}

// die rolls one die; a failing source counts as a 1
func (o *orchestrator) die(sides int) int {
	v, err := o.roller.Die(sides)
	if err != nil {
		slog.Error("die roll failed", "sides", sides, "error", err)
		return 1
	}
	return v
}

// chance rolls percentile; a failing source counts as a failed roll
func (o *orchestrator) chance(percent int) bool {
	ok, err := o.roller.Chance(percent)
	if err != nil {
		slog.Error("chance roll failed", "percent", percent, "error", err)
		return false
	}
	return ok
}

// rollDamage rolls weapon damage; a hit always deals at least 1
func (o *orchestrator) rollDamage(notation string) int {
	v, err := o.roller.Roll(notation)
	if err != nil {
		slog.Error("damage roll failed", "dice", notation, "error", err)
		return 1
	}
	return max(v, 1)
}

func (o *orchestrator) appendLog(ctx context.Context, encounterID string, entries []combatlog.Entry) {
	if o.combatLog == nil || len(entries) == 0 {
		return
	}
	_, err := o.combatLog.Append(ctx, &combatlog.AppendInput{
		EncounterID: encounterID,
		Entries:     entries,
	})
	if err != nil {
		slog.Warn("failed to append combat log",
			"encounter_id", encounterID,
			"error", err)
	}
}

func averageAgility(combatants []entities.Combatant) int {
	if len(combatants) == 0 {
		return 0
	}
	total := 0
	for _, c := range combatants {
		total += c.GetAgility()
	}
	return total / len(combatants)
}

func announce(monsters []*entities.Monster) string {
	if len(monsters) == 1 {
		return fmt.Sprintf("A %s appears!", monsters[0].Name)
	}
	return fmt.Sprintf("%d monsters appear!", len(monsters))
}
