package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-crawl/internal/dice"
	"github.com/KirkDiggler/rpg-crawl/internal/engine"
	"github.com/KirkDiggler/rpg-crawl/internal/entities"
	"github.com/KirkDiggler/rpg-crawl/internal/errors"
	"github.com/KirkDiggler/rpg-crawl/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-crawl/internal/orchestrators/spellcast"
	"github.com/KirkDiggler/rpg-crawl/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-crawl/internal/repositories/encounters"
	"github.com/KirkDiggler/rpg-crawl/internal/repositories/savegame"
	"github.com/KirkDiggler/rpg-crawl/internal/spells"
)

var (
	simSeed      int64
	simMonsters  int
	simSaveSlot  string
	simMaxRounds int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a battle between the party and a group of monsters",
	Long: `Run one encounter with every player turn chosen automatically. With
--save-slot the party is loaded from that slot when it exists and written
back when the battle ends.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "Dice seed; 0 uses CRAWL_SEED or crypto randomness")
	simulateCmd.Flags().IntVar(&simMonsters, "monsters", 3, "Number of monsters to fight")
	simulateCmd.Flags().StringVar(&simSaveSlot, "save-slot", "", "Save slot to load and store the party")
	simulateCmd.Flags().IntVar(&simMaxRounds, "max-rounds", 50, "Call the battle off after this many rounds")
}

// game is the wired engine for one simulate run
type game struct {
	registry *spells.Registry
	combat   combat.Service
}

func newGame(seed int64, st *stores) (*game, error) {
	var source toolkitdice.Roller
	if seed != 0 {
		source = dice.NewSeededSource(seed)
	}
	roller := dice.NewRoller(source)

	registry, err := spells.LoadCatalog()
	if err != nil {
		return nil, err
	}

	balance := engine.NewBalance(cfg.Balance)
	bus := newEventBus()

	caster, err := spellcast.NewOrchestrator(&spellcast.Config{
		Registry:      registry,
		Roller:        roller,
		Balance:       &balance,
		EventBus:      bus,
		DisableFizzle: cfg.DisableFizzle,
	})
	if err != nil {
		return nil, err
	}

	svc, err := combat.NewOrchestrator(&combat.Config{
		EncounterRepo: encounters.NewInMemory(),
		SpellCaster:   caster,
		Registry:      registry,
		Roller:        roller,
		IDGenerator:   idgen.NewUUID("enc"),
		Balance:       &balance,
		EventBus:      bus,
		CombatLogRepo: st.combatLog,
	})
	if err != nil {
		return nil, err
	}

	return &game{registry: registry, combat: svc}, nil
}

// newEventBus logs the events worth surfacing outside the narration
func newEventBus() events.EventBus {
	bus := events.NewBus()
	bus.SubscribeFunc(engine.EventCombatantDefeated, 0, func(_ context.Context, e events.Event) error {
		if target := e.Target(); target != nil {
			slog.Debug("combatant defeated", "combatant_id", target.GetID())
		}
		return nil
	})
	bus.SubscribeFunc(engine.EventCharacterLeveledUp, 0, func(_ context.Context, e events.Event) error {
		if source := e.Source(); source != nil {
			slog.Info("character leveled up", "character_id", source.GetID())
		}
		return nil
	})
	return bus
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if simMonsters < 1 {
		return errors.InvalidArgumentf("monsters must be at least 1, got %d", simMonsters)
	}
	if simMaxRounds < 1 {
		return errors.InvalidArgumentf("max-rounds must be at least 1, got %d", simMaxRounds)
	}

	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed = simSeed
	}

	st, err := openStores(ctx, simSaveSlot != "")
	if err != nil {
		return err
	}
	defer st.Close()

	g, err := newGame(seed, st)
	if err != nil {
		return err
	}

	slot, err := loadSlot(ctx, st.saves, simSaveSlot)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	enc, err := runBattle(ctx, w, g, slot.Party, newMonsters(simMonsters), simMaxRounds)
	if err != nil {
		return err
	}

	printSummary(w, enc, simMaxRounds)

	if simSaveSlot == "" {
		return nil
	}
	saved, err := storeSlot(ctx, st.saves, slot, enc)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Saved party to slot %s\n", saved.SlotID)
	return nil
}

// runBattle plays one encounter with the autopilot choosing every player
// turn, stopping once it ends or runs past maxRounds
func runBattle(
	ctx context.Context,
	w io.Writer,
	g *game,
	party []*entities.Character,
	monsters []*entities.Monster,
	maxRounds int,
) (*entities.Encounter, error) {
	started, err := g.combat.StartEncounter(ctx, &combat.StartEncounterInput{
		Party:    party,
		Monsters: monsters,
	})
	if err != nil {
		return nil, err
	}
	enc := started.Encounter
	fmt.Fprintf(w, "Encounter %s\n", enc.ID)
	printMessages(w, started.Messages)

	refused := false
	for !enc.IsOver() && enc.Round <= maxRounds {
		input := chooseAction(enc, g.registry)
		if refused {
			// a refused cast keeps the turn; swing instead of retrying it
			input.Action = combat.ActionAttack
		}
		round, turn := enc.Round, enc.CurrentTurn

		out, err := g.combat.ExecutePlayerAction(ctx, input)
		if err != nil {
			return nil, err
		}
		printMessages(w, out.Messages)
		enc = out.Encounter
		refused = !enc.IsOver() && enc.Round == round && enc.CurrentTurn == turn
	}
	return enc, nil
}

// storeSlot writes the party back after a battle; a victory adds loot
func storeSlot(
	ctx context.Context,
	saves savegame.Repository,
	slot *savegame.Slot,
	enc *entities.Encounter,
) (*savegame.Slot, error) {
	if enc.Outcome == entities.OutcomeVictory {
		slot.Gold += loot(enc)
	}
	out, err := saves.Save(ctx, &savegame.SaveInput{Slot: slot})
	if err != nil {
		return nil, err
	}
	return out.Slot, nil
}

// loadSlot returns the stored slot, or a fresh one holding the stock party
// when the slot is unset or missing
func loadSlot(ctx context.Context, saves savegame.Repository, slotID string) (*savegame.Slot, error) {
	fresh := &savegame.Slot{SlotID: slotID, Name: "New party", Party: newParty()}
	if slotID == "" {
		return fresh, nil
	}

	out, err := saves.Get(ctx, &savegame.GetInput{SlotID: slotID})
	switch {
	case errors.IsNotFound(err):
		slog.Info("save slot not found, starting a new party", "slot_id", slotID)
		return fresh, nil
	case err != nil:
		return nil, err
	}

	if !entities.AnyAlive(out.Slot.Party) {
		return nil, errors.FailedPreconditionf("every character in slot %s is dead", slotID)
	}
	return out.Slot, nil
}

func loot(enc *entities.Encounter) int {
	gold := 0
	for _, m := range enc.Monsters {
		gold += m.ExperienceValue / 4
	}
	return gold
}

func printMessages(w io.Writer, messages []string) {
	for _, m := range messages {
		fmt.Fprintf(w, "  %s\n", m)
	}
}

func printSummary(w io.Writer, enc *entities.Encounter, maxRounds int) {
	switch enc.Outcome {
	case entities.OutcomeVictory:
		fmt.Fprintf(w, "Victory after %d rounds.\n", enc.Round)
	case entities.OutcomeDefeat:
		fmt.Fprintf(w, "Defeat after %d rounds.\n", enc.Round)
	case entities.OutcomeFled:
		fmt.Fprintf(w, "The party fled after %d rounds.\n", enc.Round)
	default:
		fmt.Fprintf(w, "The battle was called off after %d rounds.\n", maxRounds)
	}
	printParty(w, enc.Party)
}
