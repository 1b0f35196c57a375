package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-crawl/internal/entities"
	"github.com/KirkDiggler/rpg-crawl/internal/errors"
	"github.com/KirkDiggler/rpg-crawl/internal/orchestrators/combat"
	combatmock "github.com/KirkDiggler/rpg-crawl/internal/orchestrators/combat/mock"
	"github.com/KirkDiggler/rpg-crawl/internal/spells"
	"github.com/KirkDiggler/rpg-crawl/internal/testutils"
)

type BattleTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	combat   *combatmock.MockService
	registry *spells.Registry
	out      *bytes.Buffer

	mage   *entities.Character
	goblin *entities.Monster
}

func TestBattleSuite(t *testing.T) {
	suite.Run(t, new(BattleTestSuite))
}

func (s *BattleTestSuite) SetupSuite() {
	registry, err := spells.LoadCatalog()
	s.Require().NoError(err)
	s.registry = registry
}

func (s *BattleTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.combat = combatmock.NewMockService(s.ctrl)
	s.out = &bytes.Buffer{}

	s.mage = testutils.CreateTestMage("char_mage")
	s.goblin = testutils.CreateTestMonster("mon_1", 30)
}

func (s *BattleTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BattleTestSuite) game() *game {
	return &game{registry: s.registry, combat: s.combat}
}

func (s *BattleTestSuite) encounter(round int) *entities.Encounter {
	return &entities.Encounter{
		ID:        "enc_1",
		Party:     []*entities.Character{s.mage},
		Monsters:  []*entities.Monster{s.goblin},
		TurnOrder: []entities.TurnEntry{{CombatantID: "char_mage", IsPlayer: true}},
		Round:     round,
		State:     entities.EncounterAwaitingPlayer,
	}
}

func (s *BattleTestSuite) expectStart(enc *entities.Encounter) {
	s.combat.EXPECT().
		StartEncounter(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *combat.StartEncounterInput) (*combat.StartEncounterOutput, error) {
			s.Equal([]*entities.Character{s.mage}, in.Party)
			s.Equal([]*entities.Monster{s.goblin}, in.Monsters)
			return &combat.StartEncounterOutput{
				Encounter: enc,
				Messages:  []string{"A Goblin appears!"},
			}, nil
		})
}

func (s *BattleTestSuite) TestRefusedCastFallsBackToAttack() {
	start := s.encounter(1)
	s.expectStart(start)

	ended := s.encounter(1)
	ended.State = entities.EncounterEnded
	ended.Outcome = entities.OutcomeVictory

	gomock.InOrder(
		s.combat.EXPECT().
			ExecutePlayerAction(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in *combat.ExecutePlayerActionInput) (*combat.ExecutePlayerActionOutput, error) {
				s.Equal(combat.ActionCastSpell, in.Action)
				s.Equal("magic_missile", in.SpellID)
				return &combat.ExecutePlayerActionOutput{
					Messages:  []string{"not enough MP"},
					Encounter: start,
				}, nil
			}),
		s.combat.EXPECT().
			ExecutePlayerAction(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in *combat.ExecutePlayerActionInput) (*combat.ExecutePlayerActionOutput, error) {
				s.Equal(combat.ActionAttack, in.Action)
				s.Equal("enc_1", in.EncounterID)
				return &combat.ExecutePlayerActionOutput{
					Messages:  []string{"Elira hits Goblin for 30 damage."},
					Encounter: ended,
				}, nil
			}),
	)

	enc, err := runBattle(s.ctx, s.out, s.game(), []*entities.Character{s.mage}, []*entities.Monster{s.goblin}, 10)

	s.Require().NoError(err)
	s.Equal(entities.OutcomeVictory, enc.Outcome)
	s.Contains(s.out.String(), "Encounter enc_1")
	s.Contains(s.out.String(), "  A Goblin appears!")
	s.Contains(s.out.String(), "  Elira hits Goblin for 30 damage.")
}

func (s *BattleTestSuite) TestStopsAfterMaxRounds() {
	s.expectStart(s.encounter(1))

	round := 1
	s.combat.EXPECT().
		ExecutePlayerAction(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *combat.ExecutePlayerActionInput) (*combat.ExecutePlayerActionOutput, error) {
			round++
			return &combat.ExecutePlayerActionOutput{Encounter: s.encounter(round)}, nil
		}).
		Times(2)

	enc, err := runBattle(s.ctx, s.out, s.game(), []*entities.Character{s.mage}, []*entities.Monster{s.goblin}, 2)

	s.Require().NoError(err)
	s.False(enc.IsOver())
	s.Equal(3, enc.Round)

	printSummary(s.out, enc, 2)
	s.Contains(s.out.String(), "The battle was called off after 2 rounds.")
}

func (s *BattleTestSuite) TestActionErrorStopsBattle() {
	s.expectStart(s.encounter(1))
	s.combat.EXPECT().
		ExecutePlayerAction(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailablef("encounter store is down"))

	enc, err := runBattle(s.ctx, s.out, s.game(), []*entities.Character{s.mage}, []*entities.Monster{s.goblin}, 10)

	s.Require().Error(err)
	s.Nil(enc)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *BattleTestSuite) TestStartErrorStopsBattle() {
	s.combat.EXPECT().
		StartEncounter(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("party has no living members"))

	_, err := runBattle(s.ctx, s.out, s.game(), []*entities.Character{s.mage}, []*entities.Monster{s.goblin}, 10)

	s.True(errors.IsFailedPrecondition(err))
	s.Empty(s.out.String())
}
