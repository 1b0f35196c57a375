package main

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-crawl/internal/entities"
	"github.com/KirkDiggler/rpg-crawl/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-crawl/internal/spells"
	"github.com/KirkDiggler/rpg-crawl/internal/testutils"
)

type AutopilotTestSuite struct {
	suite.Suite
	registry *spells.Registry

	fighter  *entities.Character
	mage     *entities.Character
	priest   *entities.Character
	monsters []*entities.Monster
}

func TestAutopilotSuite(t *testing.T) {
	suite.Run(t, new(AutopilotTestSuite))
}

func (s *AutopilotTestSuite) SetupSuite() {
	registry, err := spells.LoadCatalog()
	s.Require().NoError(err)
	s.registry = registry
}

func (s *AutopilotTestSuite) SetupTest() {
	s.fighter = testutils.CreateTestFighter("char_fighter")
	s.mage = testutils.CreateTestMage("char_mage")
	s.priest = testutils.CreateTestPriest("char_priest")
	s.monsters = []*entities.Monster{
		testutils.CreateTestMonster("mon_1", 8),
		testutils.CreateTestMonster("mon_2", 8),
	}
}

func (s *AutopilotTestSuite) encounterFor(actor *entities.Character) *entities.Encounter {
	return &entities.Encounter{
		ID:        "enc_1",
		Party:     []*entities.Character{s.fighter, s.mage, s.priest},
		Monsters:  s.monsters,
		TurnOrder: []entities.TurnEntry{{CombatantID: actor.ID, IsPlayer: true}},
	}
}

func (s *AutopilotTestSuite) TestFighterAttacksFirstStandingMonster() {
	s.monsters[0].CurrentHP = 0
	s.monsters[0].Defeated = true

	input := chooseAction(s.encounterFor(s.fighter), s.registry)

	s.Equal("enc_1", input.EncounterID)
	s.Equal(combat.ActionAttack, input.Action)
	s.Equal(1, input.TargetIndex)
}

func (s *AutopilotTestSuite) TestMageCastsDamageSpell() {
	input := chooseAction(s.encounterFor(s.mage), s.registry)

	s.Equal(combat.ActionCastSpell, input.Action)
	s.Equal("magic_missile", input.SpellID)
	s.Equal(0, input.TargetIndex)
}

func (s *AutopilotTestSuite) TestMageWithoutMPAttacks() {
	s.mage.MP = 1

	input := chooseAction(s.encounterFor(s.mage), s.registry)

	s.Equal(combat.ActionAttack, input.Action)
	s.Empty(input.SpellID)
}

func (s *AutopilotTestSuite) TestMagePrefersGroupSpellAgainstACrowd() {
	s.mage.Level = 3
	s.mage.KnownSpells = append(s.mage.KnownSpells, "flame_dart", "fireball")

	input := chooseAction(s.encounterFor(s.mage), s.registry)
	s.Equal("fireball", input.SpellID)

	s.monsters[1].CurrentHP = 0
	input = chooseAction(s.encounterFor(s.mage), s.registry)
	s.Equal("fireball", input.SpellID, "highest level wins with one monster left")

	s.mage.MP = 4
	input = chooseAction(s.encounterFor(s.mage), s.registry)
	s.Equal("flame_dart", input.SpellID)
}

func (s *AutopilotTestSuite) TestPriestHealsMostWoundedAlly() {
	s.fighter.HP = 6
	s.mage.HP = 1

	input := chooseAction(s.encounterFor(s.priest), s.registry)

	s.Equal(combat.ActionCastSpell, input.Action)
	s.Equal("heal", input.SpellID)
	s.Equal(1, input.AllyIndex)
}

func (s *AutopilotTestSuite) TestPriestSmitesWhenPartyIsHealthy() {
	input := chooseAction(s.encounterFor(s.priest), s.registry)

	s.Equal("holy_smite", input.SpellID)
}

func (s *AutopilotTestSuite) TestPriestIgnoresDeadAllies() {
	s.fighter.HP = 0
	s.fighter.Dead = true

	input := chooseAction(s.encounterFor(s.priest), s.registry)

	s.NotEqual("heal", input.SpellID)
}
