package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-crawl/internal/entities"
)

type VitalsTestSuite struct {
	suite.Suite
	fighter *entities.Character
	goblin  *entities.Monster
}

func TestVitalsSuite(t *testing.T) {
	suite.Run(t, new(VitalsTestSuite))
}

func (s *VitalsTestSuite) SetupTest() {
	s.fighter = &entities.Character{
		ID: "char_fighter", Name: "Gorn", ClassID: entities.ClassFighter, Level: 1,
		HP: 12, MaxHP: 12, ArmorClass: 8,
	}
	s.goblin = &entities.Monster{
		ID: "mon_goblin", Name: "Goblin", CurrentHP: 6, HitPoints: 6, ArmorClass: 10,
	}
}

func (s *VitalsTestSuite) TestApplyDamage_LethalBlowIsClamped() {
	s.fighter.HP = 1

	dealt := entities.ApplyDamage(s.fighter, 50)

	s.Equal(1, dealt)
	s.Equal(0, s.fighter.HP)
	s.True(s.fighter.Dead)
	s.False(s.fighter.IsAlive())
}

func (s *VitalsTestSuite) TestApplyDamage_AnyAmountAtOrAboveHPLeavesZero() {
	for _, amount := range []int{6, 7, 100, 1 << 30} {
		s.Run("amount", func() {
			s.goblin.CurrentHP, s.goblin.Defeated = 6, false
			dealt := entities.ApplyDamage(s.goblin, amount)
			s.Equal(6, dealt)
			s.Equal(0, s.goblin.CurrentHP)
			s.True(s.goblin.Defeated)
		})
	}
}

func (s *VitalsTestSuite) TestApplyDamage_NegativeNeverHeals() {
	s.fighter.HP = 5

	dealt := entities.ApplyDamage(s.fighter, -10)

	s.Equal(0, dealt)
	s.Equal(5, s.fighter.HP)
	s.True(s.fighter.IsAlive())
}

func (s *VitalsTestSuite) TestApplyDamage_Partial() {
	dealt := entities.ApplyDamage(s.goblin, 4)

	s.Equal(4, dealt)
	s.Equal(2, s.goblin.CurrentHP)
	s.False(s.goblin.Defeated)
}

func (s *VitalsTestSuite) TestApplyHealing_ClampsToMax() {
	s.fighter.HP = 10

	healed := entities.ApplyHealing(s.fighter, 50)

	s.Equal(2, healed)
	s.Equal(12, s.fighter.HP)
}

func (s *VitalsTestSuite) TestApplyHealing_FullHPReceivesNothing() {
	healed := entities.ApplyHealing(s.fighter, 8)

	s.Equal(0, healed)
	s.Equal(s.fighter.MaxHP, s.fighter.HP)
}

func (s *VitalsTestSuite) TestApplyHealing_NeverExceedsMaxForAnyAmount() {
	for _, amount := range []int{-5, 0, 1, 3, 11, 999} {
		s.fighter.HP = 4
		entities.ApplyHealing(s.fighter, amount)
		s.LessOrEqual(s.fighter.HP, s.fighter.MaxHP)
		s.GreaterOrEqual(s.fighter.HP, 4)
	}
}

func (s *VitalsTestSuite) TestApplyHealing_DoesNotRevive() {
	entities.ApplyDamage(s.fighter, 100)

	healed := entities.ApplyHealing(s.fighter, 10)

	s.Equal(0, healed)
	s.Equal(0, s.fighter.HP)
}

func (s *VitalsTestSuite) TestGetHP_NormalizesEntityKinds() {
	combatants := []entities.Combatant{s.fighter, s.goblin}
	s.Equal(12, entities.GetHP(combatants[0]))
	s.Equal(6, entities.GetHP(combatants[1]))
	s.Equal(0, entities.GetHP(nil))
}

func (s *VitalsTestSuite) TestSpendAndRestoreMP() {
	mage := &entities.Character{ID: "char_mage", MP: 5, MaxMP: 10, HP: 4, MaxHP: 4}

	s.False(entities.SpendMP(mage, 6))
	s.Equal(5, mage.MP)

	s.True(entities.SpendMP(mage, 5))
	s.Equal(0, mage.MP)

	s.Equal(10, entities.RestoreMP(mage, 25))
	s.Equal(10, mage.MP)

	s.False(entities.SpendMP(s.goblin, 1))
}

func (s *VitalsTestSuite) TestLivingKeepsOrder() {
	a := &entities.Monster{ID: "a", CurrentHP: 1, HitPoints: 1}
	b := &entities.Monster{ID: "b", CurrentHP: 0, HitPoints: 1, Defeated: true}
	c := &entities.Monster{ID: "c", CurrentHP: 3, HitPoints: 3}

	living := entities.Living([]*entities.Monster{a, b, c})
	s.Equal([]*entities.Monster{a, c}, living)
	s.True(entities.AnyAlive([]*entities.Monster{b, c}))
	s.False(entities.AnyAlive([]*entities.Monster{b}))
}

func (s *VitalsTestSuite) TestCharacterSerializesLosslessly() {
	s.fighter.KnownSpells = []string{"halito"}
	s.fighter.Resistances = []entities.DamageType{entities.DamageFire}
	entities.ApplyDamage(s.fighter, 5)

	data, err := json.Marshal(s.fighter)
	s.Require().NoError(err)

	var restored entities.Character
	s.Require().NoError(json.Unmarshal(data, &restored))
	s.Equal(*s.fighter, restored)
}
