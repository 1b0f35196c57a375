package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-crawl/internal/config"
	"github.com/KirkDiggler/rpg-crawl/internal/engine"
)

type BalanceTestSuite struct {
	suite.Suite
	balance engine.Balance
}

func TestBalanceSuite(t *testing.T) {
	suite.Run(t, new(BalanceTestSuite))
}

func (s *BalanceTestSuite) SetupTest() {
	s.balance = engine.DefaultBalance()
}

func (s *BalanceTestSuite) TestSpellPower_StrictlyIncreasing() {
	s.Greater(s.balance.SpellPower(10, 20), s.balance.SpellPower(1, 10))

	for level := 1; level < 20; level++ {
		for stat := 3; stat < 25; stat++ {
			base := s.balance.SpellPower(level, stat)
			s.Greater(s.balance.SpellPower(level+1, stat), base, "level %d stat %d", level, stat)
			s.Greater(s.balance.SpellPower(level, stat+1), base, "level %d stat %d", level, stat)
		}
	}
}

func (s *BalanceTestSuite) TestScaleMagnitude_FollowsPower() {
	weak := s.balance.SpellPower(1, 10)
	strong := s.balance.SpellPower(10, 20)

	for roll := 1; roll <= 8; roll++ {
		s.GreaterOrEqual(
			s.balance.ScaleMagnitude(roll, strong, 1.0),
			s.balance.ScaleMagnitude(roll, weak, 1.0),
		)
	}
	s.Equal(0, s.balance.ScaleMagnitude(0, strong, 1.0))
	s.Equal(0, s.balance.ScaleMagnitude(-3, strong, 1.0))
}

func (s *BalanceTestSuite) TestFizzleChance_DecreasesWithFloor() {
	prev := s.balance.FizzleChance(1, 10)
	for level := 2; level <= 20; level++ {
		cur := s.balance.FizzleChance(level, 10)
		s.LessOrEqual(cur, prev)
		prev = cur
	}
	s.LessOrEqual(s.balance.FizzleChance(5, 18), s.balance.FizzleChance(5, 12))
	s.Equal(s.balance.MinFizzle, s.balance.FizzleChance(50, 25))
}

func (s *BalanceTestSuite) TestApplyMagicResistance_Monotonic() {
	for _, amount := range []int{1, 7, 20, 333} {
		s.GreaterOrEqual(engine.ApplyMagicResistance(amount, 0), engine.ApplyMagicResistance(amount, 50))
		s.GreaterOrEqual(engine.ApplyMagicResistance(amount, 50), engine.ApplyMagicResistance(amount, 90))
	}
	s.Equal(20, engine.ApplyMagicResistance(20, 0))
	s.Equal(10, engine.ApplyMagicResistance(20, 50))
	s.Equal(2, engine.ApplyMagicResistance(20, 90))
	s.Equal(0, engine.ApplyMagicResistance(20, 100))
	s.Equal(20, engine.ApplyMagicResistance(20, -10))
}

func (s *BalanceTestSuite) TestApplyElementalResistance() {
	s.Equal(9, engine.ApplyElementalResistance(9, false))
	s.Equal(4, engine.ApplyElementalResistance(9, true))
}

func (s *BalanceTestSuite) TestHitChance_Bounds() {
	s.Equal(95, s.balance.HitChance(20, 10))
	s.Equal(5, s.balance.HitChance(1, -20))
	s.Greater(s.balance.HitChance(1, 10), s.balance.HitChance(1, 2))
}

func (s *BalanceTestSuite) TestFleeChance() {
	s.Equal(50, s.balance.FleeChance(10, 10))
	s.Greater(s.balance.FleeChance(15, 10), s.balance.FleeChance(10, 15))
	s.Equal(95, s.balance.FleeChance(100, 0))
}

func (s *BalanceTestSuite) TestExperienceShare() {
	s.Equal(100, s.balance.ExperienceShare(300, 3))
	s.Equal(0, s.balance.ExperienceShare(300, 0))
}

func (s *BalanceTestSuite) TestNewBalance_Overrides() {
	b := engine.NewBalance(config.BalanceConfig{PowerPerLevel: 0.5, BaseHitChance: 70})

	s.Equal(0.5, b.PowerPerLevel)
	s.Equal(70, b.BaseHitChance)
	s.Equal(s.balance.PowerPerStat, b.PowerPerStat)
	s.Equal(s.balance.BaseFizzle, b.BaseFizzle)
}
