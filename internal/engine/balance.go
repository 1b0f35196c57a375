// Package engine holds the numeric balancing rules shared by the spell
// caster and the combat controller. Exact coefficients are tunable; the
// guarantees are the orderings: spell power rises with level and casting
// stat, fizzle chance falls with them, and magic resistance never
// increases the damage a target takes.
package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-crawl/internal/config"
)

// Balance is the set of coefficients the formulas read
type Balance struct {
	// Spell power = 1 + PowerPerLevel*level + PowerPerStat*stat
	PowerPerLevel float64
	PowerPerStat  float64

	// Fizzle percent = BaseFizzle - FizzlePerLevel*level - FizzlePerStat*(stat-10),
	// never below MinFizzle
	BaseFizzle     int
	FizzlePerLevel int
	FizzlePerStat  int
	MinFizzle      int

	// Hit percent = BaseHitChance + HitPerLevel*level + HitPerArmorClass*AC.
	// Lower armor class is harder to hit.
	BaseHitChance    int
	HitPerLevel      int
	HitPerArmorClass int

	// Flee percent = BaseFleeChance + FleePerAgility*(party - monsters)
	BaseFleeChance int
	FleePerAgility int

	// ExperienceRatio scales monster experience before it is shared
	ExperienceRatio float64
}

// Chance bounds for rolls that should never be certain
const (
	minChance = 5
	maxChance = 95
)

// DefaultBalance returns the stock coefficients
func DefaultBalance() Balance {
	return Balance{
		PowerPerLevel:    0.1,
		PowerPerStat:     0.05,
		BaseFizzle:       30,
		FizzlePerLevel:   3,
		FizzlePerStat:    1,
		MinFizzle:        2,
		BaseHitChance:    50,
		HitPerLevel:      3,
		HitPerArmorClass: 3,
		BaseFleeChance:   50,
		FleePerAgility:   5,
		ExperienceRatio:  1.0,
	}
}

// NewBalance applies non-zero overrides from cfg on top of DefaultBalance
func NewBalance(cfg config.BalanceConfig) Balance {
	b := DefaultBalance()
	if cfg.PowerPerLevel > 0 {
		b.PowerPerLevel = cfg.PowerPerLevel
	}
	if cfg.PowerPerStat > 0 {
		b.PowerPerStat = cfg.PowerPerStat
	}
	if cfg.BaseFizzle > 0 {
		b.BaseFizzle = cfg.BaseFizzle
	}
	if cfg.MinFizzle > 0 {
		b.MinFizzle = cfg.MinFizzle
	}
	if cfg.BaseHitChance > 0 {
		b.BaseHitChance = cfg.BaseHitChance
	}
	if cfg.ExperienceRatio > 0 {
		b.ExperienceRatio = cfg.ExperienceRatio
	}
	return b
}

// SpellPower is the multiplier applied to a spell's rolled magnitude. It
// is strictly increasing in level and stat while both coefficients are
// positive.
func (b Balance) SpellPower(level, stat int) float64 {
	level = max(level, 1)
	stat = max(stat, 0)
	return 1 + b.PowerPerLevel*float64(level) + b.PowerPerStat*float64(stat)
}

// FizzleChance is the percent chance a cast fails after MP is spent
func (b Balance) FizzleChance(level, stat int) int {
	level = max(level, 1)
	chance := b.BaseFizzle - b.FizzlePerLevel*level - b.FizzlePerStat*max(stat-10, 0)
	return clamp(chance, max(b.MinFizzle, 0), 100)
}

// HitChance is the percent chance a weapon attack lands
func (b Balance) HitChance(attackerLevel, targetArmorClass int) int {
	attackerLevel = max(attackerLevel, 1)
	chance := b.BaseHitChance + b.HitPerLevel*attackerLevel + b.HitPerArmorClass*targetArmorClass
	return clamp(chance, minChance, maxChance)
}

// FleeChance is the percent chance the party escapes
func (b Balance) FleeChance(partyAgility, monsterAgility int) int {
	chance := b.BaseFleeChance + b.FleePerAgility*(partyAgility-monsterAgility)
	return clamp(chance, minChance, maxChance)
}

// ScaleMagnitude turns a rolled magnitude into effect points. Rounding is
// monotonic so a larger power never yields fewer points.
func (b Balance) ScaleMagnitude(roll int, power, scaling float64) int {
	if roll <= 0 || power <= 0 || scaling <= 0 {
		return 0
	}
	return int(math.Round(float64(roll) * power * scaling))
}

// ApplyMagicResistance reduces amount by a [0,100] percentage
func ApplyMagicResistance(amount, magicResistance int) int {
	if amount <= 0 {
		return 0
	}
	mr := clamp(magicResistance, 0, 100)
	return amount * (100 - mr) / 100
}

// ApplyElementalResistance halves amount for a resisted damage type
func ApplyElementalResistance(amount int, resisted bool) int {
	if !resisted {
		return amount
	}
	return amount / 2
}

// ExperienceShare splits total monster experience among survivors
func (b Balance) ExperienceShare(total, survivors int) int {
	if total <= 0 || survivors <= 0 {
		return 0
	}
	return int(float64(total)*b.ExperienceRatio) / survivors
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
