package entities

// Entity types reported through core.Entity
const (
	TypeCharacter = "character"
	TypeMonster   = "monster"
)

// Class identifiers
const (
	ClassFighter = "fighter"
	ClassMage    = "mage"
	ClassPriest  = "priest"
	ClassThief   = "thief"
	ClassBishop  = "bishop"
	ClassSamurai = "samurai"
	ClassLord    = "lord"
	ClassNinja   = "ninja"
)

// DamageType tags an attack or spell for elemental resistance checks
type DamageType string

// Damage types
const (
	DamagePhysical  DamageType = "physical"
	DamageFire      DamageType = "fire"
	DamageCold      DamageType = "cold"
	DamageLightning DamageType = "lightning"
	DamageHoly      DamageType = "holy"
	DamagePoison    DamageType = "poison"
)

// Stat names a character attribute
type Stat string

// Stats
const (
	StatStrength     Stat = "strength"
	StatIntelligence Stat = "intelligence"
	StatPiety        Stat = "piety"
	StatVitality     Stat = "vitality"
	StatAgility      Stat = "agility"
	StatLuck         Stat = "luck"
)

// ClassGrowth is what a class gains per level
type ClassGrowth struct {
	HPPerLevel int
	MPPerLevel int
}

// classGrowth holds per-level growth; non-casters gain no MP
var classGrowth = map[string]ClassGrowth{
	ClassFighter: {HPPerLevel: 10},
	ClassMage:    {HPPerLevel: 4, MPPerLevel: 6},
	ClassPriest:  {HPPerLevel: 8, MPPerLevel: 5},
	ClassThief:   {HPPerLevel: 6},
	ClassBishop:  {HPPerLevel: 6, MPPerLevel: 5},
	ClassSamurai: {HPPerLevel: 8, MPPerLevel: 2},
	ClassLord:    {HPPerLevel: 10, MPPerLevel: 2},
	ClassNinja:   {HPPerLevel: 6},
}

// GrowthFor returns the growth for a class, zero for unknown classes
func GrowthFor(classID string) ClassGrowth {
	return classGrowth[classID]
}

// experienceForLevel[i] is the total experience needed to reach level i+1
var experienceForLevel = []int{
	0, 1000, 1724, 2972, 5124, 8834, 15231, 26260, 45275, 78060, 134586, 232044, 400075,
}

// MaxLevel is the highest level the progression table reaches
var MaxLevel = len(experienceForLevel)

// ExperienceForLevel returns the total experience needed for level, or -1
// when the level is past the table
func ExperienceForLevel(level int) int {
	if level < 1 {
		return 0
	}
	if level > len(experienceForLevel) {
		return -1
	}
	return experienceForLevel[level-1]
}
