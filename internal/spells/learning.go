package spells

import (
	"maps"
	"slices"
)

// LearningTable maps class -> character level -> spell ids unlocked at
// that level
type LearningTable map[string]map[int][]string

// SpellsAt returns the spells a class unlocks at exactly level
func (t LearningTable) SpellsAt(classID string, level int) []string {
	out := slices.Clone(t[classID][level])
	slices.Sort(out)
	return out
}

// SpellsUpTo returns every spell a class has unlocked by level
func (t LearningTable) SpellsUpTo(classID string, level int) []string {
	var out []string
	for unlockedAt, ids := range t[classID] {
		if unlockedAt <= level {
			out = append(out, ids...)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Classes lists the classes that learn any spell
func (t LearningTable) Classes() []string {
	return slices.Sorted(maps.Keys(t))
}
