package spells

import (
	"cmp"
	"slices"

	"github.com/KirkDiggler/rpg-crawl/internal/dice"
	"github.com/KirkDiggler/rpg-crawl/internal/entities"
	"github.com/KirkDiggler/rpg-crawl/internal/errors"
)

// Registry is the read-only spell catalog plus learning tables
type Registry struct {
	spells   map[string]*Definition
	learning LearningTable
}

// NewRegistry validates the definitions and learning table and indexes them
func NewRegistry(defs []*Definition, learning LearningTable) (*Registry, error) {
	vb := errors.NewValidationBuilder()
	index := make(map[string]*Definition, len(defs))

	for i, def := range defs {
		if def == nil || def.ID == "" {
			vb.Fieldf("spells", "entry %d has no id", i)
			continue
		}
		if _, dup := index[def.ID]; dup {
			vb.Fieldf(def.ID, "duplicate spell id")
			continue
		}
		validateDefinition(vb, def)
		index[def.ID] = def
	}

	for classID, levels := range learning {
		for level, ids := range levels {
			for _, id := range ids {
				def, ok := index[id]
				if !ok {
					vb.Fieldf("learning."+classID, "level %d references unknown spell %q", level, id)
					continue
				}
				if level < def.Level {
					vb.Fieldf("learning."+classID, "%q needs level %d, unlocked at %d", id, def.Level, level)
				}
			}
		}
	}

	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid spell catalog")
	}

	return &Registry{spells: index, learning: learning}, nil
}

func validateDefinition(vb *errors.ValidationBuilder, def *Definition) {
	if def.Name == "" {
		vb.Field(def.ID, "name is required")
	}
	if !def.School.valid() {
		vb.Fieldf(def.ID, "unknown school %q", def.School)
	}
	if !def.Effect.valid() {
		vb.Fieldf(def.ID, "unknown effect %q", def.Effect)
	}
	if !def.Target.valid() {
		vb.Fieldf(def.ID, "unknown target policy %q", def.Target)
	}
	if def.Level < 1 {
		vb.Field(def.ID, "level must be at least 1")
	}
	if def.MPCost < 0 {
		vb.Field(def.ID, "mp cost must not be negative")
	}
	if def.Scaling < 0 {
		vb.Field(def.ID, "scaling must not be negative")
	}
	if _, err := dice.Parse(def.Magnitude); err != nil {
		vb.Fieldf(def.ID, "bad magnitude %q", def.Magnitude)
	}
}

// GetSpellByID looks up a spell
func (r *Registry) GetSpellByID(id string) (*Definition, bool) {
	def, ok := r.spells[id]
	return def, ok
}

// GetSpellsBySchool returns a school's spells ordered by level then id
func (r *Registry) GetSpellsBySchool(school School) []*Definition {
	var out []*Definition
	for _, def := range r.spells {
		if def.School == school {
			out = append(out, def)
		}
	}
	sortDefinitions(out)
	return out
}

// All returns the whole catalog ordered by school, level and id
func (r *Registry) All() []*Definition {
	out := make([]*Definition, 0, len(r.spells))
	for _, def := range r.spells {
		out = append(out, def)
	}
	slices.SortFunc(out, func(a, b *Definition) int {
		return cmp.Or(cmp.Compare(a.School, b.School), compareDefinitions(a, b))
	})
	return out
}

// GetSchoolsForClass returns the schools a class ever learns from.
// Non-casters get an empty map.
func (r *Registry) GetSchoolsForClass(classID string) map[School]bool {
	schools := make(map[School]bool)
	for _, ids := range r.learning[classID] {
		for _, id := range ids {
			if def, ok := r.spells[id]; ok {
				schools[def.School] = true
			}
		}
	}
	return schools
}

// GetSpellsForClass returns every spell a class can learn, ordered by
// level then id
func (r *Registry) GetSpellsForClass(classID string) []*Definition {
	var out []*Definition
	for _, id := range r.learning.SpellsUpTo(classID, entities.MaxLevel) {
		out = append(out, r.spells[id])
	}
	sortDefinitions(out)
	return out
}

// Learning exposes the learning table
func (r *Registry) Learning() LearningTable {
	return r.learning
}

// LearnSpells teaches the character every spell its class unlocks at or
// below level that it does not already know. The new ids come back sorted.
func (r *Registry) LearnSpells(character *entities.Character, level int) []string {
	if character == nil {
		return nil
	}
	var learned []string
	for _, id := range r.learning.SpellsUpTo(character.ClassID, level) {
		if character.LearnSpell(id) {
			learned = append(learned, id)
		}
	}
	return learned
}

func sortDefinitions(defs []*Definition) {
	slices.SortFunc(defs, compareDefinitions)
}

func compareDefinitions(a, b *Definition) int {
	return cmp.Or(cmp.Compare(a.Level, b.Level), cmp.Compare(a.ID, b.ID))
}
