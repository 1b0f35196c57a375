package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-crawl/internal/errors"
	"github.com/KirkDiggler/rpg-crawl/internal/spells"
)

var (
	spellSchool string
	spellClass  string
)

var spellsCmd = &cobra.Command{
	Use:   "spells",
	Short: "List the spell catalog",
	Long:  `List every spell in the catalog, optionally limited to one school or to the spells a class can learn.`,
	Args:  cobra.NoArgs,
	RunE:  runSpells,
}

func init() {
	spellsCmd.Flags().StringVar(&spellSchool, "school", "", "Only list spells of this school (arcane or divine)")
	spellsCmd.Flags().StringVar(&spellClass, "class", "", "Only list spells this class can learn")
}

func runSpells(cmd *cobra.Command, _ []string) error {
	registry, err := spells.LoadCatalog()
	if err != nil {
		return err
	}

	defs, err := filterSpells(registry, spellSchool, spellClass)
	if err != nil {
		return err
	}
	printSpells(cmd.OutOrStdout(), defs)
	return nil
}

func filterSpells(registry *spells.Registry, school, classID string) ([]*spells.Definition, error) {
	defs := registry.All()

	if school != "" {
		s := spells.School(school)
		if s != spells.SchoolArcane && s != spells.SchoolDivine {
			return nil, errors.InvalidArgumentf("unknown school %q", school)
		}
		defs = registry.GetSpellsBySchool(s)
	}

	if classID != "" {
		learnable := registry.GetSpellsForClass(classID)
		defs = slices.DeleteFunc(slices.Clone(defs), func(d *spells.Definition) bool {
			return !slices.Contains(learnable, d)
		})
	}

	return defs, nil
}

func printSpells(w io.Writer, defs []*spells.Definition) {
	if len(defs) == 0 {
		fmt.Fprintln(w, "No spells.")
		return
	}
	fmt.Fprintf(w, "%-3s %-16s %-18s %-7s %-3s %-8s %-12s %s\n",
		"LV", "ID", "NAME", "SCHOOL", "MP", "EFFECT", "TARGET", "POWER")
	for _, d := range defs {
		fmt.Fprintf(w, "%-3d %-16s %-18s %-7s %-3d %-8s %-12s %s\n",
			d.Level, d.ID, d.Name, d.School, d.MPCost, d.Effect, d.Target, d.Magnitude)
	}
}
