package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-crawl/internal/repositories/savegame"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Manage save slots",
}

var savesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List save slots",
	Args:  cobra.NoArgs,
	RunE:  runSavesList,
}

var savesShowCmd = &cobra.Command{
	Use:   "show <slot>",
	Short: "Show the party stored in a slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavesShow,
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete a save slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavesDelete,
}

func init() {
	savesCmd.AddCommand(savesListCmd)
	savesCmd.AddCommand(savesShowCmd)
	savesCmd.AddCommand(savesDeleteCmd)
}

func runSavesList(cmd *cobra.Command, _ []string) error {
	s, err := openStores(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer s.Close()

	out, err := s.saves.List(cmd.Context(), &savegame.ListInput{})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(out.Slots) == 0 {
		fmt.Fprintln(w, "No save slots.")
		return nil
	}
	for _, slot := range out.Slots {
		fmt.Fprintf(w, "%-16s %-20s party:%d gold:%d saved:%s\n",
			slot.SlotID, slot.Name, len(slot.Party), slot.Gold, slot.SavedAt.Format(time.RFC3339))
	}
	return nil
}

func runSavesShow(cmd *cobra.Command, args []string) error {
	s, err := openStores(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer s.Close()

	out, err := s.saves.Get(cmd.Context(), &savegame.GetInput{SlotID: args[0]})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	slot := out.Slot
	fmt.Fprintf(w, "Slot %s (%s), saved %s\n", slot.SlotID, slot.Name, slot.SavedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Gold: %d\n", slot.Gold)
	printParty(w, slot.Party)
	return nil
}

func runSavesDelete(cmd *cobra.Command, args []string) error {
	s, err := openStores(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer s.Close()

	if _, err := s.saves.Delete(cmd.Context(), &savegame.DeleteInput{SlotID: args[0]}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted slot %s\n", args[0])
	return nil
}
