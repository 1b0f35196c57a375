package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-crawl/internal/repositories/combatlog"
)

var logCmd = &cobra.Command{
	Use:   "log <encounter-id>",
	Short: "Print the stored combat log of an encounter",
	Args:  cobra.ExactArgs(1),
	RunE:  runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	s, err := openStores(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer s.Close()

	out, err := s.combatLog.Get(cmd.Context(), &combatlog.GetInput{EncounterID: args[0]})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, e := range out.Log.Entries {
		fmt.Fprintf(w, "[round %d] %s\n", e.Round, e.Message)
	}
	return nil
}
