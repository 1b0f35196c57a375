// Package main is the entry point for the crawl CLI
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-crawl/internal/config"
	"github.com/KirkDiggler/rpg-crawl/internal/errors"
)

// cfg is loaded once before any subcommand runs
var cfg *config.Config

var (
	logLevel  string
	logFormat string
	redisAddr string
)

var rootCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Dungeon crawl combat and spellcasting engine",
	Long: `crawl runs party-versus-monster battles, lists the spell catalog and
manages save slots kept in Redis.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text or json)")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Redis address for save slots and combat logs")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(spellsCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(logCmd)
}

// setup reads the environment, lets flags override it and installs the
// default slog handler
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		loaded.LogFormat = logFormat
	}
	if flags.Changed("redis") {
		loaded.RedisAddr = redisAddr
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: loaded.SlogLevel()}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if strings.EqualFold(loaded.LogFormat, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	cfg = loaded
	return nil
}
