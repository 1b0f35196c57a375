// Package config loads runtime settings for the crawl CLI from the environment.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-crawl/internal/errors"
)

// Config holds settings shared by every crawl subcommand. Flags on the
// command line override values read here.
type Config struct {
	LogLevel  string `env:"CRAWL_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"CRAWL_LOG_FORMAT" envDefault:"text"`

	// RedisAddr enables save slots and combat logs when set
	RedisAddr string `env:"CRAWL_REDIS_ADDR"`

	// Seed drives the dice source; 0 means crypto randomness
	Seed int64 `env:"CRAWL_SEED"`

	DisableFizzle bool          `env:"CRAWL_DISABLE_FIZZLE"`
	CombatLogTTL  time.Duration `env:"CRAWL_COMBAT_LOG_TTL" envDefault:"1h"`

	Balance BalanceConfig `envPrefix:"CRAWL_BALANCE_"`
}

// BalanceConfig exposes the tunable spell and combat coefficients.
// Zero values fall back to engine.DefaultBalance.
type BalanceConfig struct {
	PowerPerLevel   float64 `env:"POWER_PER_LEVEL"`
	PowerPerStat    float64 `env:"POWER_PER_STAT"`
	BaseFizzle      int     `env:"BASE_FIZZLE"`
	MinFizzle       int     `env:"MIN_FIZZLE"`
	BaseHitChance   int     `env:"BASE_HIT_CHANCE"`
	ExperienceRatio float64 `env:"EXPERIENCE_RATIO"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks enumerated and ranged settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		vb.Fieldf("LogFormat", "must be text or json, got %q", c.LogFormat)
	}

	if c.CombatLogTTL < 0 {
		vb.Field("CombatLogTTL", "must not be negative")
	}

	if c.Balance.BaseFizzle < 0 || c.Balance.BaseFizzle > 100 {
		vb.Field("Balance.BaseFizzle", "must be between 0 and 100")
	}
	if c.Balance.MinFizzle < 0 || c.Balance.MinFizzle > 100 {
		vb.Field("Balance.MinFizzle", "must be between 0 and 100")
	}
	if c.Balance.PowerPerLevel < 0 || c.Balance.PowerPerStat < 0 {
		vb.Field("Balance", "power coefficients must not be negative")
	}

	return vb.Build()
}

// SlogLevel converts LogLevel for use with a slog handler
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
