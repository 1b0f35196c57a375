package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-crawl/internal/errors"
	"github.com/KirkDiggler/rpg-crawl/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-crawl/internal/redis"
	"github.com/KirkDiggler/rpg-crawl/internal/repositories/combatlog"
	"github.com/KirkDiggler/rpg-crawl/internal/repositories/savegame"
)

// stores holds the Redis-backed repositories. Both are nil when no Redis
// address is configured.
type stores struct {
	client    redisclient.Client
	saves     savegame.Repository
	combatLog combatlog.Repository
}

func (s *stores) Close() {
	if s.client == nil {
		return
	}
	if err := s.client.Close(); err != nil {
		slog.Warn("failed to close redis client", "error", err)
	}
}

// openStores connects to Redis when configured. With required set, a
// missing address is an error instead of an empty result.
func openStores(ctx context.Context, required bool) (*stores, error) {
	if cfg.RedisAddr == "" {
		if required {
			return nil, errors.FailedPrecondition("redis is not configured; set CRAWL_REDIS_ADDR or --redis")
		}
		return &stores{}, nil
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		DialTimeout: 5 * time.Second,
		MaxRetries:  2,
	})
	if err != nil {
		return nil, err
	}

	st := &stores{client: client}
	if err := st.connect(ctx); err != nil {
		st.Close()
		return nil, err
	}

	slog.Debug("connected to redis", "addr", cfg.RedisAddr)
	return st, nil
}

// connect checks the server and builds the repositories over the client
func (s *stores) connect(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisclient.Ping(pingCtx, s.client); err != nil {
		return err
	}

	c := clock.New()
	saves, err := savegame.NewRedis(&savegame.RedisConfig{Client: s.client, Clock: c})
	if err != nil {
		return err
	}
	logs, err := combatlog.NewRedisRepository(&combatlog.Config{
		Client: s.client,
		Clock:  c,
		TTL:    cfg.CombatLogTTL,
	})
	if err != nil {
		return err
	}

	s.saves = saves
	s.combatLog = logs
	return nil
}
