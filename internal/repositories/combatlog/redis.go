package combatlog

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-crawl/internal/errors"
	"github.com/KirkDiggler/rpg-crawl/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-crawl/internal/redis"
)

const (
	// Key pattern: combatlog:{encounter_id}
	logKeyPrefix = "combatlog:"
	defaultTTL   = time.Hour

	maxAppendAttempts = 50

	errEncounterIDEmpty = "encounter ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL defaults to one hour
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl must not be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for combat logs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Append adds entries to the log. The expiry is fixed when the log is
// created; later appends keep the remaining TTL. Concurrent appends to one
// encounter are serialized with WATCH and retried.
func (r *redisRepository) Append(ctx context.Context, input *AppendInput) (*AppendOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	key := r.buildKey(input.EncounterID)
	for range maxAppendAttempts {
		var log *Log
		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			var err error
			log, err = r.appendWatched(ctx, tx, input)
			return err
		}, key)
		if err == nil {
			return &AppendOutput{Log: log}, nil
		}
		if err != redis.TxFailedErr {
			return nil, err
		}
	}

	return nil, errors.Unavailablef("combat log for %s kept changing during append", input.EncounterID)
}

func (r *redisRepository) appendWatched(ctx context.Context, tx *redis.Tx, input *AppendInput) (*Log, error) {
	now := r.clock.Now()
	log, err := r.load(ctx, tx, input.EncounterID)
	switch {
	case errors.IsNotFound(err):
		log = &Log{
			EncounterID: input.EncounterID,
			CreatedAt:   now,
			ExpiresAt:   now.Add(r.ttl),
		}
	case err != nil:
		return nil, err
	}

	log.Entries = append(log.Entries, input.Entries...)

	data, err := json.Marshal(log)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal combat log")
	}

	remaining := log.ExpiresAt.Sub(now)
	_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.buildKey(input.EncounterID), data, remaining)
		return nil
	})
	if err == redis.TxFailedErr {
		return nil, err
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store combat log in Redis")
	}

	return log, nil
}

// Get retrieves a log by encounter ID
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	log, err := r.load(ctx, r.client, input.EncounterID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Log: log}, nil
}

// Delete removes a log
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	var deleted int
	if log, err := r.load(ctx, r.client, input.EncounterID); err == nil {
		deleted = len(log.Entries)
	}

	if err := r.client.Del(ctx, r.buildKey(input.EncounterID)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete combat log from Redis")
	}

	return &DeleteOutput{EntriesDeleted: deleted}, nil
}

// reader is the slice of go-redis shared by the client and a WATCH
// transaction
type reader interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

func (r *redisRepository) load(ctx context.Context, rd reader, encounterID string) (*Log, error) {
	key := r.buildKey(encounterID)

	raw, err := rd.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("combat log for %s not found", encounterID)
		}
		return nil, errors.Wrapf(err, "failed to get combat log from Redis")
	}

	var log Log
	if err := json.Unmarshal([]byte(raw), &log); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal combat log")
	}

	if !r.clock.Now().Before(log.ExpiresAt) {
		_ = rd.Del(ctx, key)
		return nil, errors.NotFoundf("combat log for %s has expired", encounterID)
	}

	return &log, nil
}

func (r *redisRepository) buildKey(encounterID string) string {
	return logKeyPrefix + encounterID
}
