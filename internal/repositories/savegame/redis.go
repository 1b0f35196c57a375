package savegame

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-crawl/internal/errors"
	"github.com/KirkDiggler/rpg-crawl/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-crawl/internal/redis"
)

const (
	slotKeyPrefix = "savegame:"
	slotIndexKey  = "savegame:slots"

	errSlotNil     = "slot cannot be nil"
	errSlotIDEmpty = "slot ID cannot be empty"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a save slot repository. Clock defaults to wall time.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func validateSlotID(slotID string) error {
	if slotID == "" {
		return errors.InvalidArgument(errSlotIDEmpty)
	}
	if strings.ContainsAny(slotID, ": \t\n") {
		return errors.InvalidArgumentf("slot ID %q may not contain colons or whitespace", slotID)
	}
	return nil
}

// Save writes the slot and records it in the slot index
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Slot == nil {
		return nil, errors.InvalidArgument(errSlotNil)
	}
	if err := validateSlotID(input.Slot.SlotID); err != nil {
		return nil, err
	}

	slot := *input.Slot
	slot.SavedAt = r.clock.Now()

	data, err := json.Marshal(&slot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save slot")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, slotKeyPrefix+slot.SlotID, data, 0)
	pipe.SAdd(ctx, slotIndexKey, slot.SlotID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save slot %s", slot.SlotID)
	}

	slog.DebugContext(ctx, "saved game",
		"slot_id", slot.SlotID,
		"party_size", len(slot.Party))

	return &SaveOutput{Slot: &slot}, nil
}

// Get loads one slot
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSlotID(input.SlotID); err != nil {
		return nil, err
	}

	raw, err := r.client.Get(ctx, slotKeyPrefix+input.SlotID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("save slot %s not found", input.SlotID)
		}
		return nil, errors.Wrapf(err, "failed to get save slot")
	}

	var slot Slot
	if err := json.Unmarshal([]byte(raw), &slot); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal save slot")
	}

	return &GetOutput{Slot: &slot}, nil
}

// List loads every indexed slot. Index entries whose slot has vanished are
// skipped and logged.
func (r *redisRepository) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, slotIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read slot index")
	}
	slices.Sort(ids)

	slots := make([]*Slot, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, &GetInput{SlotID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "slot in index but missing from storage",
					"slot_id", id)
				continue
			}
			return nil, err
		}
		slots = append(slots, out.Slot)
	}

	return &ListOutput{Slots: slots}, nil
}

// Delete removes a slot and its index entry
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSlotID(input.SlotID); err != nil {
		return nil, err
	}

	if _, err := r.Get(ctx, &GetInput{SlotID: input.SlotID}); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, slotKeyPrefix+input.SlotID)
	pipe.SRem(ctx, slotIndexKey, input.SlotID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete slot %s", input.SlotID)
	}

	return &DeleteOutput{}, nil
}
