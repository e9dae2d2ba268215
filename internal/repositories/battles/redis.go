package battles

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-arena/internal/redis"
)

const (
	// Key patterns: battle:{id}, player_battles:{player_id}
	battleKeyPrefix = "battle:"
	playerKeyPrefix = "player_battles:"
)

var (
	errBattleRequired   = errors.InvalidArgument("battle is required")
	errBattleIDRequired = errors.InvalidArgument("battle ID is required")
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for battles
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new battle
func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateBattle(input.Battle); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Battle)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal battle")
	}

	created, err := r.client.SetNX(ctx, r.battleKey(input.Battle.ID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store battle in Redis")
	}
	if !created {
		return nil, errors.AlreadyExistsf("battle %s already exists", input.Battle.ID)
	}

	if err := r.index(ctx, input.Battle); err != nil {
		r.unstore(ctx, input.Battle)
		return nil, err
	}

	return &CreateOutput{Battle: input.Battle.Clone()}, nil
}

// Get retrieves a battle by ID
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BattleID == "" {
		return nil, errBattleIDRequired
	}

	data, err := r.client.Get(ctx, r.battleKey(input.BattleID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("battle %s not found", input.BattleID)
		}
		return nil, errors.Wrapf(err, "failed to get battle from Redis")
	}

	var battle entities.Battle
	if err := json.Unmarshal(data, &battle); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal battle")
	}

	return &GetOutput{Battle: &battle}, nil
}

// Update replaces an existing battle
func (r *redisRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateBattle(input.Battle); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Battle)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal battle")
	}

	updated, err := r.client.SetXX(ctx, r.battleKey(input.Battle.ID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update battle in Redis")
	}
	if !updated {
		return nil, errors.NotFoundf("battle %s not found", input.Battle.ID)
	}

	return &UpdateOutput{Battle: input.Battle.Clone()}, nil
}

// ListByPlayer returns battle IDs for a player in sorted order
func (r *redisRepository) ListByPlayer(ctx context.Context, input *ListByPlayerInput) (*ListByPlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.playerKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list battles for player")
	}
	sort.Strings(ids)

	return &ListByPlayerOutput{BattleIDs: ids}, nil
}

func (r *redisRepository) index(ctx context.Context, b *entities.Battle) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, playerID := range participants(b) {
			pipe.SAdd(ctx, r.playerKey(playerID), b.ID)
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to index battle %s", b.ID)
	}
	return nil
}

// unstore removes a battle whose index write failed so Create leaves nothing
// behind
func (r *redisRepository) unstore(ctx context.Context, b *entities.Battle) {
	if err := r.client.Del(ctx, r.battleKey(b.ID)).Err(); err != nil {
		slog.Error("Failed to remove unindexed battle",
			"battle_id", b.ID,
			"error", err,
		)
	}
	for _, playerID := range participants(b) {
		if err := r.client.SRem(ctx, r.playerKey(playerID), b.ID).Err(); err != nil {
			slog.Warn("Failed to remove battle from player index",
				"battle_id", b.ID,
				"player_id", playerID,
				"error", err,
			)
		}
	}
}

func (r *redisRepository) battleKey(battleID string) string {
	return fmt.Sprintf("%s%s", battleKeyPrefix, battleID)
}

func (r *redisRepository) playerKey(playerID string) string {
	return fmt.Sprintf("%s%s", playerKeyPrefix, playerID)
}
