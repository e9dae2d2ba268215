package account

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-arena/internal/redis"
)

const (
	// Key patterns: account:player:{id}, account:credit:{field}:{id}:{reference}
	playerKeyPrefix = "account:player:"
	creditKeyPrefix = "account:credit:"

	fieldID         = "id"
	fieldUsername   = "username"
	fieldAddress    = "address"
	fieldLevel      = "level"
	fieldExperience = "experience"
	fieldTokens     = "tokens"

	creditMissingPlayer = -1
)

// creditScript applies a credit once per reference.
// KEYS[1] player hash, KEYS[2] reference marker
// ARGV[1] field, ARGV[2] amount, ARGV[3] "1" when a reference is set
// Returns {applied, balance}; applied is -1 when the player does not exist.
var creditScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return {-1, 0}
end
if ARGV[3] == '1' and redis.call('SETNX', KEYS[2], '1') == 0 then
	return {0, tonumber(redis.call('HGET', KEYS[1], ARGV[1]) or '0')}
end
return {1, redis.call('HINCRBY', KEYS[1], ARGV[1], ARGV[2])}
`)

// RedisConfig holds the configuration for the Redis ledger
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

// RedisLedger implements Service on Redis hashes
type RedisLedger struct {
	client redisclient.Client
}

// NewRedisLedger creates a Redis-backed account ledger
func NewRedisLedger(cfg *RedisConfig) (*RedisLedger, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &RedisLedger{client: cfg.Client}, nil
}

var _ Service = (*RedisLedger)(nil)

// Seed creates players that do not exist yet. Existing balances are kept.
func (l *RedisLedger) Seed(ctx context.Context, players ...entities.Player) error {
	for _, p := range players {
		if p.ID == "" {
			return errors.InvalidArgument("seed player ID is required")
		}

		key := l.playerKey(p.ID)
		exists, err := l.client.Exists(ctx, key).Result()
		if err != nil {
			return errors.Wrapf(err, "failed to check player %s", p.ID)
		}
		if exists > 0 {
			continue
		}

		err = l.client.HSet(ctx, key,
			fieldID, p.ID,
			fieldUsername, p.Username,
			fieldAddress, p.Address,
			fieldLevel, p.Level,
			fieldExperience, p.Experience,
			fieldTokens, p.Tokens,
		).Err()
		if err != nil {
			return errors.Wrapf(err, "failed to seed player %s", p.ID)
		}

		slog.Debug("Seeded player", "player_id", p.ID, "username", p.Username)
	}
	return nil
}

// GetPlayer loads a player record
func (l *RedisLedger) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	fields, err := l.client.HGetAll(ctx, l.playerKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load player %s", input.PlayerID)
	}
	if len(fields) == 0 {
		return nil, errors.NotFoundf("player %s not found", input.PlayerID)
	}

	player := &entities.Player{
		ID:       fields[fieldID],
		Username: fields[fieldUsername],
		Address:  fields[fieldAddress],
	}
	for field, dst := range map[string]*int{
		fieldLevel:      &player.Level,
		fieldExperience: &player.Experience,
		fieldTokens:     &player.Tokens,
	} {
		if *dst, err = atoi(fields[field]); err != nil {
			return nil, errors.Wrapf(err, "player %s has invalid %s", input.PlayerID, field)
		}
	}

	return &GetPlayerOutput{Player: player}, nil
}

// CreditTokens adds tokens to a player's balance
func (l *RedisLedger) CreditTokens(ctx context.Context, input *CreditInput) (*CreditOutput, error) {
	return l.credit(ctx, fieldTokens, input)
}

// CreditExperience adds experience to a player
func (l *RedisLedger) CreditExperience(ctx context.Context, input *CreditInput) (*CreditOutput, error) {
	return l.credit(ctx, fieldExperience, input)
}

func (l *RedisLedger) credit(ctx context.Context, field string, input *CreditInput) (*CreditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateNonNegative("amount", input.Amount, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	hasRef := "0"
	if input.Reference != "" {
		hasRef = "1"
	}

	keys := []string{
		l.playerKey(input.PlayerID),
		fmt.Sprintf("%s%s:%s:%s", creditKeyPrefix, field, input.PlayerID, input.Reference),
	}

	res, err := creditScript.Run(ctx, l.client, keys, field, input.Amount, hasRef).Int64Slice()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to credit %s", field)
	}
	if len(res) != 2 {
		return nil, errors.Internalf("unexpected credit reply %v", res)
	}
	if res[0] == creditMissingPlayer {
		return nil, errors.NotFoundf("player %s not found", input.PlayerID)
	}

	out := &CreditOutput{Balance: int(res[1]), Applied: res[0] == 1}

	slog.Info("Credited account",
		"player_id", input.PlayerID,
		"field", field,
		"amount", input.Amount,
		"reference", input.Reference,
		"applied", out.Applied,
		"balance", out.Balance,
	)

	return out, nil
}

func (l *RedisLedger) playerKey(playerID string) string {
	return playerKeyPrefix + playerID
}

func atoi(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
