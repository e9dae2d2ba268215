// Package config loads the server configuration from YAML with environment
// overrides for connection strings.
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-arena/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/validator"
)

// Environment variables that override the file
const (
	EnvRedisURL    = "ARENA_REDIS_URL"
	EnvNATSURL     = "ARENA_NATS_URL"
	EnvPostgresDSN = "ARENA_POSTGRES_DSN"
)

// Config is the full server configuration
type Config struct {
	GRPC     GRPCConfig        `yaml:"grpc"`
	Ops      OpsConfig         `yaml:"ops"`
	Log      LogConfig         `yaml:"log"`
	Redis    RedisConfig       `yaml:"redis"`
	NATS     NATSConfig        `yaml:"nats"`
	Postgres PostgresConfig    `yaml:"postgres"`
	Battle   BattleConfig      `yaml:"battle"`
	// Players are seeded into the ledger at startup
	Players []entities.Player `yaml:"players"`
	Catalog  *catalog.Config   `yaml:"catalog"`
}

// GRPCConfig configures the gRPC listener
type GRPCConfig struct {
	Port int `yaml:"port" validate:"min=1,max=65535"`
}

// OpsConfig configures the HTTP ops listener
type OpsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port" validate:"min=1,max=65535"`
}

// LogConfig configures slog
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// RedisConfig locates the battle store and ledger
type RedisConfig struct {
	URL      string `yaml:"url" validate:"required,url"`
	PoolSize int    `yaml:"pool_size" validate:"min=0"`
}

// NATSConfig enables event forwarding when URL is set
type NATSConfig struct {
	URL           string `yaml:"url" validate:"omitempty,url"`
	SubjectPrefix string `yaml:"subject_prefix"`
}

// PostgresConfig enables the battle archive when DSN is set
type PostgresConfig struct {
	DSN     string `yaml:"dsn"`
	Migrate bool   `yaml:"migrate"`
}

// BattleConfig holds the battle rules
type BattleConfig struct {
	RewardAmount      int           `yaml:"reward_amount" validate:"min=1"`
	ExperienceReward  int           `yaml:"experience_reward" validate:"min=1"`
	MaxAutoTurns      int           `yaml:"max_auto_turns" validate:"min=1"`
	TransitionTimeout time.Duration `yaml:"transition_timeout" validate:"min=0"`
	ConfirmDelay      time.Duration `yaml:"confirm_delay" validate:"min=0"`
	// Catalog characters the opponent fights with in created and joined battles
	OpponentCharacterID     string `yaml:"opponent_character_id" validate:"required"`
	JoinOpponentCharacterID string `yaml:"join_opponent_character_id" validate:"required"`
	// DiceSeed fixes the dice sequence; zero uses the toolkit's crypto roller
	DiceSeed uint64 `yaml:"dice_seed"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		GRPC: GRPCConfig{Port: 50051},
		Ops:  OpsConfig{Enabled: true, Port: 8080},
		Log:  LogConfig{Level: "info", Format: "text"},
		Redis: RedisConfig{
			URL: "redis://localhost:6379/0",
		},
		NATS: NATSConfig{SubjectPrefix: "rpg"},
		Battle: BattleConfig{
			RewardAmount:            100,
			ExperienceReward:        50,
			MaxAutoTurns:            64,
			TransitionTimeout:       30 * time.Second,
			ConfirmDelay:            time.Second,
			OpponentCharacterID:     "2",
			JoinOpponentCharacterID: "3",
		},
		Players: []entities.Player{
			{ID: "player1", Username: "CryptoNewbie", Address: "0x000...001", Level: 1},
		},
		Catalog: catalog.DefaultConfig(),
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
// Environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
		if err := decode(bytes.NewReader(data), cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config %s", path)
		}
	}

	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults without reading the environment
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := decode(r, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid yaml")
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvRedisURL); ok && v != "" {
		c.Redis.URL = v
	}
	if v, ok := lookup(EnvNATSURL); ok {
		c.NATS.URL = v
	}
	if v, ok := lookup(EnvPostgresDSN); ok {
		c.Postgres.DSN = v
	}
}

// Validate checks struct tags, then the catalog, the opponent characters and
// the seed players
func (c *Config) Validate() error {
	if err := validator.Struct(c); err != nil {
		return err
	}

	if c.Catalog == nil {
		return errors.InvalidArgument("catalog is required")
	}
	if err := c.Catalog.Validate(); err != nil {
		return errors.Wrap(err, "invalid catalog")
	}

	vb := errors.NewValidationBuilder()
	for field, id := range map[string]string{
		"battle.opponent_character_id":      c.Battle.OpponentCharacterID,
		"battle.join_opponent_character_id": c.Battle.JoinOpponentCharacterID,
	} {
		if !c.hasCharacter(id) {
			vb.Fieldf(field, "unknown character %q", id)
		}
	}

	seen := make(map[string]bool, len(c.Players))
	for i, p := range c.Players {
		if p.ID == "" {
			vb.Fieldf("players", "entry %d has no id", i)
			continue
		}
		if seen[p.ID] {
			vb.Fieldf("players", "duplicate id %q", p.ID)
		}
		seen[p.ID] = true
	}
	return vb.Build()
}

func (c *Config) hasCharacter(id string) bool {
	for _, ch := range c.Catalog.Characters {
		if ch.ID == id {
			return true
		}
	}
	return false
}
