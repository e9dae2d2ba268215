package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/KirkDiggler/rpg-arena/internal/clients/account"
	"github.com/KirkDiggler/rpg-arena/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-arena/internal/clients/eventsink"
	"github.com/KirkDiggler/rpg-arena/internal/config"
	"github.com/KirkDiggler/rpg-arena/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/handlers/ops"
	"github.com/KirkDiggler/rpg-arena/internal/metrics"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-arena/internal/redis"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/archive"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/battles"
)

// app holds everything the listeners share
type app struct {
	cfg      *config.Config
	battles  battle.Service
	archive  archive.Repository
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	redis    redisclient.Client
	nats     *nats.Conn
	pg       *pgxpool.Pool
}

// newLogger builds the process logger from config
func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// newApp connects the stores and wires the battle orchestrator
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg, registry: prometheus.NewRegistry()}
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.metrics = metrics.New(a.registry)

	redis, err := redisclient.NewClientFromURL(cfg.Redis.URL, &redisclient.Options{PoolSize: cfg.Redis.PoolSize})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis url")
	}
	a.redis = redis
	if err := redisclient.Ping(ctx, redis, 5*time.Second); err != nil {
		a.close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is not reachable")
	}

	ledger, err := account.NewRedisLedger(&account.RedisConfig{Client: redis})
	if err != nil {
		a.close()
		return nil, err
	}
	if err := ledger.Seed(ctx, cfg.Players...); err != nil {
		a.close()
		return nil, errors.Wrap(err, "failed to seed ledger")
	}

	cat, err := catalog.NewStatic(cfg.Catalog)
	if err != nil {
		a.close()
		return nil, err
	}

	battleRepo, err := battles.NewRedisRepository(&battles.Config{Client: redis})
	if err != nil {
		a.close()
		return nil, err
	}

	engine, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		DiceRoller: rpgtoolkit.NewRoller(cfg.Battle.DiceSeed),
	})
	if err != nil {
		a.close()
		return nil, err
	}

	clk := clock.New()
	confirmer, err := battle.NewDelayConfirmer(&battle.DelayConfirmerConfig{
		Clock: clk,
		Delay: cfg.Battle.ConfirmDelay,
	})
	if err != nil {
		a.close()
		return nil, err
	}

	bus := events.NewBus()
	a.metrics.Subscribe(bus)

	if err := a.connectArchive(ctx, bus); err != nil {
		a.close()
		return nil, err
	}
	if err := a.connectNATS(bus); err != nil {
		a.close()
		return nil, err
	}

	a.battles, err = battle.NewOrchestrator(&battle.Config{
		BattleRepo:                 battleRepo,
		Accounts:                   ledger,
		Catalog:                    cat,
		Engine:                     engine,
		IDGenerator:                idgen.NewBattleID(),
		Clock:                      clk,
		EventBus:                   bus,
		Confirmer:                  confirmer,
		RewardAmount:               cfg.Battle.RewardAmount,
		ExperienceReward:           cfg.Battle.ExperienceReward,
		MaxAutoTurns:               cfg.Battle.MaxAutoTurns,
		DefaultOpponentCharacterID: cfg.Battle.OpponentCharacterID,
		JoinOpponentCharacterID:    cfg.Battle.JoinOpponentCharacterID,
		TransitionTimeout:          cfg.Battle.TransitionTimeout,
	})
	if err != nil {
		a.close()
		return nil, err
	}

	return a, nil
}

// connectArchive uses postgres when a DSN is configured, memory otherwise
func (a *app) connectArchive(ctx context.Context, bus events.EventBus) error {
	if a.cfg.Postgres.DSN == "" {
		slog.Info("No postgres DSN; archiving battles in memory")
		a.archive = archive.NewInMemory()
		archive.NewRecorder(a.archive).Subscribe(bus)
		return nil
	}

	if a.cfg.Postgres.Migrate {
		if err := archive.Migrate(ctx, a.cfg.Postgres.DSN); err != nil {
			return err
		}
	}

	pool, err := archive.Connect(ctx, a.cfg.Postgres.DSN)
	if err != nil {
		return err
	}
	a.pg = pool

	repo, err := archive.NewPostgres(&archive.PostgresConfig{Pool: pool})
	if err != nil {
		return err
	}
	a.archive = repo
	archive.NewRecorder(repo).Subscribe(bus)
	return nil
}

// connectNATS forwards battle events when a URL is configured
func (a *app) connectNATS(bus events.EventBus) error {
	if a.cfg.NATS.URL == "" {
		return nil
	}

	conn, err := eventsink.Connect(a.cfg.NATS.URL, "rpg-arena")
	if err != nil {
		return err
	}
	a.nats = conn

	sink, err := eventsink.New(&eventsink.Config{
		Publisher:     conn,
		SubjectPrefix: a.cfg.NATS.SubjectPrefix,
	})
	if err != nil {
		return err
	}
	sink.Subscribe(bus)
	return nil
}

// readinessChecks lists the dependencies /readyz probes
func (a *app) readinessChecks() map[string]ops.Check {
	checks := map[string]ops.Check{
		"redis": func(ctx context.Context) error {
			return a.redis.Ping(ctx).Err()
		},
	}
	if a.pg != nil {
		checks["postgres"] = a.pg.Ping
	}
	if a.nats != nil {
		checks["nats"] = func(context.Context) error {
			return eventsink.Healthy(a.nats)
		}
	}
	return checks
}

func (a *app) close() {
	if a.nats != nil {
		if err := a.nats.Drain(); err != nil {
			slog.Warn("Failed to drain nats", "error", err)
		}
	}
	if a.pg != nil {
		a.pg.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			slog.Warn("Failed to close redis", "error", err)
		}
	}
}
