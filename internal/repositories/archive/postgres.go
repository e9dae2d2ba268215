package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx database/sql driver for goose
	"github.com/pressly/goose/v3"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/archive/migrations"
)

// PostgresConfig configures the postgres archive
type PostgresConfig struct {
	Pool *pgxpool.Pool
}

// PostgresRepository implements Repository on postgres
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a postgres-backed archive
func NewPostgres(cfg *PostgresConfig) (*PostgresRepository, error) {
	if cfg == nil || cfg.Pool == nil {
		return nil, errors.InvalidArgument("pool is required")
	}
	return &PostgresRepository{pool: cfg.Pool}, nil
}

var _ Repository = (*PostgresRepository)(nil)

// Connect opens a pool and checks it answers
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to postgres")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping postgres")
	}
	return pool, nil
}

// Migrate applies the embedded migrations
func Migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return errors.Wrap(err, "failed to open sql connection for migrations")
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	slog.Info("Archive migrations applied")
	return nil
}

// Archive inserts an entry, ignoring battles already archived
func (r *PostgresRepository) Archive(ctx context.Context, input *ArchiveInput) (*ArchiveOutput, error) {
	if err := validateEntry(input); err != nil {
		return nil, err
	}
	e := input.Entry

	history, err := json.Marshal(e.History)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode history for battle %s", e.BattleID)
	}

	tag, err := r.pool.Exec(ctx, `
		INSERT INTO battle_archive (
			battle_id, local_player_id, opponent_player_id, winner_player_id,
			local_won, reward_amount, rounds, history, settled_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9)
		ON CONFLICT (battle_id) DO NOTHING`,
		e.BattleID, e.LocalPlayerID, e.OpponentPlayerID, e.WinnerPlayerID,
		e.LocalWon, e.RewardAmount, e.Rounds, string(history), e.SettledAt,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to archive battle %s", e.BattleID)
	}

	return &ArchiveOutput{Inserted: tag.RowsAffected() == 1}, nil
}

// Get reads an archived battle
func (r *PostgresRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	var (
		e       Entry
		history []byte
	)
	err := r.pool.QueryRow(ctx, `
		SELECT battle_id, local_player_id, opponent_player_id, winner_player_id,
		       local_won, reward_amount, rounds, history, settled_at
		FROM battle_archive
		WHERE battle_id = $1`, input.BattleID,
	).Scan(&e.BattleID, &e.LocalPlayerID, &e.OpponentPlayerID, &e.WinnerPlayerID,
		&e.LocalWon, &e.RewardAmount, &e.Rounds, &history, &e.SettledAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.NotFoundf("archived battle %s not found", input.BattleID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read archived battle %s", input.BattleID)
	}

	if err := json.Unmarshal(history, &e.History); err != nil {
		return nil, errors.Wrapf(err, "failed to decode history for battle %s", input.BattleID)
	}
	e.SettledAt = e.SettledAt.UTC()

	return &GetOutput{Entry: &e}, nil
}

// Leaderboard aggregates wins per local player
func (r *PostgresRepository) Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT local_player_id,
		       COUNT(*) FILTER (WHERE local_won)                         AS wins,
		       COUNT(*) FILTER (WHERE NOT local_won)                     AS losses,
		       COALESCE(SUM(reward_amount) FILTER (WHERE local_won), 0)  AS tokens_won
		FROM battle_archive
		GROUP BY local_player_id
		ORDER BY wins DESC, tokens_won DESC, local_player_id
		LIMIT $1`, leaderboardLimit(input),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query leaderboard")
	}
	defer rows.Close()

	standings := make([]Standing, 0, leaderboardLimit(input))
	for rows.Next() {
		var (
			st                Standing
			wins, losses, won int64
		)
		if err := rows.Scan(&st.PlayerID, &wins, &losses, &won); err != nil {
			return nil, errors.Wrap(err, "failed to scan leaderboard row")
		}
		st.Wins, st.Losses, st.TokensWon = int(wins), int(losses), int(won)
		standings = append(standings, st)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate leaderboard rows")
	}

	return &LeaderboardOutput{Standings: standings}, nil
}
