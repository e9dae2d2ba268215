package archive_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/archive"
)

// postgresDSNEnv points the suite at a disposable database
const postgresDSNEnv = "ARENA_TEST_POSTGRES_DSN"

type PostgresTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *archive.PostgresRepository
	ctx  context.Context
}

func TestPostgresSuite(t *testing.T) {
	if os.Getenv(postgresDSNEnv) == "" {
		t.Skipf("%s not set", postgresDSNEnv)
	}
	suite.Run(t, new(PostgresTestSuite))
}

func (s *PostgresTestSuite) SetupSuite() {
	s.ctx = context.Background()
	dsn := os.Getenv(postgresDSNEnv)

	s.Require().NoError(archive.Migrate(s.ctx, dsn))

	pool, err := archive.Connect(s.ctx, dsn)
	s.Require().NoError(err)
	s.pool = pool

	repo, err := archive.NewPostgres(&archive.PostgresConfig{Pool: pool})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *PostgresTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresTestSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, "TRUNCATE battle_archive")
	s.Require().NoError(err)
}

func (s *PostgresTestSuite) TestArchiveAndGet() {
	e := entry("b1", "p1", true, 100)
	e.OpponentPlayerID = "1"
	e.WinnerPlayerID = "p1"

	out, err := s.repo.Archive(s.ctx, &archive.ArchiveInput{Entry: e})
	s.Require().NoError(err)
	s.True(out.Inserted)

	out, err = s.repo.Archive(s.ctx, &archive.ArchiveInput{Entry: e})
	s.Require().NoError(err)
	s.False(out.Inserted)

	got, err := s.repo.Get(s.ctx, &archive.GetInput{BattleID: "b1"})
	s.Require().NoError(err)
	s.Equal(e.LocalPlayerID, got.Entry.LocalPlayerID)
	s.Equal("1", got.Entry.OpponentPlayerID)
	s.Equal([]entities.MoveRecord{{Round: 1, Side: entities.SideA, Move: entities.Attack(), Damage: 70}}, got.Entry.History)
	s.True(got.Entry.SettledAt.Equal(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)))

	_, err = s.repo.Get(s.ctx, &archive.GetInput{BattleID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *PostgresTestSuite) TestLeaderboard() {
	for _, e := range []*archive.Entry{
		entry("b1", "alice", true, 100),
		entry("b2", "alice", false, 0),
		entry("b3", "bob", true, 100),
		entry("b4", "bob", true, 250),
	} {
		_, err := s.repo.Archive(s.ctx, &archive.ArchiveInput{Entry: e})
		s.Require().NoError(err)
	}

	out, err := s.repo.Leaderboard(s.ctx, &archive.LeaderboardInput{Limit: 5})
	s.Require().NoError(err)
	s.Equal([]archive.Standing{
		{PlayerID: "bob", Wins: 2, TokensWon: 350},
		{PlayerID: "alice", Wins: 1, Losses: 1, TokensWon: 100},
	}, out.Standings)
}
