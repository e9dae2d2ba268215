package archive_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/archive"
)

type InMemoryTestSuite struct {
	suite.Suite
	repo *archive.InMemoryRepository
	ctx  context.Context
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryTestSuite))
}

func (s *InMemoryTestSuite) SetupTest() {
	s.repo = archive.NewInMemory()
	s.ctx = context.Background()
}

func entry(battleID, playerID string, won bool, reward int) *archive.Entry {
	return &archive.Entry{
		BattleID:      battleID,
		LocalPlayerID: playerID,
		LocalWon:      won,
		RewardAmount:  reward,
		Rounds:        2,
		History: []entities.MoveRecord{
			{Round: 1, Side: entities.SideA, Move: entities.Attack(), Damage: 70},
		},
		SettledAt: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *InMemoryTestSuite) TestArchiveIsIdempotent() {
	out, err := s.repo.Archive(s.ctx, &archive.ArchiveInput{Entry: entry("b1", "p1", true, 100)})
	s.Require().NoError(err)
	s.True(out.Inserted)

	out, err = s.repo.Archive(s.ctx, &archive.ArchiveInput{Entry: entry("b1", "p1", false, 0)})
	s.Require().NoError(err)
	s.False(out.Inserted)

	got, err := s.repo.Get(s.ctx, &archive.GetInput{BattleID: "b1"})
	s.Require().NoError(err)
	s.True(got.Entry.LocalWon)
	s.Len(got.Entry.History, 1)
}

func (s *InMemoryTestSuite) TestArchiveValidation() {
	testCases := []struct {
		name  string
		input *archive.ArchiveInput
	}{
		{name: "nil input"},
		{name: "nil entry", input: &archive.ArchiveInput{}},
		{name: "missing battle", input: &archive.ArchiveInput{Entry: entry("", "p1", true, 1)}},
		{name: "missing player", input: &archive.ArchiveInput{Entry: entry("b1", "", true, 1)}},
		{name: "negative reward", input: &archive.ArchiveInput{Entry: entry("b1", "p1", true, -1)}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Archive(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *InMemoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, &archive.GetInput{BattleID: "nope"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryTestSuite) TestLeaderboardOrdering() {
	for _, e := range []*archive.Entry{
		entry("b1", "alice", true, 100),
		entry("b2", "alice", false, 0),
		entry("b3", "bob", true, 100),
		entry("b4", "bob", true, 250),
		entry("b5", "carol", true, 100),
		entry("b6", "dave", true, 100),
	} {
		_, err := s.repo.Archive(s.ctx, &archive.ArchiveInput{Entry: e})
		s.Require().NoError(err)
	}

	out, err := s.repo.Leaderboard(s.ctx, &archive.LeaderboardInput{Limit: 3})
	s.Require().NoError(err)
	s.Equal([]archive.Standing{
		{PlayerID: "bob", Wins: 2, TokensWon: 350},
		{PlayerID: "alice", Wins: 1, Losses: 1, TokensWon: 100},
		{PlayerID: "carol", Wins: 1, TokensWon: 100},
	}, out.Standings)

	out, err = s.repo.Leaderboard(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(out.Standings, 4)
}
