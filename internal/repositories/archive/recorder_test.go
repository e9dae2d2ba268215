package archive_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/archive"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
	"github.com/KirkDiggler/rpg-arena/internal/testutils/builders"
)

type RecorderTestSuite struct {
	suite.Suite
	repo     *archive.InMemoryRepository
	recorder *archive.Recorder
	bus      events.EventBus
	ctx      context.Context
}

func TestRecorderSuite(t *testing.T) {
	suite.Run(t, new(RecorderTestSuite))
}

func (s *RecorderTestSuite) SetupTest() {
	s.repo = archive.NewInMemory()
	s.recorder = archive.NewRecorder(s.repo)
	s.bus = events.NewBus()
	s.recorder.Subscribe(s.bus)
	s.ctx = context.Background()
}

func (s *RecorderTestSuite) settle(localWon bool) *entities.Battle {
	winner := entities.SideB
	if localWon {
		winner = entities.SideA
	}
	b := builders.NewBattleBuilder().
		WithID("battle_1").
		WithMove(entities.SideA, entities.Attack(), 90).
		Completed(winner).
		Settled().
		Build()

	payload := &battle.BattleSettled{
		BattleID:       b.ID,
		Winner:         b.Winner,
		WinnerPlayerID: b.Combatant(b.Winner).Player.ID,
		LocalPlayerID:  b.Local().Player.ID,
		LocalWon:       localWon,
		RewardAmount:   b.RewardAmount,
		Rounds:         b.RoundNumber,
		Moves:          len(b.History),
		SettledAt:      b.UpdatedAt,
		Battle:         b,
	}
	s.Require().NoError(s.bus.Publish(s.ctx, battle.NewEvent(battle.EventBattleSettled, b, b.Winner, payload)))
	return b
}

func (s *RecorderTestSuite) TestArchivesWin() {
	b := s.settle(true)

	got, err := s.repo.Get(s.ctx, &archive.GetInput{BattleID: b.ID})
	s.Require().NoError(err)
	s.Equal(testutils.TestPlayerID, got.Entry.LocalPlayerID)
	s.Equal(testutils.TestOpponentID, got.Entry.OpponentPlayerID)
	s.Equal(testutils.TestPlayerID, got.Entry.WinnerPlayerID)
	s.True(got.Entry.LocalWon)
	s.Equal(100, got.Entry.RewardAmount)
	s.Equal(b.History, got.Entry.History)
}

func (s *RecorderTestSuite) TestLossArchivesNoReward() {
	b := s.settle(false)

	got, err := s.repo.Get(s.ctx, &archive.GetInput{BattleID: b.ID})
	s.Require().NoError(err)
	s.False(got.Entry.LocalWon)
	s.Zero(got.Entry.RewardAmount)
}

func (s *RecorderTestSuite) TestUnsubscribe() {
	s.Require().NoError(s.recorder.Unsubscribe(s.bus))
	s.settle(true)

	out, err := s.repo.Leaderboard(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(out.Standings)
}
