package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/engine"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

type ApplyTurnTestSuite struct {
	suite.Suite
	battle *entities.Battle
}

func TestApplyTurnSuite(t *testing.T) {
	suite.Run(t, new(ApplyTurnTestSuite))
}

func (s *ApplyTurnTestSuite) SetupTest() {
	s.battle = &entities.Battle{
		ID: "battle_1",
		SideA: entities.NewCombatant(
			entities.Player{ID: "player1"},
			entities.Character{ID: "1", Attack: 85, MaxHealth: 100},
		),
		SideB: entities.NewCombatant(
			entities.Player{ID: "opponent"},
			entities.Character{ID: "2", Attack: 95, MaxHealth: 80},
		),
		LocalSide:   entities.SideA,
		CurrentTurn: entities.SideA,
		RoundNumber: 1,
		Status:      entities.StatusActive,
	}
}

func (s *ApplyTurnTestSuite) TestAppliesDamageToDefender() {
	record, err := engine.ApplyTurn(s.battle, entities.Attack(), 30)
	s.Require().NoError(err)

	s.Equal(entities.MoveRecord{Round: 1, Side: entities.SideA, Move: entities.Attack(), Damage: 30}, record)
	s.Equal(50, s.battle.SideB.CurrentHealth)
	s.Equal(100, s.battle.SideA.CurrentHealth)
	s.Equal(entities.SideB, s.battle.CurrentTurn)
	s.Equal(1, s.battle.RoundNumber)
	s.Len(s.battle.History, 1)
}

func (s *ApplyTurnTestSuite) TestRoundAdvancesOnlyAfterSideB() {
	rounds := []int{}
	for range 6 {
		_, err := engine.ApplyTurn(s.battle, entities.Defend(), 0)
		s.Require().NoError(err)
		rounds = append(rounds, s.battle.RoundNumber)
	}

	// A, B, A, B, A, B
	s.Equal([]int{1, 2, 2, 3, 3, 4}, rounds)
	s.Equal(entities.SideA, s.battle.CurrentTurn)

	for i, record := range s.battle.History {
		s.Equal(i/2+1, record.Round)
	}
}

func (s *ApplyTurnTestSuite) TestSideAReachingZeroMeansBWins() {
	s.battle.CurrentTurn = entities.SideB
	s.battle.SideA.CurrentHealth = 10

	_, err := engine.ApplyTurn(s.battle, entities.Attack(), 10)
	s.Require().NoError(err)

	s.Equal(0, s.battle.SideA.CurrentHealth)
	s.Equal(entities.StatusCompleted, s.battle.Status)
	s.Equal(entities.SideB, s.battle.Winner)
	s.Equal(entities.SideB, s.battle.CurrentTurn, "turn does not pass after completion")
	s.Equal(1, s.battle.RoundNumber)
}

func (s *ApplyTurnTestSuite) TestDoubleKnockoutGoesToAttacker() {
	s.battle.SideA.CurrentHealth = 0
	s.battle.SideB.CurrentHealth = 5

	_, err := engine.ApplyTurn(s.battle, entities.Attack(), 5)
	s.Require().NoError(err)

	s.Equal(entities.SideA, s.battle.Winner)
}

func (s *ApplyTurnTestSuite) TestOverkillClampsHealth() {
	_, err := engine.ApplyTurn(s.battle, entities.Special(), 500)
	s.Require().NoError(err)

	s.Equal(0, s.battle.SideB.CurrentHealth)
	s.Equal(entities.SideA, s.battle.Winner)
}

func (s *ApplyTurnTestSuite) TestNegativeDamageRecordedAsZero() {
	record, err := engine.ApplyTurn(s.battle, entities.Attack(), -3)
	s.Require().NoError(err)

	s.Equal(0, record.Damage)
	s.Equal(80, s.battle.SideB.CurrentHealth)
}

func (s *ApplyTurnTestSuite) TestCompletedBattleIsRejectedWithoutMutation() {
	s.battle.SideB.CurrentHealth = 1
	_, err := engine.ApplyTurn(s.battle, entities.Attack(), 1)
	s.Require().NoError(err)

	before := s.battle.Clone()

	for range 3 {
		_, err = engine.ApplyTurn(s.battle, entities.Attack(), 40)
		s.Require().Error(err)
		s.True(errors.IsInvalidState(err))
	}

	s.Equal(before, s.battle)
}

func (s *ApplyTurnTestSuite) TestInvalidInputs() {
	_, err := engine.ApplyTurn(nil, entities.Attack(), 1)
	s.True(errors.IsInvalidArgument(err))

	s.battle.CurrentTurn = "C"
	_, err = engine.ApplyTurn(s.battle, entities.Attack(), 1)
	s.True(errors.IsInternal(err))
	s.Empty(s.battle.History)
}
