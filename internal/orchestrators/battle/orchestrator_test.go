package battle_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-arena/internal/clients/account"
	accountmock "github.com/KirkDiggler/rpg-arena/internal/clients/account/mock"
	"github.com/KirkDiggler/rpg-arena/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-arena/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/battles"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
	"github.com/KirkDiggler/rpg-arena/internal/testutils/mocks"
)

const (
	playerID   = testutils.TestPlayerID
	opponentID = "1"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx     context.Context
	roller  *testutils.ScriptedRoller
	repo    *battles.InMemoryRepository
	ledger  *account.RedisLedger
	catalog *catalog.Static
	bus     events.EventBus
	clock   *clock.Fixed

	// confirm is consulted by the orchestrator's confirmer when set
	confirmMu sync.Mutex
	confirm   func(ctx context.Context, op battle.Operation) error

	eventsMu sync.Mutex
	moves    []*battle.MoveRecorded
	settled  []*battle.BattleSettled

	orchestrator battle.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = testutils.NewScriptedRoller()
	s.repo = battles.NewInMemory()
	s.clock = clock.NewFixed(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	s.setConfirm(nil)

	s.eventsMu.Lock()
	s.moves = nil
	s.settled = nil
	s.eventsMu.Unlock()

	client, _ := testutils.CreateTestRedis(s.T())
	ledger, err := account.NewRedisLedger(&account.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.Require().NoError(ledger.Seed(s.ctx, testutils.CreateTestPlayer(playerID)))
	s.ledger = ledger

	s.catalog, err = catalog.NewStatic(catalog.DefaultConfig())
	s.Require().NoError(err)

	s.bus = events.NewBus()
	s.bus.SubscribeFunc(battle.EventMoveRecorded, 0, func(_ context.Context, e events.Event) error {
		if p, ok := battle.MoveRecordedFrom(e); ok {
			s.eventsMu.Lock()
			s.moves = append(s.moves, p)
			s.eventsMu.Unlock()
		}
		return nil
	})
	s.bus.SubscribeFunc(battle.EventBattleSettled, 0, func(_ context.Context, e events.Event) error {
		if p, ok := battle.BattleSettledFrom(e); ok {
			s.eventsMu.Lock()
			s.settled = append(s.settled, p)
			s.eventsMu.Unlock()
		}
		return nil
	})

	s.orchestrator = s.newOrchestrator(s.ledger)
}

func (s *OrchestratorTestSuite) newOrchestrator(accounts account.Service) battle.Service {
	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: s.roller})
	s.Require().NoError(err)

	o, err := battle.NewOrchestrator(&battle.Config{
		BattleRepo:  s.repo,
		Accounts:    accounts,
		Catalog:     s.catalog,
		Engine:      adapter,
		IDGenerator: idgen.NewSequential("battle"),
		Clock:       s.clock,
		EventBus:    s.bus,
		Confirmer: battle.ConfirmerFunc(func(ctx context.Context, op battle.Operation) error {
			s.confirmMu.Lock()
			fn := s.confirm
			s.confirmMu.Unlock()
			if fn == nil {
				return nil
			}
			return fn(ctx, op)
		}),
	})
	s.Require().NoError(err)
	return o
}

func (s *OrchestratorTestSuite) setConfirm(fn func(ctx context.Context, op battle.Operation) error) {
	s.confirmMu.Lock()
	defer s.confirmMu.Unlock()
	s.confirm = fn
}

func (s *OrchestratorTestSuite) create() *entities.Battle {
	out, err := s.orchestrator.CreateBattle(s.ctx, &battle.CreateBattleInput{
		PlayerID:   playerID,
		OpponentID: opponentID,
	})
	s.Require().NoError(err)
	return out.Battle
}

func (s *OrchestratorTestSuite) move(battleID string, m entities.Move) (*battle.MakeMoveOutput, error) {
	return s.orchestrator.MakeMove(s.ctx, &battle.MakeMoveInput{
		BattleID: battleID,
		PlayerID: playerID,
		Move:     m,
	})
}

func (s *OrchestratorTestSuite) get(battleID string) *entities.Battle {
	out, err := s.orchestrator.GetBattle(s.ctx, &battle.GetBattleInput{BattleID: battleID})
	s.Require().NoError(err)
	return out.Battle
}

func (s *OrchestratorTestSuite) movesSeen() int {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	return len(s.moves)
}

func (s *OrchestratorTestSuite) balance() (tokens, experience int) {
	out, err := s.ledger.GetPlayer(s.ctx, &account.GetPlayerInput{PlayerID: playerID})
	s.Require().NoError(err)
	return out.Player.Tokens, out.Player.Experience
}

func (s *OrchestratorTestSuite) TestNewOrchestratorRequiresDependencies() {
	_, err := battle.NewOrchestrator(&battle.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "BattleRepo")
	s.Contains(err.Error(), "Engine")

	_, err = battle.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateBattle() {
	b := s.create()

	s.Equal("battle_1", b.ID)
	s.Equal(entities.SideA, b.LocalSide)
	s.Equal(entities.SideA, b.CurrentTurn)
	s.Equal(1, b.RoundNumber)
	s.Equal(entities.StatusActive, b.Status)
	s.Empty(b.History)
	s.Equal(battle.DefaultRewardAmount, b.RewardAmount)
	s.Equal(battle.DefaultExperienceReward, b.ExperienceReward)

	s.Equal(playerID, b.SideA.Player.ID)
	s.Equal("Cypher Knight", b.SideA.Character.Name)
	s.Equal(100, b.SideA.CurrentHealth)

	s.Equal("CryptoWarrior", b.SideB.Player.Username)
	s.Equal("Data Mage", b.SideB.Character.Name)
	s.Equal(80, b.SideB.CurrentHealth)

	s.Equal(b, s.get(b.ID))
}

func (s *OrchestratorTestSuite) TestCreateBattleErrors() {
	testCases := []struct {
		name  string
		input *battle.CreateBattleInput
		check func(error) bool
	}{
		{
			name:  "nil input",
			check: errors.IsInvalidArgument,
		},
		{
			name:  "missing opponent",
			input: &battle.CreateBattleInput{PlayerID: playerID},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "unknown player",
			input: &battle.CreateBattleInput{PlayerID: "ghost", OpponentID: opponentID},
			check: errors.IsNotFound,
		},
		{
			name:  "unknown opponent",
			input: &battle.CreateBattleInput{PlayerID: playerID, OpponentID: "42"},
			check: errors.IsNotFound,
		},
		{
			name:  "unknown opponent character",
			input: &battle.CreateBattleInput{PlayerID: playerID, OpponentID: opponentID, OpponentCharacterID: "9"},
			check: errors.IsNotFound,
		},
		{
			name:  "character not owned",
			input: &battle.CreateBattleInput{PlayerID: playerID, OpponentID: opponentID, CharacterID: "2"},
			check: errors.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.CreateBattle(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestMakeMoveAutoPlaysReply() {
	b := s.create()

	// local attack rolls the minimum, opponent picks defend
	s.roller.Push(1, 2)

	out, err := s.move(b.ID, entities.Attack())
	s.Require().NoError(err)

	s.Equal(entities.MoveRecord{Round: 1, Side: entities.SideA, Move: entities.Attack(), Damage: 68}, out.Record)
	s.Require().Len(out.OpponentMoves, 1)
	s.Equal(entities.MoveRecord{Round: 1, Side: entities.SideB, Move: entities.Defend(), Damage: 0}, out.OpponentMoves[0])

	s.Equal(12, out.Battle.SideB.CurrentHealth)
	s.Equal(100, out.Battle.SideA.CurrentHealth)
	s.Equal(entities.SideA, out.Battle.CurrentTurn)
	s.Equal(2, out.Battle.RoundNumber)
	s.Len(out.Battle.History, 2)
	s.Zero(s.roller.Remaining())

	s.Len(s.moves, 2)
	s.False(s.moves[0].AutoPlayed)
	s.True(s.moves[1].AutoPlayed)
	s.Equal(12, s.moves[1].HealthB)
}

func (s *OrchestratorTestSuite) TestWinningSettlesExactlyOnce() {
	b := s.create()

	// max attack roll: 85 * 11999 / 10000 = 101 against 80 health
	s.roller.Push(4000)

	out, err := s.move(b.ID, entities.Attack())
	s.Require().NoError(err)
	s.Empty(out.OpponentMoves)

	final := out.Battle
	s.Equal(entities.StatusCompleted, final.Status)
	s.Equal(entities.SideA, final.Winner)
	s.Equal(0, final.SideB.CurrentHealth)
	s.True(final.Settled)

	tokens, xp := s.balance()
	s.Equal(100, tokens)
	s.Equal(50, xp)

	settle, err := s.orchestrator.SettleBattle(s.ctx, &battle.SettleBattleInput{BattleID: b.ID})
	s.Require().NoError(err)
	s.False(settle.Credited)

	tokens, _ = s.balance()
	s.Equal(100, tokens)

	_, err = s.move(b.ID, entities.Attack())
	s.True(errors.IsInvalidState(err))
	s.Len(s.get(b.ID).History, 1)

	s.Require().Len(s.settled, 1)
	s.True(s.settled[0].LocalWon)
	s.Equal(playerID, s.settled[0].WinnerPlayerID)
	s.Equal(1, s.settled[0].Moves)
}

func (s *OrchestratorTestSuite) TestLosingPaysNothing() {
	b := s.create()

	// local defends; opponent attacks with the max roll: 95 * 11999 / 10000 = 113
	s.roller.Push(1, 4000)

	out, err := s.move(b.ID, entities.Defend())
	s.Require().NoError(err)

	s.Equal(entities.StatusCompleted, out.Battle.Status)
	s.Equal(entities.SideB, out.Battle.Winner)
	s.Equal(0, out.Battle.SideA.CurrentHealth)
	s.True(out.Battle.Settled)

	tokens, xp := s.balance()
	s.Zero(tokens)
	s.Zero(xp)

	s.Require().Len(s.settled, 1)
	s.False(s.settled[0].LocalWon)
	s.Equal(opponentID, s.settled[0].WinnerPlayerID)
}

func (s *OrchestratorTestSuite) TestJoinBattlePlaysOpeningTurn() {
	// opponent opens with defend
	s.roller.Push(2)

	out, err := s.orchestrator.JoinBattle(s.ctx, &battle.JoinBattleInput{
		BattleID: "arena-7",
		PlayerID: playerID,
	})
	s.Require().NoError(err)

	b := out.Battle
	s.Equal("arena-7", b.ID)
	s.Equal(entities.SideB, b.LocalSide)
	s.Equal(opponentID, b.SideA.Player.ID)
	s.Equal("Crypto Archer", b.SideA.Character.Name)
	s.Equal(playerID, b.SideB.Player.ID)
	s.Equal(entities.SideB, b.CurrentTurn)
	s.Equal(1, b.RoundNumber)
	s.Require().Len(out.OpponentMoves, 1)
	s.Equal(entities.Defend(), out.OpponentMoves[0].Move)

	// local attack for 68, opponent special misses
	s.roller.Push(1, 3, 71)

	moveOut, err := s.move(b.ID, entities.Attack())
	s.Require().NoError(err)

	rounds := make([]int, 0, len(moveOut.Battle.History))
	for _, r := range moveOut.Battle.History {
		rounds = append(rounds, r.Round)
	}
	s.Equal([]int{1, 1, 2}, rounds)
	s.Equal(2, moveOut.Battle.SideA.CurrentHealth)
	s.Equal(0, moveOut.OpponentMoves[0].Damage)
	s.Equal(entities.SideB, moveOut.Battle.CurrentTurn)

	_, err = s.orchestrator.JoinBattle(s.ctx, &battle.JoinBattleInput{BattleID: "arena-7", PlayerID: playerID})
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestItemMoves() {
	s.Run("owned attack item", func() {
		b := s.create()

		out, err := s.move(b.ID, entities.UseItem("1"))
		s.Require().NoError(err)

		// 85 * 120 / 100
		s.Equal(102, out.Record.Damage)
		s.Equal(entities.StatusCompleted, out.Battle.Status)
		s.Zero(s.roller.Remaining())
	})

	unresolved := []struct {
		name string
		move entities.Move
	}{
		{"item not owned", entities.UseItem("2")},
		{"unknown item", entities.UseItem("99")},
		{"item move without item", entities.Move{Kind: entities.MoveItem}},
	}

	for _, tc := range unresolved {
		s.Run(tc.name, func() {
			b := s.create()
			s.roller.Push(2)

			out, err := s.move(b.ID, tc.move)
			s.Require().NoError(err)

			s.Equal(0, out.Record.Damage)
			s.Equal(tc.move, out.Record.Move)
			s.Equal(80, out.Battle.SideB.CurrentHealth)
			s.Len(out.Battle.History, 2)
			s.Equal(entities.SideA, out.Battle.CurrentTurn)
		})
	}
}

func (s *OrchestratorTestSuite) TestMakeMoveRejections() {
	b := s.create()

	testCases := []struct {
		name  string
		input *battle.MakeMoveInput
		check func(error) bool
	}{
		{
			name:  "unknown move kind",
			input: &battle.MakeMoveInput{BattleID: b.ID, PlayerID: playerID, Move: entities.Move{Kind: "dance"}},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "unknown battle",
			input: &battle.MakeMoveInput{BattleID: "nope", PlayerID: playerID, Move: entities.Attack()},
			check: errors.IsNotFound,
		},
		{
			name:  "not the local player",
			input: &battle.MakeMoveInput{BattleID: b.ID, PlayerID: opponentID, Move: entities.Attack()},
			check: errors.IsInvalidState,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.MakeMove(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
		})
	}

	s.Empty(s.get(b.ID).History)
}

func (s *OrchestratorTestSuite) TestFailedConfirmationLeavesBattleUntouched() {
	b := s.create()

	s.setConfirm(func(_ context.Context, op battle.Operation) error {
		if op.Kind == battle.OpMove {
			return errors.Transient("ledger unavailable")
		}
		return nil
	})

	_, err := s.move(b.ID, entities.Attack())
	s.True(errors.IsTransient(err))
	s.Equal(b, s.get(b.ID))
	s.Zero(s.roller.Remaining())

	last, err := s.orchestrator.GetLastError(s.ctx, &battle.GetLastErrorInput{PlayerID: playerID})
	s.Require().NoError(err)
	s.Contains(last.Message, "ledger unavailable")

	s.setConfirm(nil)
	s.roller.Push(1, 2)

	_, err = s.move(b.ID, entities.Attack())
	s.Require().NoError(err)

	last, err = s.orchestrator.GetLastError(s.ctx, &battle.GetLastErrorInput{PlayerID: playerID})
	s.Require().NoError(err)
	s.Empty(last.Message)
}

func (s *OrchestratorTestSuite) failFirstReply() {
	fail := true
	s.setConfirm(func(_ context.Context, op battle.Operation) error {
		if op.Kind == battle.OpOpponentMove && fail {
			fail = false
			return errors.Transient("reply not confirmed")
		}
		return nil
	})
}

func (s *OrchestratorTestSuite) TestFailedReplyIsResumedOnNextMove() {
	b := s.create()
	s.failFirstReply()

	s.roller.Push(1)
	first, err := s.move(b.ID, entities.Attack())
	s.Require().NoError(err)

	s.Empty(first.OpponentMoves)
	s.Len(first.Battle.History, 1)
	s.Equal(entities.SideB, first.Battle.CurrentTurn)
	s.Equal(first.Battle, s.get(b.ID))

	// resumed reply: defend; then the local attack for 68 finishes the mage
	s.roller.Push(2, 1)
	out, err := s.move(b.ID, entities.Attack())
	s.Require().NoError(err)

	s.Require().Len(out.OpponentMoves, 1)
	s.Equal(entities.Defend(), out.OpponentMoves[0].Move)
	s.Equal(entities.StatusCompleted, out.Battle.Status)
	s.Equal(entities.SideA, out.Battle.Winner)
	s.Require().Len(out.Battle.History, 3)

	local := 0
	for _, r := range out.Battle.History {
		if r.Side == entities.SideA {
			local++
		}
	}
	s.Equal(2, local)
}

func (s *OrchestratorTestSuite) TestFailedOpeningReplyKeepsJoinedBattle() {
	s.failFirstReply()

	joined, err := s.orchestrator.JoinBattle(s.ctx, &battle.JoinBattleInput{
		BattleID: "arena-9",
		PlayerID: playerID,
	})
	s.Require().NoError(err)
	s.Empty(joined.OpponentMoves)
	s.Empty(joined.Battle.History)
	s.Equal(entities.SideA, joined.Battle.CurrentTurn)

	// resumed opening defend, local attack for 68, opponent special misses
	s.roller.Push(2, 1, 3, 71)
	out, err := s.move("arena-9", entities.Attack())
	s.Require().NoError(err)

	s.Len(out.OpponentMoves, 2)
	s.Equal(entities.Defend(), out.OpponentMoves[0].Move)
	s.Len(out.Battle.History, 3)
	s.Equal(2, out.Battle.SideA.CurrentHealth)
	s.Equal(entities.SideB, out.Battle.CurrentTurn)
}

func (s *OrchestratorTestSuite) TestAbandonedWaitStillCompletes() {
	b := s.create()

	ctx, cancel := context.WithCancel(s.ctx)
	release := make(chan struct{})
	s.setConfirm(func(_ context.Context, op battle.Operation) error {
		if op.Kind == battle.OpMove {
			cancel()
			<-release
		}
		return nil
	})

	s.roller.Push(1, 2)
	_, err := s.orchestrator.MakeMove(ctx, &battle.MakeMoveInput{
		BattleID: b.ID,
		PlayerID: playerID,
		Move:     entities.Attack(),
	})
	s.True(errors.IsCanceled(err))

	close(release)
	s.Eventually(func() bool { return s.movesSeen() == 2 }, time.Second, 5*time.Millisecond)
	s.Len(s.get(b.ID).History, 2)
}

func (s *OrchestratorTestSuite) TestDeadlineWhileWaiting() {
	b := s.create()

	release := make(chan struct{})
	s.setConfirm(func(_ context.Context, op battle.Operation) error {
		if op.Kind == battle.OpMove {
			<-release
		}
		return nil
	})

	ctx, cancel := context.WithTimeout(s.ctx, 20*time.Millisecond)
	defer cancel()

	s.roller.Push(1, 2)
	_, err := s.orchestrator.MakeMove(ctx, &battle.MakeMoveInput{
		BattleID: b.ID,
		PlayerID: playerID,
		Move:     entities.Attack(),
	})
	s.True(errors.IsDeadlineExceeded(err))

	close(release)
	s.Eventually(func() bool { return s.movesSeen() == 2 }, time.Second, 5*time.Millisecond)
}

func (s *OrchestratorTestSuite) TestCanceledBeforeStartDoesNothing() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.orchestrator.CreateBattle(ctx, &battle.CreateBattleInput{PlayerID: playerID, OpponentID: opponentID})
	s.True(errors.IsCanceled(err))

	ids, err := s.repo.ListByPlayer(s.ctx, &battles.ListByPlayerInput{PlayerID: playerID})
	s.Require().NoError(err)
	s.Empty(ids.BattleIDs)
}

func (s *OrchestratorTestSuite) TestSettlementRetry() {
	ctrl := gomock.NewController(s.T())
	accounts := accountmock.NewMockService(ctrl)
	o := s.newOrchestrator(accounts)

	mocks.ExpectPlayerLookup(accounts, testutils.CreateTestPlayer(playerID))

	out, err := o.CreateBattle(s.ctx, &battle.CreateBattleInput{PlayerID: playerID, OpponentID: opponentID})
	s.Require().NoError(err)
	battleID := out.Battle.ID

	credits := mocks.ExpectSettlementCredits(accounts, playerID, battleID, 100, 50)
	gomock.InOrder(
		mocks.ExpectCreditFailure(accounts, playerID, battleID, 100, errors.Transient("ledger down")),
		credits.Tokens,
		credits.Experience,
	)

	s.roller.Push(4000)
	_, err = o.MakeMove(s.ctx, &battle.MakeMoveInput{BattleID: battleID, PlayerID: playerID, Move: entities.Attack()})
	s.True(errors.IsTransient(err))

	unsettled := s.get(battleID)
	s.Equal(entities.StatusCompleted, unsettled.Status)
	s.False(unsettled.Settled)
	s.Empty(s.settled)

	settle, err := o.SettleBattle(s.ctx, &battle.SettleBattleInput{BattleID: battleID})
	s.Require().NoError(err)
	s.True(settle.Credited)
	s.True(settle.Battle.Settled)
	s.Len(s.settled, 1)
}

func (s *OrchestratorTestSuite) TestSettleActiveBattle() {
	b := s.create()

	_, err := s.orchestrator.SettleBattle(s.ctx, &battle.SettleBattleInput{BattleID: b.ID})
	s.True(errors.IsInvalidState(err))
}

func (s *OrchestratorTestSuite) TestListBattles() {
	first := s.create()
	second := s.create()

	out, err := s.orchestrator.ListBattles(s.ctx, &battle.ListBattlesInput{PlayerID: playerID})
	s.Require().NoError(err)
	s.Equal([]string{first.ID, second.ID}, out.BattleIDs)

	out, err = s.orchestrator.ListBattles(s.ctx, &battle.ListBattlesInput{PlayerID: opponentID})
	s.Require().NoError(err)
	s.Len(out.BattleIDs, 2)

	_, err = s.orchestrator.ListBattles(s.ctx, &battle.ListBattlesInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListOpponents() {
	out, err := s.orchestrator.ListOpponents(s.ctx, &battle.ListOpponentsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Opponents, 3)
	s.Equal("CryptoWarrior", out.Opponents[0].Username)
}

func (s *OrchestratorTestSuite) TestSnapshotsAreCopies() {
	b := s.create()
	b.SideA.CurrentHealth = 1
	b.History = append(b.History, entities.MoveRecord{Round: 9})

	fresh := s.get(b.ID)
	s.Equal(100, fresh.SideA.CurrentHealth)
	s.Empty(fresh.History)
}

// A full fight between the starter knight and the mage, both sides attacking
// every turn with a seeded roller, ends well inside twenty rounds.
func TestFullBattleTerminates(t *testing.T) {
	ctx := context.Background()

	client, _ := testutils.CreateTestRedis(t)
	ledger, err := account.NewRedisLedger(&account.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}
	if err := ledger.Seed(ctx, testutils.CreateTestPlayer(playerID)); err != nil {
		t.Fatal(err)
	}
	cat, err := catalog.NewStatic(catalog.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	for seed := uint64(1); seed <= 20; seed++ {
		adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: rpgtoolkit.NewSeededRoller(seed)})
		if err != nil {
			t.Fatal(err)
		}
		o, err := battle.NewOrchestrator(&battle.Config{
			BattleRepo:  battles.NewInMemory(),
			Accounts:    ledger,
			Catalog:     cat,
			Engine:      adapter,
			IDGenerator: idgen.NewSequential("seeded"),
			Clock:       clock.New(),
		})
		if err != nil {
			t.Fatal(err)
		}

		created, err := o.CreateBattle(ctx, &battle.CreateBattleInput{PlayerID: playerID, OpponentID: opponentID})
		if err != nil {
			t.Fatal(err)
		}

		b := created.Battle
		accepted := 0
		for b.IsActive() {
			out, err := o.MakeMove(ctx, &battle.MakeMoveInput{BattleID: b.ID, PlayerID: playerID, Move: entities.Attack()})
			if err != nil {
				t.Fatalf("seed %d: %v", seed, err)
			}
			accepted += 1 + len(out.OpponentMoves)
			b = out.Battle
		}

		if b.RoundNumber > 20 {
			t.Fatalf("seed %d: battle took %d rounds", seed, b.RoundNumber)
		}
		if len(b.History) != accepted {
			t.Fatalf("seed %d: history %d, accepted %d", seed, len(b.History), accepted)
		}
		if !b.Settled || b.Winner == "" {
			t.Fatalf("seed %d: battle ended without settling", seed)
		}
		for _, side := range []entities.Side{entities.SideA, entities.SideB} {
			c := b.Combatant(side)
			if c.CurrentHealth < 0 || c.CurrentHealth > c.Character.MaxHealth {
				t.Fatalf("seed %d: side %s health %d out of range", seed, side, c.CurrentHealth)
			}
		}
		if b.Combatant(b.Winner).CurrentHealth == 0 && b.Combatant(b.Winner.Other()).CurrentHealth != 0 {
			t.Fatalf("seed %d: winner %s is the side at zero", seed, b.Winner)
		}
	}
}
