package metrics_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/metrics"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
)

type MetricsTestSuite struct {
	suite.Suite
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	bus      events.EventBus
	ctx      context.Context
}

func TestMetricsSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}

func (s *MetricsTestSuite) SetupTest() {
	s.registry = prometheus.NewRegistry()
	s.metrics = metrics.New(s.registry)
	s.bus = events.NewBus()
	s.metrics.Subscribe(s.bus)
	s.ctx = context.Background()
}

func (s *MetricsTestSuite) publishMove(record entities.MoveRecord, autoPlayed bool) {
	b := testutils.CreateTestBattle("battle_1")
	s.Require().NoError(s.bus.Publish(s.ctx, battle.NewEvent(battle.EventMoveRecorded, b, record.Side,
		&battle.MoveRecorded{BattleID: b.ID, Record: record, AutoPlayed: autoPlayed})))
}

func (s *MetricsTestSuite) publishSettled(localWon bool, reward, rounds int) {
	b := testutils.CreateTestBattle("battle_1")
	s.Require().NoError(s.bus.Publish(s.ctx, battle.NewEvent(battle.EventBattleSettled, b, entities.SideA,
		&battle.BattleSettled{BattleID: b.ID, LocalWon: localWon, RewardAmount: reward, Rounds: rounds})))
}

func (s *MetricsTestSuite) TestMovesAreCountedByKindAndRole() {
	s.publishMove(entities.MoveRecord{Round: 1, Side: entities.SideA, Move: entities.Attack(), Damage: 70}, false)
	s.publishMove(entities.MoveRecord{Round: 1, Side: entities.SideB, Move: entities.Special(), Damage: 0}, true)
	s.publishMove(entities.MoveRecord{Round: 2, Side: entities.SideA, Move: entities.Attack(), Damage: 90}, false)

	s.Equal(2.0, testutil.ToFloat64(s.metrics.MovesTotal.WithLabelValues("attack", metrics.RoleLocal)))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.MovesTotal.WithLabelValues("special", metrics.RoleOpponent)))
	s.Equal(0.0, testutil.ToFloat64(s.metrics.MovesTotal.WithLabelValues("special", metrics.RoleLocal)))
	s.Equal(2, testutil.CollectAndCount(s.metrics.Damage))
}

func (s *MetricsTestSuite) TestSettledBattles() {
	s.publishSettled(true, 100, 3)
	s.publishSettled(false, 100, 2)
	s.publishSettled(true, 250, 5)

	s.Equal(2.0, testutil.ToFloat64(s.metrics.BattlesSettled.WithLabelValues(metrics.ResultWin)))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.BattlesSettled.WithLabelValues(metrics.ResultLoss)))
	s.Equal(350.0, testutil.ToFloat64(s.metrics.TokensPaid))
	s.Equal(1, testutil.CollectAndCount(s.metrics.BattleRounds))
}

func (s *MetricsTestSuite) TestUnsubscribeStopsCounting() {
	s.Require().NoError(s.metrics.Unsubscribe(s.bus))
	s.publishSettled(true, 100, 3)

	s.Equal(0.0, testutil.ToFloat64(s.metrics.TokensPaid))
}

func (s *MetricsTestSuite) TestUnaryServerInterceptor() {
	interceptor := s.metrics.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/arena.v1alpha1.BattleService/MakeMove"}

	testCases := []struct {
		name string
		err  error
		code string
	}{
		{name: "ok", code: "OK"},
		{name: "invalid state", err: errors.InvalidState("battle is completed"), code: "FailedPrecondition"},
		{name: "not found", err: errors.NotFound("battle not found"), code: "NotFound"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := interceptor(s.ctx, "req", info, func(context.Context, any) (any, error) {
				return "resp", tc.err
			})
			s.Equal(tc.err, err)
			s.Equal(1.0, testutil.ToFloat64(s.metrics.RequestsTotal.WithLabelValues(info.FullMethod, tc.code)))
		})
	}

	s.Equal(1, testutil.CollectAndCount(s.metrics.RequestDuration))
}

func (s *MetricsTestSuite) TestRegistersOnCustomRegistry() {
	families, err := s.registry.Gather()
	s.Require().NoError(err)
	// Vectors without observations are not gathered.
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	s.Contains(names, "rpg_arena_battle_tokens_paid_total")
	s.Contains(names, "rpg_arena_battle_rounds")
}
