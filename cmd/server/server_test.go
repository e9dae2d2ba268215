package main

import (
	"context"
	"net"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/rpg-arena/internal/config"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-arena/internal/handlers/arena/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/metrics"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/archive"
)

type ServerTestSuite struct {
	suite.Suite
	redis  *miniredis.Miniredis
	app    *app
	server *grpc.Server
	conn   *grpc.ClientConn
	client *v1alpha1.Client
	ctx    context.Context
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.redis = miniredis.RunT(s.T())

	cfg := config.Default()
	cfg.Redis.URL = "redis://" + s.redis.Addr() + "/0"
	cfg.Battle.ConfirmDelay = 0
	cfg.Battle.DiceSeed = 7
	cfg.Battle.OpponentCharacterID = "3"
	s.Require().NoError(cfg.Validate())

	a, err := newApp(s.ctx, cfg)
	s.Require().NoError(err)
	s.app = a

	s.server, err = newGRPCServer(a)
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.server.Serve(lis) }()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = v1alpha1.NewClient(s.conn)
}

func (s *ServerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.app.close()
}

func (s *ServerTestSuite) TestPlaysBattleToSettlement() {
	created, err := s.client.CreateBattle(s.ctx, &v1alpha1.CreateBattleRequest{
		PlayerID:   "player1",
		OpponentID: "1",
	})
	s.Require().NoError(err)
	s.Equal(entities.StatusActive, created.Battle.Status)
	s.Equal("Crypto Archer", created.Battle.SideB.Character.Name)

	battleID := created.Battle.ID
	var last *v1alpha1.BattleResponse
	for i := 0; i < 50; i++ {
		last, err = s.client.MakeMove(s.ctx, &v1alpha1.MakeMoveRequest{
			BattleID: battleID,
			PlayerID: "player1",
			Move:     entities.Attack(),
		})
		s.Require().NoError(err)
		if !last.Battle.IsActive() {
			break
		}
	}
	s.Require().Equal(entities.StatusCompleted, last.Battle.Status)
	s.True(last.Battle.Settled)

	entry, err := s.app.archive.Get(s.ctx, &archive.GetInput{BattleID: battleID})
	s.Require().NoError(err)
	s.Equal(last.Battle.LocalWon(), entry.Entry.LocalWon)
	s.Equal(len(last.Battle.History), len(entry.Entry.History))

	result := metrics.ResultLoss
	if last.Battle.LocalWon() {
		result = metrics.ResultWin
	}
	s.Equal(1.0, testutil.ToFloat64(s.app.metrics.BattlesSettled.WithLabelValues(result)))
	s.Equal(1.0, testutil.ToFloat64(s.app.metrics.RequestsTotal.WithLabelValues(
		v1alpha1.FullMethod(v1alpha1.MethodCreateBattle), "OK")))
}

func (s *ServerTestSuite) TestErrorsCrossTheWire() {
	_, err := s.client.GetBattle(s.ctx, &v1alpha1.BattleRequest{BattleID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.client.CreateBattle(s.ctx, &v1alpha1.CreateBattleRequest{
		PlayerID:   "player1",
		OpponentID: "404",
	})
	s.True(errors.IsNotFound(err))

	last, err := s.client.GetLastError(s.ctx, &v1alpha1.PlayerRequest{PlayerID: "player1"})
	s.Require().NoError(err)
	s.Contains(last.Message, "404")
}

func (s *ServerTestSuite) TestReadinessChecks() {
	checks := s.app.readinessChecks()
	s.Require().Contains(checks, "redis")
	s.NoError(checks["redis"](s.ctx))
	s.NotContains(checks, "postgres")
	s.NotContains(checks, "nats")
}
