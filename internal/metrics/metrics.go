// Package metrics exposes prometheus collectors for battles and the gRPC
// surface. Battle metrics are fed from the event bus, so the battle
// orchestrator does not know they exist.
package metrics

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
)

// Namespace prefixes every metric
const Namespace = "rpg_arena"

// Label values for who made a move
const (
	RoleLocal    = "local"
	RoleOpponent = "opponent"
)

// Label values for settled battles
const (
	ResultWin  = "win"
	ResultLoss = "loss"
)

// DamageBuckets cover zero, a missed special and a boosted item hit
var DamageBuckets = []float64{0, 20, 40, 60, 80, 100, 120, 150, 200}

// RoundBuckets cover the short fights the starter characters produce
var RoundBuckets = []float64{1, 2, 3, 5, 8, 13, 20}

// Metrics holds the arena collectors
type Metrics struct {
	MovesTotal         *prometheus.CounterVec
	Damage             *prometheus.HistogramVec
	BattlesSettled     *prometheus.CounterVec
	BattleRounds       prometheus.Histogram
	TokensPaid         prometheus.Counter
	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	subscriptions      []string
}

// New registers the collectors on registerer
func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		MovesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "battle",
				Name:      "moves_total",
				Help:      "Accepted moves by kind and who made them",
			},
			[]string{"kind", "role"},
		),
		Damage: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: "battle",
				Name:      "damage",
				Help:      "Damage dealt per move",
				Buckets:   DamageBuckets,
			},
			[]string{"kind"},
		),
		BattlesSettled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "battle",
				Name:      "settled_total",
				Help:      "Settled battles by result for the local player",
			},
			[]string{"result"},
		),
		BattleRounds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: "battle",
				Name:      "rounds",
				Help:      "Rounds per settled battle",
				Buckets:   RoundBuckets,
			},
		),
		TokensPaid: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "battle",
				Name:      "tokens_paid_total",
				Help:      "Reward tokens paid to winning players",
			},
		),
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "grpc",
				Name:      "requests_total",
				Help:      "gRPC requests by method and code",
			},
			[]string{"method", "code"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: "grpc",
				Name:      "request_duration_seconds",
				Help:      "gRPC request latency; includes ledger confirmation waits",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"method"},
		),
	}
}

// Subscribe feeds battle events from bus into the collectors
func (m *Metrics) Subscribe(bus events.EventBus) {
	m.subscriptions = append(m.subscriptions,
		bus.SubscribeFunc(battle.EventMoveRecorded, 0, m.onMove),
		bus.SubscribeFunc(battle.EventBattleSettled, 0, m.onSettled),
	)
}

// Unsubscribe detaches from bus
func (m *Metrics) Unsubscribe(bus events.EventBus) error {
	for _, id := range m.subscriptions {
		if err := bus.Unsubscribe(id); err != nil {
			return errors.Wrapf(err, "failed to unsubscribe %s", id)
		}
	}
	m.subscriptions = nil
	return nil
}

func (m *Metrics) onMove(_ context.Context, e events.Event) error {
	p, ok := battle.MoveRecordedFrom(e)
	if !ok {
		return nil
	}

	role := RoleLocal
	if p.AutoPlayed {
		role = RoleOpponent
	}
	kind := string(p.Record.Move.Kind)

	m.MovesTotal.WithLabelValues(kind, role).Inc()
	m.Damage.WithLabelValues(kind).Observe(float64(p.Record.Damage))
	return nil
}

func (m *Metrics) onSettled(_ context.Context, e events.Event) error {
	p, ok := battle.BattleSettledFrom(e)
	if !ok {
		return nil
	}

	result := ResultLoss
	if p.LocalWon {
		result = ResultWin
		m.TokensPaid.Add(float64(p.RewardAmount))
	}

	m.BattlesSettled.WithLabelValues(result).Inc()
	m.BattleRounds.Observe(float64(p.Rounds))
	return nil
}

// UnaryServerInterceptor records request counts and latency
func (m *Metrics) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := errors.GRPCStatus(err).Code().String()
		m.RequestsTotal.WithLabelValues(info.FullMethod, code).Inc()
		m.RequestDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())

		return resp, err
	}
}
