// Package eventsink forwards battle events from the in-process bus to NATS
// so downstream services can follow fights without polling.
package eventsink

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/nats-io/nats.go"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
)

//go:generate mockgen -destination=mock/mock_publisher.go -package=eventsinkmock github.com/KirkDiggler/rpg-arena/internal/clients/eventsink Publisher

// Publisher is the slice of *nats.Conn the sink needs
type Publisher interface {
	Publish(subject string, data []byte) error
}

// DefaultSubjectPrefix is prepended to the event type to form the subject
const DefaultSubjectPrefix = "rpg"

// Config configures a Sink
type Config struct {
	Publisher     Publisher
	SubjectPrefix string
}

// Validate ensures the config is valid
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}
	return vb.Build()
}

// Sink republishes battle events as JSON
type Sink struct {
	publisher     Publisher
	prefix        string
	subscriptions []string
}

// New creates a sink
func New(cfg *Config) (*Sink, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid event sink config")
	}

	prefix := cfg.SubjectPrefix
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}

	return &Sink{publisher: cfg.Publisher, prefix: prefix}, nil
}

// Subject returns the NATS subject for a bus event type
func (s *Sink) Subject(eventType string) string {
	return s.prefix + "." + eventType
}

// Subscribe starts forwarding move and settlement events from bus
func (s *Sink) Subscribe(bus events.EventBus) {
	s.subscriptions = append(s.subscriptions,
		bus.SubscribeFunc(battle.EventMoveRecorded, 100, s.onMove),
		bus.SubscribeFunc(battle.EventBattleSettled, 100, s.onSettled),
	)
}

// Unsubscribe stops forwarding
func (s *Sink) Unsubscribe(bus events.EventBus) error {
	for _, id := range s.subscriptions {
		if err := bus.Unsubscribe(id); err != nil {
			return errors.Wrapf(err, "failed to unsubscribe %s", id)
		}
	}
	s.subscriptions = nil
	return nil
}

func (s *Sink) onMove(_ context.Context, e events.Event) error {
	p, ok := battle.MoveRecordedFrom(e)
	if !ok {
		return nil
	}
	s.forward(e.Type(), p.BattleID, p)
	return nil
}

func (s *Sink) onSettled(_ context.Context, e events.Event) error {
	p, ok := battle.BattleSettledFrom(e)
	if !ok {
		return nil
	}
	s.forward(e.Type(), p.BattleID, p)
	return nil
}

// forward drops the event on failure; NATS is best effort
func (s *Sink) forward(eventType, battleID string, payload any) {
	subject := s.Subject(eventType)

	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal battle event",
			"subject", subject,
			"battle_id", battleID,
			"error", err,
		)
		return
	}

	if err := s.publisher.Publish(subject, data); err != nil {
		slog.Warn("Failed to forward battle event",
			"subject", subject,
			"battle_id", battleID,
			"error", err,
		)
	}
}

// Connect dials NATS with reconnects enabled
func Connect(url, name string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			slog.Info("NATS reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to nats")
	}
	return conn, nil
}

// Healthy reports whether conn is usable
func Healthy(conn *nats.Conn) error {
	if conn == nil || conn.IsClosed() || !conn.IsConnected() {
		return errors.Unavailable("nats is not connected")
	}
	return nil
}
