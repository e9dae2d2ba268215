package battle

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
)

// OperationKind names what is being confirmed
type OperationKind string

// Operation kinds
const (
	OpCreate       OperationKind = "create"
	OpJoin         OperationKind = "join"
	OpMove         OperationKind = "move"
	OpOpponentMove OperationKind = "opponent_move"
)

// Operation is a state change waiting on confirmation
type Operation struct {
	Kind     OperationKind
	BattleID string
	PlayerID string
}

// Confirmer gates every state change. Nothing is mutated until Confirm
// returns nil; an error leaves the battle as it was.
type Confirmer interface {
	Confirm(ctx context.Context, op Operation) error
}

// ConfirmerFunc adapts a function to Confirmer
type ConfirmerFunc func(ctx context.Context, op Operation) error

// Confirm calls f
func (f ConfirmerFunc) Confirm(ctx context.Context, op Operation) error {
	return f(ctx, op)
}

// NoConfirm accepts everything immediately
var NoConfirm = ConfirmerFunc(func(context.Context, Operation) error { return nil })

// DefaultConfirmDelay is how long the ledger takes to confirm an operation
const DefaultConfirmDelay = time.Second

// DelayConfirmerConfig configures a DelayConfirmer
type DelayConfirmerConfig struct {
	Clock clock.Clock
	Delay time.Duration

	// Fail, if set, is consulted after the delay. A non-nil result is
	// returned as a transient failure.
	Fail func(op Operation) error
}

// DelayConfirmer simulates ledger confirmation latency
type DelayConfirmer struct {
	clock clock.Clock
	delay time.Duration
	fail  func(op Operation) error
}

// NewDelayConfirmer creates a confirmer that waits Delay before accepting
func NewDelayConfirmer(cfg *DelayConfirmerConfig) (*DelayConfirmer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Clock == nil {
		vb.RequiredField("Clock")
	}
	errors.ValidateNonNegative("Delay", int(cfg.Delay), vb)
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &DelayConfirmer{
		clock: cfg.Clock,
		delay: cfg.Delay,
		fail:  cfg.Fail,
	}, nil
}

// Confirm waits out the delay. A context that ends first is a transient
// failure so the operation can be retried.
func (c *DelayConfirmer) Confirm(ctx context.Context, op Operation) error {
	if c.delay > 0 {
		select {
		case <-c.clock.After(c.delay):
		case <-ctx.Done():
			return errors.Transientf("%s confirmation for battle %s did not complete: %v", op.Kind, op.BattleID, ctx.Err())
		}
	}

	if c.fail != nil {
		if err := c.fail(op); err != nil {
			return errors.WrapWithCode(err, errors.CodeUnavailable,
				string(op.Kind)+" confirmation rejected")
		}
	}
	return nil
}
