// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-arena/internal/engine"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

const (
	// attackSpread draws U in [0.8, 1.2) as (attackSpreadBase+roll)/attackSpreadScale
	attackSpread      = 4000
	attackSpreadBase  = 7999
	attackSpreadScale = 10000

	specialHitDie    = 100
	specialHitChance = 70
)

// opponentMoves is what the auto-played side picks from. Items are never chosen.
var opponentMoves = []entities.MoveKind{
	entities.MoveAttack,
	entities.MoveDefend,
	entities.MoveSpecial,
}

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		diceRoller: cfg.DiceRoller,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// ResolveMove computes damage for a single move
func (a *Adapter) ResolveMove(_ context.Context, input *engine.ResolveMoveInput) (*engine.ResolveMoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	attack := max(0, input.Attacker.Attack)

	switch input.Move.Kind {
	case entities.MoveAttack:
		r, err := a.roll(attackSpread)
		if err != nil {
			return nil, err
		}
		return &engine.ResolveMoveOutput{
			Damage: attack * (attackSpreadBase + r) / attackSpreadScale,
		}, nil

	case entities.MoveDefend:
		return &engine.ResolveMoveOutput{}, nil

	case entities.MoveSpecial:
		r, err := a.roll(specialHitDie)
		if err != nil {
			return nil, err
		}
		if r > specialHitChance {
			return &engine.ResolveMoveOutput{Missed: true}, nil
		}
		return &engine.ResolveMoveOutput{Damage: attack * 3 / 2}, nil

	case entities.MoveItem:
		return &engine.ResolveMoveOutput{Damage: itemDamage(attack, input.Item)}, nil

	default:
		return nil, errors.InvalidArgumentf("unknown move kind %q", input.Move.Kind)
	}
}

// ChooseOpponentMove picks uniformly among attack, defend and special
func (a *Adapter) ChooseOpponentMove(
	_ context.Context,
	input *engine.ChooseOpponentMoveInput,
) (*engine.ChooseOpponentMoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, err := a.roll(len(opponentMoves))
	if err != nil {
		return nil, err
	}

	return &engine.ChooseOpponentMoveOutput{
		Move: entities.Move{Kind: opponentMoves[r-1]},
	}, nil
}

// itemDamage only deals damage for attack items. Other stats affect things
// outside the damage path, and an unresolved item deals nothing.
func itemDamage(attack int, item *entities.Item) int {
	if item == nil || item.Stat != entities.StatAttack {
		return 0
	}
	return max(0, attack*(100+item.Bonus)/100)
}

// roll returns a value in [1, size]
func (a *Adapter) roll(size int) (int, error) {
	r, err := a.diceRoller.Roll(size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", size)
	}
	if r < 1 || r > size {
		return 0, errors.Internalf("dice roller returned %d for d%d", r, size)
	}
	return r, nil
}
