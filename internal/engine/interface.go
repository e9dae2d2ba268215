// Package engine holds the battle rules: the move resolver and opponent
// policy contract, and the turn scheduler that applies a resolved move.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-arena/internal/engine Engine

import (
	"context"
)

// Engine provides the random parts of combat. Implementations own the
// random source so battles can be replayed with a fixed seed.
type Engine interface {
	// ResolveMove computes the damage a move deals. It never fails on game
	// input; an error means the random source broke.
	ResolveMove(ctx context.Context, input *ResolveMoveInput) (*ResolveMoveOutput, error)

	// ChooseOpponentMove picks the move for the auto-played side
	ChooseOpponentMove(ctx context.Context, input *ChooseOpponentMoveInput) (*ChooseOpponentMoveOutput, error)
}
