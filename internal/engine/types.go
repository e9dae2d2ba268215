package engine

import "github.com/KirkDiggler/rpg-arena/internal/entities"

// ResolveMoveInput describes one move to resolve
type ResolveMoveInput struct {
	Move     entities.Move
	Attacker entities.Character

	// Item is the resolved item for MoveItem. Nil when the item reference
	// did not resolve.
	Item *entities.Item
}

// ResolveMoveOutput is the outcome of a resolved move
type ResolveMoveOutput struct {
	Damage int

	// Missed is set when a special move failed its hit check
	Missed bool
}

// ChooseOpponentMoveInput carries the battle the opponent is acting in
type ChooseOpponentMoveInput struct {
	Battle *entities.Battle
}

// ChooseOpponentMoveOutput holds the chosen move
type ChooseOpponentMoveOutput struct {
	Move entities.Move
}
