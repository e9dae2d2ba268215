package battle

import "github.com/KirkDiggler/rpg-arena/internal/entities"

// CreateBattleInput starts a battle with the caller on side A
type CreateBattleInput struct {
	PlayerID   string
	OpponentID string

	// CharacterID defaults to the first character the player owns
	CharacterID string

	// OpponentCharacterID defaults to Config.DefaultOpponentCharacterID
	OpponentCharacterID string
}

// CreateBattleOutput holds the new battle
type CreateBattleOutput struct {
	Battle *entities.Battle
}

// JoinBattleInput enters a battle under a caller-chosen ID with the caller on side B
type JoinBattleInput struct {
	BattleID string
	PlayerID string

	// OpponentID defaults to the first listed opponent
	OpponentID string

	// CharacterID defaults to the first character the player owns
	CharacterID string

	// OpponentCharacterID defaults to Config.JoinOpponentCharacterID
	OpponentCharacterID string
}

// JoinBattleOutput holds the battle after the opponent's opening turn
type JoinBattleOutput struct {
	Battle *entities.Battle

	// OpponentMoves are the turns auto-played before control came back
	OpponentMoves []entities.MoveRecord
}

// MakeMoveInput submits the caller's move
type MakeMoveInput struct {
	BattleID string
	PlayerID string
	Move     entities.Move
}

// MakeMoveOutput reports the caller's move and the replies it triggered
type MakeMoveOutput struct {
	Battle *entities.Battle
	Record entities.MoveRecord

	// OpponentMoves are the auto-played turns, including any resumed
	// from an earlier failed reply
	OpponentMoves []entities.MoveRecord
}

// GetBattleInput identifies a battle
type GetBattleInput struct {
	BattleID string
}

// GetBattleOutput holds a battle snapshot
type GetBattleOutput struct {
	Battle *entities.Battle
}

// SettleBattleInput identifies a completed battle to settle
type SettleBattleInput struct {
	BattleID string
}

// SettleBattleOutput holds the battle after settlement
type SettleBattleOutput struct {
	Battle *entities.Battle

	// Credited is true when this call paid the reward
	Credited bool
}

// ListBattlesInput identifies a player
type ListBattlesInput struct {
	PlayerID string
}

// ListBattlesOutput holds battle IDs, sorted
type ListBattlesOutput struct {
	BattleIDs []string
}

// ListOpponentsInput is empty
type ListOpponentsInput struct{}

// ListOpponentsOutput lists the players a battle can be fought against
type ListOpponentsOutput struct {
	Opponents []*entities.Player
}

// GetLastErrorInput identifies a player
type GetLastErrorInput struct {
	PlayerID string
}

// GetLastErrorOutput holds the player's most recent failure message, empty
// after a success
type GetLastErrorOutput struct {
	Message string
}
