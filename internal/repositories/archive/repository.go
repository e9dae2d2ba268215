// Package archive keeps settled battles for history and the leaderboard.
// Live battle state stays in the battles repository; rows land here once,
// after settlement, and are never updated.
package archive

//go:generate mockgen -destination=mock/mock_repository.go -package=archivemock github.com/KirkDiggler/rpg-arena/internal/repositories/archive Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// DefaultLeaderboardLimit caps leaderboard rows when no limit is given
const DefaultLeaderboardLimit = 10

// Entry is one settled battle
type Entry struct {
	BattleID         string                `json:"battle_id"`
	LocalPlayerID    string                `json:"local_player_id"`
	OpponentPlayerID string                `json:"opponent_player_id"`
	WinnerPlayerID   string                `json:"winner_player_id"`
	LocalWon         bool                  `json:"local_won"`
	RewardAmount     int                   `json:"reward_amount"`
	Rounds           int                   `json:"rounds"`
	History          []entities.MoveRecord `json:"history"`
	SettledAt        time.Time             `json:"settled_at"`
}

// Standing is one leaderboard row. Only battles the player drove count.
type Standing struct {
	PlayerID  string `json:"player_id"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
	TokensWon int    `json:"tokens_won"`
}

// Repository stores archived battles
type Repository interface {
	// Archive stores an entry. Archiving the same battle twice is a no-op.
	Archive(ctx context.Context, input *ArchiveInput) (*ArchiveOutput, error)

	// Get returns an archived battle
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Leaderboard ranks players by wins, then tokens won, then ID
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)
}

// ArchiveInput defines the request for archiving a battle
type ArchiveInput struct {
	Entry *Entry
}

// ArchiveOutput defines the response for archiving a battle
type ArchiveOutput struct {
	// Inserted is false when the battle was already archived
	Inserted bool
}

// GetInput defines the request for reading an archived battle
type GetInput struct {
	BattleID string
}

// GetOutput defines the response for reading an archived battle
type GetOutput struct {
	Entry *Entry
}

// LeaderboardInput defines the request for the leaderboard
type LeaderboardInput struct {
	Limit int
}

// LeaderboardOutput defines the response for the leaderboard
type LeaderboardOutput struct {
	Standings []Standing
}

func validateEntry(input *ArchiveInput) error {
	if input == nil || input.Entry == nil {
		return errors.InvalidArgument("entry is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("BattleID", input.Entry.BattleID, vb)
	errors.ValidateRequired("LocalPlayerID", input.Entry.LocalPlayerID, vb)
	errors.ValidateNonNegative("RewardAmount", input.Entry.RewardAmount, vb)
	return vb.Build()
}

func leaderboardLimit(input *LeaderboardInput) int {
	if input == nil || input.Limit <= 0 {
		return DefaultLeaderboardLimit
	}
	return input.Limit
}
