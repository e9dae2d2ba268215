// Package account is the arena's view of player accounts: identity, token
// balance and experience.
package account

//go:generate mockgen -destination=mock/mock_service.go -package=accountmock github.com/KirkDiggler/rpg-arena/internal/clients/account Service

import (
	"context"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// Service is the account ledger the battle engine pays rewards into.
//
// Credits carrying a Reference are applied at most once per player, field
// and reference. Repeating one returns the current balance with Applied false.
type Service interface {
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)
	CreditTokens(ctx context.Context, input *CreditInput) (*CreditOutput, error)
	CreditExperience(ctx context.Context, input *CreditInput) (*CreditOutput, error)
}

// GetPlayerInput identifies a player
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayerOutput holds the player record
type GetPlayerOutput struct {
	Player *entities.Player
}

// CreditInput adds Amount to a player's balance
type CreditInput struct {
	PlayerID string
	Amount   int

	// Reference makes the credit idempotent, typically the battle ID
	Reference string
}

// CreditOutput reports the balance after the credit
type CreditOutput struct {
	Balance int
	Applied bool
}
