// Package catalog serves character, item and opponent records and what each
// player owns.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/rpg-arena/internal/clients/catalog Service

import (
	"context"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// Service looks up catalog records
type Service interface {
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)
	ListOpponents(ctx context.Context, input *ListOpponentsInput) (*ListOpponentsOutput, error)
	ListInventory(ctx context.Context, input *ListInventoryInput) (*ListInventoryOutput, error)
}

// GetCharacterInput identifies a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput holds a character record
type GetCharacterOutput struct {
	Character *entities.Character
}

// GetItemInput identifies an item
type GetItemInput struct {
	ItemID string
}

// GetItemOutput holds an item record
type GetItemOutput struct {
	Item *entities.Item
}

// ListOpponentsInput is empty; opponents are the same for everyone
type ListOpponentsInput struct{}

// ListOpponentsOutput lists opponents in leaderboard order
type ListOpponentsOutput struct {
	Opponents []*entities.Player
}

// ListInventoryInput identifies a player
type ListInventoryInput struct {
	PlayerID string
}

// ListInventoryOutput holds what the player owns
type ListInventoryOutput struct {
	Inventory *entities.Inventory
}
