// Package battles provides storage for battle state
package battles

//go:generate mockgen -destination=mock/mock_repository.go -package=battlesmock github.com/KirkDiggler/rpg-arena/internal/repositories/battles Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// Repository defines the storage interface for battles. Battles are never
// deleted; every read returns a copy the caller may modify.
type Repository interface {
	// Create stores a new battle. Fails with AlreadyExists if the ID is taken.
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a battle by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Update replaces an existing battle
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// ListByPlayer returns the IDs of battles a player took part in
	ListByPlayer(ctx context.Context, input *ListByPlayerInput) (*ListByPlayerOutput, error)
}

// CreateInput defines the request for storing a new battle
type CreateInput struct {
	Battle *entities.Battle
}

// CreateOutput defines the response for storing a new battle
type CreateOutput struct {
	Battle *entities.Battle
}

// GetInput defines the request for retrieving a battle
type GetInput struct {
	BattleID string
}

// GetOutput defines the response for retrieving a battle
type GetOutput struct {
	Battle *entities.Battle
}

// UpdateInput defines the request for replacing a battle
type UpdateInput struct {
	Battle *entities.Battle
}

// UpdateOutput defines the response for replacing a battle
type UpdateOutput struct {
	Battle *entities.Battle
}

// ListByPlayerInput defines the request for listing a player's battles
type ListByPlayerInput struct {
	PlayerID string
}

// ListByPlayerOutput defines the response for listing a player's battles
type ListByPlayerOutput struct {
	BattleIDs []string
}

func validateBattle(b *entities.Battle) error {
	if b == nil {
		return errBattleRequired
	}
	if b.ID == "" {
		return errBattleIDRequired
	}
	return nil
}

// participants returns the distinct player IDs on both sides
func participants(b *entities.Battle) []string {
	ids := make([]string, 0, 2)
	for _, id := range []string{b.SideA.Player.ID, b.SideB.Player.ID} {
		if id == "" || (len(ids) > 0 && ids[0] == id) {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
