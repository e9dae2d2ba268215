package battles

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu       sync.RWMutex
	store    map[string]*entities.Battle
	byPlayer map[string]map[string]struct{}
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store:    make(map[string]*entities.Battle),
		byPlayer: make(map[string]map[string]struct{}),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new battle
func (r *InMemoryRepository) Create(_ context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateBattle(input.Battle); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Battle.ID]; exists {
		return nil, errors.AlreadyExistsf("battle %s already exists", input.Battle.ID)
	}

	r.store[input.Battle.ID] = input.Battle.Clone()
	for _, playerID := range participants(input.Battle) {
		if r.byPlayer[playerID] == nil {
			r.byPlayer[playerID] = make(map[string]struct{})
		}
		r.byPlayer[playerID][input.Battle.ID] = struct{}{}
	}

	return &CreateOutput{Battle: input.Battle.Clone()}, nil
}

// Get retrieves a battle by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BattleID == "" {
		return nil, errBattleIDRequired
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	battle, exists := r.store[input.BattleID]
	if !exists {
		return nil, errors.NotFoundf("battle %s not found", input.BattleID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Battle: battle.Clone()}, nil
}

// Update replaces an existing battle
func (r *InMemoryRepository) Update(_ context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateBattle(input.Battle); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Battle.ID]; !exists {
		return nil, errors.NotFoundf("battle %s not found", input.Battle.ID)
	}

	r.store[input.Battle.ID] = input.Battle.Clone()

	return &UpdateOutput{Battle: input.Battle.Clone()}, nil
}

// ListByPlayer returns battle IDs for a player in sorted order
func (r *InMemoryRepository) ListByPlayer(_ context.Context, input *ListByPlayerInput) (*ListByPlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.byPlayer[input.PlayerID]))
	for id := range r.byPlayer[input.PlayerID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &ListByPlayerOutput{BattleIDs: ids}, nil
}
