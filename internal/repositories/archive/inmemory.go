package archive

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// InMemoryRepository implements Repository in process memory
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewInMemory creates an empty archive
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{entries: make(map[string]Entry)}
}

var _ Repository = (*InMemoryRepository)(nil)

// Archive stores an entry
func (r *InMemoryRepository) Archive(_ context.Context, input *ArchiveInput) (*ArchiveOutput, error) {
	if err := validateEntry(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[input.Entry.BattleID]; exists {
		return &ArchiveOutput{Inserted: false}, nil
	}

	entry := *input.Entry
	entry.History = slices.Clone(entry.History)
	r.entries[entry.BattleID] = entry

	return &ArchiveOutput{Inserted: true}, nil
}

// Get returns an archived battle
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[input.BattleID]
	if !ok {
		return nil, errors.NotFoundf("archived battle %s not found", input.BattleID)
	}
	entry.History = slices.Clone(entry.History)

	return &GetOutput{Entry: &entry}, nil
}

// Leaderboard ranks players
func (r *InMemoryRepository) Leaderboard(_ context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	r.mu.RLock()
	byPlayer := make(map[string]*Standing)
	for _, e := range r.entries {
		st, ok := byPlayer[e.LocalPlayerID]
		if !ok {
			st = &Standing{PlayerID: e.LocalPlayerID}
			byPlayer[e.LocalPlayerID] = st
		}
		if e.LocalWon {
			st.Wins++
			st.TokensWon += e.RewardAmount
		} else {
			st.Losses++
		}
	}
	r.mu.RUnlock()

	standings := make([]Standing, 0, len(byPlayer))
	for _, st := range byPlayer {
		standings = append(standings, *st)
	}
	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.TokensWon != b.TokensWon {
			return a.TokensWon > b.TokensWon
		}
		return a.PlayerID < b.PlayerID
	})

	if limit := leaderboardLimit(input); len(standings) > limit {
		standings = standings[:limit]
	}

	return &LeaderboardOutput{Standings: standings}, nil
}
