package rpgtoolkit

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// SeededRoller is a dice.Roller that replays the same sequence for the same
// seed. It is safe for concurrent use.
type SeededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRoller creates a roller seeded with seed
func NewSeededRoller(seed uint64) *SeededRoller {
	return &SeededRoller{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

var _ dice.Roller = (*SeededRoller)(nil)

// Roll returns a value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("dice size must be positive, got %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative, got %d", count)
	}
	if size <= 0 {
		return nil, errors.InvalidArgumentf("dice size must be positive, got %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]int, count)
	for i := range results {
		results[i] = r.rng.IntN(size) + 1
	}
	return results, nil
}

// NewRoller returns a seeded roller when seed is non-zero, otherwise the
// toolkit's default crypto-backed roller.
func NewRoller(seed uint64) dice.Roller {
	if seed == 0 {
		return dice.DefaultRoller
	}
	return NewSeededRoller(seed)
}
