package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller is a dice.Roller that returns queued values in order.
// Values are clamped into [1, size] so a script written for one die still
// produces legal rolls. It errors once the script runs out.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
	sizes  []int
}

// NewScriptedRoller creates a roller that will return values in order
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values}
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// Push queues more values
func (r *ScriptedRoller) Push(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, values...)
}

// Roll pops the next scripted value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sizes = append(r.sizes, size)
	if len(r.values) == 0 {
		return 0, fmt.Errorf("scripted roller exhausted rolling d%d", size)
	}

	v := r.values[0]
	r.values = r.values[1:]
	return min(max(v, 1), size), nil
}

// RollN pops count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	results := make([]int, 0, count)
	for range count {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}

// Sizes returns the die sizes requested so far
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.sizes...)
}

// Remaining returns how many scripted values are left
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}
