package entities

import (
	"slices"
	"time"
)

// Side identifies one of the two combatants
type Side string

// Sides
const (
	SideA Side = "A"
	SideB Side = "B"
)

// Other returns the opposing side
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Valid reports whether s is A or B
func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

// Status is the battle lifecycle state. It only moves forward.
type Status string

// Statuses
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Battle is the full state of one fight.
//
// LocalSide is the side driven by the caller; the other side is always
// auto-played. Winner is empty until Status is completed.
type Battle struct {
	ID               string       `json:"id"`
	SideA            Combatant    `json:"side_a"`
	SideB            Combatant    `json:"side_b"`
	LocalSide        Side         `json:"local_side"`
	CurrentTurn      Side         `json:"current_turn"`
	RoundNumber      int          `json:"round_number"`
	Status           Status       `json:"status"`
	Winner           Side         `json:"winner,omitempty"`
	RewardAmount     int          `json:"reward_amount"`
	ExperienceReward int          `json:"experience_reward"`
	History          []MoveRecord `json:"history"`
	Settled          bool         `json:"settled"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// Combatant returns a pointer to the combatant on the given side
func (b *Battle) Combatant(side Side) *Combatant {
	if side == SideB {
		return &b.SideB
	}
	return &b.SideA
}

// Local returns the caller-driven combatant
func (b *Battle) Local() *Combatant {
	return b.Combatant(b.LocalSide)
}

// Opponent returns the auto-played combatant
func (b *Battle) Opponent() *Combatant {
	return b.Combatant(b.LocalSide.Other())
}

// IsActive reports whether moves can still be applied
func (b *Battle) IsActive() bool {
	return b.Status == StatusActive
}

// LocalTurn reports whether the caller is the one to move
func (b *Battle) LocalTurn() bool {
	return b.IsActive() && b.CurrentTurn == b.LocalSide
}

// LocalWon reports whether the battle ended with the caller's side winning
func (b *Battle) LocalWon() bool {
	return b.Status == StatusCompleted && b.Winner == b.LocalSide
}

// Clone returns a deep copy safe to hand to readers
func (b *Battle) Clone() *Battle {
	if b == nil {
		return nil
	}
	c := *b
	c.History = slices.Clone(b.History)
	return &c
}
