// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
)

// BattleBuilder provides a fluent interface for building test Battle instances
type BattleBuilder struct {
	battle *entities.Battle
}

// NewBattleBuilder starts from testutils.CreateTestBattle: an active battle
// with the local player on side A
func NewBattleBuilder() *BattleBuilder {
	return &BattleBuilder{battle: testutils.CreateTestBattle("battle-test-123")}
}

// WithID sets the battle ID
func (b *BattleBuilder) WithID(id string) *BattleBuilder {
	b.battle.ID = id
	return b
}

// WithLocalSide puts the caller on side
func (b *BattleBuilder) WithLocalSide(side entities.Side) *BattleBuilder {
	b.battle.LocalSide = side
	return b
}

// WithCombatant replaces the combatant on side at full health
func (b *BattleBuilder) WithCombatant(side entities.Side, player entities.Player, character entities.Character) *BattleBuilder {
	*b.battle.Combatant(side) = entities.NewCombatant(player, character)
	return b
}

// WithHealth sets a side's current health
func (b *BattleBuilder) WithHealth(side entities.Side, health int) *BattleBuilder {
	b.battle.Combatant(side).CurrentHealth = health
	return b
}

// WithMove appends a record to the history and advances the turn
func (b *BattleBuilder) WithMove(side entities.Side, move entities.Move, damage int) *BattleBuilder {
	b.battle.History = append(b.battle.History, entities.MoveRecord{
		Round:  b.battle.RoundNumber,
		Side:   side,
		Move:   move,
		Damage: damage,
	})
	b.battle.Combatant(side.Other()).ApplyDamage(damage)
	b.battle.CurrentTurn = side.Other()
	if side == entities.SideB {
		b.battle.RoundNumber++
	}
	return b
}

// WithReward sets the token reward for a local win
func (b *BattleBuilder) WithReward(amount int) *BattleBuilder {
	b.battle.RewardAmount = amount
	return b
}

// Completed marks the battle as won by winner
func (b *BattleBuilder) Completed(winner entities.Side) *BattleBuilder {
	b.battle.Status = entities.StatusCompleted
	b.battle.Winner = winner
	b.battle.Combatant(winner.Other()).CurrentHealth = 0
	return b
}

// Settled marks a completed battle as settled
func (b *BattleBuilder) Settled() *BattleBuilder {
	b.battle.Settled = true
	return b
}

// At sets both timestamps
func (b *BattleBuilder) At(t time.Time) *BattleBuilder {
	b.battle.CreatedAt = t
	b.battle.UpdatedAt = t
	return b
}

// Build returns a copy of the battle so the builder can be reused
func (b *BattleBuilder) Build() *entities.Battle {
	return b.battle.Clone()
}
