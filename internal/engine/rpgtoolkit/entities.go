package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// Entity types reported to rpg-toolkit
const (
	EntityTypeCombatant = "combatant"
	EntityTypeBattle    = "battle"
)

// CombatantEntity wraps a battle side to implement core.Entity. The ID is
// scoped to the battle so both sides stay distinct even for the same player.
type CombatantEntity struct {
	BattleID string
	Side     entities.Side
	*entities.Combatant
}

// GetID returns battleID:side
func (c *CombatantEntity) GetID() string {
	return c.BattleID + ":" + string(c.Side)
}

// GetType returns the entity type for rpg-toolkit
func (c *CombatantEntity) GetType() string {
	return EntityTypeCombatant
}

// BattleEntity wraps a battle to implement core.Entity
type BattleEntity struct {
	*entities.Battle
}

// GetID returns the battle's ID
func (b *BattleEntity) GetID() string {
	return b.ID
}

// GetType returns the entity type for rpg-toolkit
func (b *BattleEntity) GetType() string {
	return EntityTypeBattle
}

// WrapCombatant returns the entity for one side of a battle
func WrapCombatant(b *entities.Battle, side entities.Side) *CombatantEntity {
	return &CombatantEntity{
		BattleID:  b.ID,
		Side:      side,
		Combatant: b.Combatant(side),
	}
}

// WrapBattle converts a battle to a BattleEntity
func WrapBattle(b *entities.Battle) *BattleEntity {
	return &BattleEntity{Battle: b}
}

// Compile-time check that our entity wrappers implement core.Entity
var (
	_ core.Entity = (*CombatantEntity)(nil)
	_ core.Entity = (*BattleEntity)(nil)
)
