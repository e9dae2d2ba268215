package engine

import (
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// ApplyTurn runs one scheduler step: the side whose turn it is deals damage
// to the other side, the move is recorded, and the battle either completes
// or passes the turn. The round number only advances when B hands back to A.
//
// A battle that is not active is rejected before anything changes.
func ApplyTurn(b *entities.Battle, move entities.Move, damage int) (entities.MoveRecord, error) {
	if b == nil {
		return entities.MoveRecord{}, errors.InvalidArgument("battle is required")
	}
	if !b.IsActive() {
		return entities.MoveRecord{}, errors.InvalidStatef("battle %s is %s", b.ID, b.Status).
			WithMeta("battle_id", b.ID)
	}
	if !b.CurrentTurn.Valid() {
		return entities.MoveRecord{}, errors.Internalf("battle %s has invalid turn %q", b.ID, b.CurrentTurn)
	}

	attacker := b.CurrentTurn
	defender := attacker.Other()

	record := entities.MoveRecord{
		Round:  b.RoundNumber,
		Side:   attacker,
		Move:   move,
		Damage: max(0, damage),
	}

	b.Combatant(defender).ApplyDamage(record.Damage)
	b.History = append(b.History, record)

	if b.SideA.Defeated() || b.SideB.Defeated() {
		b.Status = entities.StatusCompleted
		b.Winner = winner(b, attacker)
		return record, nil
	}

	b.CurrentTurn = defender
	if attacker == entities.SideB {
		b.RoundNumber++
	}

	return record, nil
}

// winner is the side still standing. Only the defender can drop in a single
// step, so a double knockout goes to the attacker.
func winner(b *entities.Battle, attacker entities.Side) entities.Side {
	switch {
	case b.SideA.Defeated() && b.SideB.Defeated():
		return attacker
	case b.SideA.Defeated():
		return entities.SideB
	default:
		return entities.SideA
	}
}
