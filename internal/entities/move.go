package entities

import (
	"fmt"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// MoveKind is the closed set of actions a side can take on its turn
type MoveKind string

// Move kinds
const (
	MoveAttack  MoveKind = "attack"
	MoveDefend  MoveKind = "defend"
	MoveSpecial MoveKind = "special"
	MoveItem    MoveKind = "item"
)

// MoveKinds lists every valid kind in display order
var MoveKinds = []MoveKind{MoveAttack, MoveDefend, MoveSpecial, MoveItem}

// Move is a single action. ItemID is only meaningful for MoveItem.
type Move struct {
	Kind   MoveKind `json:"kind"`
	ItemID string   `json:"item_id,omitempty"`
}

// Attack returns an attack move
func Attack() Move { return Move{Kind: MoveAttack} }

// Defend returns a defend move
func Defend() Move { return Move{Kind: MoveDefend} }

// Special returns a special move
func Special() Move { return Move{Kind: MoveSpecial} }

// UseItem returns an item move for the given item
func UseItem(itemID string) Move { return Move{Kind: MoveItem, ItemID: itemID} }

// ParseMoveKind maps a wire string onto a MoveKind
func ParseMoveKind(s string) (MoveKind, error) {
	switch MoveKind(s) {
	case MoveAttack, MoveDefend, MoveSpecial, MoveItem:
		return MoveKind(s), nil
	default:
		return "", errors.InvalidArgumentf("unknown move kind %q", s)
	}
}

// Validate rejects unknown kinds. Item references are not checked here: an
// item move that does not resolve to an owned item scores zero.
func (m Move) Validate() error {
	switch m.Kind {
	case MoveAttack, MoveDefend, MoveSpecial, MoveItem:
		return nil
	default:
		return errors.NewValidationBuilder().
			Fieldf("kind", "unknown move kind %q", m.Kind).
			Build()
	}
}

func (m Move) String() string {
	if m.Kind == MoveItem {
		return fmt.Sprintf("%s(%s)", m.Kind, m.ItemID)
	}
	return string(m.Kind)
}

// MoveRecord is one accepted move in a battle's history
type MoveRecord struct {
	Round  int  `json:"round"`
	Side   Side `json:"side"`
	Move   Move `json:"move"`
	Damage int  `json:"damage"`
}
