package v1alpha1

import (
	"bytes"
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// CreateBattleRequest is the CreateBattle payload
type CreateBattleRequest struct {
	PlayerID            string `json:"player_id"`
	OpponentID          string `json:"opponent_id"`
	CharacterID         string `json:"character_id,omitempty"`
	OpponentCharacterID string `json:"opponent_character_id,omitempty"`
}

// JoinBattleRequest is the JoinBattle payload
type JoinBattleRequest struct {
	BattleID            string `json:"battle_id"`
	PlayerID            string `json:"player_id"`
	OpponentID          string `json:"opponent_id,omitempty"`
	CharacterID         string `json:"character_id,omitempty"`
	OpponentCharacterID string `json:"opponent_character_id,omitempty"`
}

// MakeMoveRequest is the MakeMove payload
type MakeMoveRequest struct {
	BattleID string        `json:"battle_id"`
	PlayerID string        `json:"player_id"`
	Move     entities.Move `json:"move"`
}

// BattleRequest identifies a battle for GetBattle and SettleBattle
type BattleRequest struct {
	BattleID string `json:"battle_id"`
}

// PlayerRequest identifies a player for GetLastError
type PlayerRequest struct {
	PlayerID string `json:"player_id"`
}

// Empty is the ListOpponents request
type Empty struct{}

// BattleResponse carries a battle snapshot and the moves the call produced
type BattleResponse struct {
	Battle        *entities.Battle      `json:"battle"`
	Record        *entities.MoveRecord  `json:"record,omitempty"`
	OpponentMoves []entities.MoveRecord `json:"opponent_moves,omitempty"`
	Credited      bool                  `json:"credited,omitempty"`
}

// OpponentsResponse lists opponents
type OpponentsResponse struct {
	Opponents []*entities.Player `json:"opponents"`
}

// LastErrorResponse holds a player's last failure message
type LastErrorResponse struct {
	Message string `json:"message"`
}

// ToStruct encodes a message as a protobuf Struct through its JSON form
func ToStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrap(err, "message is not an object")
	}

	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build struct")
	}
	return out, nil
}

// FromStruct decodes a protobuf Struct into v. Unknown fields are rejected.
func FromStruct(s *structpb.Struct, v any) error {
	raw, err := json.Marshal(s.AsMap())
	if err != nil {
		return errors.Wrap(err, "failed to read struct")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.InvalidArgumentf("malformed message: %v", err)
	}
	return nil
}
