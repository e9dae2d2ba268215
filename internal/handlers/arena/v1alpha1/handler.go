package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
)

// HandlerConfig holds dependencies for the battle handler
type HandlerConfig struct {
	BattleService battle.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.BattleService == nil {
		return errors.InvalidArgument("battle service is required")
	}
	return nil
}

// Handler implements BattleServiceServer on top of the battle orchestrator
type Handler struct {
	battleService battle.Service
}

var _ BattleServiceServer = (*Handler)(nil)

// NewHandler creates a new battle handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{battleService: cfg.BattleService}, nil
}

// CreateBattle starts a battle with the caller on side A
func (h *Handler) CreateBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in CreateBattleRequest
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.battleService.CreateBattle(ctx, &battle.CreateBattleInput{
		PlayerID:            in.PlayerID,
		OpponentID:          in.OpponentID,
		CharacterID:         in.CharacterID,
		OpponentCharacterID: in.OpponentCharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&BattleResponse{Battle: out.Battle})
}

// JoinBattle starts a battle under the caller's ID with the caller on side B
func (h *Handler) JoinBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in JoinBattleRequest
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.battleService.JoinBattle(ctx, &battle.JoinBattleInput{
		BattleID:            in.BattleID,
		PlayerID:            in.PlayerID,
		OpponentID:          in.OpponentID,
		CharacterID:         in.CharacterID,
		OpponentCharacterID: in.OpponentCharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&BattleResponse{Battle: out.Battle, OpponentMoves: out.OpponentMoves})
}

// MakeMove submits the caller's move
func (h *Handler) MakeMove(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in MakeMoveRequest
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.battleService.MakeMove(ctx, &battle.MakeMoveInput{
		BattleID: in.BattleID,
		PlayerID: in.PlayerID,
		Move:     in.Move,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&BattleResponse{
		Battle:        out.Battle,
		Record:        &out.Record,
		OpponentMoves: out.OpponentMoves,
	})
}

// GetBattle returns a battle snapshot
func (h *Handler) GetBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in BattleRequest
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.battleService.GetBattle(ctx, &battle.GetBattleInput{BattleID: in.BattleID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&BattleResponse{Battle: out.Battle})
}

// SettleBattle retries settlement of a completed battle
func (h *Handler) SettleBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in BattleRequest
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.battleService.SettleBattle(ctx, &battle.SettleBattleInput{BattleID: in.BattleID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&BattleResponse{Battle: out.Battle, Credited: out.Credited})
}

// ListOpponents lists available opponents
func (h *Handler) ListOpponents(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in Empty
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.battleService.ListOpponents(ctx, &battle.ListOpponentsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&OpponentsResponse{Opponents: out.Opponents})
}

// GetLastError returns the player's last failure message
func (h *Handler) GetLastError(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in PlayerRequest
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.battleService.GetLastError(ctx, &battle.GetLastErrorInput{PlayerID: in.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&LastErrorResponse{Message: out.Message})
}

func respond(v any) (*structpb.Struct, error) {
	out, err := ToStruct(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
