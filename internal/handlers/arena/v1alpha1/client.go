package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Client calls BattleService with typed messages. Errors come back as
// coded errors, so errors.IsNotFound and friends work on them.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps a connection to a BattleService server
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// CreateBattle starts a battle with the caller on side A
func (c *Client) CreateBattle(ctx context.Context, req *CreateBattleRequest, opts ...grpc.CallOption) (*BattleResponse, error) {
	out := new(BattleResponse)
	return out, c.invoke(ctx, MethodCreateBattle, req, out, opts...)
}

// JoinBattle starts a battle under req.BattleID with the caller on side B
func (c *Client) JoinBattle(ctx context.Context, req *JoinBattleRequest, opts ...grpc.CallOption) (*BattleResponse, error) {
	out := new(BattleResponse)
	return out, c.invoke(ctx, MethodJoinBattle, req, out, opts...)
}

// MakeMove submits a move
func (c *Client) MakeMove(ctx context.Context, req *MakeMoveRequest, opts ...grpc.CallOption) (*BattleResponse, error) {
	out := new(BattleResponse)
	return out, c.invoke(ctx, MethodMakeMove, req, out, opts...)
}

// GetBattle fetches a battle snapshot
func (c *Client) GetBattle(ctx context.Context, req *BattleRequest, opts ...grpc.CallOption) (*BattleResponse, error) {
	out := new(BattleResponse)
	return out, c.invoke(ctx, MethodGetBattle, req, out, opts...)
}

// SettleBattle retries settlement
func (c *Client) SettleBattle(ctx context.Context, req *BattleRequest, opts ...grpc.CallOption) (*BattleResponse, error) {
	out := new(BattleResponse)
	return out, c.invoke(ctx, MethodSettleBattle, req, out, opts...)
}

// ListOpponents lists opponents
func (c *Client) ListOpponents(ctx context.Context, opts ...grpc.CallOption) (*OpponentsResponse, error) {
	out := new(OpponentsResponse)
	return out, c.invoke(ctx, MethodListOpponents, &Empty{}, out, opts...)
}

// GetLastError fetches a player's last failure message
func (c *Client) GetLastError(ctx context.Context, req *PlayerRequest, opts ...grpc.CallOption) (*LastErrorResponse, error) {
	out := new(LastErrorResponse)
	return out, c.invoke(ctx, MethodGetLastError, req, out, opts...)
}

func (c *Client) invoke(ctx context.Context, method string, req, resp any, opts ...grpc.CallOption) error {
	in, err := ToStruct(req)
	if err != nil {
		return err
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return errors.FromGRPCError(err)
	}

	return FromStruct(out, resp)
}
