// Package v1alpha1 serves arena.v1alpha1.BattleService over gRPC.
//
// The service has no generated stubs. Every method takes and returns a
// google.protobuf.Struct whose fields follow the JSON shape of the request
// and response types in messages.go.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "arena.v1alpha1.BattleService"

// Method names
const (
	MethodCreateBattle  = "CreateBattle"
	MethodJoinBattle    = "JoinBattle"
	MethodMakeMove      = "MakeMove"
	MethodGetBattle     = "GetBattle"
	MethodSettleBattle  = "SettleBattle"
	MethodListOpponents = "ListOpponents"
	MethodGetLastError  = "GetLastError"
)

// FullMethod returns /arena.v1alpha1.BattleService/<method>
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// BattleServiceServer is the server side of BattleService
type BattleServiceServer interface {
	CreateBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	JoinBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	MakeMove(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	SettleBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListOpponents(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetLastError(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type serverMethod func(srv BattleServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryMethod(name string, call serverMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(BattleServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(BattleServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes BattleService for grpc.Server.RegisterService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BattleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodCreateBattle, BattleServiceServer.CreateBattle),
		unaryMethod(MethodJoinBattle, BattleServiceServer.JoinBattle),
		unaryMethod(MethodMakeMove, BattleServiceServer.MakeMove),
		unaryMethod(MethodGetBattle, BattleServiceServer.GetBattle),
		unaryMethod(MethodSettleBattle, BattleServiceServer.SettleBattle),
		unaryMethod(MethodListOpponents, BattleServiceServer.ListOpponents),
		unaryMethod(MethodGetLastError, BattleServiceServer.GetLastError),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "arena/v1alpha1/battle.proto",
}

// RegisterBattleServiceServer registers srv on s
func RegisterBattleServiceServer(s grpc.ServiceRegistrar, srv BattleServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}
