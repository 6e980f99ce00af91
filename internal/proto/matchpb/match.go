// Package matchpb declares the matching.v1.MatchService gRPC contract.
// Messages are google.protobuf.Struct so no generated code is needed; field
// names follow the REST payloads (partner_id_1, partner_id_2, match_status).
package matchpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "matching.v1.MatchService"

const (
	RequestMatchMethod = "/" + ServiceName + "/RequestMatch"
	AcceptMatchMethod  = "/" + ServiceName + "/AcceptMatch"
	DeclineMatchMethod = "/" + ServiceName + "/DeclineMatch"
	GetMatchMethod     = "/" + ServiceName + "/GetMatch"
)

// MatchServiceServer is the server API for MatchService.
type MatchServiceServer interface {
	RequestMatch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AcceptMatch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeclineMatch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetMatch(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type call func(MatchServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func handler(fullMethod string, fn call) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return fn(srv.(MatchServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return fn(srv.(MatchServiceServer), ctx, req.(*structpb.Struct))
		})
	}
}

// MatchServiceDesc is the grpc.ServiceDesc for MatchService.
var MatchServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MatchServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RequestMatch", Handler: handler(RequestMatchMethod, MatchServiceServer.RequestMatch)},
		{MethodName: "AcceptMatch", Handler: handler(AcceptMatchMethod, MatchServiceServer.AcceptMatch)},
		{MethodName: "DeclineMatch", Handler: handler(DeclineMatchMethod, MatchServiceServer.DeclineMatch)},
		{MethodName: "GetMatch", Handler: handler(GetMatchMethod, MatchServiceServer.GetMatch)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "matching/v1/match.proto",
}

// RegisterMatchServiceServer attaches srv to s.
func RegisterMatchServiceServer(s grpc.ServiceRegistrar, srv MatchServiceServer) {
	s.RegisterService(&MatchServiceDesc, srv)
}

// MatchServiceClient is the client API for MatchService.
type MatchServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMatchServiceClient(cc grpc.ClientConnInterface) *MatchServiceClient {
	return &MatchServiceClient{cc: cc}
}

func (c *MatchServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MatchServiceClient) RequestMatch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, RequestMatchMethod, in, opts...)
}

func (c *MatchServiceClient) AcceptMatch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AcceptMatchMethod, in, opts...)
}

func (c *MatchServiceClient) DeclineMatch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DeclineMatchMethod, in, opts...)
}

func (c *MatchServiceClient) GetMatch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetMatchMethod, in, opts...)
}
