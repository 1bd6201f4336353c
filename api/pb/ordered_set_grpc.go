// Package pb holds the gRPC bindings for ordered_set.proto. The service only
// uses protobuf well-known types, so the descriptor and client are written
// out here instead of being generated.
package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName = "rbset.v1.OrderedSet"

	InsertFullMethodName   = "/rbset.v1.OrderedSet/Insert"
	ContainsFullMethodName = "/rbset.v1.OrderedSet/Contains"
	IsEmptyFullMethodName  = "/rbset.v1.OrderedSet/IsEmpty"
	DumpFullMethodName     = "/rbset.v1.OrderedSet/Dump"
)

// -------------------- Client --------------------

type OrderedSetClient interface {
	Insert(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Contains(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	IsEmpty(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Dump(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type orderedSetClient struct {
	cc grpc.ClientConnInterface
}

func NewOrderedSetClient(cc grpc.ClientConnInterface) OrderedSetClient {
	return &orderedSetClient{cc}
}

func (c *orderedSetClient) Insert(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, InsertFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) Contains(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, ContainsFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) IsEmpty(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, IsEmptyFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) Dump(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, DumpFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// -------------------- Server --------------------

type OrderedSetServer interface {
	Insert(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	Contains(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	IsEmpty(context.Context, *emptypb.Empty) (*wrapperspb.BoolValue, error)
	Dump(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

// UnimplementedOrderedSetServer can be embedded for forward compatibility.
type UnimplementedOrderedSetServer struct{}

func (UnimplementedOrderedSetServer) Insert(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Insert not implemented")
}

func (UnimplementedOrderedSetServer) Contains(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Contains not implemented")
}

func (UnimplementedOrderedSetServer) IsEmpty(context.Context, *emptypb.Empty) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method IsEmpty not implemented")
}

func (UnimplementedOrderedSetServer) Dump(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Dump not implemented")
}

func RegisterOrderedSetServer(s grpc.ServiceRegistrar, srv OrderedSetServer) {
	s.RegisterService(&OrderedSet_ServiceDesc, srv)
}

func unaryHandler[Req any](
	fullMethod string,
	call func(OrderedSetServer, context.Context, *Req) (any, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(OrderedSetServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(OrderedSetServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var OrderedSet_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*OrderedSetServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Insert",
			Handler: unaryHandler(InsertFullMethodName, func(s OrderedSetServer, ctx context.Context, in *wrapperspb.StringValue) (any, error) {
				return s.Insert(ctx, in)
			}),
		},
		{
			MethodName: "Contains",
			Handler: unaryHandler(ContainsFullMethodName, func(s OrderedSetServer, ctx context.Context, in *wrapperspb.StringValue) (any, error) {
				return s.Contains(ctx, in)
			}),
		},
		{
			MethodName: "IsEmpty",
			Handler: unaryHandler(IsEmptyFullMethodName, func(s OrderedSetServer, ctx context.Context, in *emptypb.Empty) (any, error) {
				return s.IsEmpty(ctx, in)
			}),
		},
		{
			MethodName: "Dump",
			Handler: unaryHandler(DumpFullMethodName, func(s OrderedSetServer, ctx context.Context, in *emptypb.Empty) (any, error) {
				return s.Dump(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ordered_set.proto",
}
