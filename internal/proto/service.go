// Package proto describes the todokeeper.v1.TodoService RPC surface.
//
// Messages are protobuf well-known types, so the default gRPC proto codec
// carries them and no generated code is needed:
//
//	Login       Struct{email, password}        -> StringValue (access token)
//	Register    Struct{email, name, password}  -> StringValue (access token)
//	CreateTodo  StringValue (title)            -> Struct (todo)
//	ListTodos   Empty                          -> ListValue of Struct (todos)
//	Ping        Empty                          -> StringValue ("OK")
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "todokeeper.v1.TodoService"

const (
	LoginFullMethod      = "/" + ServiceName + "/Login"
	RegisterFullMethod   = "/" + ServiceName + "/Register"
	CreateTodoFullMethod = "/" + ServiceName + "/CreateTodo"
	ListTodosFullMethod  = "/" + ServiceName + "/ListTodos"
	PingFullMethod       = "/" + ServiceName + "/Ping"
)

// TodoServiceServer is implemented by the server side of the service.
type TodoServiceServer interface {
	Login(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	Register(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	CreateTodo(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListTodos(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

// unaryHandler adapts a TodoServiceServer method to grpc.MethodHandler,
// decoding the request and running it through the interceptor chain.
func unaryHandler[Req, Resp any](fullMethod string, call func(TodoServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TodoServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TodoServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var TodoServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TodoServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Login", Handler: unaryHandler(LoginFullMethod, TodoServiceServer.Login)},
		{MethodName: "Register", Handler: unaryHandler(RegisterFullMethod, TodoServiceServer.Register)},
		{MethodName: "CreateTodo", Handler: unaryHandler(CreateTodoFullMethod, TodoServiceServer.CreateTodo)},
		{MethodName: "ListTodos", Handler: unaryHandler(ListTodosFullMethod, TodoServiceServer.ListTodos)},
		{MethodName: "Ping", Handler: unaryHandler(PingFullMethod, TodoServiceServer.Ping)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterTodoServiceServer(s grpc.ServiceRegistrar, srv TodoServiceServer) {
	s.RegisterService(&TodoServiceDesc, srv)
}

// TodoServiceClient is the client stub for the service.
type TodoServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTodoServiceClient(cc grpc.ClientConnInterface) *TodoServiceClient {
	return &TodoServiceClient{cc: cc}
}

func (c *TodoServiceClient) Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, LoginFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TodoServiceClient) Register(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, RegisterFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TodoServiceClient) CreateTodo(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, CreateTodoFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TodoServiceClient) ListTodos(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ListTodosFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TodoServiceClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, PingFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
