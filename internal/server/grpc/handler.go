package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/todos"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
)

// handler implements pb.TodoServiceServer on top of the server's services.
type handler struct {
	server *GRPCServer
}

// statusError maps domain errors onto gRPC codes. A store failure is
// always codes.Internal, never an empty result.
func statusError(err error) error {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorValidation), errors.Is(err, todos.ErrEmptyTitle):
		return status.Error(codes.InvalidArgument, "invalid argument")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func toProto(t todos.Todo) pb.Todo {
	return pb.Todo{ID: t.ID, OwnerID: t.OwnerID, Title: t.Title, Done: t.Done}
}

func (h *handler) Register(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	c := pb.CredentialsFromStruct(req)

	sess, err := h.server.accounts.Register(ctx, c.Email, c.DisplayName, []byte(c.Password))
	if err != nil {
		return nil, statusError(err)
	}

	return wrapperspb.String(sess.AccessToken), nil
}

func (h *handler) Login(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	c := pb.CredentialsFromStruct(req)

	sess, err := h.server.accounts.Login(ctx, c.Email, []byte(c.Password))
	if err != nil {
		return nil, statusError(err)
	}

	return wrapperspb.String(sess.AccessToken), nil
}

func (h *handler) CreateTodo(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	todo, err := h.server.todos.Create(ctx, claims.SubjectID, req.GetValue())
	if err != nil {
		return nil, statusError(err)
	}

	return toProto(todo).Struct(), nil
}

func (h *handler) ListTodos(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	items, err := h.server.todos.List(ctx, claims.SubjectID)
	if err != nil {
		return nil, statusError(err)
	}

	out := make([]pb.Todo, 0, len(items))
	for _, t := range items {
		out = append(out, toProto(t))
	}
	return pb.TodoList(out), nil
}

func (h *handler) Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String("OK"), nil
}
