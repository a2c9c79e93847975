// Package grpc serves the todo store and account endpoints over gRPC.
// Bearer authentication is an interceptor; handlers read the verified
// identity with auth.ClaimsFromContext.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/accounts"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/todos"
	"google.golang.org/grpc"

	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
)

type TodoService interface {
	Create(ctx context.Context, ownerID uint64, title string) (todos.Todo, error)
	List(ctx context.Context, ownerID uint64) ([]todos.Todo, error)
}

type AccountService interface {
	Register(ctx context.Context, email, displayName string, password []byte) (*accounts.Session, error)
	Login(ctx context.Context, email string, password []byte) (*accounts.Session, error)
}

type Verifier interface {
	Verify(rawHeader string) (auth.Claims, error)
}

type GRPCServer struct {
	address  string
	todos    TodoService
	accounts AccountService
	verifier Verifier
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, ts TodoService, as AccountService, v Verifier) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		todos:    ts,
		accounts: as,
		verifier: v,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully once ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.loggingInterceptor,
		s.recoveryInterceptor,
		s.accessTokenInterceptor,
	))

	pb.RegisterTodoServiceServer(srv, &handler{server: s})

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
