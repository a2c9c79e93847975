package grpc

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/accounts"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/ids"
	"github.com/dmitrijs2005/todokeeper/internal/server/todos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", nopLogger{}, nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", nopLogger{}, nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

// startBufconn serves s over an in-memory listener and returns a client
// stub connected to it.
func startBufconn(t *testing.T, s *GRPCServer) *pb.TodoServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.Serve(ctx, lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		wg.Wait()
	})

	return pb.NewTodoServiceClient(conn)
}

func newServices(t *testing.T, ts TodoService) *GRPCServer {
	t.Helper()

	signer, err := auth.NewSigner([]byte("secret"))
	require.NoError(t, err)
	verifier, err := auth.NewVerifier([]byte("secret"))
	require.NoError(t, err)

	if ts == nil {
		ts = todos.NewService(todos.NewStore(ids.NewAllocator()), nopLogger{})
	}
	as := accounts.NewService(accounts.NewDirectory(ids.NewAllocator(), bcrypt.MinCost), signer, time.Hour, nopLogger{})

	return NewGRPCServer("", nopLogger{}, ts, as, verifier)
}

func bearer(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func register(t *testing.T, c *pb.TodoServiceClient, email, name string) string {
	t.Helper()
	resp, err := c.Register(context.Background(), pb.Credentials{Email: email, DisplayName: name, Password: "pw"}.Struct())
	require.NoError(t, err)
	require.NotEmpty(t, resp.GetValue())
	return resp.GetValue()
}

func TestTodoService_OwnerScenario(t *testing.T) {
	c := startBufconn(t, newServices(t, nil))

	pong, err := c.Ping(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.GetValue())

	one := register(t, c, "one@example.com", "One")
	two := register(t, c, "two@example.com", "Two")

	for _, step := range []struct{ token, title string }{
		{one, "Todo A"}, {two, "Todo B"}, {one, "Todo C"},
	} {
		_, err := c.CreateTodo(bearer(step.token), wrapperspb.String(step.title))
		require.NoError(t, err)
	}

	list := func(token string) []pb.Todo {
		resp, err := c.ListTodos(bearer(token), &emptypb.Empty{})
		require.NoError(t, err)
		items, err := pb.TodosFromList(resp)
		require.NoError(t, err)
		return items
	}

	assert.Equal(t, []pb.Todo{
		{ID: 1, OwnerID: 1, Title: "Todo A"},
		{ID: 3, OwnerID: 1, Title: "Todo C"},
	}, list(one))
	assert.Equal(t, []pb.Todo{{ID: 2, OwnerID: 2, Title: "Todo B"}}, list(two))
}

func TestTodoService_Login(t *testing.T) {
	c := startBufconn(t, newServices(t, nil))
	register(t, c, "meng@example.com", "Team Meng")

	resp, err := c.Login(context.Background(), pb.Credentials{Email: "meng@example.com", Password: "pw"}.Struct())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetValue())

	_, err = c.Login(context.Background(), pb.Credentials{Email: "meng@example.com", Password: "bad"}.Struct())
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = c.Login(context.Background(), pb.Credentials{}.Struct())
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.Register(context.Background(), pb.Credentials{Email: "meng@example.com", DisplayName: "x", Password: "pw"}.Struct())
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestTodoService_RequiresToken(t *testing.T) {
	c := startBufconn(t, newServices(t, nil))

	_, err := c.ListTodos(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = c.CreateTodo(bearer("garbage"), wrapperspb.String("x"))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestTodoService_EmptyTitle(t *testing.T) {
	c := startBufconn(t, newServices(t, nil))
	token := register(t, c, "a@b", "A")

	_, err := c.CreateTodo(bearer(token), wrapperspb.String("  "))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

type unavailableTodos struct{}

func (unavailableTodos) Create(context.Context, uint64, string) (todos.Todo, error) {
	return todos.Todo{}, todos.ErrUnavailable
}

func (unavailableTodos) List(context.Context, uint64) ([]todos.Todo, error) {
	return nil, todos.ErrUnavailable
}

func TestTodoService_StoreUnavailableIsInternal(t *testing.T) {
	c := startBufconn(t, newServices(t, unavailableTodos{}))
	token := register(t, c, "a@b", "A")

	_, err := c.ListTodos(bearer(token), &emptypb.Empty{})
	assert.Equal(t, codes.Internal, status.Code(err))

	_, err = c.CreateTodo(bearer(token), wrapperspb.String("x"))
	assert.Equal(t, codes.Internal, status.Code(err))
}
