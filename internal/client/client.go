// Package client talks to the todokeeper gRPC service. A Client keeps the
// access token from the last successful Login or Register and attaches it
// to every call.
package client

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
)

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrUnauthenticated = errors.New("unauthenticated")
)

type Client struct {
	conn    *grpc.ClientConn
	service *pb.TodoServiceClient

	mu          sync.RWMutex
	accessToken string
}

// New creates a client for endpoint. Extra dial options are appended after
// the defaults, so tests can swap the dialer.
func New(endpoint string, opts ...grpc.DialOption) (*Client, error) {
	c := &Client{}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpoint, opts...)
	if err != nil {
		return nil, err
	}

	c.conn = conn
	c.service = pb.NewTodoServiceClient(conn)
	return c, nil
}

func (c *Client) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := c.AccessToken(); token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", common.BearerScheme+" "+token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *Client) setAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

// Logout forgets the access token. Tokens are stateless, the server is not
// contacted.
func (c *Client) Logout() {
	c.setAccessToken("")
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// mapError turns transport failures into package errors so callers do not
// need to know about gRPC status codes.
func mapError(err error) error {
	switch status.Code(err) {
	case codes.OK:
		return nil
	case codes.Unavailable:
		return errors.Join(ErrUnavailable, err)
	case codes.Unauthenticated:
		return errors.Join(ErrUnauthenticated, err)
	default:
		return err
	}
}

func (c *Client) Register(ctx context.Context, email, displayName string, password []byte) error {
	req := pb.Credentials{Email: email, DisplayName: displayName, Password: string(password)}.Struct()

	resp, err := c.service.Register(ctx, req)
	if err != nil {
		return mapError(err)
	}

	c.setAccessToken(resp.GetValue())
	return nil
}

func (c *Client) Login(ctx context.Context, email string, password []byte) error {
	req := pb.Credentials{Email: email, Password: string(password)}.Struct()

	resp, err := c.service.Login(ctx, req)
	if err != nil {
		return mapError(err)
	}

	c.setAccessToken(resp.GetValue())
	return nil
}

func (c *Client) AddTodo(ctx context.Context, title string) (pb.Todo, error) {
	if c.AccessToken() == "" {
		return pb.Todo{}, ErrNotLoggedIn
	}

	resp, err := c.service.CreateTodo(ctx, wrapperspb.String(title))
	if err != nil {
		return pb.Todo{}, mapError(err)
	}

	return pb.TodoFromStruct(resp), nil
}

func (c *Client) ListTodos(ctx context.Context) ([]pb.Todo, error) {
	if c.AccessToken() == "" {
		return nil, ErrNotLoggedIn
	}

	resp, err := c.service.ListTodos(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, mapError(err)
	}

	return pb.TodosFromList(resp)
}

func (c *Client) Ping(ctx context.Context) error {
	_, err := c.service.Ping(ctx, &emptypb.Empty{})
	return mapError(err)
}
