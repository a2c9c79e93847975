package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/client"
	"github.com/dmitrijs2005/todokeeper/internal/client/config"

	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
)

// TodoClient is the part of client.Client the commands use.
type TodoClient interface {
	Register(ctx context.Context, email, displayName string, password []byte) error
	Login(ctx context.Context, email string, password []byte) error
	Logout()
	AddTodo(ctx context.Context, title string) (pb.Todo, error)
	ListTodos(ctx context.Context) ([]pb.Todo, error)
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	client  TodoClient
	timeout time.Duration
	email   string
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.New(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return newApp(apiClient, c.RequestTimeout, os.Stdin, os.Stdout), nil
}

func newApp(c TodoClient, timeout time.Duration, in io.Reader, out io.Writer) *App {
	return &App{
		client:  c,
		timeout: timeout,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

func (a *App) isLoggedIn() bool {
	return a.email != ""
}

func (a *App) status() string {
	if a.email == "" {
		return "(anonymous)"
	}
	return "(" + a.email + ")"
}

// requestContext bounds a single RPC by the configured timeout.
func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

// Run reads commands until exit, EOF or ctx cancellation.
func (a *App) Run(ctx context.Context) error {
	defer a.client.Close()

	pingCtx, cancel := a.requestContext(ctx)
	if err := a.client.Ping(pingCtx); err != nil {
		printlnFn(a.out, "Server is not reachable:", err)
	}
	cancel()

	printlnFn(a.out, "Welcome to todokeeper (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.out, a.reader)
	return nil
}
