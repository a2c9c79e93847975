// Package server wires the todokeeper server together: configuration,
// logging, the shared todo store, accounts, token signing and the HTTP and
// gRPC transports, and runs them until a signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/accounts"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/config"
	"github.com/dmitrijs2005/todokeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/todokeeper/internal/server/ids"
	"github.com/dmitrijs2005/todokeeper/internal/server/todos"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/todokeeper/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	todoService    *todos.Service
	accountService *accounts.Service
	verifier       *auth.Verifier
}

// NewApp builds the services. The todo store and both allocators are
// created here and shared by every transport.
func NewApp(c *config.Config, l logging.Logger) (*App, error) {
	secret := []byte(c.SecretKey)

	signer, err := auth.NewSigner(secret)
	if err != nil {
		return nil, fmt.Errorf("token signer: %w", err)
	}
	verifier, err := auth.NewVerifier(secret)
	if err != nil {
		return nil, fmt.Errorf("token verifier: %w", err)
	}

	store := todos.NewStore(ids.NewAllocator())
	directory := accounts.NewDirectory(ids.NewAllocator(), bcrypt.DefaultCost)

	return &App{
		config:         c,
		logger:         l,
		todoService:    todos.NewService(store, l),
		accountService: accounts.NewService(directory, signer, c.AccessTokenValidityDuration, l),
		verifier:       verifier,
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) httpServer() *httpapi.HTTPServer {
	router := httpapi.NewRouter(httpapi.RouterOptions{
		Todos:         app.todoService,
		Accounts:      app.accountService,
		Verifier:      app.verifier,
		Logger:        app.logger,
		AllowedOrigin: app.config.AllowedOrigin,
	})
	return httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, router, app.config.ShutdownTimeout)
}

func (app *App) grpcServer() *gs.GRPCServer {
	return gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.todoService, app.accountService, app.verifier)
}

// Run serves HTTP and gRPC until ctx is cancelled, a termination signal
// arrives or either server fails. A failure of one server stops the other.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	g, gctx := errgroup.WithContext(ctx)
	for _, r := range []interface {
		Run(context.Context) error
	}{app.httpServer(), app.grpcServer()} {
		r := r
		g.Go(func() error {
			if err := r.Run(gctx); err != nil {
				app.logger.Error(gctx, "server failed", "error", err)
				return err
			}
			return nil
		})
	}

	err := g.Wait()
	app.logger.Info(ctx, "App stopped")
	return err
}
