package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterOptions carries everything the router depends on.
type RouterOptions struct {
	Todos         TodoService
	Accounts      AccountService
	Verifier      Verifier
	Logger        logging.Logger
	AllowedOrigin string
}

// NewRouter wires the middleware chain and routes.
//
//	GET  /           public greeting
//	POST /register   create an account, returns a token
//	POST /login      exchange credentials for a token
//	GET  /me         claims of the caller          (bearer)
//	GET  /todos      caller's todos                (bearer)
//	POST /todos      create a todo for the caller  (bearer)
func NewRouter(opts RouterOptions) http.Handler {
	l := opts.Logger.With("module", "http_api")
	h := &handlers{todos: opts.Todos, accounts: opts.Accounts, logger: l}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(l))
	r.Use(middleware.Recoverer)
	r.Use(cors(opts.AllowedOrigin))

	r.Get("/", h.index)
	r.Post("/register", h.register)
	r.Post("/login", h.login)

	r.Group(func(r chi.Router) {
		r.Use(authenticate(opts.Verifier, l))

		r.Get("/me", h.me)
		r.Get("/todos", h.listTodos)
		r.Post("/todos", h.createTodo)
	})

	return r
}
