package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/accounts"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/todos"
)

const maxBodyBytes = 1 << 20

// TodoService is the part of todos.Service the handlers need.
type TodoService interface {
	Create(ctx context.Context, ownerID uint64, title string) (todos.Todo, error)
	List(ctx context.Context, ownerID uint64) ([]todos.Todo, error)
}

// AccountService is the part of accounts.Service the handlers need.
type AccountService interface {
	Register(ctx context.Context, email, displayName string, password []byte) (*accounts.Session, error)
	Login(ctx context.Context, email string, password []byte) (*accounts.Session, error)
}

type handlers struct {
	todos    TodoService
	accounts AccountService
	logger   logging.Logger
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type createTodoRequest struct {
	Title string `json:"title"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return nil
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Hello World"))
}

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	sess, err := h.accounts.Register(r.Context(), req.Email, req.Name, []byte(req.Password))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tokenResponse{Token: sess.AccessToken})
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	sess, err := h.accounts.Login(r.Context(), req.Email, []byte(req.Password))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: sess.AccessToken})
}

// claimsOrFail fetches the identity put there by authenticate. Its absence
// means the route was mounted outside the authenticated group.
func (h *handlers) claimsOrFail(w http.ResponseWriter, r *http.Request) (auth.Claims, bool) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		h.logger.Error(r.Context(), "no claims in context", "path", r.URL.Path)
		writeError(w, common.ErrorInternal)
	}
	return claims, ok
}

func (h *handlers) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claimsOrFail(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, claims)
}

func (h *handlers) listTodos(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claimsOrFail(w, r)
	if !ok {
		return
	}

	items, err := h.todos.List(r.Context(), claims.SubjectID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *handlers) createTodo(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claimsOrFail(w, r)
	if !ok {
		return
	}

	var req createTodoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	todo, err := h.todos.Create(r.Context(), claims.SubjectID, req.Title)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, todo)
}
