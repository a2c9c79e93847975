package todos

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/logging"
)

// Service is the entry point used by the transports. It validates input and
// logs store failures; the store itself stays free of request concerns.
type Service struct {
	store  *Store
	logger logging.Logger
}

func NewService(store *Store, l logging.Logger) *Service {
	return &Service{store: store, logger: l.With("module", "todos")}
}

// Create stores a new todo for ownerID.
func (s *Service) Create(ctx context.Context, ownerID uint64, title string) (Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Todo{}, ErrEmptyTitle
	}

	t, err := s.store.Insert(ownerID, title)
	if err != nil {
		s.logger.Error(ctx, "insert failed", "owner_id", ownerID, "error", err)
		return Todo{}, err
	}

	s.logger.Debug(ctx, "todo created", "owner_id", ownerID, "todo_id", t.ID)
	return t, nil
}

// List returns ownerID's todos in creation order.
func (s *Service) List(ctx context.Context, ownerID uint64) ([]Todo, error) {
	items, err := s.store.ListForOwner(ownerID)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			s.logger.Error(ctx, "list failed", "owner_id", ownerID, "error", err)
		}
		return nil, err
	}
	return items, nil
}
