package todos

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/todokeeper/internal/server/ids"
)

// Store is an ordered, concurrently shared collection of todos.
//
// Writers are exclusive; readers run in parallel with each other and never
// see a half-appended item. If a writer panics while holding the lock the
// store is marked poisoned and every later call fails with ErrUnavailable.
type Store struct {
	mu       sync.RWMutex
	items    []Todo
	ids      *ids.Allocator
	poisoned atomic.Bool

	// beforeAppend runs under the write lock right before an item is stored.
	beforeAppend func(Todo)
}

// NewStore returns an empty store drawing identifiers from alloc.
func NewStore(alloc *ids.Allocator) *Store {
	if alloc == nil {
		alloc = ids.NewAllocator()
	}
	return &Store{ids: alloc}
}

// Insert allocates a new id, appends a not-done todo for ownerID and returns
// a copy of it. The id is taken under the write lock so list order and id
// order always agree.
func (s *Store) Insert(ownerID uint64, title string) (todo Todo, err error) {
	if s.poisoned.Load() {
		return Todo{}, ErrUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			s.poisoned.Store(true)
			todo, err = Todo{}, fmt.Errorf("%w: insert panicked: %v", ErrUnavailable, r)
		}
	}()

	if s.poisoned.Load() {
		return Todo{}, ErrUnavailable
	}

	t := Todo{
		ID:      s.ids.Next(),
		OwnerID: ownerID,
		Title:   title,
	}
	if s.beforeAppend != nil {
		s.beforeAppend(t)
	}
	s.items = append(s.items, t)

	return t, nil
}

// ListForOwner returns a snapshot of the owner's todos in insertion order.
// The result is never nil.
func (s *Store) ListForOwner(ownerID uint64) ([]Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.poisoned.Load() {
		return nil, ErrUnavailable
	}

	result := make([]Todo, 0)
	for _, t := range s.items {
		if t.OwnerID == ownerID {
			result = append(result, t)
		}
	}

	return result, nil
}

// Len returns the total number of stored todos across all owners.
func (s *Store) Len() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.poisoned.Load() {
		return 0, ErrUnavailable
	}
	return len(s.items), nil
}
