package todos

import "errors"

var (
	// ErrUnavailable reports that the shared collection can no longer be
	// trusted because a writer panicked while holding it.
	ErrUnavailable = errors.New("todo store unavailable")

	// ErrEmptyTitle is returned by the service for blank titles.
	ErrEmptyTitle = errors.New("todo title is empty")
)
