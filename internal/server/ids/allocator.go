// Package ids hands out process-wide unique, monotonically increasing
// identifiers.
package ids

import "sync/atomic"

// Allocator is a shared counter. The zero value is ready to use and its
// first Next call returns 1. An Allocator must not be copied after first use.
type Allocator struct {
	last atomic.Uint64
}

// NewAllocator returns an empty Allocator.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns a value strictly greater than every value returned before.
// It is safe for concurrent use; no two calls observe the same value.
func (a *Allocator) Next() uint64 {
	return a.last.Add(1)
}

// Last reports the most recently allocated value, or 0 if none.
func (a *Allocator) Last() uint64 {
	return a.last.Load()
}
