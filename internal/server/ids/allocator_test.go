package ids

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocator_StartsAtOneAndIncreases(t *testing.T) {
	t.Parallel()

	a := NewAllocator()
	assert.Equal(t, uint64(0), a.Last())

	prev := uint64(0)
	for i := 0; i < 10; i++ {
		v := a.Next()
		assert.Greater(t, v, prev)
		prev = v
	}
	assert.Equal(t, uint64(10), a.Last())
}

func TestAllocator_ZeroValueUsable(t *testing.T) {
	t.Parallel()

	var a Allocator
	assert.Equal(t, uint64(1), a.Next())
	assert.Equal(t, uint64(2), a.Next())
}

func TestAllocator_FiftyConcurrentCallers(t *testing.T) {
	t.Parallel()

	const callers = 50
	a := NewAllocator()

	var wg sync.WaitGroup
	got := make([]uint64, callers)
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			got[i] = a.Next()
		}(i)
	}
	close(start)
	wg.Wait()

	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	require.Len(t, got, callers)
	for i, v := range got {
		assert.Equal(t, uint64(i+1), v, "values must be exactly 1..%d", callers)
	}
}

func TestAllocator_IndependentInstances(t *testing.T) {
	t.Parallel()

	a, b := NewAllocator(), NewAllocator()
	a.Next()
	a.Next()
	assert.Equal(t, uint64(1), b.Next())
}
