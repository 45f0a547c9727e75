package cache

import (
	"context"
	"sync"

	"github.com/radar-ali360/radar-engine/pkg/models"
)

// entry is one in-flight or completed computation. ready closes when the
// compute finishes; waiters read results/err afterwards.
type entry struct {
	ready   chan struct{}
	results []models.RecommendationResult
	err     error
}

// Memory is the process-lifetime recommendation cache. It has no TTL and
// no eviction; Clear empties it wholesale.
type Memory struct {
	mu      sync.Mutex
	entries map[string]*entry
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]*entry)}
}

// GetOrCompute implements the single-flight contract: the first caller for
// a key runs compute, concurrent callers for the same key block on the same
// entry, and later callers get the cached result without any compute at
// all. Failed computes are evicted before waiters wake so the key stays
// retryable.
func (m *Memory) GetOrCompute(ctx context.Context, key Key, compute ComputeFunc) ([]models.RecommendationResult, bool, error) {
	k := key.String()

	m.mu.Lock()
	if e, ok := m.entries[k]; ok {
		m.mu.Unlock()
		select {
		case <-e.ready:
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
		return e.results, true, e.err
	}

	e := &entry{ready: make(chan struct{})}
	m.entries[k] = e
	m.mu.Unlock()

	e.results, e.err = compute(ctx)
	if e.err != nil {
		m.mu.Lock()
		delete(m.entries, k)
		m.mu.Unlock()
	}
	close(e.ready)

	return e.results, false, e.err
}

// Clear drops every entry. In-flight computations finish but their results
// are not retained for later readers.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	m.entries = make(map[string]*entry)
	m.mu.Unlock()
	return nil
}

// Len reports the number of cached keys, in-flight entries included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
