package catalog

import "sync"

// Repository reads the full catalog. Implementations read fresh on
// every call and never return an error: an unreadable source yields an
// empty slice (fail-open).
type Repository interface {
	ReadAll() []Entry
}

// InMemoryRepository is a simple in-memory implementation useful for
// tests and local runs without a catalog file.
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewInMemoryRepository(seed []Entry) *InMemoryRepository {
	r := &InMemoryRepository{entries: make([]Entry, 0, len(seed))}
	r.entries = append(r.entries, seed...)
	return r
}

func (r *InMemoryRepository) ReadAll() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
