package runner

import "sync"

// BestStore persists the best score between sessions.
// Get returns 0 when nothing has been stored yet.
type BestStore interface {
	Get() (int, error)
	Set(best int) error
}

// MemoryStore keeps the best score in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	best int
}

// NewMemoryStore creates a store holding an initial best score.
func NewMemoryStore(best int) *MemoryStore {
	return &MemoryStore{best: best}
}

// Get returns the stored best score.
func (m *MemoryStore) Get() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

// Set replaces the stored best score.
func (m *MemoryStore) Set(best int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = best
	return nil
}
