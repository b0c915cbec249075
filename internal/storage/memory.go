package storage

import (
	"context"
	"sync"
)

// MemoryStore is a non-durable SnapshotStore. It backs tests and the
// degraded mode where no storage backend could be opened: the session
// keeps working with memory as the source of truth.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string][]byte

	// FailSaves makes every Save return this error, for exercising the
	// degraded-durability path in tests.
	FailSaves error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.items[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, data []byte) error {
	if s.FailSaves != nil {
		return s.FailSaves
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	s.items[key] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
