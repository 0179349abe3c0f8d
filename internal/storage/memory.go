package storage

import (
	"context"
	"sync"
)

// memoryStore implements Store with an in-process map.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() Store {
	return &memoryStore{
		data: make(map[string][]byte),
	}
}

func (s *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	// Callers may decode in place; hand out a copy.
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *memoryStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	s.data[key] = stored
	s.mu.Unlock()

	return nil
}

func (s *memoryStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()

	return nil
}
