package repositories

import (
	"context"
	"sync"
)

// MemoryKeyValueRepository keeps keys in process memory. State survives
// session teardown but not a process restart.
type MemoryKeyValueRepository struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryKeyValueRepository creates an empty in-memory store.
func NewMemoryKeyValueRepository() *MemoryKeyValueRepository {
	return &MemoryKeyValueRepository{values: make(map[string]string)}
}

func (r *MemoryKeyValueRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	val, ok := r.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return val, nil
}

func (r *MemoryKeyValueRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
	return nil
}

func (r *MemoryKeyValueRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key)
	return nil
}

// Len returns the number of stored keys.
func (r *MemoryKeyValueRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}
