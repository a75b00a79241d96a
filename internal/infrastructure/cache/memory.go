package cache

import (
	"context"
	"sync"
)

// MemoryCounterStore is the in-process counter used when no Redis
// address is configured. The count does not survive restarts.
type MemoryCounterStore struct {
	mu    sync.Mutex
	count int64
}

// NewMemoryCounterStore creates an in-memory counter store
func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{}
}

// Current returns the counter value
func (ms *MemoryCounterStore) Current(_ context.Context) (int64, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.count, nil
}

// Increment adds one and returns the new value
func (ms *MemoryCounterStore) Increment(_ context.Context) (int64, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.count++
	return ms.count, nil
}

// Decrement subtracts one and returns the new value, floored at zero
func (ms *MemoryCounterStore) Decrement(_ context.Context) (int64, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.count > 0 {
		ms.count--
	}
	return ms.count, nil
}
