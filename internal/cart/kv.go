// Package cart owns the persisted cart: the single-key storage layout, the
// fail-soft store on top of it, and the reconciliation engine that keeps the
// in-memory cart synchronized with what is persisted.
package cart

import (
	"context"
	"sync"
)

// KeyValue is the persistent key-value backend the cart store writes
// through. A missing key yields an empty string and no error.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryKeyValue is an in-process KeyValue, standing in for per-context
// browser storage. Safe for concurrent use so tests can share one instance
// across page sessions.
type MemoryKeyValue struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKeyValue creates an empty in-memory backend.
func NewMemoryKeyValue() *MemoryKeyValue {
	return &MemoryKeyValue{values: make(map[string]string)}
}

func (m *MemoryKeyValue) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *MemoryKeyValue) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
