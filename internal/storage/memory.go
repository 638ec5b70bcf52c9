package storage

import (
	"context"
	"sync"
)

// MemorySidecar implements Sidecar with in-process storage. Used in
// tests and when no Redis address is configured.
type MemorySidecar struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemorySidecar() *MemorySidecar {
	return &MemorySidecar{blobs: make(map[string][]byte)}
}

func (m *MemorySidecar) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemorySidecar) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.blobs[key] = stored
	return nil
}

func (m *MemorySidecar) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}
