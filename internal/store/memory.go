package store

import (
	"context"
	"slices"
	"sync"
)

// Memory keeps blobs in a map. It is used by tests and the simulator.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string]map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, session, key string) ([]byte, error) {
	if err := validate(session, key); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.blobs[session][key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(v), nil
}

func (m *Memory) Put(_ context.Context, session, key string, value []byte) error {
	if err := validate(session, key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blobs[session] == nil {
		m.blobs[session] = make(map[string][]byte)
	}
	m.blobs[session][key] = slices.Clone(value)
	return nil
}

func (m *Memory) Close() error { return nil }
