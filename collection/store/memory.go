// Package store provides Repository implementations.
package store

import (
	"context"
	"sync"
)

// =============================================================================
// MEMORY REPOSITORY - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu       sync.RWMutex
	payloads map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{payloads: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, name string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payload, ok := m.payloads[name]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, true, nil
}

func (m *Memory) Save(_ context.Context, name string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(payload))
	copy(stored, payload)
	m.payloads[name] = stored
	return nil
}

// Names returns the keys that have been saved. Test helper for verifying
// persist-on-mutation behavior.
func (m *Memory) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.payloads))
	for name := range m.payloads {
		names = append(names, name)
	}
	return names
}
