// Package storage provides the key-value stores the journal document is
// persisted in. Every store maps a string key to an opaque byte value and
// replaces the whole value on each Set.
package storage

import (
	"errors"
	"sync"
)

// ErrQuotaExceeded is returned by Memory when a write would grow the store
// past its configured quota.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Memory is an in-process store. Quota, when positive, caps the total size
// of all values in bytes.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
	Quota  int
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Quota > 0 {
		used := len(value)
		for k, v := range m.values {
			if k != key {
				used += len(v)
			}
		}
		if used > m.Quota {
			return ErrQuotaExceeded
		}
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Close() error { return nil }
