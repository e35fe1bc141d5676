package prefs

import (
	"path/filepath"
	"strings"
	"sync"
)

// KV is durable string key-value storage. Writes are atomic per key.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Open opens the KV backend for path: a JSON file for ".json", SQLite otherwise.
func Open(path string) (KV, error) {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return NewJSONKV(path), nil
	}
	return NewSQLiteKV(path)
}

// MemoryKV is an in-memory KV, safe for concurrent use.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates a MemoryKV seeded with the given entries.
func NewMemoryKV(seed map[string]string) *MemoryKV {
	data := make(map[string]string, len(seed))
	for k, v := range seed {
		data[k] = v
	}
	return &MemoryKV{data: data}
}

// Get implements KV.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements KV.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
