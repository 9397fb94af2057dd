package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is an in-process Store used by tests and seeds.
type Memory struct {
	mu   sync.RWMutex
	docs map[string]json.RawMessage
}

// NewMemory constructs an empty Memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]json.RawMessage)}
}

// Load unmarshals the named collection into dest.
func (m *Memory) Load(ctx context.Context, name string, dest any) error {
	m.mu.RLock()
	raw, ok := m.docs[name]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("store: decode %s: %w", name, err)
	}
	return nil
}

// Save overwrites the named collection.
func (m *Memory) Save(ctx context.Context, name string, value any) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", name, err)
	}
	return m.SaveRaw(ctx, name, doc)
}

// LoadRaw returns the stored JSON document, nil when absent.
func (m *Memory) LoadRaw(ctx context.Context, name string) (json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.docs[name]
	if !ok {
		return nil, nil
	}
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out, nil
}

// SaveRaw overwrites the named collection with a pre-encoded document.
func (m *Memory) SaveRaw(ctx context.Context, name string, doc json.RawMessage) error {
	stored := make(json.RawMessage, len(doc))
	copy(stored, doc)
	m.mu.Lock()
	m.docs[name] = stored
	m.mu.Unlock()
	return nil
}

// SaveRawAll overwrites several collections under one lock.
func (m *Memory) SaveRawAll(ctx context.Context, docs map[string]json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, doc := range docs {
		stored := make(json.RawMessage, len(doc))
		copy(stored, doc)
		m.docs[name] = stored
	}
	return nil
}
