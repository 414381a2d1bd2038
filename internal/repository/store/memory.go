package store

import (
	"context"
	"fmt"
	"sync"
)

type memory struct {
	mu   sync.RWMutex
	docs map[string]Document
}

func NewMemory() *memory {
	return &memory{docs: make(map[string]Document)}
}

func (m *memory) Load(ctx context.Context, key string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[key]
	if !ok {
		return Document{}, ErrNotFound
	}
	doc.Payload = append([]byte(nil), doc.Payload...)

	return doc, nil
}

func (m *memory) Save(ctx context.Context, doc Document, expectedVersion int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.docs[doc.Key].Version
	if current != expectedVersion {
		return fmt.Errorf("%w: key %s at %d, expected %d", ErrVersionConflict, doc.Key, current, expectedVersion)
	}

	doc.Payload = append([]byte(nil), doc.Payload...)
	m.docs[doc.Key] = doc

	return nil
}
