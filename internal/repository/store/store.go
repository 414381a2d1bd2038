package store

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("store: document not found")
	ErrVersionConflict = errors.New("store: version conflict")
)

// Document is one whole collection. Payload is a JSON array.
type Document struct {
	Key       string
	Version   int64
	WriterID  string
	Payload   []byte
	UpdatedAt time.Time
}

// Backend is the shared synchronized key-value store.
// Save succeeds only when the stored version equals expectedVersion; 0 means absent.
type Backend interface {
	Load(ctx context.Context, key string) (Document, error)
	Save(ctx context.Context, doc Document, expectedVersion int64) error
}
