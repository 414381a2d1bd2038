package store

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLoadSave(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()

	_, err := m.Load(ctx, "stockItems")
	require.ErrorIs(t, err, ErrNotFound)

	doc := Document{Key: "stockItems", Version: 1, WriterID: "a", Payload: []byte(`[]`), UpdatedAt: time.Now()}
	require.NoError(t, m.Save(ctx, doc, 0))

	err = m.Save(ctx, doc, 0)
	require.ErrorIs(t, err, ErrVersionConflict)

	doc.Version = 2
	doc.Payload = []byte(`[{"id":"x"}]`)
	require.NoError(t, m.Save(ctx, doc, 1))

	got, err := m.Load(ctx, "stockItems")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	assert.JSONEq(t, `[{"id":"x"}]`, string(got.Payload))

	got.Payload[0] = 'X'
	again, err := m.Load(ctx, "stockItems")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"x"}]`, string(again.Payload))
}

func TestMemoryConcurrentWritersOneWinsPerVersion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := m.Save(ctx, Document{Key: "k", Version: 1}, 0); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestMemoryHonoursCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemory().Load(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
