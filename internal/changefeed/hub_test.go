package changefeed

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/you-humble/fleet-maintenance/internal/model"
)

type recorder struct {
	mu  sync.Mutex
	got []model.CollectionChange
}

func (r *recorder) listen(c model.CollectionChange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, c)
}

func (r *recorder) versions() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int64, 0, len(r.got))
	for _, c := range r.got {
		out = append(out, c.Version)
	}
	return out
}

type fakeForwarder struct {
	sent []model.CollectionChange
	err  error
}

func (f *fakeForwarder) SendCollectionChanged(_ context.Context, c model.CollectionChange) error {
	f.sent = append(f.sent, c)
	return f.err
}

func TestHubReceive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		local    []model.CollectionChange
		remote   model.CollectionChange
		accepted bool
	}{
		{
			name:     "newer change from another writer",
			local:    []model.CollectionChange{{Key: "usedParts", Version: 3, WriterID: "a"}},
			remote:   model.CollectionChange{Key: "usedParts", Version: 4, WriterID: "b"},
			accepted: true,
		},
		{
			name:     "echo of own write",
			local:    []model.CollectionChange{{Key: "usedParts", Version: 3, WriterID: "a"}},
			remote:   model.CollectionChange{Key: "usedParts", Version: 3, WriterID: "a"},
			accepted: false,
		},
		{
			name:     "own write arriving late is still an echo",
			local:    nil,
			remote:   model.CollectionChange{Key: "usedParts", Version: 9, WriterID: "a"},
			accepted: false,
		},
		{
			name:     "stale version from another writer",
			local:    []model.CollectionChange{{Key: "usedParts", Version: 5, WriterID: "a"}},
			remote:   model.CollectionChange{Key: "usedParts", Version: 4, WriterID: "b"},
			accepted: false,
		},
		{
			name:     "versions are tracked per key",
			local:    []model.CollectionChange{{Key: "usedParts", Version: 5, WriterID: "a"}},
			remote:   model.CollectionChange{Key: "stockItems", Version: 1, WriterID: "b"},
			accepted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			h := NewHub("a")
			rec := &recorder{}
			h.Subscribe(AllKeys, rec.listen)

			for _, c := range tt.local {
				h.Publish(ctx, c)
			}

			assert.Equal(t, tt.accepted, h.Receive(ctx, tt.remote))
			if tt.accepted {
				assert.Equal(t, tt.remote.Version, h.LastVersion(tt.remote.Key))
			}
			assert.Len(t, rec.got, len(tt.local)+boolToInt(tt.accepted))
		})
	}
}

func TestHubSubscribeByKeyAndUnsubscribe(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := NewHub("a")
	stock := &recorder{}
	all := &recorder{}

	unsubscribe := h.Subscribe("stockItems", stock.listen)
	h.Subscribe(AllKeys, all.listen)

	h.Publish(ctx, model.CollectionChange{Key: "stockItems", Version: 1, WriterID: "a"})
	h.Publish(ctx, model.CollectionChange{Key: "repairOrders", Version: 1, WriterID: "a"})
	unsubscribe()
	unsubscribe()
	h.Publish(ctx, model.CollectionChange{Key: "stockItems", Version: 2, WriterID: "a"})

	assert.Equal(t, []int64{1}, stock.versions())
	assert.Equal(t, []int64{1, 1, 2}, all.versions())
}

func TestHubForwardsLocalWritesOnly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := NewHub("a")
	fwd := &fakeForwarder{err: errors.New("broker down")}
	h.SetForwarder(fwd)

	h.Publish(ctx, model.CollectionChange{Key: "stockItems", Version: 1, WriterID: "a"})
	h.Receive(ctx, model.CollectionChange{Key: "stockItems", Version: 2, WriterID: "b"})

	assert.Len(t, fwd.sent, 1)
	assert.Equal(t, int64(2), h.LastVersion("stockItems"))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
