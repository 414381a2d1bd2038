package changefeed

import (
	"context"
	"sync"

	"github.com/you-humble/fleet-maintenance/internal/metrics"
	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

// AllKeys subscribes a listener to every collection.
const AllKeys = ""

type Listener func(change model.CollectionChange)

type Forwarder interface {
	SendCollectionChanged(ctx context.Context, change model.CollectionChange) error
}

type subscription struct {
	key string
	fn  Listener
}

// Hub fans committed writes out to local listeners and to other instances.
// Remote notifications are accepted only when they come from another writer and
// carry a version newer than the last one seen for the key.
type Hub struct {
	instanceID string

	mu        sync.RWMutex
	forwarder Forwarder
	seen      map[string]int64
	subs      map[uint64]subscription
	nextID    uint64
}

func NewHub(instanceID string) *Hub {
	return &Hub{
		instanceID: instanceID,
		seen:       make(map[string]int64),
		subs:       make(map[uint64]subscription),
	}
}

func (h *Hub) InstanceID() string { return h.instanceID }

func (h *Hub) SetForwarder(f Forwarder) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.forwarder = f
}

// Subscribe registers fn for key, or for every key with AllKeys. Listeners run on the
// publishing goroutine and must not block.
func (h *Hub) Subscribe(key string, fn Listener) (unsubscribe func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = subscription{key: key, fn: fn}
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Publish announces a local write.
func (h *Hub) Publish(ctx context.Context, change model.CollectionChange) {
	h.mu.Lock()
	h.observe(change)
	forwarder := h.forwarder
	listeners := h.listenersFor(change.Key)
	h.mu.Unlock()

	notify(listeners, change)

	if forwarder == nil {
		return
	}
	if err := forwarder.SendCollectionChanged(ctx, change); err != nil {
		logger.Error(ctx, "forward collection change",
			logger.String("collection", change.Key),
			logger.Int64("version", change.Version),
			logger.ErrorF(err),
		)
	}
}

// Receive handles a change reported by another instance and reports whether listeners ran.
func (h *Hub) Receive(ctx context.Context, change model.CollectionChange) bool {
	if change.WriterID == h.instanceID {
		metrics.ChangeSuppressed("own_write")
		logger.Debug(ctx, "drop own collection change",
			logger.String("collection", change.Key),
			logger.Int64("version", change.Version),
		)
		return false
	}

	h.mu.Lock()
	if change.Version <= h.seen[change.Key] {
		h.mu.Unlock()
		metrics.ChangeSuppressed("stale")
		return false
	}
	h.observe(change)
	listeners := h.listenersFor(change.Key)
	h.mu.Unlock()

	notify(listeners, change)
	return true
}

// LastVersion is the newest version observed for key, local or remote.
func (h *Hub) LastVersion(key string) int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.seen[key]
}

func (h *Hub) observe(change model.CollectionChange) {
	if change.Version > h.seen[change.Key] {
		h.seen[change.Key] = change.Version
	}
}

func (h *Hub) listenersFor(key string) []Listener {
	out := make([]Listener, 0, len(h.subs))
	for _, s := range h.subs {
		if s.key == AllKeys || s.key == key {
			out = append(out, s.fn)
		}
	}
	return out
}

func notify(listeners []Listener, change model.CollectionChange) {
	for _, fn := range listeners {
		fn(change)
	}
}
