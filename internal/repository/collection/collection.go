package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/internal/repository/store"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

const defaultRetries = 3

type Publisher interface {
	Publish(ctx context.Context, change model.CollectionChange)
}

type ConflictObserver interface {
	WriteConflict(key string)
}

type options struct {
	writerID  string
	retries   int
	publisher Publisher
	observer  ConflictObserver
	cacheTTL  time.Duration
	now       func() time.Time
}

type Option func(*options)

func WithWriterID(id string) Option         { return func(o *options) { o.writerID = id } }
func WithRetries(n int) Option              { return func(o *options) { o.retries = n } }
func WithPublisher(p Publisher) Option      { return func(o *options) { o.publisher = p } }
func WithClock(now func() time.Time) Option { return func(o *options) { o.now = now } }

func WithConflictObserver(c ConflictObserver) Option {
	return func(o *options) { o.observer = c }
}

// WithCacheTTL lets reads reuse the last seen copy for ttl. Zero disables the cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *options) { o.cacheTTL = ttl }
}

// Collection is a whole-array view of one store key. Writes are compare-and-set on the
// document version and are retried against fresh data on conflict.
type Collection[E any] struct {
	key     string
	backend store.Backend
	opts    options

	mu       sync.RWMutex
	payload  []byte
	version  int64
	fresh    bool
	loadedAt time.Time
}

func New[E any](key string, backend store.Backend, opts ...Option) *Collection[E] {
	o := options{retries: defaultRetries, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.retries < 0 {
		o.retries = 0
	}

	return &Collection[E]{key: key, backend: backend, opts: o}
}

func (c *Collection[E]) Key() string { return c.key }

// All returns a private copy of the items and the version they were read at.
func (c *Collection[E]) All(ctx context.Context) ([]E, int64, error) {
	payload, version, err := c.read(ctx, true)
	if err != nil {
		return nil, 0, err
	}

	items, err := decode[E](payload)
	if err != nil {
		return nil, 0, fmt.Errorf("collection %s: %w", c.key, err)
	}

	return items, version, nil
}

// Mutate applies fn to the current items and writes the result. fn may run more than
// once and must not have side effects outside the slice it is given.
func (c *Collection[E]) Mutate(ctx context.Context, fn func(items []E) ([]E, error)) ([]E, error) {
	useCache := true

	for attempt := 0; attempt <= c.opts.retries; attempt++ {
		payload, version, err := c.read(ctx, useCache)
		if err != nil {
			return nil, err
		}
		useCache = false

		items, err := decode[E](payload)
		if err != nil {
			return nil, fmt.Errorf("collection %s: %w", c.key, err)
		}

		next, err := fn(items)
		if err != nil {
			return nil, err
		}

		encoded, err := json.Marshal(next)
		if err != nil {
			return nil, fmt.Errorf("collection %s: encode: %w", c.key, err)
		}

		doc := store.Document{
			Key:       c.key,
			Version:   version + 1,
			WriterID:  c.opts.writerID,
			Payload:   encoded,
			UpdatedAt: c.opts.now().UTC(),
		}

		err = c.backend.Save(ctx, doc, version)
		if errors.Is(err, store.ErrVersionConflict) {
			logger.Debug(ctx, "collection write conflict",
				logger.String("collection", c.key),
				logger.Int64("version", version),
				logger.Int("attempt", attempt),
			)
			if c.opts.observer != nil {
				c.opts.observer.WriteConflict(c.key)
			}
			c.markStale()
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("collection %s: save: %w", c.key, err)
		}

		c.remember(encoded, doc.Version)

		if c.opts.publisher != nil {
			c.opts.publisher.Publish(ctx, model.CollectionChange{
				Key:       c.key,
				Version:   doc.Version,
				WriterID:  doc.WriterID,
				ChangedAt: doc.UpdatedAt,
			})
		}

		return next, nil
	}

	return nil, fmt.Errorf("collection %s: %w", c.key, model.ErrConcurrentUpdate)
}

// Invalidate drops the cached copy when change is newer than it.
func (c *Collection[E]) Invalidate(change model.CollectionChange) {
	if change.Key != c.key {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if change.Version > c.version {
		c.fresh = false
	}
}

func (c *Collection[E]) read(ctx context.Context, useCache bool) ([]byte, int64, error) {
	if useCache && c.opts.cacheTTL > 0 {
		c.mu.RLock()
		if c.fresh && c.opts.now().Sub(c.loadedAt) < c.opts.cacheTTL {
			payload, version := c.payload, c.version
			c.mu.RUnlock()
			return payload, version, nil
		}
		c.mu.RUnlock()
	}

	doc, err := c.backend.Load(ctx, c.key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("collection %s: load: %w", c.key, err)
	}

	c.remember(doc.Payload, doc.Version)

	return doc.Payload, doc.Version, nil
}

func (c *Collection[E]) remember(payload []byte, version int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if version < c.version {
		return
	}
	c.payload = payload
	c.version = version
	c.fresh = true
	c.loadedAt = c.opts.now()
}

func (c *Collection[E]) markStale() {
	c.mu.Lock()
	c.fresh = false
	c.mu.Unlock()
}

func decode[E any](payload []byte) ([]E, error) {
	items := make([]E, 0)
	if len(payload) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return items, nil
}
