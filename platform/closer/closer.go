package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(ctx context.Context) error
}

// Closer runs registered shutdown hooks in reverse registration order.
type Closer struct {
	mu     sync.Mutex
	once   sync.Once
	funcs  []namedFunc
	logger Logger
	err    error
}

var globalCloser = New()

func New() *Closer { return &Closer{logger: noopLogger{}} }

func SetLogger(l Logger)                                        { globalCloser.SetLogger(l) }
func AddNamed(name string, fn func(ctx context.Context) error) { globalCloser.AddNamed(name, fn) }
func CloseAll(ctx context.Context) error                        { return globalCloser.CloseAll(ctx) }

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger = l
}

func (c *Closer) AddNamed(name string, fn func(ctx context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.funcs = append(c.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll is idempotent; later calls return the result of the first one.
func (c *Closer) CloseAll(ctx context.Context) error {
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		log := c.logger
		c.mu.Unlock()

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]
			start := time.Now()

			if err := f.fn(ctx); err != nil {
				log.Error(ctx, "❌ failed to close", zap.String("name", f.name), zap.Error(err))
				errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
				continue
			}

			log.Info(ctx, "✅ closed",
				zap.String("name", f.name),
				zap.Duration("duration", time.Since(start)),
			)
		}

		c.err = errors.Join(errs...)
	})

	return c.err
}

type noopLogger struct{}

func (noopLogger) Info(context.Context, string, ...zap.Field)  {}
func (noopLogger) Error(context.Context, string, ...zap.Field) {}
