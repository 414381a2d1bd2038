package middleware

import (
	"context"
	"fmt"

	"github.com/you-humble/fleet-maintenance/platform/kafka"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

type ErrorLogger interface {
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

// Recovery turns a handler panic into an error so the message is not marked.
func Recovery(l ErrorLogger) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) (err error) {
			defer func() {
				if r := recover(); r != nil {
					l.Error(ctx, "recovered from panic in kafka handler",
						logger.String("topic", msg.Topic),
						logger.Any("panic", r),
					)
					err = fmt.Errorf("kafka handler panic: %v", r)
				}
			}()
			return next(ctx, msg)
		}
	}
}
