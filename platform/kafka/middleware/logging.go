package middleware

import (
	"context"
	"time"

	"github.com/you-humble/fleet-maintenance/platform/kafka"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

type DebugLogger interface {
	Debug(ctx context.Context, msg string, fields ...logger.Field)
}

func Logging(l DebugLogger) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) error {
			start := time.Now()
			err := next(ctx, msg)
			l.Debug(ctx, "kafka message handled",
				logger.String("topic", msg.Topic),
				logger.String("key", string(msg.Key)),
				logger.Int64("offset", msg.Offset),
				logger.Duration("took", time.Since(start)),
				logger.Bool("ok", err == nil),
			)
			return err
		}
	}
}
