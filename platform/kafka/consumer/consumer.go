package consumer

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"

	"github.com/you-humble/fleet-maintenance/platform/kafka"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type consumer struct {
	group       sarama.ConsumerGroup
	topics      []string
	logger      Logger
	middlewares []kafka.Middleware
}

func NewConsumer(group sarama.ConsumerGroup, topics []string, logger Logger, middlewares ...kafka.Middleware) *consumer {
	return &consumer{
		group:       group,
		topics:      topics,
		logger:      logger,
		middlewares: middlewares,
	}
}

// Consume blocks until ctx is done or the group is closed. Rebalances restart the session.
func (c *consumer) Consume(ctx context.Context, handler kafka.MessageHandler) error {
	gh := newGroupHandler(handler, c.logger, c.middlewares...)

	for {
		if err := c.group.Consume(ctx, c.topics, gh); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}

			c.logger.Error(ctx, "kafka consume error", logger.ErrorF(err), logger.Strings("topics", c.topics))
			return errors.Wrap(err, "consume")
		}

		if ctx.Err() != nil {
			return nil
		}

		c.logger.Info(ctx, "kafka consumer group rebalancing", logger.Strings("topics", c.topics))
	}
}
