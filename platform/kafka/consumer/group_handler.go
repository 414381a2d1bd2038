package consumer

import (
	"github.com/IBM/sarama"

	"github.com/you-humble/fleet-maintenance/platform/kafka"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

type groupHandler struct {
	handler kafka.MessageHandler
	logger  Logger
}

func newGroupHandler(handler kafka.MessageHandler, logger Logger, middlewares ...kafka.Middleware) *groupHandler {
	return &groupHandler{
		handler: kafka.Chain(handler, middlewares...),
		logger:  logger,
	}
}

func (g *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (g *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (g *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()

	for {
		select {
		case record, ok := <-claim.Messages():
			if !ok {
				g.logger.Info(ctx, "kafka claim closed", logger.String("topic", claim.Topic()))
				return nil
			}

			if err := g.handler(ctx, toMessage(record)); err != nil {
				g.logger.Error(ctx, "kafka handler error",
					logger.String("topic", record.Topic),
					logger.Int64("offset", record.Offset),
					logger.ErrorF(err),
				)
				continue
			}

			session.MarkMessage(record, "")

		case <-ctx.Done():
			return nil
		}
	}
}

func toMessage(record *sarama.ConsumerMessage) kafka.Message {
	return kafka.Message{
		Key:            record.Key,
		Value:          record.Value,
		Topic:          record.Topic,
		Partition:      record.Partition,
		Offset:         record.Offset,
		Timestamp:      record.Timestamp,
		BlockTimestamp: record.BlockTimestamp,
		Headers:        extractHeaders(record.Headers),
	}
}

func extractHeaders(headers []*sarama.RecordHeader) map[string][]byte {
	result := make(map[string][]byte, len(headers))
	for _, h := range headers {
		if h != nil && h.Key != nil {
			result[string(h.Key)] = h.Value
		}
	}

	return result
}
