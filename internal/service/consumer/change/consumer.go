package changeconsumer

import (
	"context"

	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/platform/kafka"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

const writerIDHeader = "writer-id"

type Converter interface {
	CollectionChangedToModel(data []byte) (model.CollectionChange, error)
}

type Receiver interface {
	Receive(ctx context.Context, change model.CollectionChange) bool
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	receiver Receiver
}

func NewChangeConsumer(consumer kafka.Consumer, conv Converter, receiver Receiver) *service {
	return &service{consumer: consumer, conv: conv, receiver: receiver}
}

func (s *service) RunCollectionChangedConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting collection changed consumer")

	if err := s.consumer.Consume(ctx, s.collectionChangedHandler); err != nil {
		logger.Error(ctx, "Consume from collection.changed topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

// A malformed record is logged and acknowledged so it does not block the partition.
func (s *service) collectionChangedHandler(ctx context.Context, msg kafka.Message) error {
	change, err := s.conv.CollectionChangedToModel(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode collection change",
			logger.String("key", string(msg.Key)),
			logger.Int64("offset", msg.Offset),
			logger.ErrorF(err),
		)
		return nil
	}

	if change.WriterID == "" {
		change.WriterID = msg.Header(writerIDHeader)
	}

	if !s.receiver.Receive(ctx, change) {
		logger.Debug(ctx, "collection change suppressed",
			logger.String("collection", change.Key),
			logger.Int64("version", change.Version),
		)
	}

	return nil
}
