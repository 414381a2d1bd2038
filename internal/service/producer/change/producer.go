package changeproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/platform/kafka"
)

const WriterIDHeader = "writer-id"

type Converter interface {
	CollectionChangedToPayload(m model.CollectionChange) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewChangeProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendCollectionChanged(ctx context.Context, change model.CollectionChange) error {
	payload, err := s.conv.CollectionChangedToPayload(change)
	if err != nil {
		return fmt.Errorf("converter collection_changed_to_payload error: %w", err)
	}

	msg := kafka.OutgoingMessage{
		Key:     []byte(change.Key),
		Value:   payload,
		Headers: map[string][]byte{WriterIDHeader: []byte(change.WriterID)},
	}
	if err := s.producer.Send(ctx, msg); err != nil {
		return fmt.Errorf("producer to collection.changed topic error: %w", err)
	}

	return nil
}
