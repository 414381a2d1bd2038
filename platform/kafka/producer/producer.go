package producer

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"

	"github.com/you-humble/fleet-maintenance/platform/kafka"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

type Logger interface {
	Debug(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type producer struct {
	syncProducer sarama.SyncProducer
	topic        string
	logger       Logger
}

func NewProducer(syncProducer sarama.SyncProducer, topic string, logger Logger) *producer {
	return &producer{
		syncProducer: syncProducer,
		topic:        topic,
		logger:       logger,
	}
}

func (p *producer) Send(ctx context.Context, msg kafka.OutgoingMessage) error {
	record := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(msg.Key),
		Value: sarama.ByteEncoder(msg.Value),
	}
	for k, v := range msg.Headers {
		record.Headers = append(record.Headers, sarama.RecordHeader{Key: []byte(k), Value: v})
	}

	partition, offset, err := p.syncProducer.SendMessage(record)
	if err != nil {
		p.logger.Error(ctx, "failed to send kafka message",
			logger.String("topic", p.topic),
			logger.ErrorF(err),
		)
		return errors.Wrapf(err, "send to %s", p.topic)
	}

	p.logger.Debug(ctx, "kafka message sent",
		logger.String("topic", p.topic),
		logger.Any("partition", partition),
		logger.Int64("offset", offset),
		logger.String("key", string(msg.Key)),
	)

	return nil
}
