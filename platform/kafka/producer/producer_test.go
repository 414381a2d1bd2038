package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/fleet-maintenance/platform/kafka"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

func TestProducerSend(t *testing.T) {
	t.Parallel()

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true

	t.Run("success carries key and headers", func(t *testing.T) {
		t.Parallel()

		sp := mocks.NewSyncProducer(t, cfg)
		sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(m *sarama.ProducerMessage) error {
			key, _ := m.Key.Encode()
			if string(key) != "stockItems" {
				return errors.New("unexpected key " + string(key))
			}
			if len(m.Headers) != 1 || string(m.Headers[0].Key) != "writer-id" {
				return errors.New("writer-id header missing")
			}
			return nil
		})

		p := NewProducer(sp, "collection.changed", logger.L())
		err := p.Send(context.Background(), kafka.OutgoingMessage{
			Key:     []byte("stockItems"),
			Value:   []byte(`{"version":2}`),
			Headers: map[string][]byte{"writer-id": []byte("node-a")},
		})
		require.NoError(t, err)
		require.NoError(t, sp.Close())
	})

	t.Run("broker error is wrapped", func(t *testing.T) {
		t.Parallel()

		sp := mocks.NewSyncProducer(t, cfg)
		sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		p := NewProducer(sp, "collection.changed", logger.L())
		err := p.Send(context.Background(), kafka.OutgoingMessage{Key: []byte("k")})
		require.Error(t, err)
		assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		assert.ErrorContains(t, err, "collection.changed")
		require.NoError(t, sp.Close())
	})
}
