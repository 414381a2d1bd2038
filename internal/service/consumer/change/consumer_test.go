package changeconsumer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/fleet-maintenance/internal/changefeed"
	"github.com/you-humble/fleet-maintenance/internal/converter"
	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/platform/kafka"
)

type replayConsumer struct {
	msgs []kafka.Message
}

func (c replayConsumer) Consume(ctx context.Context, handler kafka.MessageHandler) error {
	for _, m := range c.msgs {
		if err := handler(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func TestRunCollectionChangedConsume(t *testing.T) {
	t.Parallel()

	conv := converter.NewKafkaConverter()
	encode := func(c model.CollectionChange) []byte {
		b, err := conv.CollectionChangedToPayload(c)
		require.NoError(t, err)
		return b
	}

	hub := changefeed.NewHub("instance-a")
	var got []int64
	hub.Subscribe("stockItems", func(c model.CollectionChange) { got = append(got, c.Version) })

	consumer := replayConsumer{msgs: []kafka.Message{
		{Value: encode(model.CollectionChange{Key: "stockItems", Version: 3, WriterID: "instance-b"})},
		{Value: encode(model.CollectionChange{Key: "stockItems", Version: 4, WriterID: "instance-a"})},
		{Value: []byte("not json")},
		{Value: encode(model.CollectionChange{Key: "stockItems", Version: 2, WriterID: "instance-b"})},
		{Value: encode(model.CollectionChange{Key: "stockItems", Version: 5}), Headers: map[string][]byte{"writer-id": []byte("instance-a")}},
		{Value: encode(model.CollectionChange{Key: "stockItems", Version: 6, WriterID: "instance-c"})},
	}}

	svc := NewChangeConsumer(consumer, conv, hub)
	require.NoError(t, svc.RunCollectionChangedConsume(context.Background()))

	assert.Equal(t, []int64{3, 6}, got)
}
