package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainRunsFirstMiddlewareOutermost(t *testing.T) {
	t.Parallel()

	var calls []string
	tag := func(name string) Middleware {
		return func(next MessageHandler) MessageHandler {
			return func(ctx context.Context, msg Message) error {
				calls = append(calls, name)
				return next(ctx, msg)
			}
		}
	}

	h := Chain(func(context.Context, Message) error {
		calls = append(calls, "handler")
		return nil
	}, tag("recovery"), tag("logging"))

	require.NoError(t, h(context.Background(), Message{Topic: "collection.changed"}))
	assert.Equal(t, []string{"recovery", "logging", "handler"}, calls)
}
