package closer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseAllRunsInReverseOrder(t *testing.T) {
	t.Parallel()

	c := New()
	var order []string
	for _, name := range []string{"db", "kafka", "http"} {
		c.AddNamed(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, c.CloseAll(context.Background()))
	assert.Equal(t, []string{"http", "kafka", "db"}, order)
}

func TestCloseAllJoinsErrorsAndRunsOnce(t *testing.T) {
	t.Parallel()

	c := New()
	boom := errors.New("boom")
	calls := 0
	c.AddNamed("broken", func(context.Context) error {
		calls++
		return boom
	})
	c.AddNamed("fine", func(context.Context) error {
		calls++
		return nil
	})

	err := c.CloseAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "broken")

	assert.Equal(t, err, c.CloseAll(context.Background()))
	assert.Equal(t, 2, calls)
}
