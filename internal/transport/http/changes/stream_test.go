package changes

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fleetv1 "github.com/you-humble/fleet-maintenance/internal/api/fleet/v1"
	"github.com/you-humble/fleet-maintenance/internal/changefeed"
	"github.com/you-humble/fleet-maintenance/internal/model"
)

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestStreamPushesChanges(t *testing.T) {
	t.Parallel()

	hub := changefeed.NewHub("instance-a")
	srv := httptest.NewServer(NewStreamHandler(hub))
	t.Cleanup(srv.Close)

	all := dial(t, srv, "")
	onlyStock := dial(t, srv, "?collection=stockItems")

	hub.Publish(context.Background(), model.CollectionChange{Key: "usedParts", Version: 1, WriterID: "instance-a"})
	hub.Receive(context.Background(), model.CollectionChange{Key: "stockItems", Version: 7, WriterID: "instance-b"})

	var got fleetv1.CollectionChangedEvent
	require.NoError(t, all.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, all.ReadJSON(&got))
	assert.Equal(t, "usedParts", got.Collection)
	require.NoError(t, all.ReadJSON(&got))
	assert.Equal(t, "stockItems", got.Collection)
	assert.Equal(t, int64(7), got.Version)

	require.NoError(t, onlyStock.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, onlyStock.ReadJSON(&got))
	assert.Equal(t, "stockItems", got.Collection)
}
