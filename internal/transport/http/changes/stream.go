package changes

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	fleetv1 "github.com/you-humble/fleet-maintenance/internal/api/fleet/v1"
	"github.com/you-humble/fleet-maintenance/internal/changefeed"
	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

const (
	sendBuffer   = 64
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
	readLimit    = 512
)

type Subscriber interface {
	Subscribe(key string, fn changefeed.Listener) (unsubscribe func())
}

type handler struct {
	hub      Subscriber
	upgrader websocket.Upgrader
}

func NewStreamHandler(hub Subscriber) *handler {
	return &handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP streams collection changes to one client. ?collection=<key> narrows the stream.
// A client that cannot keep up loses events; it should refetch on reconnect.
func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := r.URL.Query().Get("collection")

	events := make(chan model.CollectionChange, sendBuffer)
	unsubscribe := h.hub.Subscribe(key, func(c model.CollectionChange) {
		select {
		case events <- c:
		default:
			logger.Warn(ctx, "change stream client is slow, dropping event",
				logger.String("collection", c.Key),
				logger.Int64("version", c.Version),
			)
		}
	})
	defer unsubscribe()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn(ctx, "websocket upgrade", logger.ErrorF(err))
		return
	}
	defer conn.Close()

	closed := make(chan struct{})
	go readPump(conn, closed)

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeTimeout))
			return
		case c := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			err := conn.WriteJSON(fleetv1.CollectionChangedEvent{
				Collection: c.Key,
				Version:    c.Version,
				ChangedAt:  c.ChangedAt,
			})
			if err != nil {
				logger.Debug(ctx, "write change event", logger.ErrorF(err))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client messages and keeps the read deadline alive on pongs.
func readPump(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
