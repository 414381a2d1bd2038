package fleetv1

import "time"

// CollectionChangedEvent is pushed to websocket clients after a collection changes.
type CollectionChangedEvent struct {
	Collection string    `json:"collection"`
	Version    int64     `json:"version"`
	ChangedAt  time.Time `json:"changedAt"`
}
