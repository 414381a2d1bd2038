package model

import "time"

// CollectionChange announces a committed write of a whole collection.
type CollectionChange struct {
	Key       string
	Version   int64
	WriterID  string
	ChangedAt time.Time
}
