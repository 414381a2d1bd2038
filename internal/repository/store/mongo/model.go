package mongostore

import "time"

type collectionEntity struct {
	Key       string    `bson:"_id"`
	Version   int64     `bson:"version"`
	WriterID  string    `bson:"writer_id"`
	Items     any       `bson:"items"`
	UpdatedAt time.Time `bson:"updated_at"`
}
