package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/you-humble/fleet-maintenance/internal/model"
)

type collectionChangedRecord struct {
	Key       string    `json:"key"`
	Version   int64     `json:"version"`
	WriterID  string    `json:"writerId"`
	ChangedAt time.Time `json:"changedAt"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) CollectionChangedToPayload(m model.CollectionChange) ([]byte, error) {
	payload, err := json.Marshal(collectionChangedRecord{
		Key:       m.Key,
		Version:   m.Version,
		WriterID:  m.WriterID,
		ChangedAt: m.ChangedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal collection change: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) CollectionChangedToModel(data []byte) (model.CollectionChange, error) {
	var rec collectionChangedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.CollectionChange{}, fmt.Errorf("failed to unmarshal collection change: %w", err)
	}
	if rec.Key == "" || rec.Version <= 0 {
		return model.CollectionChange{}, fmt.Errorf("malformed collection change: key %q, version %d", rec.Key, rec.Version)
	}

	return model.CollectionChange{
		Key:       rec.Key,
		Version:   rec.Version,
		WriterID:  rec.WriterID,
		ChangedAt: rec.ChangedAt,
	}, nil
}
