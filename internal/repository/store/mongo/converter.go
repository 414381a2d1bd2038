package mongostore

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// itemsFromJSON turns a JSON array into a BSON array so collections stay queryable in Mongo.
func itemsFromJSON(payload []byte) (any, error) {
	if len(payload) == 0 {
		payload = []byte("[]")
	}

	wrapped := make([]byte, 0, len(payload)+10)
	wrapped = append(wrapped, `{"items":`...)
	wrapped = append(wrapped, payload...)
	wrapped = append(wrapped, '}')

	var doc bson.D
	if err := bson.UnmarshalExtJSON(wrapped, false, &doc); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if len(doc) != 1 {
		return nil, fmt.Errorf("decode payload: unexpected shape")
	}

	return doc[0].Value, nil
}

func itemsToJSON(items any) ([]byte, error) {
	if items == nil {
		return []byte("[]"), nil
	}

	raw, err := bson.MarshalExtJSON(bson.D{{Key: "items", Value: items}}, false, false)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	var wrapper struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	return wrapper.Items, nil
}
