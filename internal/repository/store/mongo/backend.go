package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/fleet-maintenance/internal/repository/store"
)

type backend struct {
	coll *mongo.Collection
}

func NewBackend(collection *mongo.Collection) *backend {
	return &backend{coll: collection}
}

func (b *backend) Load(ctx context.Context, key string) (store.Document, error) {
	const op = "mongostore.Load"

	var ent collectionEntity
	if err := b.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&ent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return store.Document{}, store.ErrNotFound
		}
		return store.Document{}, fmt.Errorf("%s: %w", op, err)
	}

	payload, err := itemsToJSON(ent.Items)
	if err != nil {
		return store.Document{}, fmt.Errorf("%s: %s: %w", op, key, err)
	}

	return store.Document{
		Key:       ent.Key,
		Version:   ent.Version,
		WriterID:  ent.WriterID,
		Payload:   payload,
		UpdatedAt: ent.UpdatedAt,
	}, nil
}

func (b *backend) Save(ctx context.Context, doc store.Document, expectedVersion int64) error {
	const op = "mongostore.Save"

	items, err := itemsFromJSON(doc.Payload)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", op, doc.Key, err)
	}

	if expectedVersion == 0 {
		_, err := b.coll.InsertOne(ctx, collectionEntity{
			Key:       doc.Key,
			Version:   doc.Version,
			WriterID:  doc.WriterID,
			Items:     items,
			UpdatedAt: doc.UpdatedAt,
		})
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return fmt.Errorf("%s: %w", op, store.ErrVersionConflict)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	res, err := b.coll.UpdateOne(ctx,
		bson.M{"_id": doc.Key, "version": expectedVersion},
		bson.M{"$set": bson.M{
			"version":    doc.Version,
			"writer_id":  doc.WriterID,
			"items":      items,
			"updated_at": doc.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, store.ErrVersionConflict)
	}

	return nil
}
