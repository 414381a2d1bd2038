package pgstore

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/fleet-maintenance/internal/repository/store"
)

const tableCollections = "fleet_collections"

type backend struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewBackend(pool *pgxpool.Pool) *backend {
	return &backend{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (b *backend) Load(ctx context.Context, key string) (store.Document, error) {
	const op = "pgstore.Load"

	q := b.sb.
		Select("key", "version", "writer_id", "payload", "updated_at").
		From(tableCollections).
		Where(sq.Eq{"key": key})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return store.Document{}, fmt.Errorf("%s: %w", op, err)
	}

	var doc store.Document
	err = b.pool.QueryRow(ctx, sqlStr, args...).Scan(
		&doc.Key,
		&doc.Version,
		&doc.WriterID,
		&doc.Payload,
		&doc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Document{}, store.ErrNotFound
		}
		return store.Document{}, fmt.Errorf("%s: %w", op, err)
	}

	return doc, nil
}

func (b *backend) Save(ctx context.Context, doc store.Document, expectedVersion int64) error {
	const op = "pgstore.Save"

	payload := doc.Payload
	if len(payload) == 0 {
		payload = []byte("[]")
	}

	var q sq.Sqlizer
	if expectedVersion == 0 {
		q = b.sb.
			Insert(tableCollections).
			Columns("key", "version", "writer_id", "payload", "updated_at").
			Values(doc.Key, doc.Version, doc.WriterID, payload, doc.UpdatedAt).
			Suffix("ON CONFLICT (key) DO NOTHING")
	} else {
		q = b.sb.
			Update(tableCollections).
			SetMap(sq.Eq{
				"version":    doc.Version,
				"writer_id":  doc.WriterID,
				"payload":    payload,
				"updated_at": doc.UpdatedAt,
			}).
			Where(sq.Eq{"key": doc.Key, "version": expectedVersion})
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := b.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, store.ErrVersionConflict)
	}

	return nil
}
