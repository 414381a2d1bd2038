package txnrepo

import (
	"context"
	"fmt"

	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/internal/repository/collection"
)

const CollectionKey = "stockTransactions"

type repository struct {
	coll *collection.Collection[StockTransactionEntity]
}

func NewRepository(coll *collection.Collection[StockTransactionEntity]) *repository {
	return &repository{coll: coll}
}

// List returns the log newest first.
func (r *repository) List(ctx context.Context) ([]*model.StockTransaction, error) {
	const op = "txnrepo.List"

	items, _, err := r.coll.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*model.StockTransaction, 0, len(items))
	for i := range items {
		out = append(out, EntityToModel(&items[i]))
	}

	return out, nil
}

// Append prepends txs in one write, keeping their relative order.
func (r *repository) Append(ctx context.Context, txs ...*model.StockTransaction) error {
	const op = "txnrepo.Append"

	if len(txs) == 0 {
		return nil
	}

	fresh := make([]StockTransactionEntity, 0, len(txs))
	for _, t := range txs {
		fresh = append(fresh, EntityFromModel(t))
	}

	_, err := r.coll.Mutate(ctx, func(items []StockTransactionEntity) ([]StockTransactionEntity, error) {
		out := make([]StockTransactionEntity, 0, len(fresh)+len(items))
		out = append(out, fresh...)
		return append(out, items...), nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
