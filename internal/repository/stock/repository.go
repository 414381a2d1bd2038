package stockrepo

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/internal/repository/collection"
)

const CollectionKey = "stockItems"

type repository struct {
	coll *collection.Collection[StockItemEntity]
}

func NewRepository(coll *collection.Collection[StockItemEntity]) *repository {
	return &repository{coll: coll}
}

func (r *repository) List(ctx context.Context) ([]*model.StockItem, error) {
	const op = "stockrepo.List"

	items, _, err := r.coll.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toModels(items), nil
}

func (r *repository) StockItemByID(ctx context.Context, id string) (*model.StockItem, error) {
	const op = "stockrepo.StockItemByID"

	items, _, err := r.coll.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range items {
		if items[i].ID == id {
			return EntityToModel(&items[i]), nil
		}
	}

	return nil, model.ErrStockItemNotFound
}

// Insert appends item unless its code is already taken, compared case-insensitively.
func (r *repository) Insert(ctx context.Context, item *model.StockItem) error {
	const op = "stockrepo.Insert"

	_, err := r.coll.Mutate(ctx, func(items []StockItemEntity) ([]StockItemEntity, error) {
		for _, e := range items {
			if strings.EqualFold(strings.TrimSpace(e.Code), strings.TrimSpace(item.Code)) {
				return nil, fmt.Errorf("%w: %s", model.ErrDuplicateCode, item.Code)
			}
		}
		return append(items, EntityFromModel(item)), nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) Update(
	ctx context.Context,
	id string,
	fn func(item *model.StockItem) error,
) (*model.StockItem, error) {
	const op = "stockrepo.Update"

	var updated *model.StockItem
	_, err := r.coll.Mutate(ctx, func(items []StockItemEntity) ([]StockItemEntity, error) {
		idx := slices.IndexFunc(items, func(e StockItemEntity) bool { return e.ID == id })
		if idx < 0 {
			return nil, model.ErrStockItemNotFound
		}

		item := EntityToModel(&items[idx])
		if err := fn(item); err != nil {
			return nil, err
		}
		items[idx] = EntityFromModel(item)
		updated = item

		return items, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// Delete removes the item when fn, given its current state, returns nil.
func (r *repository) Delete(ctx context.Context, id string, fn func(item *model.StockItem) error) error {
	const op = "stockrepo.Delete"

	_, err := r.coll.Mutate(ctx, func(items []StockItemEntity) ([]StockItemEntity, error) {
		idx := slices.IndexFunc(items, func(e StockItemEntity) bool { return e.ID == id })
		if idx < 0 {
			return nil, model.ErrStockItemNotFound
		}
		if err := fn(EntityToModel(&items[idx])); err != nil {
			return nil, err
		}
		return slices.Delete(items, idx, idx+1), nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateAll hands every item to fn in one write. Changes fn makes to the items are persisted.
func (r *repository) UpdateAll(
	ctx context.Context,
	fn func(items []*model.StockItem) error,
) ([]*model.StockItem, error) {
	const op = "stockrepo.UpdateAll"

	var updated []*model.StockItem
	_, err := r.coll.Mutate(ctx, func(items []StockItemEntity) ([]StockItemEntity, error) {
		models := toModels(items)
		if err := fn(models); err != nil {
			return nil, err
		}

		out := make([]StockItemEntity, 0, len(models))
		for _, m := range models {
			out = append(out, EntityFromModel(m))
		}
		updated = models

		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func toModels(items []StockItemEntity) []*model.StockItem {
	out := make([]*model.StockItem, 0, len(items))
	for i := range items {
		out = append(out, EntityToModel(&items[i]))
	}
	return out
}
