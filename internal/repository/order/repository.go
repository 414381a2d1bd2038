package orderrepo

import (
	"context"
	"fmt"
	"slices"

	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/internal/repository/collection"
)

const CollectionKey = "repairOrders"

type repository struct {
	coll *collection.Collection[RepairOrderEntity]
}

func NewRepository(coll *collection.Collection[RepairOrderEntity]) *repository {
	return &repository{coll: coll}
}

func (r *repository) List(ctx context.Context) ([]*model.RepairOrder, error) {
	const op = "orderrepo.List"

	items, _, err := r.coll.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*model.RepairOrder, 0, len(items))
	for i := range items {
		out = append(out, EntityToModel(&items[i]))
	}

	return out, nil
}

func (r *repository) OrderByID(ctx context.Context, id string) (*model.RepairOrder, error) {
	const op = "orderrepo.OrderByID"

	items, _, err := r.coll.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range items {
		if items[i].ID == id {
			return EntityToModel(&items[i]), nil
		}
	}

	return nil, model.ErrRepairOrderNotFound
}

// Insert prepends the order produced by build. build sees the current orders and may
// run more than once when another writer gets in first.
func (r *repository) Insert(
	ctx context.Context,
	build func(existing []*model.RepairOrder) (*model.RepairOrder, error),
) (*model.RepairOrder, error) {
	const op = "orderrepo.Insert"

	var created *model.RepairOrder
	_, err := r.coll.Mutate(ctx, func(items []RepairOrderEntity) ([]RepairOrderEntity, error) {
		existing := make([]*model.RepairOrder, 0, len(items))
		for i := range items {
			existing = append(existing, EntityToModel(&items[i]))
		}

		ord, err := build(existing)
		if err != nil {
			return nil, err
		}
		created = ord

		return slices.Insert(items, 0, EntityFromModel(ord)), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *repository) Update(
	ctx context.Context,
	id string,
	fn func(ord *model.RepairOrder) error,
) (*model.RepairOrder, error) {
	const op = "orderrepo.Update"

	var updated *model.RepairOrder
	_, err := r.coll.Mutate(ctx, func(items []RepairOrderEntity) ([]RepairOrderEntity, error) {
		idx := slices.IndexFunc(items, func(e RepairOrderEntity) bool { return e.ID == id })
		if idx < 0 {
			return nil, model.ErrRepairOrderNotFound
		}

		ord := EntityToModel(&items[idx])
		if err := fn(ord); err != nil {
			return nil, err
		}
		items[idx] = EntityFromModel(ord)
		updated = ord

		return items, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "orderrepo.Delete"

	_, err := r.coll.Mutate(ctx, func(items []RepairOrderEntity) ([]RepairOrderEntity, error) {
		idx := slices.IndexFunc(items, func(e RepairOrderEntity) bool { return e.ID == id })
		if idx < 0 {
			return nil, model.ErrRepairOrderNotFound
		}
		return slices.Delete(items, idx, idx+1), nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
