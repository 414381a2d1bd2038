package usedpartrepo

import (
	"context"
	"fmt"
	"slices"

	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/internal/repository/collection"
)

const CollectionKey = "usedParts"

type repository struct {
	coll *collection.Collection[UsedPartEntity]
}

func NewRepository(coll *collection.Collection[UsedPartEntity]) *repository {
	return &repository{coll: coll}
}

func (r *repository) List(ctx context.Context) ([]*model.UsedPart, error) {
	const op = "usedpartrepo.List"

	items, _, err := r.coll.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*model.UsedPart, 0, len(items))
	for i := range items {
		out = append(out, EntityToModel(&items[i]))
	}

	return out, nil
}

func (r *repository) UsedPartByID(ctx context.Context, id string) (*model.UsedPart, error) {
	const op = "usedpartrepo.UsedPartByID"

	items, _, err := r.coll.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range items {
		if items[i].ID == id {
			return EntityToModel(&items[i]), nil
		}
	}

	return nil, model.ErrUsedPartNotFound
}

func (r *repository) Insert(ctx context.Context, part *model.UsedPart) error {
	const op = "usedpartrepo.Insert"

	_, err := r.coll.Mutate(ctx, func(items []UsedPartEntity) ([]UsedPartEntity, error) {
		return slices.Insert(items, 0, EntityFromModel(part)), nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Update runs fn against the latest copy of the batch; the batch invariant is checked by fn.
func (r *repository) Update(
	ctx context.Context,
	id string,
	fn func(part *model.UsedPart) error,
) (*model.UsedPart, error) {
	const op = "usedpartrepo.Update"

	var updated *model.UsedPart
	_, err := r.coll.Mutate(ctx, func(items []UsedPartEntity) ([]UsedPartEntity, error) {
		idx := slices.IndexFunc(items, func(e UsedPartEntity) bool { return e.ID == id })
		if idx < 0 {
			return nil, model.ErrUsedPartNotFound
		}

		part := EntityToModel(&items[idx])
		if err := fn(part); err != nil {
			return nil, err
		}
		items[idx] = EntityFromModel(part)
		updated = part

		return items, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}
