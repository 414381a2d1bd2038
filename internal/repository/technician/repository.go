package techrepo

import (
	"context"
	"fmt"
	"slices"

	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/internal/repository/collection"
)

const CollectionKey = "technicians"

type repository struct {
	coll *collection.Collection[TechnicianEntity]
}

func NewRepository(coll *collection.Collection[TechnicianEntity]) *repository {
	return &repository{coll: coll}
}

func (r *repository) List(ctx context.Context) ([]*model.Technician, error) {
	const op = "techrepo.List"

	items, _, err := r.coll.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*model.Technician, 0, len(items))
	for i := range items {
		out = append(out, EntityToModel(&items[i]))
	}

	return out, nil
}

func (r *repository) TechnicianByID(ctx context.Context, id string) (*model.Technician, error) {
	const op = "techrepo.TechnicianByID"

	items, _, err := r.coll.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range items {
		if items[i].ID == id {
			return EntityToModel(&items[i]), nil
		}
	}

	return nil, model.ErrTechnicianNotFound
}

func (r *repository) Insert(ctx context.Context, t *model.Technician) error {
	const op = "techrepo.Insert"

	_, err := r.coll.Mutate(ctx, func(items []TechnicianEntity) ([]TechnicianEntity, error) {
		return append(items, EntityFromModel(t)), nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) Update(
	ctx context.Context,
	id string,
	fn func(t *model.Technician) error,
) (*model.Technician, error) {
	const op = "techrepo.Update"

	var updated *model.Technician
	_, err := r.coll.Mutate(ctx, func(items []TechnicianEntity) ([]TechnicianEntity, error) {
		idx := slices.IndexFunc(items, func(e TechnicianEntity) bool { return e.ID == id })
		if idx < 0 {
			return nil, model.ErrTechnicianNotFound
		}

		t := EntityToModel(&items[idx])
		if err := fn(t); err != nil {
			return nil, err
		}
		items[idx] = EntityFromModel(t)
		updated = t

		return items, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}
