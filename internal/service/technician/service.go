package technician

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

type TechnicianRepository interface {
	List(ctx context.Context) ([]*model.Technician, error)
	TechnicianByID(ctx context.Context, id string) (*model.Technician, error)
	Insert(ctx context.Context, t *model.Technician) error
	Update(ctx context.Context, id string, fn func(t *model.Technician) error) (*model.Technician, error)
}

type service struct {
	repo           TechnicianRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewTechnicianService(
	repository TechnicianRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) Create(ctx context.Context, params model.CreateTechnicianParams) (*model.Technician, error) {
	const op = "technician.service.Create"

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrValidation, errors.New("name is required")))
	}

	t := &model.Technician{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     strings.TrimSpace(params.Phone),
		Skills:    lo.Uniq(lo.Compact(lo.Map(params.Skills, func(s string, _ int) string { return strings.TrimSpace(s) }))),
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Insert(ctx, t); err != nil {
		logger.Error(ctx, "insert technician", logger.String("name", name), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return t, nil
}

func (svc *service) TechnicianByID(ctx context.Context, id string) (*model.Technician, error) {
	const op = "technician.service.TechnicianByID"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	t, err := svc.repo.TechnicianByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return t, nil
}

func (svc *service) List(ctx context.Context, activeOnly bool) ([]*model.Technician, error) {
	const op = "technician.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	all, err := svc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !activeOnly {
		return all, nil
	}

	return lo.Filter(all, func(t *model.Technician, _ int) bool { return t.Active }), nil
}

func (svc *service) SetActive(ctx context.Context, id string, active bool) (*model.Technician, error) {
	const op = "technician.service.SetActive"

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	t, err := svc.repo.Update(ctx, id, func(t *model.Technician) error {
		t.Active = active
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return t, nil
}

// EnsureAssignable fails unless every non-empty id names an active technician.
func (svc *service) EnsureAssignable(ctx context.Context, ids ...string) error {
	const op = "technician.service.EnsureAssignable"

	ids = lo.Compact(ids)
	if len(ids) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	all, err := svc.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	byID := lo.KeyBy(all, func(t *model.Technician) string { return t.ID })
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			return fmt.Errorf("%s: %w: %s", op, model.ErrTechnicianNotFound, id)
		}
		if !t.Active {
			return fmt.Errorf("%s: %w", op, errors.Join(model.ErrValidation, fmt.Errorf("technician %s is inactive", t.Name)))
		}
	}

	return nil
}
