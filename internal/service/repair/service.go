package repair

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/fleet-maintenance/internal/metrics"
	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

type RepairOrderRepository interface {
	List(ctx context.Context) ([]*model.RepairOrder, error)
	OrderByID(ctx context.Context, id string) (*model.RepairOrder, error)
	Insert(ctx context.Context, build func(existing []*model.RepairOrder) (*model.RepairOrder, error)) (*model.RepairOrder, error)
	Update(ctx context.Context, id string, fn func(ord *model.RepairOrder) error) (*model.RepairOrder, error)
	Delete(ctx context.Context, id string) error
}

type StockRepository interface {
	Update(ctx context.Context, id string, fn func(item *model.StockItem) error) (*model.StockItem, error)
}

type TransactionRepository interface {
	Append(ctx context.Context, txs ...*model.StockTransaction) error
}

type UsedPartRegistrar interface {
	Register(ctx context.Context, params model.RegisterUsedPartParams) (*model.UsedPart, error)
}

type TechnicianDirectory interface {
	EnsureAssignable(ctx context.Context, ids ...string) error
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	orders       RepairOrderRepository
	stock        StockRepository
	transactions TransactionRepository
	usedParts    UsedPartRegistrar
	technicians  TechnicianDirectory

	now            func() time.Time
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewRepairService(
	orders RepairOrderRepository,
	stock StockRepository,
	transactions TransactionRepository,
	usedParts UsedPartRegistrar,
	technicians TechnicianDirectory,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
	opts ...Option,
) *service {
	svc := &service{
		orders:         orders,
		stock:          stock,
		transactions:   transactions,
		usedParts:      usedParts,
		technicians:    technicians,
		now:            time.Now,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (svc *service) Create(ctx context.Context, draft model.RepairOrderDraft) (*model.RepairOrder, error) {
	const op = "repair.service.Create"
	log := logger.With(logger.String("vehicle_plate", draft.VehiclePlate))

	if draft.Priority == "" {
		draft.Priority = model.PriorityNormal
	}
	if err := validateDraft(draft); err != nil {
		log.Warn(ctx, "invalid repair order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.ensureAssignable(ctx, draft.Technician, draft.Assistants); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ord, err := svc.orders.Insert(ctx, func(existing []*model.RepairOrder) (*model.RepairOrder, error) {
		now := svc.now().UTC()
		ord := &model.RepairOrder{
			ID:           uuid.NewString(),
			OrderNo:      nextOrderNo(existing, now),
			VehiclePlate: strings.TrimSpace(draft.VehiclePlate),
			VehicleType:  strings.TrimSpace(draft.VehicleType),
			Description:  strings.TrimSpace(draft.Description),
			ReportedBy:   strings.TrimSpace(draft.ReportedBy),
			Priority:     draft.Priority,
			Status:       model.RepairStatusAwaitingRepair,
			Technician:   strings.TrimSpace(draft.Technician),
			Assistants:   cleanIDs(draft.Assistants),
			LaborCost:    draft.LaborCost,
			Notes:        draft.Notes,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		ord.RecalculateCosts()
		return ord, nil
	})
	if err != nil {
		log.Error(ctx, "insert repair order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.RepairOrderCreated()
	log.Info(ctx, "repair order created",
		logger.String("order_id", ord.ID),
		logger.String("order_no", ord.OrderNo),
	)

	return ord, nil
}

func (svc *service) OrderByID(ctx context.Context, id string) (*model.RepairOrder, error) {
	const op = "repair.service.OrderByID"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	ord, err := svc.orders.OrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ord, nil
}

// List returns matching orders, newest first.
func (svc *service) List(ctx context.Context, filter model.RepairOrderFilter) ([]*model.RepairOrder, error) {
	const op = "repair.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	orders, err := svc.orders.List(ctx)
	if err != nil {
		logger.Error(ctx, "list repair orders", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	plate := strings.ToLower(strings.TrimSpace(filter.VehiclePlate))
	out := lo.Filter(orders, func(o *model.RepairOrder, _ int) bool {
		return (filter.Status == "" || o.Status == filter.Status) &&
			(filter.Year == 0 || o.CreatedAt.UTC().Year() == filter.Year) &&
			(plate == "" || strings.Contains(strings.ToLower(o.VehiclePlate), plate))
	})
	slices.SortStableFunc(out, func(a, b *model.RepairOrder) int { return b.CreatedAt.Compare(a.CreatedAt) })

	return out, nil
}

func (svc *service) Update(ctx context.Context, params model.UpdateRepairOrderParams) (*model.RepairOrder, error) {
	const op = "repair.service.Update"
	log := logger.With(logger.String("order_id", params.ID))

	if err := validateUpdate(params); err != nil {
		log.Warn(ctx, "invalid repair order update", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.ensureAssignable(ctx, lo.FromPtr(params.Technician), params.Assistants); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ord, err := svc.orders.Update(ctx, params.ID, func(o *model.RepairOrder) error {
		if o.Status == model.RepairStatusCompleted {
			return model.ErrRepairOrderClosed
		}
		if params.Description != nil {
			o.Description = strings.TrimSpace(*params.Description)
		}
		if params.Priority != nil {
			o.Priority = *params.Priority
		}
		if params.LaborCost != nil {
			o.LaborCost = *params.LaborCost
		}
		if params.Notes != nil {
			o.Notes = *params.Notes
		}
		if params.Technician != nil {
			o.Technician = strings.TrimSpace(*params.Technician)
		}
		if params.Assistants != nil {
			o.Assistants = cleanIDs(params.Assistants)
		}
		o.RecalculateCosts()
		o.UpdatedAt = svc.now().UTC()
		return nil
	})
	if err != nil {
		log.Warn(ctx, "update repair order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ord, nil
}

func (svc *service) Approve(ctx context.Context, id, actor string) (*model.RepairOrder, error) {
	const op = "repair.service.Approve"

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	ord, err := svc.orders.Update(ctx, id, func(o *model.RepairOrder) error {
		if o.Status != model.RepairStatusAwaitingRepair {
			return fmt.Errorf("%w: cannot approve an order in %s", model.ErrInvalidTransition, o.Status)
		}
		if o.ApprovedAt != nil {
			return errors.Join(model.ErrValidation, errors.New("order is already approved"))
		}
		now := svc.now().UTC()
		o.ApprovedAt = &now
		o.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "repair order approved",
		logger.String("order_no", ord.OrderNo),
		logger.String("actor", actor),
	)

	return ord, nil
}

// Transition moves an order along the status allow-list and records it in the history.
func (svc *service) Transition(ctx context.Context, params model.TransitionParams) (*model.RepairOrder, error) {
	const op = "repair.service.Transition"
	log := logger.With(
		logger.String("order_id", params.OrderID),
		logger.String("to", string(params.To)),
	)

	if !params.To.Valid() {
		return nil, fmt.Errorf("%s: %w", op,
			errors.Join(model.ErrValidation, fmt.Errorf("unknown status %q", params.To)))
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.ensureAssignable(ctx, params.Technician, params.Assistants); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var from model.RepairStatus
	ord, err := svc.orders.Update(ctx, params.OrderID, func(o *model.RepairOrder) error {
		from = o.Status
		if !CanTransition(o.Status, params.To) {
			return fmt.Errorf("%w: %s -> %s", model.ErrInvalidTransition, o.Status, params.To)
		}

		now := svc.now().UTC()
		switch params.To {
		case model.RepairStatusInProgress:
			if t := strings.TrimSpace(params.Technician); t != "" {
				o.Technician = t
			}
			if len(params.Assistants) > 0 {
				o.Assistants = cleanIDs(params.Assistants)
			}
			if o.Technician == "" {
				return errors.Join(model.ErrValidation, errors.New("a technician must be assigned to start work"))
			}
			if o.StartedAt == nil {
				o.StartedAt = &now
			}
		case model.RepairStatusCompleted:
			o.CompletedAt = &now
		}

		o.Status = params.To
		o.History = append(o.History, model.StatusChange{
			From:  from,
			To:    params.To,
			Actor: params.Actor,
			Note:  params.Note,
			At:    now,
		})
		o.UpdatedAt = now
		return nil
	})
	if err != nil {
		log.Warn(ctx, "transition repair order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.RepairOrderTransitioned(string(from), string(params.To))
	log.Info(ctx, "repair order transitioned",
		logger.String("order_no", ord.OrderNo),
		logger.String("from", string(from)),
	)

	return ord, nil
}

func (svc *service) Delete(ctx context.Context, id string) error {
	const op = "repair.service.Delete"

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.orders.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "repair order deleted", logger.String("order_id", id))

	return nil
}

func (svc *service) ensureAssignable(ctx context.Context, technician string, assistants []string) error {
	ids := cleanIDs(append([]string{technician}, assistants...))
	if len(ids) == 0 {
		return nil
	}
	return svc.technicians.EnsureAssignable(ctx, ids...)
}

func cleanIDs(ids []string) []string {
	return lo.Uniq(lo.Compact(lo.Map(ids, func(s string, _ int) string { return strings.TrimSpace(s) })))
}

func validateDraft(d model.RepairOrderDraft) error {
	var errs []error
	if strings.TrimSpace(d.VehiclePlate) == "" {
		errs = append(errs, errors.New("vehicle plate is required"))
	}
	if strings.TrimSpace(d.Description) == "" {
		errs = append(errs, errors.New("description is required"))
	}
	if !d.Priority.Valid() {
		errs = append(errs, fmt.Errorf("unknown priority %q", d.Priority))
	}
	if d.LaborCost.IsNegative() {
		errs = append(errs, errors.New("labor cost must not be negative"))
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{model.ErrValidation}, errs...)...)
}

func validateUpdate(p model.UpdateRepairOrderParams) error {
	var errs []error
	if p.ID == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		errs = append(errs, errors.New("description must not be blank"))
	}
	if p.Priority != nil && !p.Priority.Valid() {
		errs = append(errs, fmt.Errorf("unknown priority %q", *p.Priority))
	}
	if p.LaborCost != nil && p.LaborCost.IsNegative() {
		errs = append(errs, errors.New("labor cost must not be negative"))
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{model.ErrValidation}, errs...)...)
}
