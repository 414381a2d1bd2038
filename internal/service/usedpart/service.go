package usedpart

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/you-humble/fleet-maintenance/internal/metrics"
	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

type UsedPartRepository interface {
	List(ctx context.Context) ([]*model.UsedPart, error)
	UsedPartByID(ctx context.Context, id string) (*model.UsedPart, error)
	Insert(ctx context.Context, part *model.UsedPart) error
	Update(ctx context.Context, id string, fn func(part *model.UsedPart) error) (*model.UsedPart, error)
}

type StockRepository interface {
	List(ctx context.Context) ([]*model.StockItem, error)
	StockItemByID(ctx context.Context, id string) (*model.StockItem, error)
	Insert(ctx context.Context, item *model.StockItem) error
	Update(ctx context.Context, id string, fn func(item *model.StockItem) error) (*model.StockItem, error)
	Delete(ctx context.Context, id string, fn func(item *model.StockItem) error) error
}

type TransactionRepository interface {
	Append(ctx context.Context, txs ...*model.StockTransaction) error
}

type service struct {
	parts          UsedPartRepository
	stock          StockRepository
	transactions   TransactionRepository
	now            func() time.Time
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewUsedPartService(
	parts UsedPartRepository,
	stock StockRepository,
	transactions TransactionRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		parts:          parts,
		stock:          stock,
		transactions:   transactions,
		now:            time.Now,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) Register(ctx context.Context, params model.RegisterUsedPartParams) (*model.UsedPart, error) {
	const op = "usedpart.service.Register"

	if strings.TrimSpace(params.Name) == "" || !params.Quantity.IsPositive() {
		return nil, fmt.Errorf("%s: %w", op,
			errors.Join(model.ErrValidation, errors.New("name and positive quantity are required")))
	}

	now := svc.now().UTC()
	part := &model.UsedPart{
		ID:                  uuid.NewString(),
		Name:                strings.TrimSpace(params.Name),
		Unit:                strings.TrimSpace(params.Unit),
		InitialQuantity:     params.Quantity,
		RepairOrderID:       params.RepairOrderID,
		RepairOrderNo:       params.RepairOrderNo,
		VehiclePlate:        params.VehiclePlate,
		OriginalStockItemID: params.OriginalStockItemID,
		Status:              model.UsedPartStatusAwaiting,
		Notes:               params.Notes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.parts.Insert(ctx, part); err != nil {
		logger.Error(ctx, "insert used part batch",
			logger.String("repair_order_no", params.RepairOrderNo),
			logger.ErrorF(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return part, nil
}

func (svc *service) UsedPartByID(ctx context.Context, id string) (*model.UsedPart, error) {
	const op = "usedpart.service.UsedPartByID"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	part, err := svc.parts.UsedPartByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return part, nil
}

func (svc *service) List(ctx context.Context, filter model.UsedPartFilter) ([]*model.UsedPart, error) {
	const op = "usedpart.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	parts, err := svc.parts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lo.Filter(parts, func(p *model.UsedPart, _ int) bool {
		return (filter.Status == "" || p.Status == filter.Status) &&
			(filter.RepairOrderNo == "" || p.RepairOrderNo == filter.RepairOrderNo)
	}), nil
}

// Process applies one decision to a batch. The disposition is written first, under a check
// of the remaining quantity; a failed stock increment removes it again.
func (svc *service) Process(ctx context.Context, batchID string, d model.Decision) (*model.ProcessResult, error) {
	const op = "usedpart.service.Process"
	log := logger.With(
		logger.String("batch_id", batchID),
		logger.String("decision", string(d.Type)),
	)

	if err := validateDecision(d); err != nil {
		log.Warn(ctx, "invalid decision", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	batch, err := svc.parts.UsedPartByID(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	remaining := batch.RemainingQuantity()
	if !remaining.IsPositive() {
		log.Warn(ctx, "batch already fully processed", logger.String("status", string(batch.Status)))
		return nil, fmt.Errorf("%s: %w", op, model.ErrNothingRemaining)
	}

	qty, err := resolveQuantity(d.Quantity, remaining)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := svc.now().UTC()
	disp := model.Disposition{
		ID:              uuid.NewString(),
		Quantity:        qty,
		StorageLocation: d.StorageLocation,
		Notes:           d.Notes,
		ProcessedBy:     d.Actor,
		ProcessedAt:     now,
	}

	var (
		target      *model.StockItem
		tx          *model.StockTransaction
		createdTwin bool
	)

	switch d.Type {
	case model.DecisionToFungible:
		target, err = svc.stock.StockItemByID(ctx, d.TargetStockItemID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !target.IsFungibleUsedItem {
			return nil, fmt.Errorf("%s: %w", op,
				errors.Join(model.ErrValidation, fmt.Errorf("stock item %s does not hold consolidated used parts", target.Code)))
		}

		disp.Type = model.DispositionMovedToConsolidated
		disp.Condition = lo.CoalesceOrEmpty(d.Condition, model.ConditionScrap)
		disp.Notes = joinNotes(fungibleNote(target.Name, qty, target.Unit), d.Notes)
		tx = &model.StockTransaction{
			Type:         model.TransactionStockMove,
			PricePerUnit: decimal.Zero,
			Notes:        disp.Notes,
		}

	case model.DecisionToRevolving:
		target, createdTwin, err = svc.resolveRevolvingTwin(ctx, batch, now)
		if err != nil {
			log.Error(ctx, "resolve revolving stock item", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		disp.Type = model.DispositionMovedToRevolving
		disp.Condition = lo.CoalesceOrEmpty(d.Condition, model.ConditionUsable)
		tx = &model.StockTransaction{
			Type:         model.TransactionReturnedUsable,
			PricePerUnit: target.Price,
			Notes:        "used part from repair order " + batch.RepairOrderNo,
		}

	case model.DecisionDispose:
		disp.Type = model.DispositionDisposed
		disp.Condition = model.ConditionDamaged

	case model.DecisionSell:
		disp.Type = model.DispositionSold
		disp.Condition = lo.CoalesceOrEmpty(d.Condition, model.ConditionUsable)
		disp.SalePrice = d.SalePrice
		disp.Buyer = strings.TrimSpace(d.Buyer)
	}

	if target != nil {
		disp.TargetStockItemID = target.ID
	}

	updated, err := svc.parts.Update(ctx, batchID, func(p *model.UsedPart) error {
		left := p.RemainingQuantity()
		if !left.IsPositive() {
			return model.ErrNothingRemaining
		}
		if qty.GreaterThan(left) {
			return fmt.Errorf("%w: %s left", model.ErrQuantityExceedsRemaining, left)
		}
		p.Dispositions = append(p.Dispositions, disp)
		p.RecomputeStatus()
		p.UpdatedAt = now
		return nil
	})
	if err != nil {
		log.Warn(ctx, "append disposition", logger.ErrorF(err))
		if createdTwin {
			svc.dropUnusedTwin(ctx, target.ID)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := &model.ProcessResult{Batch: updated, Disposition: disp}

	if target != nil {
		item, err := svc.stock.Update(ctx, target.ID, func(it *model.StockItem) error {
			it.Quantity = it.Quantity.Add(qty)
			it.UpdatedAt = now
			return nil
		})
		if err != nil {
			log.Error(ctx, "increment stock, removing disposition", logger.ErrorF(err))
			svc.dropDisposition(ctx, batchID, disp.ID, now)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result.StockItem = item

		tx.ID = uuid.NewString()
		tx.StockItemID = item.ID
		tx.StockItemName = item.Name
		tx.Quantity = qty
		tx.Actor = d.Actor
		tx.RepairOrderNo = batch.RepairOrderNo
		tx.CreatedAt = now
		svc.appendAudit(ctx, tx)
	}

	metrics.DispositionProcessed(string(disp.Type))
	log.Info(ctx, "disposition processed",
		logger.String("disposition_id", disp.ID),
		logger.Decimal("quantity", qty),
		logger.String("status", string(updated.Status)),
	)

	return result, nil
}

// Reverse removes a disposition and, for stock-moving types, takes the quantity back out of
// the stock item it went to. A stock item that no longer exists leaves StockRolledBack false.
func (svc *service) Reverse(ctx context.Context, batchID, dispositionID, actor string) (*model.ReverseResult, error) {
	const op = "usedpart.service.Reverse"
	log := logger.With(
		logger.String("batch_id", batchID),
		logger.String("disposition_id", dispositionID),
	)

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	batch, err := svc.parts.UsedPartByID(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	disp, ok := batch.Disposition(dispositionID)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, model.ErrDispositionNotFound)
	}

	var target *model.StockItem
	if disp.Type.MutatesStock() {
		target, err = svc.rollbackTarget(ctx, batch, disp)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	now := svc.now().UTC()
	updated, err := svc.parts.Update(ctx, batchID, removeDisposition(dispositionID, now))
	if err != nil {
		log.Warn(ctx, "remove disposition", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := &model.ReverseResult{Batch: updated, Disposition: disp}

	switch {
	case !disp.Type.MutatesStock():
	case target == nil:
		log.Warn(ctx, "stock item for rollback not found, stock left unchanged")
	default:
		var delta decimal.Decimal
		item, err := svc.stock.Update(ctx, target.ID, func(it *model.StockItem) error {
			delta = decimal.Min(disp.Quantity, it.Quantity)
			it.Quantity = it.Quantity.Sub(delta)
			it.UpdatedAt = now
			return nil
		})
		if err != nil {
			log.Warn(ctx, "roll back stock", logger.ErrorF(err))
			break
		}

		result.StockRolledBack = true
		result.StockItem = item
		svc.appendAudit(ctx, &model.StockTransaction{
			ID:            uuid.NewString(),
			StockItemID:   item.ID,
			StockItemName: item.Name,
			Type:          model.TransactionAdjustment,
			Quantity:      delta.Neg(),
			PricePerUnit:  item.Price,
			Actor:         actor,
			RepairOrderNo: batch.RepairOrderNo,
			Notes:         "reversed disposition " + disp.ID,
			CreatedAt:     now,
		})
	}

	metrics.DispositionReversed(string(disp.Type), result.StockRolledBack)
	log.Info(ctx, "disposition reversed",
		logger.Bool("stock_rolled_back", result.StockRolledBack),
		logger.String("status", string(updated.Status)),
	)

	return result, nil
}

func (svc *service) dropDisposition(ctx context.Context, batchID, dispositionID string, now time.Time) {
	if _, err := svc.parts.Update(ctx, batchID, removeDisposition(dispositionID, now)); err != nil {
		logger.Error(ctx, "remove disposition after failed stock write",
			logger.String("batch_id", batchID),
			logger.String("disposition_id", dispositionID),
			logger.ErrorF(err),
		)
	}
}

func removeDisposition(dispositionID string, now time.Time) func(p *model.UsedPart) error {
	return func(p *model.UsedPart) error {
		idx := slices.IndexFunc(p.Dispositions, func(d model.Disposition) bool { return d.ID == dispositionID })
		if idx < 0 {
			return model.ErrDispositionNotFound
		}
		p.Dispositions = slices.Delete(p.Dispositions, idx, idx+1)
		p.RecomputeStatus()
		p.UpdatedAt = now
		return nil
	}
}

func (svc *service) appendAudit(ctx context.Context, txs ...*model.StockTransaction) {
	if err := svc.transactions.Append(ctx, txs...); err != nil {
		logger.Error(ctx, "append stock transactions",
			logger.Int("count", len(txs)),
			logger.ErrorF(err),
		)
	}
}

func validateDecision(d model.Decision) error {
	var errs []error

	switch d.Type {
	case model.DecisionToFungible:
		if d.TargetStockItemID == "" {
			errs = append(errs, errors.New("target stock item is required"))
		}
	case model.DecisionSell:
		if !d.SalePrice.IsPositive() {
			errs = append(errs, errors.New("sale price must be positive"))
		}
		if strings.TrimSpace(d.Buyer) == "" {
			errs = append(errs, errors.New("buyer is required"))
		}
	case model.DecisionToRevolving, model.DecisionDispose:
	default:
		errs = append(errs, fmt.Errorf("unknown decision %q", d.Type))
	}

	if d.Quantity.IsNegative() {
		errs = append(errs, errors.New("quantity must not be negative"))
	}
	if d.Condition != "" && !d.Condition.Valid() {
		errs = append(errs, fmt.Errorf("unknown condition %q", d.Condition))
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{model.ErrValidation}, errs...)...)
}

// resolveQuantity treats zero as "everything that is left".
func resolveQuantity(requested, remaining decimal.Decimal) (decimal.Decimal, error) {
	if requested.IsZero() {
		return remaining, nil
	}
	if requested.GreaterThan(remaining) {
		return decimal.Zero, fmt.Errorf("%w: requested %s, %s left", model.ErrQuantityExceedsRemaining, requested, remaining)
	}
	return requested, nil
}

func joinNotes(base, extra string) string {
	if extra = strings.TrimSpace(extra); extra == "" {
		return base
	}
	return base + " - " + extra
}
