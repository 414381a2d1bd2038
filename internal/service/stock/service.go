package stock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/you-humble/fleet-maintenance/internal/metrics"
	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

type StockRepository interface {
	List(ctx context.Context) ([]*model.StockItem, error)
	StockItemByID(ctx context.Context, id string) (*model.StockItem, error)
	Insert(ctx context.Context, item *model.StockItem) error
	Update(ctx context.Context, id string, fn func(item *model.StockItem) error) (*model.StockItem, error)
	UpdateAll(ctx context.Context, fn func(items []*model.StockItem) error) ([]*model.StockItem, error)
}

type TransactionRepository interface {
	List(ctx context.Context) ([]*model.StockTransaction, error)
	Append(ctx context.Context, txs ...*model.StockTransaction) error
}

type service struct {
	stock          StockRepository
	transactions   TransactionRepository
	now            func() time.Time
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewStockService(
	stock StockRepository,
	transactions TransactionRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		stock:          stock,
		transactions:   transactions,
		now:            time.Now,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) Create(ctx context.Context, params model.CreateStockItemParams) (*model.StockItem, error) {
	const op = "stock.service.Create"
	log := logger.With(logger.String("code", params.Code))

	if err := validateCreate(params); err != nil {
		log.Warn(ctx, "invalid stock item", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := svc.now().UTC()
	item := &model.StockItem{
		ID:                 uuid.NewString(),
		Code:               strings.TrimSpace(params.Code),
		Name:               strings.TrimSpace(params.Name),
		Unit:               strings.TrimSpace(params.Unit),
		Category:           strings.TrimSpace(params.Category),
		Supplier:           strings.TrimSpace(params.Supplier),
		Location:           strings.TrimSpace(params.Location),
		Quantity:           params.Quantity,
		ReorderThreshold:   params.ReorderThreshold,
		Price:              params.Price,
		IsRevolvingPart:    params.IsRevolvingPart,
		IsFungibleUsedItem: params.IsFungibleUsedItem,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.stock.Insert(ctx, item); err != nil {
		log.Error(ctx, "insert stock item", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if item.Quantity.IsPositive() {
		svc.appendAudit(ctx, &model.StockTransaction{
			ID:            uuid.NewString(),
			StockItemID:   item.ID,
			StockItemName: item.Name,
			Type:          model.TransactionReceived,
			Quantity:      item.Quantity,
			PricePerUnit:  item.Price,
			Actor:         params.Actor,
			Notes:         "opening balance",
			CreatedAt:     now,
		})
	}

	return item, nil
}

func (svc *service) StockItemByID(ctx context.Context, id string) (*model.StockItem, error) {
	const op = "stock.service.StockItemByID"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	item, err := svc.stock.StockItemByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (svc *service) List(ctx context.Context, filter model.StockFilter) ([]*model.StockItem, error) {
	const op = "stock.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	items, err := svc.stock.List(ctx)
	if err != nil {
		logger.Error(ctx, "list stock items", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))

	return lo.Filter(items, func(it *model.StockItem, _ int) bool {
		if filter.LowStockOnly && !it.BelowThreshold() {
			return false
		}
		if filter.RevolvingOnly && !it.IsRevolvingPart {
			return false
		}
		if filter.FungibleOnly && !it.IsFungibleUsedItem {
			return false
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(it.Name), query) &&
			!strings.Contains(strings.ToLower(it.Code), query) {
			return false
		}
		return true
	}), nil
}

// Adjust applies a manual correction. The result never goes below zero.
func (svc *service) Adjust(ctx context.Context, params model.AdjustStockParams) (*model.StockItem, error) {
	const op = "stock.service.Adjust"
	log := logger.With(
		logger.String("stock_item_id", params.StockItemID),
		logger.Decimal("delta", params.Delta),
	)

	if params.StockItemID == "" || params.Delta.IsZero() {
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrValidation, errors.New("stock item and non-zero delta are required")))
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	now := svc.now().UTC()
	item, err := svc.stock.Update(ctx, params.StockItemID, func(it *model.StockItem) error {
		next := it.Quantity.Add(params.Delta)
		if next.IsNegative() {
			return fmt.Errorf("%w: %s has %s", model.ErrInsufficientStock, it.Code, it.Quantity)
		}
		it.Quantity = next
		it.UpdatedAt = now
		return nil
	})
	if err != nil {
		log.Warn(ctx, "adjust stock", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	svc.appendAudit(ctx, &model.StockTransaction{
		ID:            uuid.NewString(),
		StockItemID:   item.ID,
		StockItemName: item.Name,
		Type:          model.TransactionAdjustment,
		Quantity:      params.Delta,
		PricePerUnit:  item.Price,
		Actor:         params.Actor,
		Notes:         params.Notes,
		CreatedAt:     now,
	})

	return item, nil
}

// ReturnUsedStock puts parts left over from repairs back on the shelf: one stock write,
// one transaction-log write. Unknown stock ids are skipped and reported.
func (svc *service) ReturnUsedStock(
	ctx context.Context,
	updates []model.StockReturn,
	actor string,
) (*model.StockReturnResult, error) {
	const op = "stock.service.ReturnUsedStock"

	if err := validateReturns(updates); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	var (
		result *model.StockReturnResult
		now    = svc.now().UTC()
	)

	_, err := svc.stock.UpdateAll(ctx, func(items []*model.StockItem) error {
		result = &model.StockReturnResult{}
		byID := lo.KeyBy(items, func(it *model.StockItem) string { return it.ID })
		touched := make(map[string]struct{}, len(updates))

		for _, u := range updates {
			it, ok := byID[u.StockItemID]
			if !ok {
				result.SkippedIDs = append(result.SkippedIDs, u.StockItemID)
				continue
			}

			it.Quantity = it.Quantity.Add(u.Quantity)
			it.UpdatedAt = now

			result.Transactions = append(result.Transactions, &model.StockTransaction{
				ID:            uuid.NewString(),
				StockItemID:   it.ID,
				StockItemName: it.Name,
				Type:          model.TransactionReceived,
				Quantity:      u.Quantity,
				PricePerUnit:  decimal.Zero,
				Actor:         actor,
				RepairOrderNo: u.RepairOrderNo,
				Notes:         "returned from repair order " + u.RepairOrderNo,
				CreatedAt:     now,
			})

			if _, seen := touched[it.ID]; !seen {
				touched[it.ID] = struct{}{}
				result.Updated = append(result.Updated, it)
			}
		}

		return nil
	})
	if err != nil {
		logger.Error(ctx, "return used stock", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	svc.appendAudit(ctx, result.Transactions...)
	metrics.StockReturned(len(result.Transactions))

	logger.Info(ctx, "used stock returned",
		logger.Int("returned", len(result.Transactions)),
		logger.Int("items", len(result.Updated)),
		logger.Strings("skipped", result.SkippedIDs),
	)

	return result, nil
}

func (svc *service) Transactions(ctx context.Context, filter model.TransactionFilter) ([]*model.StockTransaction, error) {
	const op = "stock.service.Transactions"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	txs, err := svc.transactions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lo.Filter(txs, func(tx *model.StockTransaction, _ int) bool {
		return (filter.StockItemID == "" || tx.StockItemID == filter.StockItemID) &&
			(filter.RepairOrderNo == "" || tx.RepairOrderNo == filter.RepairOrderNo) &&
			(filter.Type == "" || tx.Type == filter.Type)
	}), nil
}

// appendAudit never fails the caller: the stock change is already committed.
func (svc *service) appendAudit(ctx context.Context, txs ...*model.StockTransaction) {
	if len(txs) == 0 {
		return
	}
	if err := svc.transactions.Append(ctx, txs...); err != nil {
		logger.Error(ctx, "append stock transactions",
			logger.Int("count", len(txs)),
			logger.ErrorF(err),
		)
	}
}

func validateCreate(p model.CreateStockItemParams) error {
	var errs []error
	if strings.TrimSpace(p.Code) == "" {
		errs = append(errs, errors.New("code is required"))
	}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if p.Quantity.IsNegative() || p.ReorderThreshold.IsNegative() || p.Price.IsNegative() {
		errs = append(errs, errors.New("quantity, threshold and price must not be negative"))
	}
	if p.IsRevolvingPart && p.IsFungibleUsedItem {
		errs = append(errs, errors.New("item cannot be both revolving and consolidated"))
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{model.ErrValidation}, errs...)...)
}

func validateReturns(updates []model.StockReturn) error {
	if len(updates) == 0 {
		return errors.Join(model.ErrValidation, errors.New("nothing to return"))
	}
	for i, u := range updates {
		if u.StockItemID == "" || !u.Quantity.IsPositive() {
			return errors.Join(model.ErrValidation, fmt.Errorf("line %d: stock item and positive quantity are required", i+1))
		}
	}
	return nil
}
