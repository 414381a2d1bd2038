package repair

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

// AddPart records a part fitted to an order. Internal parts are taken out of stock first;
// if the order write then fails the stock is put back.
func (svc *service) AddPart(ctx context.Context, params model.AddPartParams) (*model.AddPartResult, error) {
	const op = "repair.service.AddPart"
	log := logger.With(
		logger.String("order_id", params.OrderID),
		logger.String("source", string(params.Source)),
	)

	if err := validateAddPart(params); err != nil {
		log.Warn(ctx, "invalid part", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	current, err := svc.orders.OrderByID(ctx, params.OrderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if current.Status == model.RepairStatusCompleted {
		return nil, fmt.Errorf("%s: %w", op, model.ErrRepairOrderClosed)
	}

	now := svc.now().UTC()
	part := model.RepairPart{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(params.Name),
		Unit:      strings.TrimSpace(params.Unit),
		Quantity:  params.Quantity,
		UnitPrice: params.UnitPrice,
		Source:    params.Source,
		Vendor:    strings.TrimSpace(params.Vendor),
		AddedAt:   now,
	}

	var issued *model.StockItem
	if params.Source == model.PartSourceInternal {
		issued, err = svc.stock.Update(ctx, params.StockItemID, func(it *model.StockItem) error {
			if it.Quantity.LessThan(params.Quantity) {
				return fmt.Errorf("%w: %s has %s, %s requested", model.ErrInsufficientStock, it.Code, it.Quantity, params.Quantity)
			}
			it.Quantity = it.Quantity.Sub(params.Quantity)
			it.UpdatedAt = now
			return nil
		})
		if err != nil {
			log.Warn(ctx, "issue stock", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		part.StockItemID = issued.ID
		part.Name = issued.Name
		part.Unit = issued.Unit
		part.UnitPrice = issued.Price
	}

	ord, err := svc.orders.Update(ctx, params.OrderID, func(o *model.RepairOrder) error {
		if o.Status == model.RepairStatusCompleted {
			return model.ErrRepairOrderClosed
		}
		o.Parts = append(o.Parts, part)
		o.RecalculateCosts()
		o.UpdatedAt = now
		return nil
	})
	if err != nil {
		log.Error(ctx, "attach part to order", logger.ErrorF(err))
		if issued != nil {
			svc.restock(ctx, issued.ID, params.Quantity)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := &model.AddPartResult{Order: ord, Part: part}

	if issued != nil {
		tx := &model.StockTransaction{
			ID:            uuid.NewString(),
			StockItemID:   issued.ID,
			StockItemName: issued.Name,
			Type:          model.TransactionIssued,
			Quantity:      params.Quantity.Neg(),
			PricePerUnit:  issued.Price,
			Actor:         params.Actor,
			RepairOrderNo: ord.OrderNo,
			Notes:         "issued to repair order " + ord.OrderNo,
			CreatedAt:     now,
		}
		if err := svc.transactions.Append(ctx, tx); err != nil {
			log.Error(ctx, "append stock transaction", logger.ErrorF(err))
		}
	}

	if params.SalvageOldPart {
		salvaged, err := svc.usedParts.Register(ctx, salvageParams(params, part, ord))
		if err != nil {
			log.Error(ctx, "register salvaged part", logger.ErrorF(err))
		} else {
			result.UsedPart = salvaged
		}
	}

	log.Info(ctx, "part added",
		logger.String("order_no", ord.OrderNo),
		logger.String("part", part.Name),
		logger.Decimal("quantity", part.Quantity),
	)

	return result, nil
}

func (svc *service) restock(ctx context.Context, stockItemID string, qty decimal.Decimal) {
	_, err := svc.stock.Update(ctx, stockItemID, func(it *model.StockItem) error {
		it.Quantity = it.Quantity.Add(qty)
		it.UpdatedAt = svc.now().UTC()
		return nil
	})
	if err != nil {
		logger.Error(ctx, "put issued stock back",
			logger.String("stock_item_id", stockItemID),
			logger.Decimal("quantity", qty),
			logger.ErrorF(err),
		)
	}
}

func salvageParams(params model.AddPartParams, part model.RepairPart, ord *model.RepairOrder) model.RegisterUsedPartParams {
	qty := params.SalvageQuantity
	if !qty.IsPositive() {
		qty = part.Quantity
	}
	name := strings.TrimSpace(params.SalvageName)
	if name == "" {
		name = part.Name
	}

	return model.RegisterUsedPartParams{
		Name:                name,
		Unit:                part.Unit,
		Quantity:            qty,
		RepairOrderID:       ord.ID,
		RepairOrderNo:       ord.OrderNo,
		VehiclePlate:        ord.VehiclePlate,
		OriginalStockItemID: part.StockItemID,
	}
}

func validateAddPart(p model.AddPartParams) error {
	var errs []error
	if p.OrderID == "" {
		errs = append(errs, errors.New("order id is required"))
	}
	if !p.Quantity.IsPositive() {
		errs = append(errs, errors.New("quantity must be positive"))
	}
	if p.SalvageQuantity.IsNegative() {
		errs = append(errs, errors.New("salvage quantity must not be negative"))
	}

	switch p.Source {
	case model.PartSourceInternal:
		if p.StockItemID == "" {
			errs = append(errs, errors.New("stock item is required for internal parts"))
		}
	case model.PartSourceExternal:
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, errors.New("name is required for external parts"))
		}
		if !p.UnitPrice.IsPositive() {
			errs = append(errs, errors.New("unit price must be positive for external parts"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown part source %q", p.Source))
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{model.ErrValidation}, errs...)...)
}
