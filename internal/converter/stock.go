package converter

import (
	"github.com/samber/lo"

	fleetv1 "github.com/you-humble/fleet-maintenance/internal/api/fleet/v1"
	"github.com/you-humble/fleet-maintenance/internal/model"
)

func CreateStockItemParamsFromRequest(actor string, req fleetv1.CreateStockItemRequest) model.CreateStockItemParams {
	return model.CreateStockItemParams{
		Code:               req.Code,
		Name:               req.Name,
		Unit:               req.Unit,
		Category:           req.Category,
		Supplier:           req.Supplier,
		Location:           req.Location,
		Quantity:           req.Quantity,
		ReorderThreshold:   req.ReorderThreshold,
		Price:              req.Price,
		IsRevolvingPart:    req.IsRevolvingPart,
		IsFungibleUsedItem: req.IsFungibleUsedItem,
		Actor:              actor,
	}
}

func AdjustStockParamsFromRequest(id, actor string, req fleetv1.AdjustStockRequest) model.AdjustStockParams {
	return model.AdjustStockParams{
		StockItemID: id,
		Delta:       req.Delta,
		Actor:       actor,
		Notes:       req.Notes,
	}
}

func StockReturnsFromRequest(req fleetv1.ReturnUsedStockRequest) []model.StockReturn {
	return lo.Map(req.Lines, func(l fleetv1.StockReturnLine, _ int) model.StockReturn {
		return model.StockReturn{StockItemID: l.StockItemID, Quantity: l.Quantity, RepairOrderNo: l.RepairOrderNo}
	})
}

func StockItemToAPI(it *model.StockItem) fleetv1.StockItem {
	return fleetv1.StockItem{
		ID:                  it.ID,
		Code:                it.Code,
		Name:                it.Name,
		Unit:                it.Unit,
		Category:            it.Category,
		Supplier:            it.Supplier,
		Location:            it.Location,
		Quantity:            it.Quantity,
		ReorderThreshold:    it.ReorderThreshold,
		Price:               it.Price,
		IsRevolvingPart:     it.IsRevolvingPart,
		IsFungibleUsedItem:  it.IsFungibleUsedItem,
		OriginalStockItemID: it.OriginalStockItemID,
		LowStock:            it.BelowThreshold(),
		CreatedAt:           it.CreatedAt,
		UpdatedAt:           it.UpdatedAt,
	}
}

func StockItemsToAPI(items []*model.StockItem) []fleetv1.StockItem {
	return lo.Map(items, func(it *model.StockItem, _ int) fleetv1.StockItem { return StockItemToAPI(it) })
}

func TransactionToAPI(tx *model.StockTransaction) fleetv1.StockTransaction {
	return fleetv1.StockTransaction{
		ID:            tx.ID,
		StockItemID:   tx.StockItemID,
		StockItemName: tx.StockItemName,
		Type:          string(tx.Type),
		Quantity:      tx.Quantity,
		PricePerUnit:  tx.PricePerUnit,
		Actor:         tx.Actor,
		RepairOrderNo: tx.RepairOrderNo,
		Notes:         tx.Notes,
		CreatedAt:     tx.CreatedAt,
	}
}

func TransactionsToAPI(txs []*model.StockTransaction) []fleetv1.StockTransaction {
	return lo.Map(txs, func(tx *model.StockTransaction, _ int) fleetv1.StockTransaction { return TransactionToAPI(tx) })
}

func StockReturnResultToAPI(res *model.StockReturnResult) fleetv1.ReturnUsedStockResponse {
	return fleetv1.ReturnUsedStockResponse{
		Updated:      StockItemsToAPI(res.Updated),
		Transactions: TransactionsToAPI(res.Transactions),
		SkippedIDs:   append([]string{}, res.SkippedIDs...),
	}
}
