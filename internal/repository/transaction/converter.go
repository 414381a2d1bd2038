package txnrepo

import "github.com/you-humble/fleet-maintenance/internal/model"

func EntityToModel(e *StockTransactionEntity) *model.StockTransaction {
	return &model.StockTransaction{
		ID:            e.ID,
		StockItemID:   e.StockItemID,
		StockItemName: e.StockItemName,
		Type:          model.TransactionType(e.Type),
		Quantity:      e.Quantity,
		PricePerUnit:  e.PricePerUnit,
		Actor:         e.Actor,
		RepairOrderNo: e.RepairOrderNo,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
	}
}

func EntityFromModel(t *model.StockTransaction) StockTransactionEntity {
	return StockTransactionEntity{
		ID:            t.ID,
		StockItemID:   t.StockItemID,
		StockItemName: t.StockItemName,
		Type:          string(t.Type),
		Quantity:      t.Quantity,
		PricePerUnit:  t.PricePerUnit,
		Actor:         t.Actor,
		RepairOrderNo: t.RepairOrderNo,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
	}
}
