package stockrepo

import "github.com/you-humble/fleet-maintenance/internal/model"

func EntityToModel(e *StockItemEntity) *model.StockItem {
	if e == nil {
		return nil
	}

	return &model.StockItem{
		ID:                  e.ID,
		Code:                e.Code,
		Name:                e.Name,
		Unit:                e.Unit,
		Category:            e.Category,
		Supplier:            e.Supplier,
		Location:            e.Location,
		Quantity:            e.Quantity,
		ReorderThreshold:    e.MinStock,
		Price:               e.Price,
		IsRevolvingPart:     e.IsRevolvingPart,
		IsFungibleUsedItem:  e.IsFungibleUsedItem,
		OriginalStockItemID: e.OriginalStockItemID,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func EntityFromModel(s *model.StockItem) StockItemEntity {
	return StockItemEntity{
		ID:                  s.ID,
		Code:                s.Code,
		Name:                s.Name,
		Unit:                s.Unit,
		Category:            s.Category,
		Supplier:            s.Supplier,
		Location:            s.Location,
		Quantity:            s.Quantity,
		MinStock:            s.ReorderThreshold,
		Price:               s.Price,
		IsRevolvingPart:     s.IsRevolvingPart,
		IsFungibleUsedItem:  s.IsFungibleUsedItem,
		OriginalStockItemID: s.OriginalStockItemID,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}
