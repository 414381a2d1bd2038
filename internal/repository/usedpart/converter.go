package usedpartrepo

import (
	"github.com/samber/lo"

	"github.com/you-humble/fleet-maintenance/internal/model"
)

func EntityToModel(e *UsedPartEntity) *model.UsedPart {
	if e == nil {
		return nil
	}

	return &model.UsedPart{
		ID:                  e.ID,
		Name:                e.Name,
		Unit:                e.Unit,
		InitialQuantity:     e.InitialQuantity,
		RepairOrderID:       e.RepairOrderID,
		RepairOrderNo:       e.RepairOrderNo,
		VehiclePlate:        e.VehiclePlate,
		OriginalStockItemID: lo.FromPtr(e.OriginalStockItemID),
		Dispositions: lo.Map(e.Dispositions, func(d DispositionEntity, _ int) model.Disposition {
			return model.Disposition{
				ID:                d.ID,
				Type:              model.DispositionType(d.Type),
				Quantity:          d.Quantity,
				Condition:         model.PartCondition(d.Condition),
				TargetStockItemID: d.TargetStockItemID,
				SalePrice:         d.SalePrice,
				Buyer:             d.Buyer,
				StorageLocation:   d.StorageLocation,
				Notes:             d.Notes,
				ProcessedBy:       d.ProcessedBy,
				ProcessedAt:       d.ProcessedAt,
			}
		}),
		Status:    model.UsedPartStatus(e.Status),
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func EntityFromModel(u *model.UsedPart) UsedPartEntity {
	return UsedPartEntity{
		ID:                  u.ID,
		Name:                u.Name,
		Unit:                u.Unit,
		InitialQuantity:     u.InitialQuantity,
		RepairOrderID:       u.RepairOrderID,
		RepairOrderNo:       u.RepairOrderNo,
		VehiclePlate:        u.VehiclePlate,
		OriginalStockItemID: lo.EmptyableToPtr(u.OriginalStockItemID),
		Dispositions: lo.Map(u.Dispositions, func(d model.Disposition, _ int) DispositionEntity {
			return DispositionEntity{
				ID:                d.ID,
				Type:              string(d.Type),
				Quantity:          d.Quantity,
				Condition:         string(d.Condition),
				TargetStockItemID: d.TargetStockItemID,
				SalePrice:         d.SalePrice,
				Buyer:             d.Buyer,
				StorageLocation:   d.StorageLocation,
				Notes:             d.Notes,
				ProcessedBy:       d.ProcessedBy,
				ProcessedAt:       d.ProcessedAt,
			}
		}),
		Status:    string(u.Status),
		Notes:     u.Notes,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
