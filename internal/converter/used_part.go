package converter

import (
	"github.com/samber/lo"

	fleetv1 "github.com/you-humble/fleet-maintenance/internal/api/fleet/v1"
	"github.com/you-humble/fleet-maintenance/internal/model"
)

func RegisterUsedPartParamsFromRequest(req fleetv1.RegisterUsedPartRequest) model.RegisterUsedPartParams {
	return model.RegisterUsedPartParams{
		Name:                req.Name,
		Unit:                req.Unit,
		Quantity:            req.Quantity,
		RepairOrderID:       req.RepairOrderID,
		RepairOrderNo:       req.RepairOrderNo,
		VehiclePlate:        req.VehiclePlate,
		OriginalStockItemID: req.OriginalStockItemID,
		Notes:               req.Notes,
	}
}

func DecisionFromRequest(actor string, req fleetv1.DecisionRequest) model.Decision {
	return model.Decision{
		Type:              model.DecisionType(req.Type),
		Quantity:          req.Quantity,
		TargetStockItemID: req.TargetStockItemID,
		Condition:         model.PartCondition(req.Condition),
		StorageLocation:   req.StorageLocation,
		SalePrice:         req.SalePrice,
		Buyer:             req.Buyer,
		Notes:             req.Notes,
		Actor:             actor,
	}
}

func UsedPartToAPI(p *model.UsedPart) fleetv1.UsedPart {
	return fleetv1.UsedPart{
		ID:                  p.ID,
		Name:                p.Name,
		Unit:                p.Unit,
		InitialQuantity:     p.InitialQuantity,
		RemainingQuantity:   p.RemainingQuantity(),
		RepairOrderID:       p.RepairOrderID,
		RepairOrderNo:       p.RepairOrderNo,
		VehiclePlate:        p.VehiclePlate,
		OriginalStockItemID: p.OriginalStockItemID,
		Dispositions:        lo.Map(p.Dispositions, func(d model.Disposition, _ int) fleetv1.Disposition { return DispositionToAPI(d) }),
		Status:              string(p.Status),
		Notes:               p.Notes,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func UsedPartsToAPI(parts []*model.UsedPart) []fleetv1.UsedPart {
	return lo.Map(parts, func(p *model.UsedPart, _ int) fleetv1.UsedPart { return UsedPartToAPI(p) })
}

func DispositionToAPI(d model.Disposition) fleetv1.Disposition {
	return fleetv1.Disposition{
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
}

func ProcessResultToAPI(res *model.ProcessResult) fleetv1.ProcessResponse {
	return fleetv1.ProcessResponse{
		Batch:       UsedPartToAPI(res.Batch),
		Disposition: DispositionToAPI(res.Disposition),
		StockItem:   optionalStockItem(res.StockItem),
	}
}

func ReverseResultToAPI(res *model.ReverseResult) fleetv1.ReverseResponse {
	return fleetv1.ReverseResponse{
		Batch:           UsedPartToAPI(res.Batch),
		Disposition:     DispositionToAPI(res.Disposition),
		StockRolledBack: res.StockRolledBack,
		StockItem:       optionalStockItem(res.StockItem),
	}
}

func optionalStockItem(it *model.StockItem) *fleetv1.StockItem {
	if it == nil {
		return nil
	}
	return lo.ToPtr(StockItemToAPI(it))
}
