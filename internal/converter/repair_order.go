package converter

import (
	"github.com/samber/lo"

	fleetv1 "github.com/you-humble/fleet-maintenance/internal/api/fleet/v1"
	"github.com/you-humble/fleet-maintenance/internal/model"
)

func RepairOrderDraftFromRequest(req fleetv1.CreateRepairOrderRequest) model.RepairOrderDraft {
	return model.RepairOrderDraft{
		VehiclePlate: req.VehiclePlate,
		VehicleType:  req.VehicleType,
		Description:  req.Description,
		ReportedBy:   req.ReportedBy,
		Priority:     model.Priority(req.Priority),
		Technician:   req.Technician,
		Assistants:   req.Assistants,
		LaborCost:    req.LaborCost,
		Notes:        req.Notes,
	}
}

func UpdateRepairOrderParamsFromRequest(id string, req fleetv1.UpdateRepairOrderRequest) model.UpdateRepairOrderParams {
	params := model.UpdateRepairOrderParams{
		ID:          id,
		Description: req.Description,
		LaborCost:   req.LaborCost,
		Notes:       req.Notes,
		Technician:  req.Technician,
		Assistants:  req.Assistants,
	}
	if req.Priority != nil {
		params.Priority = lo.ToPtr(model.Priority(*req.Priority))
	}
	return params
}

func TransitionParamsFromRequest(id, actor string, req fleetv1.TransitionRequest) model.TransitionParams {
	return model.TransitionParams{
		OrderID:    id,
		To:         model.RepairStatus(req.To),
		Technician: req.Technician,
		Assistants: req.Assistants,
		Actor:      actor,
		Note:       req.Note,
	}
}

func AddPartParamsFromRequest(id, actor string, req fleetv1.AddPartRequest) model.AddPartParams {
	return model.AddPartParams{
		OrderID:         id,
		Source:          model.PartSource(req.Source),
		StockItemID:     req.StockItemID,
		Name:            req.Name,
		Unit:            req.Unit,
		Vendor:          req.Vendor,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
		Actor:           actor,
		SalvageOldPart:  req.SalvageOldPart,
		SalvageQuantity: req.SalvageQuantity,
		SalvageName:     req.SalvageName,
	}
}

func RepairOrderToAPI(o *model.RepairOrder) fleetv1.RepairOrder {
	return fleetv1.RepairOrder{
		ID:           o.ID,
		OrderNo:      o.OrderNo,
		VehiclePlate: o.VehiclePlate,
		VehicleType:  o.VehicleType,
		Description:  o.Description,
		ReportedBy:   o.ReportedBy,
		Priority:     string(o.Priority),
		Status:       string(o.Status),
		Technician:   o.Technician,
		Assistants:   append([]string{}, o.Assistants...),
		Parts:        lo.Map(o.Parts, func(p model.RepairPart, _ int) fleetv1.RepairPart { return RepairPartToAPI(p) }),
		LaborCost:    o.LaborCost,
		PartsCost:    o.PartsCost,
		TotalCost:    o.TotalCost,
		Notes:        o.Notes,
		History: lo.Map(o.History, func(h model.StatusChange, _ int) fleetv1.StatusChange {
			return fleetv1.StatusChange{From: string(h.From), To: string(h.To), Actor: h.Actor, Note: h.Note, At: h.At}
		}),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		ApprovedAt:  o.ApprovedAt,
		StartedAt:   o.StartedAt,
		CompletedAt: o.CompletedAt,
	}
}

func RepairOrdersToAPI(orders []*model.RepairOrder) []fleetv1.RepairOrder {
	return lo.Map(orders, func(o *model.RepairOrder, _ int) fleetv1.RepairOrder { return RepairOrderToAPI(o) })
}

func RepairPartToAPI(p model.RepairPart) fleetv1.RepairPart {
	return fleetv1.RepairPart{
		ID:          p.ID,
		StockItemID: p.StockItemID,
		Name:        p.Name,
		Unit:        p.Unit,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		Source:      string(p.Source),
		Vendor:      p.Vendor,
		AddedAt:     p.AddedAt,
	}
}

func AddPartResultToAPI(res *model.AddPartResult) fleetv1.AddPartResponse {
	out := fleetv1.AddPartResponse{
		Order: RepairOrderToAPI(res.Order),
		Part:  RepairPartToAPI(res.Part),
	}
	if res.UsedPart != nil {
		out.UsedPart = lo.ToPtr(UsedPartToAPI(res.UsedPart))
	}
	return out
}
