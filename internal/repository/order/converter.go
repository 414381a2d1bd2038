package orderrepo

import (
	"github.com/samber/lo"

	"github.com/you-humble/fleet-maintenance/internal/model"
)

func EntityToModel(e *RepairOrderEntity) *model.RepairOrder {
	if e == nil {
		return nil
	}

	return &model.RepairOrder{
		ID:           e.ID,
		OrderNo:      e.OrderNo,
		VehiclePlate: e.VehiclePlate,
		VehicleType:  e.VehicleType,
		Description:  e.Description,
		ReportedBy:   e.ReportedBy,
		Priority:     model.Priority(e.Priority),
		Status:       model.RepairStatus(e.Status),
		Technician:   e.Technician,
		Assistants:   append([]string(nil), e.Assistants...),
		Parts: lo.Map(e.Parts, func(p RepairPartEntity, _ int) model.RepairPart {
			return model.RepairPart{
				ID:          p.ID,
				StockItemID: p.StockItemID,
				Name:        p.Name,
				Unit:        p.Unit,
				Quantity:    p.Quantity,
				UnitPrice:   p.UnitPrice,
				Source:      model.PartSource(p.Source),
				Vendor:      p.Vendor,
				AddedAt:     p.AddedAt,
			}
		}),
		LaborCost: e.LaborCost,
		PartsCost: e.PartsCost,
		TotalCost: e.TotalCost,
		Notes:     e.Notes,
		History: lo.Map(e.History, func(h StatusChangeEntity, _ int) model.StatusChange {
			return model.StatusChange{
				From:  model.RepairStatus(h.From),
				To:    model.RepairStatus(h.To),
				Actor: h.Actor,
				Note:  h.Note,
				At:    h.At,
			}
		}),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		ApprovedAt:  e.ApprovalDate,
		StartedAt:   e.StartDate,
		CompletedAt: e.EndDate,
	}
}

func EntityFromModel(o *model.RepairOrder) RepairOrderEntity {
	return RepairOrderEntity{
		ID:           o.ID,
		OrderNo:      o.OrderNo,
		VehiclePlate: o.VehiclePlate,
		VehicleType:  o.VehicleType,
		Description:  o.Description,
		ReportedBy:   o.ReportedBy,
		Priority:     string(o.Priority),
		Status:       string(o.Status),
		Technician:   o.Technician,
		Assistants:   o.Assistants,
		Parts: lo.Map(o.Parts, func(p model.RepairPart, _ int) RepairPartEntity {
			return RepairPartEntity{
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
		}),
		LaborCost: o.LaborCost,
		PartsCost: o.PartsCost,
		TotalCost: o.TotalCost,
		Notes:     o.Notes,
		History: lo.Map(o.History, func(h model.StatusChange, _ int) StatusChangeEntity {
			return StatusChangeEntity{
				From:  string(h.From),
				To:    string(h.To),
				Actor: h.Actor,
				Note:  h.Note,
				At:    h.At,
			}
		}),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		ApprovalDate: o.ApprovedAt,
		StartDate:    o.StartedAt,
		EndDate:      o.CompletedAt,
	}
}
