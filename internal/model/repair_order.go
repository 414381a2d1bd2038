package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type RepairStatus string

const (
	RepairStatusAwaitingRepair RepairStatus = "awaiting_repair"
	RepairStatusInProgress     RepairStatus = "in_progress"
	RepairStatusAwaitingParts  RepairStatus = "awaiting_parts"
	RepairStatusCompleted      RepairStatus = "completed"
)

func (s RepairStatus) Valid() bool {
	switch s {
	case RepairStatusAwaitingRepair, RepairStatusInProgress, RepairStatusAwaitingParts, RepairStatusCompleted:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type PartSource string

const (
	PartSourceInternal PartSource = "internal_stock"
	PartSourceExternal PartSource = "external_vendor"
)

type RepairOrder struct {
	ID           string
	OrderNo      string
	VehiclePlate string
	VehicleType  string
	Description  string
	ReportedBy   string
	Priority     Priority
	Status       RepairStatus

	Technician string
	Assistants []string
	Parts      []RepairPart

	LaborCost decimal.Decimal
	PartsCost decimal.Decimal
	TotalCost decimal.Decimal
	Notes     string

	History []StatusChange

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ApprovedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// RecalculateCosts derives PartsCost and TotalCost from Parts and LaborCost.
func (o *RepairOrder) RecalculateCosts() {
	parts := decimal.Zero
	for _, p := range o.Parts {
		parts = parts.Add(p.Quantity.Mul(p.UnitPrice))
	}
	o.PartsCost = parts
	o.TotalCost = parts.Add(o.LaborCost)
}

type RepairPart struct {
	ID          string
	StockItemID string
	Name        string
	Unit        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Source      PartSource
	Vendor      string
	AddedAt     time.Time
}

type StatusChange struct {
	From  RepairStatus
	To    RepairStatus
	Actor string
	Note  string
	At    time.Time
}

type RepairOrderDraft struct {
	VehiclePlate string
	VehicleType  string
	Description  string
	ReportedBy   string
	Priority     Priority
	Technician   string
	Assistants   []string
	LaborCost    decimal.Decimal
	Notes        string
}

type UpdateRepairOrderParams struct {
	ID          string
	Description *string
	Priority    *Priority
	LaborCost   *decimal.Decimal
	Notes       *string
	Technician  *string
	Assistants  []string
}

type TransitionParams struct {
	OrderID    string
	To         RepairStatus
	Technician string
	Assistants []string
	Actor      string
	Note       string
}

type AddPartParams struct {
	OrderID     string
	Source      PartSource
	StockItemID string
	Name        string
	Unit        string
	Vendor      string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Actor       string

	// SalvageOldPart registers the removed part as a used-part batch.
	SalvageOldPart  bool
	SalvageQuantity decimal.Decimal
	SalvageName     string
}

type RepairOrderFilter struct {
	Status       RepairStatus
	Year         int
	VehiclePlate string
}

type AddPartResult struct {
	Order    *RepairOrder
	Part     RepairPart
	UsedPart *UsedPart
}
