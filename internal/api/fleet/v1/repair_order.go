package fleetv1

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateRepairOrderRequest struct {
	VehiclePlate string          `json:"vehiclePlate"`
	VehicleType  string          `json:"vehicleType,omitempty"`
	Description  string          `json:"description"`
	ReportedBy   string          `json:"reportedBy,omitempty"`
	Priority     string          `json:"priority,omitempty"`
	Technician   string          `json:"technician,omitempty"`
	Assistants   []string        `json:"assistants,omitempty"`
	LaborCost    decimal.Decimal `json:"laborCost"`
	Notes        string          `json:"notes,omitempty"`
}

type UpdateRepairOrderRequest struct {
	Description *string          `json:"description,omitempty"`
	Priority    *string          `json:"priority,omitempty"`
	LaborCost   *decimal.Decimal `json:"laborCost,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	Technician  *string          `json:"technician,omitempty"`
	Assistants  []string         `json:"assistants,omitempty"`
}

type TransitionRequest struct {
	To         string   `json:"to"`
	Technician string   `json:"technician,omitempty"`
	Assistants []string `json:"assistants,omitempty"`
	Note       string   `json:"note,omitempty"`
}

type AddPartRequest struct {
	Source          string          `json:"source"`
	StockItemID     string          `json:"stockItemId,omitempty"`
	Name            string          `json:"name,omitempty"`
	Unit            string          `json:"unit,omitempty"`
	Vendor          string          `json:"vendor,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	SalvageOldPart  bool            `json:"salvageOldPart,omitempty"`
	SalvageQuantity decimal.Decimal `json:"salvageQuantity"`
	SalvageName     string          `json:"salvageName,omitempty"`
}

type RepairOrder struct {
	ID           string          `json:"id"`
	OrderNo      string          `json:"orderNo"`
	VehiclePlate string          `json:"vehiclePlate"`
	VehicleType  string          `json:"vehicleType,omitempty"`
	Description  string          `json:"description"`
	ReportedBy   string          `json:"reportedBy,omitempty"`
	Priority     string          `json:"priority"`
	Status       string          `json:"status"`
	Technician   string          `json:"technician,omitempty"`
	Assistants   []string        `json:"assistants"`
	Parts        []RepairPart    `json:"parts"`
	LaborCost    decimal.Decimal `json:"laborCost"`
	PartsCost    decimal.Decimal `json:"partsCost"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	Notes        string          `json:"notes,omitempty"`
	History      []StatusChange  `json:"history"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	ApprovedAt   *time.Time      `json:"approvedAt"`
	StartedAt    *time.Time      `json:"startedAt"`
	CompletedAt  *time.Time      `json:"completedAt"`
}

type RepairPart struct {
	ID          string          `json:"id"`
	StockItemID string          `json:"stockItemId,omitempty"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Source      string          `json:"source"`
	Vendor      string          `json:"vendor,omitempty"`
	AddedAt     time.Time       `json:"addedAt"`
}

type StatusChange struct {
	From  string    `json:"from"`
	To    string    `json:"to"`
	Actor string    `json:"actor,omitempty"`
	Note  string    `json:"note,omitempty"`
	At    time.Time `json:"at"`
}

type AddPartResponse struct {
	Order    RepairOrder `json:"order"`
	Part     RepairPart  `json:"part"`
	UsedPart *UsedPart   `json:"usedPart,omitempty"`
}
