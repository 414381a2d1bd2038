package orderrepo

import (
	"time"

	"github.com/shopspring/decimal"
)

type RepairOrderEntity struct {
	ID           string `json:"id"`
	OrderNo      string `json:"orderNo"`
	VehiclePlate string `json:"vehiclePlate"`
	VehicleType  string `json:"vehicleType,omitempty"`
	Description  string `json:"description"`
	ReportedBy   string `json:"reportedBy,omitempty"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`

	Technician string             `json:"technician,omitempty"`
	Assistants []string           `json:"assistants,omitempty"`
	Parts      []RepairPartEntity `json:"parts,omitempty"`

	LaborCost decimal.Decimal `json:"laborCost"`
	PartsCost decimal.Decimal `json:"partsCost"`
	TotalCost decimal.Decimal `json:"totalCost"`
	Notes     string          `json:"notes,omitempty"`

	History []StatusChangeEntity `json:"history,omitempty"`

	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	ApprovalDate *time.Time `json:"approvalDate"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
}

type RepairPartEntity struct {
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

type StatusChangeEntity struct {
	From  string    `json:"from"`
	To    string    `json:"to"`
	Actor string    `json:"actor,omitempty"`
	Note  string    `json:"note,omitempty"`
	At    time.Time `json:"at"`
}
