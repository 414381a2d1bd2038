package usedpartrepo

import (
	"time"

	"github.com/shopspring/decimal"
)

type UsedPartEntity struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	Unit                string              `json:"unit,omitempty"`
	InitialQuantity     decimal.Decimal     `json:"initialQuantity"`
	RepairOrderID       string              `json:"repairOrderId,omitempty"`
	RepairOrderNo       string              `json:"repairOrderNo,omitempty"`
	VehiclePlate        string              `json:"licensePlate,omitempty"`
	OriginalStockItemID *string             `json:"originalStockItemId"`
	Dispositions        []DispositionEntity `json:"dispositions"`
	Status              string              `json:"status"`
	Notes               string              `json:"notes,omitempty"`
	CreatedAt           time.Time           `json:"dateRemoved"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

type DispositionEntity struct {
	ID                string          `json:"id"`
	Type              string          `json:"dispositionType"`
	Quantity          decimal.Decimal `json:"quantity"`
	Condition         string          `json:"condition,omitempty"`
	TargetStockItemID string          `json:"targetStockItemId,omitempty"`
	SalePrice         decimal.Decimal `json:"salePrice"`
	Buyer             string          `json:"buyer,omitempty"`
	StorageLocation   string          `json:"storageLocation,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	ProcessedBy       string          `json:"processedBy,omitempty"`
	ProcessedAt       time.Time       `json:"date"`
}
