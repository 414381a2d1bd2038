package fleetv1

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterUsedPartRequest struct {
	Name                string          `json:"name"`
	Unit                string          `json:"unit,omitempty"`
	Quantity            decimal.Decimal `json:"quantity"`
	RepairOrderID       string          `json:"repairOrderId,omitempty"`
	RepairOrderNo       string          `json:"repairOrderNo,omitempty"`
	VehiclePlate        string          `json:"vehiclePlate,omitempty"`
	OriginalStockItemID string          `json:"originalStockItemId,omitempty"`
	Notes               string          `json:"notes,omitempty"`
}

// DecisionRequest carries one disposition decision. A zero quantity takes everything left.
type DecisionRequest struct {
	Type              string          `json:"type"`
	Quantity          decimal.Decimal `json:"quantity"`
	TargetStockItemID string          `json:"targetStockItemId,omitempty"`
	Condition         string          `json:"condition,omitempty"`
	StorageLocation   string          `json:"storageLocation,omitempty"`
	SalePrice         decimal.Decimal `json:"salePrice"`
	Buyer             string          `json:"buyer,omitempty"`
	Notes             string          `json:"notes,omitempty"`
}

type UsedPart struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Unit                string          `json:"unit,omitempty"`
	InitialQuantity     decimal.Decimal `json:"initialQuantity"`
	RemainingQuantity   decimal.Decimal `json:"remainingQuantity"`
	RepairOrderID       string          `json:"repairOrderId,omitempty"`
	RepairOrderNo       string          `json:"repairOrderNo,omitempty"`
	VehiclePlate        string          `json:"vehiclePlate,omitempty"`
	OriginalStockItemID string          `json:"originalStockItemId,omitempty"`
	Dispositions        []Disposition   `json:"dispositions"`
	Status              string          `json:"status"`
	Notes               string          `json:"notes,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

type Disposition struct {
	ID                string          `json:"id"`
	Type              string          `json:"type"`
	Quantity          decimal.Decimal `json:"quantity"`
	Condition         string          `json:"condition,omitempty"`
	TargetStockItemID string          `json:"targetStockItemId,omitempty"`
	SalePrice         decimal.Decimal `json:"salePrice"`
	Buyer             string          `json:"buyer,omitempty"`
	StorageLocation   string          `json:"storageLocation,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	ProcessedBy       string          `json:"processedBy,omitempty"`
	ProcessedAt       time.Time       `json:"processedAt"`
}

type ProcessResponse struct {
	Batch       UsedPart    `json:"batch"`
	Disposition Disposition `json:"disposition"`
	StockItem   *StockItem  `json:"stockItem,omitempty"`
}

type ReverseResponse struct {
	Batch           UsedPart    `json:"batch"`
	Disposition     Disposition `json:"disposition"`
	StockRolledBack bool        `json:"stockRolledBack"`
	StockItem       *StockItem  `json:"stockItem,omitempty"`
}
