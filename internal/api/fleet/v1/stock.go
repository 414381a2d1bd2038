package fleetv1

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateStockItemRequest struct {
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	Unit               string          `json:"unit,omitempty"`
	Category           string          `json:"category,omitempty"`
	Supplier           string          `json:"supplier,omitempty"`
	Location           string          `json:"location,omitempty"`
	Quantity           decimal.Decimal `json:"quantity"`
	ReorderThreshold   decimal.Decimal `json:"reorderThreshold"`
	Price              decimal.Decimal `json:"price"`
	IsRevolvingPart    bool            `json:"isRevolvingPart,omitempty"`
	IsFungibleUsedItem bool            `json:"isFungibleUsedItem,omitempty"`
}

type AdjustStockRequest struct {
	Delta decimal.Decimal `json:"delta"`
	Notes string          `json:"notes,omitempty"`
}

type StockReturnLine struct {
	StockItemID   string          `json:"stockItemId"`
	Quantity      decimal.Decimal `json:"quantity"`
	RepairOrderNo string          `json:"repairOrderNo"`
}

type ReturnUsedStockRequest struct {
	Lines []StockReturnLine `json:"lines"`
}

type ReturnUsedStockResponse struct {
	Updated      []StockItem        `json:"updated"`
	Transactions []StockTransaction `json:"transactions"`
	SkippedIDs   []string           `json:"skippedIds"`
}

type StockItem struct {
	ID                  string          `json:"id"`
	Code                string          `json:"code"`
	Name                string          `json:"name"`
	Unit                string          `json:"unit,omitempty"`
	Category            string          `json:"category,omitempty"`
	Supplier            string          `json:"supplier,omitempty"`
	Location            string          `json:"location,omitempty"`
	Quantity            decimal.Decimal `json:"quantity"`
	ReorderThreshold    decimal.Decimal `json:"reorderThreshold"`
	Price               decimal.Decimal `json:"price"`
	IsRevolvingPart     bool            `json:"isRevolvingPart"`
	IsFungibleUsedItem  bool            `json:"isFungibleUsedItem"`
	OriginalStockItemID string          `json:"originalStockItemId,omitempty"`
	LowStock            bool            `json:"lowStock"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

type StockTransaction struct {
	ID            string          `json:"id"`
	StockItemID   string          `json:"stockItemId"`
	StockItemName string          `json:"stockItemName"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	PricePerUnit  decimal.Decimal `json:"pricePerUnit"`
	Actor         string          `json:"actor,omitempty"`
	RepairOrderNo string          `json:"repairOrderNo,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}
