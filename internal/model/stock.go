package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultUsedPartsCategory = "used_parts"

type StockItem struct {
	ID                  string
	Code                string
	Name                string
	Unit                string
	Category            string
	Supplier            string
	Location            string
	Quantity            decimal.Decimal
	ReorderThreshold    decimal.Decimal
	Price               decimal.Decimal
	IsRevolvingPart     bool
	IsFungibleUsedItem  bool
	OriginalStockItemID string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (s *StockItem) BelowThreshold() bool {
	return s.Quantity.LessThanOrEqual(s.ReorderThreshold)
}

type CreateStockItemParams struct {
	Code               string
	Name               string
	Unit               string
	Category           string
	Supplier           string
	Location           string
	Quantity           decimal.Decimal
	ReorderThreshold   decimal.Decimal
	Price              decimal.Decimal
	IsRevolvingPart    bool
	IsFungibleUsedItem bool
	Actor              string
}

type StockFilter struct {
	LowStockOnly  bool
	RevolvingOnly bool
	FungibleOnly  bool
	Query         string
}

type StockReturn struct {
	StockItemID   string
	Quantity      decimal.Decimal
	RepairOrderNo string
}

type StockReturnResult struct {
	Updated      []*StockItem
	Transactions []*StockTransaction
	SkippedIDs   []string
}

type AdjustStockParams struct {
	StockItemID string
	Delta       decimal.Decimal
	Actor       string
	Notes       string
}
