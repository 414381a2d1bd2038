package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionReceived       TransactionType = "received"
	TransactionIssued         TransactionType = "issued"
	TransactionStockMove      TransactionType = "stock_move"
	TransactionReturnedUsable TransactionType = "returned_usable"
	TransactionAdjustment     TransactionType = "adjustment"
)

// StockTransaction is an audit row. Quantity is a signed delta.
type StockTransaction struct {
	ID            string
	StockItemID   string
	StockItemName string
	Type          TransactionType
	Quantity      decimal.Decimal
	PricePerUnit  decimal.Decimal
	Actor         string
	RepairOrderNo string
	Notes         string
	CreatedAt     time.Time
}

type TransactionFilter struct {
	StockItemID   string
	RepairOrderNo string
	Type          TransactionType
}
