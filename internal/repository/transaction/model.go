package txnrepo

import (
	"time"

	"github.com/shopspring/decimal"
)

type StockTransactionEntity struct {
	ID            string          `json:"id"`
	StockItemID   string          `json:"stockItemId"`
	StockItemName string          `json:"stockItemName,omitempty"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	PricePerUnit  decimal.Decimal `json:"pricePerUnit"`
	Actor         string          `json:"actor,omitempty"`
	RepairOrderNo string          `json:"relatedRepairOrder,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"date"`
}
