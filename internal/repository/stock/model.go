package stockrepo

import (
	"time"

	"github.com/shopspring/decimal"
)

type StockItemEntity struct {
	ID                  string          `json:"id"`
	Code                string          `json:"code"`
	Name                string          `json:"name"`
	Unit                string          `json:"unit,omitempty"`
	Category            string          `json:"category,omitempty"`
	Supplier            string          `json:"supplier"`
	Location            string          `json:"location,omitempty"`
	Quantity            decimal.Decimal `json:"quantity"`
	MinStock            decimal.Decimal `json:"minStock"`
	Price               decimal.Decimal `json:"price"`
	IsRevolvingPart     bool            `json:"isRevolvingPart,omitempty"`
	IsFungibleUsedItem  bool            `json:"isFungibleUsedItem,omitempty"`
	OriginalStockItemID string          `json:"originalStockItemId,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}
