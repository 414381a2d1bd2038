package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type UsedPartStatus string

const (
	UsedPartStatusAwaiting UsedPartStatus = "awaiting"
	UsedPartStatusPartial  UsedPartStatus = "partial"
	UsedPartStatusComplete UsedPartStatus = "complete"
)

type DispositionType string

const (
	DispositionMovedToRevolving    DispositionType = "moved_to_revolving_stock"
	DispositionMovedToConsolidated DispositionType = "moved_to_consolidated_stock"
	DispositionSold                DispositionType = "sold"
	DispositionDisposed            DispositionType = "disposed"
)

// MutatesStock reports whether processing this disposition added quantity to a stock item.
func (t DispositionType) MutatesStock() bool {
	return t == DispositionMovedToRevolving || t == DispositionMovedToConsolidated
}

type PartCondition string

const (
	ConditionUsable     PartCondition = "usable"
	ConditionRepairable PartCondition = "repairable"
	ConditionDamaged    PartCondition = "damaged"
	ConditionScrap      PartCondition = "scrap"
)

func (c PartCondition) Valid() bool {
	switch c {
	case ConditionUsable, ConditionRepairable, ConditionDamaged, ConditionScrap:
		return true
	}
	return false
}

type UsedPart struct {
	ID                  string
	Name                string
	Unit                string
	InitialQuantity     decimal.Decimal
	RepairOrderID       string
	RepairOrderNo       string
	VehiclePlate        string
	OriginalStockItemID string
	Dispositions        []Disposition
	Status              UsedPartStatus
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (u *UsedPart) DisposedQuantity() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range u.Dispositions {
		sum = sum.Add(d.Quantity)
	}
	return sum
}

func (u *UsedPart) RemainingQuantity() decimal.Decimal {
	return u.InitialQuantity.Sub(u.DisposedQuantity())
}

func (u *UsedPart) RecomputeStatus() {
	u.Status = StatusFor(u.InitialQuantity, u.DisposedQuantity())
}

func (u *UsedPart) Disposition(id string) (Disposition, bool) {
	for _, d := range u.Dispositions {
		if d.ID == id {
			return d, true
		}
	}
	return Disposition{}, false
}

// StatusFor is the only source of a batch status.
func StatusFor(initial, disposed decimal.Decimal) UsedPartStatus {
	switch {
	case !disposed.IsPositive():
		return UsedPartStatusAwaiting
	case disposed.GreaterThanOrEqual(initial):
		return UsedPartStatusComplete
	default:
		return UsedPartStatusPartial
	}
}

type Disposition struct {
	ID                string
	Type              DispositionType
	Quantity          decimal.Decimal
	Condition         PartCondition
	TargetStockItemID string
	SalePrice         decimal.Decimal
	Buyer             string
	StorageLocation   string
	Notes             string
	ProcessedBy       string
	ProcessedAt       time.Time
}

type DecisionType string

const (
	DecisionToFungible  DecisionType = "to_fungible"
	DecisionToRevolving DecisionType = "to_revolving_stock"
	DecisionDispose     DecisionType = "dispose"
	DecisionSell        DecisionType = "sell"
)

type Decision struct {
	Type DecisionType
	// Quantity of zero means the whole remaining quantity.
	Quantity          decimal.Decimal
	TargetStockItemID string
	Condition         PartCondition
	StorageLocation   string
	SalePrice         decimal.Decimal
	Buyer             string
	Notes             string
	Actor             string
}

type RegisterUsedPartParams struct {
	Name                string
	Unit                string
	Quantity            decimal.Decimal
	RepairOrderID       string
	RepairOrderNo       string
	VehiclePlate        string
	OriginalStockItemID string
	Notes               string
}

type UsedPartFilter struct {
	Status        UsedPartStatus
	RepairOrderNo string
}

type ProcessResult struct {
	Batch       *UsedPart
	Disposition Disposition
	StockItem   *StockItem
}

type ReverseResult struct {
	Batch           *UsedPart
	Disposition     Disposition
	StockRolledBack bool
	StockItem       *StockItem
}
