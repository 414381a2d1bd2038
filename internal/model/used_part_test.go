package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	ten := decimal.NewFromInt(10)
	tests := []struct {
		name     string
		disposed decimal.Decimal
		want     UsedPartStatus
	}{
		{name: "nothing disposed", disposed: decimal.Zero, want: UsedPartStatusAwaiting},
		{name: "some disposed", disposed: decimal.RequireFromString("2.5"), want: UsedPartStatusPartial},
		{name: "exactly all", disposed: ten, want: UsedPartStatusComplete},
		{name: "over initial still complete", disposed: decimal.NewFromInt(11), want: UsedPartStatusComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StatusFor(ten, tt.disposed))
		})
	}
}

func TestUsedPartQuantities(t *testing.T) {
	t.Parallel()

	u := &UsedPart{
		InitialQuantity: decimal.NewFromInt(5),
		Dispositions: []Disposition{
			{ID: "a", Quantity: decimal.NewFromInt(2)},
			{ID: "b", Quantity: decimal.RequireFromString("0.5")},
		},
	}
	u.RecomputeStatus()

	assert.True(t, u.DisposedQuantity().Equal(decimal.RequireFromString("2.5")))
	assert.True(t, u.RemainingQuantity().Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, UsedPartStatusPartial, u.Status)

	d, ok := u.Disposition("b")
	assert.True(t, ok)
	assert.Equal(t, "b", d.ID)
	_, ok = u.Disposition("zzz")
	assert.False(t, ok)
}

func TestRecalculateCosts(t *testing.T) {
	t.Parallel()

	o := &RepairOrder{
		LaborCost: decimal.NewFromInt(500),
		Parts: []RepairPart{
			{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(150)},
			{Quantity: decimal.RequireFromString("1.5"), UnitPrice: decimal.NewFromInt(100)},
		},
	}
	o.RecalculateCosts()

	assert.True(t, o.PartsCost.Equal(decimal.NewFromInt(450)))
	assert.True(t, o.TotalCost.Equal(decimal.NewFromInt(950)))
}
