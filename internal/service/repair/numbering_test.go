package repair

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/you-humble/fleet-maintenance/internal/model"
)

func TestNextOrderNo(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 3, 10, 0, 0, 0, time.UTC)
	thisYear := now.AddDate(0, -1, 0)
	lastYear := now.AddDate(-1, 0, 0)

	tests := []struct {
		name     string
		existing []*model.RepairOrder
		want     string
	}{
		{
			name: "first order of the year",
			want: "RO-2024-00001",
		},
		{
			name: "last year's orders do not count",
			existing: []*model.RepairOrder{
				{OrderNo: "RO-2023-00099", CreatedAt: lastYear},
			},
			want: "RO-2024-00001",
		},
		{
			name: "follows the count",
			existing: []*model.RepairOrder{
				{OrderNo: "RO-2024-00001", CreatedAt: thisYear},
				{OrderNo: "RO-2024-00002", CreatedAt: thisYear},
			},
			want: "RO-2024-00003",
		},
		{
			name: "follows the highest number after deletions",
			existing: []*model.RepairOrder{
				{OrderNo: "RO-2024-00007", CreatedAt: thisYear},
				{OrderNo: "RO-2024-00002", CreatedAt: thisYear},
			},
			want: "RO-2024-00008",
		},
		{
			name: "ignores malformed numbers",
			existing: []*model.RepairOrder{
				{OrderNo: "RO-2024-abc", CreatedAt: thisYear},
			},
			want: "RO-2024-00002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, nextOrderNo(tt.existing, now))
		})
	}
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	statuses := []model.RepairStatus{
		model.RepairStatusAwaitingRepair,
		model.RepairStatusInProgress,
		model.RepairStatusAwaitingParts,
		model.RepairStatusCompleted,
	}
	allowed := map[[2]model.RepairStatus]bool{
		{model.RepairStatusAwaitingRepair, model.RepairStatusInProgress}: true,
		{model.RepairStatusInProgress, model.RepairStatusAwaitingParts}:  true,
		{model.RepairStatusInProgress, model.RepairStatusCompleted}:      true,
		{model.RepairStatusAwaitingParts, model.RepairStatusInProgress}:  true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			assert.Equal(t, allowed[[2]model.RepairStatus{from, to}], CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}
