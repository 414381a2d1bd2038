package repair

import "github.com/you-humble/fleet-maintenance/internal/model"

var allowedTransitions = map[model.RepairStatus][]model.RepairStatus{
	model.RepairStatusAwaitingRepair: {model.RepairStatusInProgress},
	model.RepairStatusInProgress:     {model.RepairStatusAwaitingParts, model.RepairStatusCompleted},
	model.RepairStatusAwaitingParts:  {model.RepairStatusInProgress},
}

func CanTransition(from, to model.RepairStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
