package converter

import (
	"github.com/samber/lo"

	fleetv1 "github.com/you-humble/fleet-maintenance/internal/api/fleet/v1"
	"github.com/you-humble/fleet-maintenance/internal/model"
)

func CreateTechnicianParamsFromRequest(req fleetv1.CreateTechnicianRequest) model.CreateTechnicianParams {
	return model.CreateTechnicianParams{Name: req.Name, Phone: req.Phone, Skills: req.Skills}
}

func TechnicianToAPI(t *model.Technician) fleetv1.Technician {
	return fleetv1.Technician{
		ID:        t.ID,
		Name:      t.Name,
		Phone:     t.Phone,
		Skills:    append([]string{}, t.Skills...),
		Active:    t.Active,
		CreatedAt: t.CreatedAt,
	}
}

func TechniciansToAPI(ts []*model.Technician) []fleetv1.Technician {
	return lo.Map(ts, func(t *model.Technician, _ int) fleetv1.Technician { return TechnicianToAPI(t) })
}
