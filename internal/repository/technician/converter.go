package techrepo

import "github.com/you-humble/fleet-maintenance/internal/model"

func EntityToModel(e *TechnicianEntity) *model.Technician {
	return &model.Technician{
		ID:        e.ID,
		Name:      e.Name,
		Phone:     e.Phone,
		Skills:    append([]string(nil), e.Skills...),
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
	}
}

func EntityFromModel(t *model.Technician) TechnicianEntity {
	return TechnicianEntity{
		ID:        t.ID,
		Name:      t.Name,
		Phone:     t.Phone,
		Skills:    t.Skills,
		Active:    t.Active,
		CreatedAt: t.CreatedAt,
	}
}
