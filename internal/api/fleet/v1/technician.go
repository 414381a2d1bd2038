package fleetv1

import "time"

type CreateTechnicianRequest struct {
	Name   string   `json:"name"`
	Phone  string   `json:"phone,omitempty"`
	Skills []string `json:"skills,omitempty"`
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

type Technician struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Skills    []string  `json:"skills"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}
