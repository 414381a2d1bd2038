package model

import "time"

type Technician struct {
	ID        string
	Name      string
	Phone     string
	Skills    []string
	Active    bool
	CreatedAt time.Time
}

type CreateTechnicianParams struct {
	Name   string
	Phone  string
	Skills []string
}
