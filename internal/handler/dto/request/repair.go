package request

import (
	"time"

	"taller-api/internal/domain/repair"
)

type CreateRepairRequest struct {
	Plate             string    `json:"plate" binding:"required"`
	CustomerFirstName string    `json:"customer_first_name" binding:"required"`
	CustomerLastName  string    `json:"customer_last_name" binding:"required"`
	CostCents         int64     `json:"cost_cents"`
	PerformedAt       time.Time `json:"performed_at" binding:"required"`
	Km                *int32    `json:"km,omitempty"`
	WorkDone          *string   `json:"work_done,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
	PhotoURL          *string   `json:"photo_url,omitempty"`
}

func (r CreateRepairRequest) ToDomain() (*repair.Repair, error) {
	return repair.NewRepair(
		r.Plate,
		r.CustomerFirstName,
		r.CustomerLastName,
		r.CostCents,
		r.PerformedAt,
		r.Km,
		r.WorkDone,
		r.Notes,
		r.PhotoURL,
	)
}

type UpdateRepairRequest struct {
	Plate             string    `json:"plate" binding:"required"`
	CustomerFirstName string    `json:"customer_first_name" binding:"required"`
	CustomerLastName  string    `json:"customer_last_name" binding:"required"`
	CostCents         int64     `json:"cost_cents"`
	PerformedAt       time.Time `json:"performed_at" binding:"required"`
	Km                *int32    `json:"km,omitempty"`
	WorkDone          *string   `json:"work_done,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
	PhotoURL          *string   `json:"photo_url,omitempty"`
}

func (r UpdateRepairRequest) ToDomain() (*repair.Repair, error) {
	return repair.NewRepair(
		r.Plate,
		r.CustomerFirstName,
		r.CustomerLastName,
		r.CostCents,
		r.PerformedAt,
		r.Km,
		r.WorkDone,
		r.Notes,
		r.PhotoURL,
	)
}
