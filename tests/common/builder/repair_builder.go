//go:build unit || e2e

package builder

import (
	"time"

	reqdto "taller-api/internal/handler/dto/request"
	"taller-api/internal/usecase/queries"
)

type RepairBuilder struct {
	ID                int64
	Plate             string
	CustomerFirstName string
	CustomerLastName  string
	CostCents         int64
	PerformedAt       time.Time
	Km                *int32
	WorkDone          *string
	Notes             *string
}

func NewRepairBuilder() *RepairBuilder {
	return &RepairBuilder{
		ID:                1,
		Plate:             "AB123CD",
		CustomerFirstName: "Juan",
		CustomerLastName:  "Pérez",
		CostCents:         250000,
		PerformedAt:       time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *RepairBuilder) BuildCreateDTO() reqdto.CreateRepairRequest {
	return reqdto.CreateRepairRequest{
		Plate:             r.Plate,
		CustomerFirstName: r.CustomerFirstName,
		CustomerLastName:  r.CustomerLastName,
		CostCents:         r.CostCents,
		PerformedAt:       r.PerformedAt,
		Km:                r.Km,
		WorkDone:          r.WorkDone,
		Notes:             r.Notes,
	}
}

func (r *RepairBuilder) BuildUpdateDTO() reqdto.UpdateRepairRequest {
	return reqdto.UpdateRepairRequest{
		Plate:             r.Plate,
		CustomerFirstName: r.CustomerFirstName,
		CustomerLastName:  r.CustomerLastName,
		CostCents:         r.CostCents,
		PerformedAt:       r.PerformedAt,
		Km:                r.Km,
		WorkDone:          r.WorkDone,
		Notes:             r.Notes,
	}
}

func (r *RepairBuilder) BuildReadModel() *queries.RepairView {
	now := time.Now()
	return &queries.RepairView{
		ID:                r.ID,
		Plate:             r.Plate,
		CustomerFirstName: r.CustomerFirstName,
		CustomerLastName:  r.CustomerLastName,
		CostCents:         r.CostCents,
		PerformedAt:       r.PerformedAt,
		Km:                r.Km,
		WorkDone:          r.WorkDone,
		Notes:             r.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (r *RepairBuilder) WithPlate(plate string) *RepairBuilder {
	r.Plate = plate
	return r
}

func (r *RepairBuilder) WithCost(costCents int64) *RepairBuilder {
	r.CostCents = costCents
	return r
}
