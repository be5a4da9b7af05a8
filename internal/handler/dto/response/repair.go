package response

import (
	"time"

	"taller-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RepairResponse struct {
	ID                int64     `json:"id"`
	Plate             string    `json:"plate"`
	CustomerFirstName string    `json:"customer_first_name"`
	CustomerLastName  string    `json:"customer_last_name"`
	CostCents         int64     `json:"cost_cents"`
	PerformedAt       time.Time `json:"performed_at"`
	Km                *int32    `json:"km,omitempty"`
	WorkDone          *string   `json:"work_done,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
	PhotoURL          *string   `json:"photo_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromRepairView(v *queries.RepairView) (*RepairResponse, error) {
	var resp RepairResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromRepairViews(views []*queries.RepairView) ([]*RepairResponse, error) {
	out := make([]*RepairResponse, len(views))
	for i, v := range views {
		resp, err := FromRepairView(v)
		if err != nil {
			return nil, err
		}
		out[i] = resp
	}
	return out, nil
}
