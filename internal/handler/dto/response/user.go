package response

import (
	"time"

	"taller-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	DisplayName  string    `json:"display_name"`
	WorkshopName *string   `json:"workshop_name,omitempty"`
	CurrentPlate *string   `json:"current_plate,omitempty"`
}

type PlateHistoryResponse struct {
	Plate     string    `json:"plate"`
	ChangedAt time.Time `json:"changed_at"`
}

func FromUserView(v *queries.AuthorizedUserView) *ProfileResponse {
	return &ProfileResponse{
		ID:           v.ID,
		Email:        v.Email,
		Role:         v.Role,
		DisplayName:  v.DisplayName,
		WorkshopName: v.WorkshopName,
		CurrentPlate: v.CurrentPlate,
	}
}

func FromPlateHistoryViews(views []*queries.PlateHistoryView) []*PlateHistoryResponse {
	out := make([]*PlateHistoryResponse, len(views))
	for i, v := range views {
		out[i] = &PlateHistoryResponse{
			Plate:     v.Plate,
			ChangedAt: v.ChangedAt,
		}
	}
	return out
}
