package response

import (
	"time"

	"taller-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	OwnerUserID *uuid.UUID `json:"ownerUserId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ReserveAppointmentResponse confirms a successful reservation.
type ReserveAppointmentResponse struct {
	Message     string               `json:"message"`
	Appointment *AppointmentResponse `json:"appointment"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          v.ID,
		Title:       v.Title,
		Start:       v.Start,
		End:         v.End,
		Description: v.Description,
		Status:      v.Status,
		OwnerUserID: v.OwnerUserID,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromAppointmentViews(views []*queries.AppointmentView) []*AppointmentResponse {
	out := make([]*AppointmentResponse, len(views))
	for i, v := range views {
		out[i] = FromAppointmentView(v)
	}
	return out
}
