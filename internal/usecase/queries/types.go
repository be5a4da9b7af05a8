package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type AppointmentView struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	OwnerUserID *uuid.UUID `json:"owner_user_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	DisplayName  string    `json:"display_name"`
	WorkshopName *string   `json:"workshop_name,omitempty"`
	CurrentPlate *string   `json:"current_plate,omitempty"`
	IsActive     bool      `json:"is_active"`
}

type RepairView struct {
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

type PlateHistoryView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Plate     string    `json:"plate"`
	ChangedAt time.Time `json:"changed_at"`
}
