//go:build unit || e2e

package builder

import (
	"time"

	reqdto "taller-api/internal/handler/dto/request"
	"taller-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID          int64
	Title       string
	Start       time.Time
	End         time.Time
	Description *string
	Status      string
	OwnerUserID *uuid.UUID
}

func NewAppointmentBuilder() *AppointmentBuilder {
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		ID:     1,
		Title:  "Oil change",
		Start:  start,
		End:    start.Add(time.Hour),
		Status: "AVAILABLE",
	}
}

func (a *AppointmentBuilder) BuildCreateDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		Title:       a.Title,
		Start:       a.Start,
		End:         a.End,
		Description: a.Description,
	}
}

func (a *AppointmentBuilder) BuildUpdateDTO() reqdto.UpdateAppointmentRequest {
	return reqdto.UpdateAppointmentRequest{
		Title:       a.Title,
		Start:       a.Start,
		End:         a.End,
		Description: a.Description,
		Status:      a.Status,
	}
}

func (a *AppointmentBuilder) BuildReadModel() *queries.AppointmentView {
	now := time.Now()
	return &queries.AppointmentView{
		ID:          a.ID,
		Title:       a.Title,
		Start:       a.Start,
		End:         a.End,
		Description: a.Description,
		Status:      a.Status,
		OwnerUserID: a.OwnerUserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Fluent builder methods
func (a *AppointmentBuilder) WithID(id int64) *AppointmentBuilder {
	a.ID = id
	return a
}

func (a *AppointmentBuilder) WithTitle(title string) *AppointmentBuilder {
	a.Title = title
	return a
}

func (a *AppointmentBuilder) WithSlot(start, end time.Time) *AppointmentBuilder {
	a.Start = start
	a.End = end
	return a
}

func (a *AppointmentBuilder) WithStatus(status string) *AppointmentBuilder {
	a.Status = status
	return a
}

func (a *AppointmentBuilder) ReservedBy(userID uuid.UUID) *AppointmentBuilder {
	a.Status = "RESERVED"
	a.OwnerUserID = &userID
	return a
}
