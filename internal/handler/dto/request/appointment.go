package request

import (
	"time"

	"taller-api/internal/domain/appointment"
)

type CreateAppointmentRequest struct {
	Title       string    `json:"title" binding:"required"`
	Start       time.Time `json:"start" binding:"required"`
	End         time.Time `json:"end" binding:"required"`
	Description *string   `json:"description,omitempty"`
	// Accepted for client convenience but ignored: new slots always start AVAILABLE.
	Status string `json:"status,omitempty"`
}

func (r CreateAppointmentRequest) ToDomain() (*appointment.Appointment, error) {
	title, err := appointment.NewTitle(r.Title)
	if err != nil {
		return nil, err
	}

	slot, err := appointment.NewTimeSlot(r.Start, r.End)
	if err != nil {
		return nil, err
	}

	return appointment.NewAppointment(title, slot, r.Description), nil
}

type UpdateAppointmentRequest struct {
	Title       string    `json:"title" binding:"required"`
	Start       time.Time `json:"start" binding:"required"`
	End         time.Time `json:"end" binding:"required"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status" binding:"required"`
}

func (r UpdateAppointmentRequest) ToDomain() (appointment.Title, appointment.TimeSlot, appointment.Status, error) {
	title, err := appointment.NewTitle(r.Title)
	if err != nil {
		return appointment.Title{}, appointment.TimeSlot{}, "", err
	}

	slot, err := appointment.NewTimeSlot(r.Start, r.End)
	if err != nil {
		return appointment.Title{}, appointment.TimeSlot{}, "", err
	}

	status, err := appointment.NewStatus(r.Status)
	if err != nil {
		return appointment.Title{}, appointment.TimeSlot{}, "", err
	}

	return title, slot, status, nil
}
