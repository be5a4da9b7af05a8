package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotAvailable   = errors.New("appointment is not available")
	ErrOwnerOnReserve = errors.New("owner may only be set through reserve")
)

// Appointment is a bookable workshop slot. The store assigns its id on
// insert; a zero id means the entity has not been persisted yet.
type Appointment struct {
	id          int64
	title       Title
	slot        TimeSlot
	description *string
	status      Status
	ownerUserID *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

// NewAppointment builds a fresh slot. Status is always AVAILABLE and the
// owner is empty regardless of what the caller supplied upstream; slots only
// become RESERVED through the reserve operation.
func NewAppointment(title Title, slot TimeSlot, description *string) *Appointment {
	return &Appointment{
		title:       title,
		slot:        slot,
		description: description,
		status:      StatusAvailable,
	}
}

func ReconstructAppointment(
	id int64,
	title Title,
	slot TimeSlot,
	description *string,
	status Status,
	ownerUserID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:          id,
		title:       title,
		slot:        slot,
		description: description,
		status:      status,
		ownerUserID: ownerUserID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (a *Appointment) ID() int64              { return a.id }
func (a *Appointment) Title() Title           { return a.title }
func (a *Appointment) Slot() TimeSlot         { return a.slot }
func (a *Appointment) Description() *string   { return a.description }
func (a *Appointment) Status() Status         { return a.status }
func (a *Appointment) OwnerUserID() *uuid.UUID { return a.ownerUserID }
func (a *Appointment) CreatedAt() time.Time   { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time   { return a.updatedAt }

func (a *Appointment) IsAvailable() bool {
	return a.status == StatusAvailable
}

// Reserve binds the slot to a user. Only an AVAILABLE slot may be reserved;
// the store enforces the same guard atomically on write.
func (a *Appointment) Reserve(userID uuid.UUID) error {
	if a.status != StatusAvailable {
		return ErrNotAvailable
	}
	a.status = StatusReserved
	a.ownerUserID = &userID
	return nil
}

// ApplyAdminUpdate replaces the editable fields. Moving the slot back to
// AVAILABLE releases the owner: an open slot never carries one.
func (a *Appointment) ApplyAdminUpdate(title Title, slot TimeSlot, description *string, status Status) {
	a.title = title
	a.slot = slot
	a.description = description
	a.status = status
	if status == StatusAvailable {
		a.ownerUserID = nil
	}
}
