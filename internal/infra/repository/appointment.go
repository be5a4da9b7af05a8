package repository

import (
	"context"

	"taller-api/internal/domain/appointment"
	"taller-api/internal/infra"
	"taller-api/internal/infra/db"

	"github.com/google/uuid"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

func (r *AppointmentRepository) Insert(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) (int64, error) {
	const query = `
		INSERT INTO appointments (title, start_at, end_at, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		appt.Title().Value(),
		appt.Slot().Start(),
		appt.Slot().End(),
		appt.Description(),
		appt.Status().String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert appointment", err)
	}

	return id, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) error {
	const query = `
		UPDATE appointments
		SET title = $2,
		    start_at = $3,
		    end_at = $4,
		    description = $5,
		    status = $6,
		    owner_user_id = $7,
		    updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query,
		appt.ID(),
		appt.Title().Value(),
		appt.Slot().Start(),
		appt.Slot().End(),
		appt.Description(),
		appt.Status().String(),
		appt.OwnerUserID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}

	return nil
}

// Delete removes the row and reports whether it existed. A missing id is not
// an error at this level.
func (r *AppointmentRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) (bool, error) {
	tag, err := dbtx.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete appointment", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ReserveIfAvailable performs the reserve transition as a single conditional
// update. Concurrent callers race on the status guard inside the database, so
// at most one of them observes an affected row.
func (r *AppointmentRepository) ReserveIfAvailable(ctx context.Context, dbtx db.DBTX, id int64, userID uuid.UUID) (bool, error) {
	const query = `
		UPDATE appointments
		SET status = $3,
		    owner_user_id = $2,
		    updated_at = now()
		WHERE id = $1 AND status = $4`

	tag, err := dbtx.Exec(ctx, query, id, userID, appointment.StatusReserved.String(), appointment.StatusAvailable.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve appointment", err)
	}

	return tag.RowsAffected() == 1, nil
}
