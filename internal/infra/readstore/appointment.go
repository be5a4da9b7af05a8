package readstore

import (
	"context"

	"taller-api/internal/infra"
	"taller-api/internal/infra/db"
	"taller-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const appointmentColumns = `id, title, start_at, end_at, description, status, owner_user_id, created_at, updated_at`

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

func (r *AppointmentReadStore) FindAll(ctx context.Context) ([]*queries.AppointmentView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+appointmentColumns+` FROM appointments ORDER BY start_at, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	result := make([]*queries.AppointmentView, 0)
	for rows.Next() {
		view, scanErr := scanAppointment(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", err)
	}

	return result, nil
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id int64) (*queries.AppointmentView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)

	view, err := scanAppointment(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}

	return view, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (*queries.AppointmentView, error) {
	var view queries.AppointmentView
	var description *string
	var ownerUserID *uuid.UUID

	err := row.Scan(
		&view.ID,
		&view.Title,
		&view.Start,
		&view.End,
		&description,
		&view.Status,
		&ownerUserID,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.Description = description
	view.OwnerUserID = ownerUserID
	return &view, nil
}
