package repository

import (
	"context"

	"taller-api/internal/domain/repair"
	"taller-api/internal/infra"
	"taller-api/internal/infra/db"
)

type RepairRepository struct{}

func NewRepairRepository() *RepairRepository {
	return &RepairRepository{}
}

func (r *RepairRepository) Insert(ctx context.Context, dbtx db.DBTX, rep *repair.Repair) (int64, error) {
	const query = `
		INSERT INTO repairs (plate, customer_first_name, customer_last_name, cost_cents,
		                     performed_at, km, work_done, notes, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		rep.Plate(),
		rep.CustomerFirstName(),
		rep.CustomerLastName(),
		rep.CostCents(),
		rep.PerformedAt(),
		rep.Km(),
		rep.WorkDone(),
		rep.Notes(),
		rep.PhotoURL(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert repair", err)
	}

	return id, nil
}

func (r *RepairRepository) Update(ctx context.Context, dbtx db.DBTX, id int64, rep *repair.Repair) error {
	const query = `
		UPDATE repairs
		SET plate = $2,
		    customer_first_name = $3,
		    customer_last_name = $4,
		    cost_cents = $5,
		    performed_at = $6,
		    km = $7,
		    work_done = $8,
		    notes = $9,
		    photo_url = $10,
		    updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query,
		id,
		rep.Plate(),
		rep.CustomerFirstName(),
		rep.CustomerLastName(),
		rep.CostCents(),
		rep.PerformedAt(),
		rep.Km(),
		rep.WorkDone(),
		rep.Notes(),
		rep.PhotoURL(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update repair", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("repair not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *RepairRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) (bool, error) {
	tag, err := dbtx.Exec(ctx, `DELETE FROM repairs WHERE id = $1`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete repair", err)
	}

	return tag.RowsAffected() > 0, nil
}
