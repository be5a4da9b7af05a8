package readstore

import (
	"context"

	"taller-api/internal/infra"
	"taller-api/internal/infra/db"
	"taller-api/internal/usecase/queries"
)

const repairColumns = `id, plate, customer_first_name, customer_last_name, cost_cents,
	performed_at, km, work_done, notes, photo_url, created_at, updated_at`

type RepairReadStore struct {
	db db.DBTX
}

func NewRepairReadStore(dbtx db.DBTX) *RepairReadStore {
	return &RepairReadStore{db: dbtx}
}

func (r *RepairReadStore) FindAll(ctx context.Context) ([]*queries.RepairView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+repairColumns+` FROM repairs ORDER BY performed_at DESC, id DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list repairs", err)
	}
	defer rows.Close()

	return collectRepairs(rows)
}

func (r *RepairReadStore) FindByID(ctx context.Context, id int64) (*queries.RepairView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+repairColumns+` FROM repairs WHERE id = $1`, id)

	view, err := scanRepair(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("repair not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find repair by ID", err)
	}

	return view, nil
}

func (r *RepairReadStore) FindByPlate(ctx context.Context, plate string) ([]*queries.RepairView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+repairColumns+` FROM repairs WHERE plate = $1 ORDER BY performed_at DESC, id DESC`, plate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list repairs by plate", err)
	}
	defer rows.Close()

	return collectRepairs(rows)
}

type repairRows interface {
	Next() bool
	Err() error
	Scan(dest ...any) error
}

func collectRepairs(rows repairRows) ([]*queries.RepairView, error) {
	result := make([]*queries.RepairView, 0)
	for rows.Next() {
		view, err := scanRepair(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan repair row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate repair rows", err)
	}

	return result, nil
}

func scanRepair(row rowScanner) (*queries.RepairView, error) {
	var view queries.RepairView
	err := row.Scan(
		&view.ID,
		&view.Plate,
		&view.CustomerFirstName,
		&view.CustomerLastName,
		&view.CostCents,
		&view.PerformedAt,
		&view.Km,
		&view.WorkDone,
		&view.Notes,
		&view.PhotoURL,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
