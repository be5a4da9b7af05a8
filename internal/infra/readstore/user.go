package readstore

import (
	"context"

	"taller-api/internal/infra"
	"taller-api/internal/infra/db"
	"taller-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const userColumns = `id, email, role, display_name, workshop_name, current_plate, is_active`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	view, err := scanUser(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+`, password_hash FROM users WHERE email = $1`, email)

	var view queries.AuthorizedUserView
	var passwordHash string
	err := row.Scan(
		&view.ID,
		&view.Email,
		&view.Role,
		&view.DisplayName,
		&view.WorkshopName,
		&view.CurrentPlate,
		&view.IsActive,
		&passwordHash,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, passwordHash, nil
}

func scanUser(row rowScanner) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := row.Scan(
		&view.ID,
		&view.Email,
		&view.Role,
		&view.DisplayName,
		&view.WorkshopName,
		&view.CurrentPlate,
		&view.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

type PlateHistoryReadStore struct {
	db db.DBTX
}

func NewPlateHistoryReadStore(dbtx db.DBTX) *PlateHistoryReadStore {
	return &PlateHistoryReadStore{db: dbtx}
}

func (r *PlateHistoryReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.PlateHistoryView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, plate, changed_at FROM plate_history WHERE user_id = $1 ORDER BY changed_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list plate history", err)
	}
	defer rows.Close()

	result := make([]*queries.PlateHistoryView, 0)
	for rows.Next() {
		var view queries.PlateHistoryView
		if scanErr := rows.Scan(&view.ID, &view.UserID, &view.Plate, &view.ChangedAt); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan plate history row", scanErr)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate plate history rows", err)
	}

	return result, nil
}
