package repository

import (
	"context"
	"time"

	"taller-api/internal/domain/user"
	"taller-api/internal/infra"
	"taller-api/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, role, display_name, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.DisplayName(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, displayName string, workshopName, currentPlate *string) error {
	const query = `
		UPDATE users
		SET display_name = $2,
		    workshop_name = $3,
		    current_plate = $4,
		    updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, userID, displayName, workshopName, currentPlate)
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, passwordHash string) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`, userID, passwordHash)
	if err != nil {
		return infra.WrapRepoErr("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	return nil
}

// FindPasswordHash exists for the change-password flow, which verifies the
// current password inside the same transaction that overwrites it.
func (r *UserRepository) FindPasswordHash(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) (string, error) {
	var hash string
	err := dbtx.QueryRow(ctx, `SELECT password_hash FROM users WHERE id = $1`, userID).Scan(&hash)
	if err != nil {
		if infra.IsNoRows(err) {
			return "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find password hash", err)
	}

	return hash, nil
}

type PlateHistoryRepository struct{}

func NewPlateHistoryRepository() *PlateHistoryRepository {
	return &PlateHistoryRepository{}
}

func (r *PlateHistoryRepository) Insert(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, plate string, changedAt time.Time) error {
	const query = `
		INSERT INTO plate_history (id, user_id, plate, changed_at)
		VALUES ($1, $2, $3, $4)`

	_, err := dbtx.Exec(ctx, query, uuid.New(), userID, plate, changedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to insert plate history", err)
	}

	return nil
}
