package commands

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"taller-api/internal/domain/user"
	reqdto "taller-api/internal/handler/dto/request"
	"taller-api/internal/infra"
	"taller-api/internal/infra/db"
	"taller-api/internal/pkg/clock"
	"taller-api/internal/pkg/errs"
	"taller-api/internal/pkg/password"
	"taller-api/internal/usecase/queries"
	"taller-api/internal/usecase/shared"
)

var (
	ErrProfileValidation = errs.New("profile validation error")
	ErrWrongPassword     = errs.New("current password is incorrect")
)

type ProfileRepository interface {
	UpdateProfile(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, displayName string, workshopName, currentPlate *string) error
	UpdatePassword(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, passwordHash string) error
	FindPasswordHash(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) (string, error)
}

type PlateHistoryRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, plate string, changedAt time.Time) error
}

type UserCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) (*queries.AuthorizedUserView, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req reqdto.ChangePasswordRequest) error
}

type userCommandsImpl struct {
	profileRepo ProfileRepository
	plateRepo   PlateHistoryRepository
	readStore   queries.UserReadStore
	clock       clock.Clock
	pool        *pgxpool.Pool
}

func NewUserCommands(
	profileRepo ProfileRepository,
	plateRepo PlateHistoryRepository,
	readStore queries.UserReadStore,
	clk clock.Clock,
	pool *pgxpool.Pool,
) UserCommands {
	return &userCommandsImpl{
		profileRepo: profileRepo,
		plateRepo:   plateRepo,
		readStore:   readStore,
		clock:       clk,
		pool:        pool,
	}
}

// UpdateProfile replaces the caller's profile fields. A plate change appends
// to plate_history in the same transaction as the profile write, so the
// history never disagrees with the profile.
func (c *userCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) (*queries.AuthorizedUserView, error) {
	var newPlate *string
	if req.CurrentPlate != nil {
		plate, err := user.NewPlate(*req.CurrentPlate)
		if err != nil {
			return nil, errs.Mark(err, ErrProfileValidation)
		}
		normalized := plate.Value()
		newPlate = &normalized
	}

	current, err := c.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	plateChanged := newPlate != nil &&
		(current.CurrentPlate == nil || *current.CurrentPlate != *newPlate)

	_, err = shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		if updateErr := c.profileRepo.UpdateProfile(ctx, tx, userID, req.DisplayName, req.WorkshopName, newPlate); updateErr != nil {
			return struct{}{}, updateErr
		}
		if plateChanged {
			if histErr := c.plateRepo.Insert(ctx, tx, userID, *newPlate, c.clock.Now()); histErr != nil {
				return struct{}{}, histErr
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (c *userCommandsImpl) ChangePassword(ctx context.Context, userID uuid.UUID, req reqdto.ChangePasswordRequest) error {
	newPassword, err := user.NewPassword(req.NewPassword)
	if err != nil {
		return errs.Mark(err, ErrProfileValidation)
	}

	_, err = shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		currentHash, findErr := c.profileRepo.FindPasswordHash(ctx, tx, userID)
		if findErr != nil {
			return struct{}{}, findErr
		}

		if compareErr := password.ComparePassword(currentHash, req.CurrentPassword); compareErr != nil {
			return struct{}{}, ErrWrongPassword
		}

		newHash, hashErr := password.HashPassword(newPassword.Value())
		if hashErr != nil {
			return struct{}{}, hashErr
		}

		return struct{}{}, c.profileRepo.UpdatePassword(ctx, tx, userID, newHash)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrWrongPassword):
			return ErrWrongPassword
		case infra.IsKind(err, infra.KindNotFound):
			return ErrUserNotFound
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return nil
}
