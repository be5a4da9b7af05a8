package queries

import (
	"context"

	"taller-api/internal/infra"
	"taller-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	GetPlateHistory(ctx context.Context, userID uuid.UUID) ([]*PlateHistoryView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type PlateHistoryReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*PlateHistoryView, error)
}

type userQueriesImpl struct {
	readStore      UserReadStore
	plateReadStore PlateHistoryReadStore
}

func NewUserQueries(readStore UserReadStore, plateReadStore PlateHistoryReadStore) UserQueries {
	return &userQueriesImpl{
		readStore:      readStore,
		plateReadStore: plateReadStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

func (q *userQueriesImpl) GetPlateHistory(ctx context.Context, userID uuid.UUID) ([]*PlateHistoryView, error) {
	return q.plateReadStore.FindByUserID(ctx, userID)
}
