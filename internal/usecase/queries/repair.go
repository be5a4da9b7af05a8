package queries

import (
	"context"

	"taller-api/internal/infra"
	"taller-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRepairNotFound = errs.New("repair not found")
	ErrNoPlateOnFile  = errs.New("no plate registered for user")
)

type RepairQueries interface {
	List(ctx context.Context) ([]*RepairView, error)
	GetByID(ctx context.Context, id int64) (*RepairView, error)
	// ListForUser returns the ledger entries for the caller's current plate.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*RepairView, error)
}

type RepairReadStore interface {
	FindAll(ctx context.Context) ([]*RepairView, error)
	FindByID(ctx context.Context, id int64) (*RepairView, error)
	FindByPlate(ctx context.Context, plate string) ([]*RepairView, error)
}

type repairQueriesImpl struct {
	readStore     RepairReadStore
	userReadStore UserReadStore
}

func NewRepairQueries(readStore RepairReadStore, userReadStore UserReadStore) RepairQueries {
	return &repairQueriesImpl{
		readStore:     readStore,
		userReadStore: userReadStore,
	}
}

func (q *repairQueriesImpl) List(ctx context.Context) ([]*RepairView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *repairQueriesImpl) GetByID(ctx context.Context, id int64) (*RepairView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRepairNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *repairQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*RepairView, error) {
	user, err := q.userReadStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.CurrentPlate == nil {
		return nil, ErrNoPlateOnFile
	}

	return q.readStore.FindByPlate(ctx, *user.CurrentPlate)
}
