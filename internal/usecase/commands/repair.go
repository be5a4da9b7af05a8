package commands

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"taller-api/internal/domain/repair"
	reqdto "taller-api/internal/handler/dto/request"
	"taller-api/internal/infra"
	"taller-api/internal/infra/db"
	"taller-api/internal/pkg/errs"
	"taller-api/internal/usecase/queries"
	"taller-api/internal/usecase/shared"
)

var (
	ErrRepairNotFound   = errs.New("repair not found")
	ErrRepairValidation = errs.New("repair validation error")
)

type RepairRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, rep *repair.Repair) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, id int64, rep *repair.Repair) error
	Delete(ctx context.Context, dbtx db.DBTX, id int64) (bool, error)
}

type RepairCommands interface {
	Create(ctx context.Context, req reqdto.CreateRepairRequest) (*queries.RepairView, error)
	Update(ctx context.Context, id int64, req reqdto.UpdateRepairRequest) (*queries.RepairView, error)
	Delete(ctx context.Context, id int64) error
}

type repairCommandsImpl struct {
	repo      RepairRepository
	readStore queries.RepairReadStore
	pool      *pgxpool.Pool
}

func NewRepairCommands(repo RepairRepository, readStore queries.RepairReadStore, pool *pgxpool.Pool) RepairCommands {
	return &repairCommandsImpl{
		repo:      repo,
		readStore: readStore,
		pool:      pool,
	}
}

func (c *repairCommandsImpl) Create(ctx context.Context, req reqdto.CreateRepairRequest) (*queries.RepairView, error) {
	rep, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrRepairValidation)
	}

	id, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (int64, error) {
		return c.repo.Insert(ctx, tx, rep)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (c *repairCommandsImpl) Update(ctx context.Context, id int64, req reqdto.UpdateRepairRequest) (*queries.RepairView, error) {
	rep, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrRepairValidation)
	}

	_, err = shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.Update(ctx, tx, id, rep)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRepairNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (c *repairCommandsImpl) Delete(ctx context.Context, id int64) error {
	deleted, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (bool, error) {
		return c.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !deleted {
		return ErrRepairNotFound
	}
	return nil
}
