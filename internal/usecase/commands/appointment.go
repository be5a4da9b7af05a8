package commands

import (
	"context"

	"taller-api/internal/domain/appointment"
	reqdto "taller-api/internal/handler/dto/request"
	"taller-api/internal/infra"
	"taller-api/internal/infra/db"
	"taller-api/internal/pkg/errs"
	"taller-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrAppointmentConflict     = errs.New("appointment no longer available")
	ErrAppointmentValidation   = errs.New("appointment validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type AppointmentRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) error
	Delete(ctx context.Context, dbtx db.DBTX, id int64) (bool, error)
	ReserveIfAvailable(ctx context.Context, dbtx db.DBTX, id int64, userID uuid.UUID) (bool, error)
}

type AppointmentCommands interface {
	Create(ctx context.Context, req reqdto.CreateAppointmentRequest) (*queries.AppointmentView, error)
	Update(ctx context.Context, id int64, req reqdto.UpdateAppointmentRequest) (*queries.AppointmentView, error)
	Delete(ctx context.Context, id int64) error
	Reserve(ctx context.Context, id int64, userID uuid.UUID) (*queries.AppointmentView, error)
}

type appointmentCommandsImpl struct {
	repo      AppointmentRepository
	readStore queries.AppointmentReadStore
	pool      *pgxpool.Pool
}

func NewAppointmentCommands(
	repo AppointmentRepository,
	readStore queries.AppointmentReadStore,
	pool *pgxpool.Pool,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		repo:      repo,
		readStore: readStore,
		pool:      pool,
	}
}

func (c *appointmentCommandsImpl) Create(ctx context.Context, req reqdto.CreateAppointmentRequest) (*queries.AppointmentView, error) {
	// Any status in the request body is ignored: a new slot always starts
	// out AVAILABLE with no owner.
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAppointmentValidation)
	}

	id, err := c.repo.Insert(ctx, c.pool, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.findView(ctx, id)
}

func (c *appointmentCommandsImpl) Update(ctx context.Context, id int64, req reqdto.UpdateAppointmentRequest) (*queries.AppointmentView, error) {
	title, slot, status, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAppointmentValidation)
	}

	current, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := reconstructFromView(current)
	if err != nil {
		return nil, errs.Mark(err, ErrAppointmentValidation)
	}
	entity.ApplyAdminUpdate(title, slot, req.Description, status)

	if err := c.repo.Update(ctx, c.pool, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.findView(ctx, id)
}

func (c *appointmentCommandsImpl) Delete(ctx context.Context, id int64) error {
	deleted, err := c.repo.Delete(ctx, c.pool, id)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !deleted {
		return ErrAppointmentNotFound
	}

	return nil
}

// Reserve races on a conditional update: of any number of concurrent callers
// for the same slot, the store lets exactly one through. Losers are told the
// slot is taken, not silently re-assigned.
func (c *appointmentCommandsImpl) Reserve(ctx context.Context, id int64, userID uuid.UUID) (*queries.AppointmentView, error) {
	reserved, err := c.repo.ReserveIfAvailable(ctx, c.pool, id, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !reserved {
		// No row changed: either the slot does not exist or someone else
		// holds it. Look it up to report which.
		_, findErr := c.readStore.FindByID(ctx, id)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return nil, ErrAppointmentNotFound
			}
			return nil, errs.Mark(findErr, ErrDatabaseOperationFailed)
		}
		return nil, ErrAppointmentConflict
	}

	return c.findView(ctx, id)
}

func (c *appointmentCommandsImpl) findView(ctx context.Context, id int64) (*queries.AppointmentView, error) {
	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func reconstructFromView(view *queries.AppointmentView) (*appointment.Appointment, error) {
	title, err := appointment.NewTitle(view.Title)
	if err != nil {
		return nil, err
	}
	slot, err := appointment.NewTimeSlot(view.Start, view.End)
	if err != nil {
		return nil, err
	}
	status, err := appointment.NewStatus(view.Status)
	if err != nil {
		return nil, err
	}

	return appointment.ReconstructAppointment(
		view.ID, title, slot, view.Description, status, view.OwnerUserID, view.CreatedAt, view.UpdatedAt,
	), nil
}
