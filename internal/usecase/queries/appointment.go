package queries

import (
	"context"

	"taller-api/internal/infra"
	"taller-api/internal/pkg/errs"
)

var ErrAppointmentNotFound = errs.New("appointment not found")

type AppointmentQueries interface {
	List(ctx context.Context) ([]*AppointmentView, error)
	GetByID(ctx context.Context, id int64) (*AppointmentView, error)
}

type AppointmentReadStore interface {
	FindAll(ctx context.Context) ([]*AppointmentView, error)
	FindByID(ctx context.Context, id int64) (*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	readStore AppointmentReadStore
}

func NewAppointmentQueries(readStore AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{readStore: readStore}
}

func (q *appointmentQueriesImpl) List(ctx context.Context) ([]*AppointmentView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id int64) (*AppointmentView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return view, nil
}
