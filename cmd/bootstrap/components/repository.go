package components

import (
	"taller-api/internal/infra/db"
	"taller-api/internal/infra/readstore"
	"taller-api/internal/infra/repository"
	"taller-api/internal/usecase/commands"
	"taller-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(commands.ProfileRepository)),
		),
		fx.Annotate(
			repository.NewPlateHistoryRepository,
			fx.As(new(commands.PlateHistoryRepository)),
		),
		fx.Annotate(
			repository.NewAppointmentRepository,
			fx.As(new(commands.AppointmentRepository)),
		),
		fx.Annotate(
			repository.NewRepairRepository,
			fx.As(new(commands.RepairRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewPlateHistoryReadStore,
			fx.As(new(queries.PlateHistoryReadStore)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		fx.Annotate(
			readstore.NewRepairReadStore,
			fx.As(new(queries.RepairReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
