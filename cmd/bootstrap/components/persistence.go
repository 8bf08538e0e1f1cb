package components

import (
	"store-reservation/internal/infra/readstore"
	sqlc "store-reservation/internal/infra/sqlc/generated"
	"store-reservation/internal/infra/uow"
	"store-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Store
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StoreReadQueries)),
		),
		fx.Annotate(
			readstore.NewStoreReadStore,
			fx.As(new(queries.StoreReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Review
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReviewReadQueries)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
	),
)

// Write repositories are bound per transaction by the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
