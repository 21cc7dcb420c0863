package components

import (
	"blueprint-api/internal/infra/readstore"
	sqlc "blueprint-api/internal/infra/sqlc/generated"
	"blueprint-api/internal/infra/uow"
	"blueprint-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Purchase
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PurchaseReadQueries)),
		),
		fx.Annotate(
			readstore.NewPurchaseReadStore,
			fx.As(new(queries.PurchaseReadStore)),
		),
		// Email job
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EmailJobReadQueries)),
		),
		fx.Annotate(
			readstore.NewEmailJobReadStore,
			fx.As(new(queries.EmailJobReadStore)),
		),
		// Email log
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EmailLogReadQueries)),
		),
		fx.Annotate(
			readstore.NewEmailLogReadStore,
			fx.As(new(queries.EmailLogReadStore)),
		),
	),
)

// Write-side repositories are built inside the unit of work so they always
// run against the transaction that owns them; only the UoW itself is wired
// into the graph.
var uowModule = fx.Module("persistence/uow",
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
