package components

import (
	"blueprint-api/internal/pkg/clock"
	"blueprint-api/internal/pkg/config"
	"blueprint-api/internal/usecase"
	"blueprint-api/internal/usecase/commands"
	"blueprint-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.SchedulerConfig {
		return cfg.Scheduler
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewPurchaseCommands,
		commands.NewDeliveryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewEntitlementQueries,
		queries.NewDeliveryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
