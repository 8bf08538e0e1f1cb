package components

import (
	"store-reservation/internal/pkg/jwt"
	"store-reservation/internal/pkg/password"
	"store-reservation/internal/usecase"
	"store-reservation/internal/usecase/commands"
	"store-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		password.NewHasher,
		fx.As(new(commands.PasswordHasher)),
	),
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewMemberCommands,
		commands.NewStoreCommands,
		commands.NewReservationCommands,
		commands.NewReviewCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewStoreQueries,
		queries.NewReservationQueries,
		queries.NewReviewQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
