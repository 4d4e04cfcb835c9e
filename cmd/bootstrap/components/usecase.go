package components

import (
	"time"

	"luxora-booking/internal/domain/booking"
	"luxora-booking/internal/domain/pricing"
	"luxora-booking/internal/pkg/clock"
	"luxora-booking/internal/pkg/config"
	"luxora-booking/internal/pkg/password"
	"luxora-booking/internal/usecase"
	"luxora-booking/internal/usecase/commands"
	"luxora-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.BookingConfig) (*time.Location, error) {
		return cfg.Location()
	},
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewNightlyPriceCalculator,
		fx.As(new(pricing.PriceCalculator)),
	),
	fx.Annotate(
		booking.NewRandomCodeGenerator,
		fx.As(new(booking.CodeGenerator)),
	),
	fx.Annotate(
		func() *password.Hasher { return password.NewHasher(password.DefaultCost) },
		fx.As(new(commands.PasswordHasher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewRoomTypeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRoomTypeQueries,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
