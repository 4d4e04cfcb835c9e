package bootstrap

import (
	"time"

	"luxora-booking/internal/pkg/clock"
	"luxora-booking/internal/pkg/config"
	"luxora-booking/internal/pkg/errs"
	"luxora-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}
	return jwt.NewService(cfg.JWT.Secret, duration, clk), nil
}
