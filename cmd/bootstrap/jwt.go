package bootstrap

import (
	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/pkg/config"
	"store-reservation/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	duration, err := cfg.JWT.TokenDuration()
	if err != nil {
		return nil, err
	}
	return jwt.NewService(cfg.JWT.Secret, duration, cfg.JWT.Issuer, clk), nil
}
