package bootstrap

import (
	"time"

	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
		NewClock,
	),
)

// NewLocation is the zone reservation date-times are read and rendered in.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.App.Location()
}

func NewClock(loc *time.Location) clock.Clock {
	return clock.NewRealClock(loc)
}
