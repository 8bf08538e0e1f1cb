package bootstrap

import (
	"context"
	"log/slog"

	"store-reservation/internal/infra/outbox"
	sqlc "store-reservation/internal/infra/sqlc/generated"
	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Invoke(StartOutboxRelay),
)

// StartOutboxRelay publishes queued reservation events to RabbitMQ. Jobs stay
// queued while MQ_URL is unset.
func StartOutboxRelay(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, q *sqlc.Queries, clk clock.Clock, logger *slog.Logger) error {
	if !cfg.MQ.Enabled() {
		logger.Info("MQ disabled, reservation events stay in the outbox")
		return nil
	}

	publisher, err := outbox.NewAMQPPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		return err
	}
	relay := outbox.NewRelay(pool, q, publisher, clk, cfg.MQ.PollInterval, cfg.MQ.BatchSize)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			relay.Stop()
			return publisher.Close()
		},
	})
	return nil
}
