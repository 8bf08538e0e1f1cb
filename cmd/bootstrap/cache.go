package bootstrap

import (
	"context"
	"log/slog"

	"store-reservation/internal/infra/cache"
	"store-reservation/internal/pkg/config"
	"store-reservation/internal/usecase/queries"
	"store-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

type storeCache interface {
	queries.StoreCache
	shared.StoreCacheInvalidator
}

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewStoreCache,
		func(c storeCache) queries.StoreCache { return c },
		func(c storeCache) shared.StoreCacheInvalidator { return c },
	),
)

// NewStoreCache falls back to a no-op cache when REDIS_ADDR is unset.
func NewStoreCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (storeCache, error) {
	if !cfg.Redis.Enabled() {
		logger.Info("Redis disabled, store details are read from the database")
		return cache.NoopStoreCache{}, nil
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return cache.NewStoreCache(client, cfg.Redis.StoreTTL), nil
}
