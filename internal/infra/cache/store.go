package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"store-reservation/internal/pkg/config"
	"store-reservation/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const storeDetailsKeyPrefix = "store:details:"

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// StoreCache keeps store details in Redis. Cache failures are logged and
// treated as misses so reads fall through to the database.
type StoreCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewStoreCache(client redis.Cmdable, ttl time.Duration) *StoreCache {
	return &StoreCache{client: client, ttl: ttl}
}

func storeKey(id int64) string {
	return fmt.Sprintf("%s%d", storeDetailsKeyPrefix, id)
}

func (c *StoreCache) Get(ctx context.Context, id int64) (*queries.StoreDetails, bool) {
	raw, err := c.client.Get(ctx, storeKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "store cache get failed", "store_id", id, "error", err.Error())
		}
		return nil, false
	}

	var details queries.StoreDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		slog.WarnContext(ctx, "store cache entry unreadable", "store_id", id, "error", err.Error())
		return nil, false
	}
	return &details, true
}

func (c *StoreCache) Put(ctx context.Context, details *queries.StoreDetails) {
	raw, err := json.Marshal(details)
	if err != nil {
		slog.WarnContext(ctx, "store cache encode failed", "store_id", details.ID, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, storeKey(details.ID), raw, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "store cache put failed", "store_id", details.ID, "error", err.Error())
	}
}

func (c *StoreCache) Invalidate(ctx context.Context, storeIDs ...int64) {
	if len(storeIDs) == 0 {
		return
	}
	keys := make([]string, len(storeIDs))
	for i, id := range storeIDs {
		keys[i] = storeKey(id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.WarnContext(ctx, "store cache invalidate failed", "store_ids", storeIDs, "error", err.Error())
	}
}

// NoopStoreCache is used when Redis is not configured.
type NoopStoreCache struct{}

func (NoopStoreCache) Get(context.Context, int64) (*queries.StoreDetails, bool) { return nil, false }
func (NoopStoreCache) Put(context.Context, *queries.StoreDetails)                {}
func (NoopStoreCache) Invalidate(context.Context, ...int64)                      {}
