package server

import (
	"context"
	"log/slog"

	"github.com/kbostats/kbo-stats-service/internal/config"
	"github.com/kbostats/kbo-stats-service/internal/query"
	"github.com/kbostats/kbo-stats-service/internal/store"
)

var newRedisStore = func(ctx context.Context, url, prefix string) (query.Store, error) {
	return store.NewRedisStore(ctx, url, prefix)
}

// selectStore picks the query cache store. An unreachable Redis falls back to memory so
// the service still starts.
func selectStore(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) query.Store {
	if cfg.Backend != config.CacheBackendRedis {
		return store.NewMemoryStore()
	}
	st, err := newRedisStore(ctx, cfg.RedisURL, cfg.KeyPrefix)
	if err != nil {
		if logger != nil {
			logger.Warn("redis cache unavailable, falling back to memory", "error", err)
		}
		return store.NewMemoryStore()
	}
	if logger != nil {
		logger.Info("using redis query cache", slog.String("prefix", cfg.KeyPrefix))
	}
	return st
}
