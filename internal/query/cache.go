package query

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/singleflight"

	"github.com/kbostats/kbo-stats-service/internal/metrics"
	"github.com/kbostats/kbo-stats-service/internal/store"
)

// Store persists cache entries. Implementations live in internal/store.
type Store interface {
	Get(ctx context.Context, key string) (store.Entry, bool, error)
	Set(ctx context.Context, key string, entry store.Entry, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) (int, error)
	Clear(ctx context.Context) error
	Close() error
}

// Options configures a Cache.
type Options struct {
	Store   Store
	Logger  *slog.Logger
	Metrics *metrics.Recorder
	// NewBackOff builds the retry schedule for one fetch. Defaults to exponential backoff.
	NewBackOff func() backoff.BackOff
	Now        func() time.Time
}

// Cache is the process-wide query cache. Create one at startup, share it with every
// consumer and Close it on shutdown.
type Cache struct {
	store      Store
	logger     *slog.Logger
	metrics    *metrics.Recorder
	newBackOff func() backoff.BackOff
	now        func() time.Time
	flight     singleflight.Group
	gens       generations
}

// NewCache constructs a Cache. A nil store falls back to an in-memory store.
func NewCache(opts Options) *Cache {
	st := opts.Store
	if st == nil {
		st = store.NewMemoryStore()
	}
	newBackOff := opts.NewBackOff
	if newBackOff == nil {
		newBackOff = func() backoff.BackOff { return backoff.NewExponentialBackOff() }
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Cache{
		store:      st,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
		newBackOff: newBackOff,
		now:        now,
	}
}

// Invalidate drops every entry whose key starts with prefix.
func (c *Cache) Invalidate(ctx context.Context, prefix Key) (int, error) {
	c.gens.bump(prefix)
	removed, err := c.store.DeletePrefix(ctx, prefix.String())
	if err != nil {
		c.log(ctx, slog.LevelWarn, "cache invalidation failed", slog.String("prefix", prefix.String()), slog.Any("error", err))
		return removed, err
	}
	c.log(ctx, slog.LevelInfo, "cache invalidated", slog.String("prefix", prefix.String()), slog.Int("removed", removed))
	return removed, nil
}

// Clear drops every cached entry.
func (c *Cache) Clear(ctx context.Context) error {
	c.gens.bump(nil)
	if err := c.store.Clear(ctx); err != nil {
		c.log(ctx, slog.LevelWarn, "cache clear failed", slog.Any("error", err))
		return err
	}
	c.log(ctx, slog.LevelInfo, "cache cleared")
	return nil
}

// Close releases the underlying store.
func (c *Cache) Close() error {
	return c.store.Close()
}

func (c *Cache) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Log(ctx, level, msg, args...)
}
