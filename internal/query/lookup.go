package query

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/kbostats/kbo-stats-service/internal/logging"
	"github.com/kbostats/kbo-stats-service/internal/metrics"
	"github.com/kbostats/kbo-stats-service/internal/providers"
	"github.com/kbostats/kbo-stats-service/internal/store"
)

// Query binds a cache key to the fetch that fills it.
type Query[T any] struct {
	Key       Key
	Resource  string
	StaleTime time.Duration
	// Enabled gates the lookup; a disabled query never touches the store or the backend.
	Enabled bool
	Fetch   func(ctx context.Context) (T, error)
}

// Lookup serves q from the cache when fresh and fetches it otherwise. Concurrent lookups
// for the same key share one fetch. Retryable failures are retried twice; a final failure
// returns any previously cached value marked stale.
func Lookup[T any](ctx context.Context, c *Cache, q Query[T]) Result[T] {
	var out Result[T]
	if !q.Enabled {
		out.Status = StatusIdle
		c.metrics.RecordCacheLookup(q.Resource, metrics.CacheDisabled)
		return out
	}

	key := q.Key.String()
	cached, hasCached := c.readEntry(ctx, key, q.Resource)
	var cachedValue T
	if hasCached {
		if err := json.Unmarshal(cached.Payload, &cachedValue); err != nil {
			c.log(ctx, slog.LevelWarn, "discarding undecodable cache entry",
				slog.String(logging.FieldCacheKey, key), slog.Any("error", err))
			hasCached = false
		}
	}

	if hasCached && cached.Age(c.now()) < q.StaleTime {
		c.metrics.RecordCacheLookup(q.Resource, metrics.CacheHit)
		c.log(ctx, slog.LevelDebug, "cache hit",
			slog.String(logging.FieldCacheKey, key), slog.Bool(logging.FieldCacheHit, true))
		return Result[T]{Status: StatusReady, Data: cachedValue, HasData: true, FetchedAt: cached.FetchedAt}
	}

	v, err, shared := c.flight.Do(key, func() (any, error) {
		return fetchAndStore(context.WithoutCancel(ctx), c, q)
	})
	if shared {
		c.metrics.RecordCacheLookup(q.Resource, metrics.CacheCoalesced)
	}
	if err != nil {
		c.metrics.RecordCacheLookup(q.Resource, metrics.CacheError)
		c.log(ctx, slog.LevelWarn, "query failed",
			slog.String(logging.FieldCacheKey, key), slog.Bool("stale_available", hasCached), slog.Any("error", err))
		out = Result[T]{Status: StatusError, Err: err}
		if hasCached {
			out.Data = cachedValue
			out.HasData = true
			out.Stale = true
			out.FetchedAt = cached.FetchedAt
		}
		return out
	}

	fresh := v.(store.Entry)
	c.metrics.RecordCacheLookup(q.Resource, metrics.CacheMiss)
	var value T
	if err := json.Unmarshal(fresh.Payload, &value); err != nil {
		return Result[T]{Status: StatusError, Err: fmt.Errorf("decode %s: %w", key, err)}
	}
	return Result[T]{Status: StatusReady, Data: value, HasData: true, FetchedAt: fresh.FetchedAt}
}

func fetchAndStore[T any](ctx context.Context, c *Cache, q Query[T]) (store.Entry, error) {
	key := q.Key.String()
	gen := c.gens.current(q.Key)
	attempt := 0
	var value T
	op := func() error {
		attempt++
		v, err := q.Fetch(ctx)
		if err != nil {
			if !providers.Retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		value = v
		return nil
	}
	notify := func(err error, wait time.Duration) {
		c.log(ctx, slog.LevelWarn, "retrying query",
			slog.String(logging.FieldCacheKey, key),
			slog.Int(logging.FieldAttempt, attempt),
			slog.Duration("wait", wait),
			slog.Any("error", err))
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), maxRetries), ctx)
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return store.Entry{}, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return store.Entry{}, fmt.Errorf("encode %s: %w", key, err)
	}
	entry := store.Entry{Payload: payload, FetchedAt: c.now()}
	if c.gens.current(q.Key) != gen {
		c.log(ctx, slog.LevelDebug, "skipping cache write after invalidation",
			slog.String(logging.FieldCacheKey, key))
		return entry, nil
	}
	if err := c.store.Set(ctx, key, entry, Retention(q.StaleTime)); err != nil {
		// The fetched value is still good; the next lookup simply refetches.
		c.log(ctx, slog.LevelWarn, "cache write failed",
			slog.String(logging.FieldCacheKey, key), slog.Any("error", err))
	}
	return entry, nil
}

func (c *Cache) readEntry(ctx context.Context, key, resource string) (store.Entry, bool) {
	entry, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.log(ctx, slog.LevelWarn, "cache read failed",
			slog.String(logging.FieldResource, resource),
			slog.String(logging.FieldCacheKey, key), slog.Any("error", err))
		return store.Entry{}, false
	}
	return entry, ok
}
