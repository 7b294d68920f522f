package testutil

import (
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/kbostats/kbo-stats-service/internal/metrics"
	"github.com/kbostats/kbo-stats-service/internal/query"
	"github.com/kbostats/kbo-stats-service/internal/store"
)

// DefaultNow is the instant test fixtures are anchored to: 12:00 KST on Wednesday 2024-05-01.
var DefaultNow = time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC)

// NewQueries builds cached queries over a stub provider with a memory store, no retry
// delay and a fixed clock.
func NewQueries(now time.Time) (*query.Queries, *StubProvider) {
	return NewQueriesWithClock(now, NowAt(now))
}

// NewQueriesWithClock is NewQueries with fixture data anchored at anchor and the
// cache reading time from clock.
func NewQueriesWithClock(anchor time.Time, clock func() time.Time) (*query.Queries, *StubProvider) {
	provider := NewStubProvider(anchor)
	cache := query.NewCache(query.Options{
		Store:      store.NewMemoryStore(),
		Metrics:    metrics.NewRecorder(),
		NewBackOff: func() backoff.BackOff { return &backoff.ZeroBackOff{} },
		Now:        clock,
	})
	return query.NewQueries(cache, provider), provider
}
