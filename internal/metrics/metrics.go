package metrics

import (
	"sync"
	"time"
)

// CacheOutcome classifies a query cache lookup.
type CacheOutcome string

const (
	CacheHit       CacheOutcome = "hit"
	CacheMiss      CacheOutcome = "miss"
	CacheDisabled  CacheOutcome = "disabled"
	CacheError     CacheOutcome = "error"
	CacheCoalesced CacheOutcome = "coalesced"
)

type resourceStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
	lookups         map[CacheOutcome]int
}

// Recorder captures lightweight, in-memory metrics about backend calls and cache lookups,
// forwarding to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*resourceStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*resourceStats),
		otel:  otel,
	}
}

// RecordBackendCall increments counters for a backend request and stores the last observed latency.
func (r *Recorder) RecordBackendCall(resource string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStats(resource)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordBackendCall(resource, duration, err)
	}
}

// RecordCacheLookup counts a query cache lookup by outcome.
func (r *Recorder) RecordCacheLookup(resource string, outcome CacheOutcome) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureStats(resource).lookups[outcome]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCacheLookup(resource, outcome)
	}
}

// BackendCalls returns the total requests recorded for a resource.
func (r *Recorder) BackendCalls(resource string) int {
	return r.Snapshot(resource).Calls
}

// BackendErrors returns the total failed requests recorded for a resource.
func (r *Recorder) BackendErrors(resource string) int {
	return r.Snapshot(resource).Errors
}

// CacheLookups returns the number of lookups for a resource with the given outcome.
func (r *Recorder) CacheLookups(resource string, outcome CacheOutcome) int {
	return r.Snapshot(resource).Lookups[outcome]
}

// LastCallLatency returns the last recorded latency for a backend request.
func (r *Recorder) LastCallLatency(resource string) time.Duration {
	return r.Snapshot(resource).LastCallLatency
}

// Snapshot returns a copy of the current stats for the resource.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
	Lookups         map[CacheOutcome]int
}

func (r *Recorder) Snapshot(resource string) Snapshot {
	if r == nil {
		return Snapshot{Lookups: map[CacheOutcome]int{}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := Snapshot{Lookups: make(map[CacheOutcome]int)}
	stats, ok := r.stats[resource]
	if !ok || stats == nil {
		return snap
	}
	snap.Calls = stats.calls
	snap.Errors = stats.errors
	snap.LastCallLatency = stats.lastCallLatency
	for k, v := range stats.lookups {
		snap.Lookups[k] = v
	}
	return snap
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordWarmCycle tracks cache warmer cycles and errors.
func (r *Recorder) RecordWarmCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordWarmCycle(duration, err)
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(resource string) *resourceStats {
	stats, ok := r.stats[resource]
	if !ok {
		stats = &resourceStats{lookups: make(map[CacheOutcome]int)}
		r.stats[resource] = stats
	}
	return stats
}
