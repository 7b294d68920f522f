package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kbostats/kbo-stats-service/internal/domain/games"
	"github.com/kbostats/kbo-stats-service/internal/domain/teams"
	"github.com/kbostats/kbo-stats-service/internal/logging"
	"github.com/kbostats/kbo-stats-service/internal/metrics"
	"github.com/kbostats/kbo-stats-service/internal/query"
	"github.com/kbostats/kbo-stats-service/internal/timeutil"
)

const defaultInterval = time.Minute

// Warmer is the set of cached lookups kept hot between requests.
type Warmer interface {
	Standings(ctx context.Context) query.Result[[]teams.Team]
	UpcomingGames(ctx context.Context) query.Result[[]games.Game]
	GamesByDate(ctx context.Context, date string) query.Result[[]games.Game]
}

// Poller runs the dashboard lookups on an interval so the cache is warm when pages load.
// Lookups honour staleness, so a cycle only reaches the backend for expired entries.
type Poller struct {
	warmer   Warmer
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the warm loop.
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(warmer Warmer, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		warmer:   warmer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins warming until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	ticker := time.NewTicker(p.interval)
	p.ticker = ticker
	p.startMu.Unlock()

	go func() {
		p.logInfo("cache warmer started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial cycle so the first page load is served from cache.
		p.warmOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("cache warmer stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("cache warmer stopped")
				return
			case <-ticker.C:
				p.warmOnce(ctx)
			}
		}
	}()
}

// Stop halts the warm loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) warmOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)
	today := timeutil.Today(start)

	var errs []error
	standings := p.warmer.Standings(ctx)
	errs = appendFailure(errs, "standings", standings.Status, standings.Err)
	upcoming := p.warmer.UpcomingGames(ctx)
	errs = appendFailure(errs, "upcoming games", upcoming.Status, upcoming.Err)
	todays := p.warmer.GamesByDate(ctx, today)
	errs = appendFailure(errs, "games "+today, todays.Status, todays.Err)

	err := errors.Join(errs...)
	elapsed := time.Since(start)
	p.metrics.RecordWarmCycle(elapsed, err)
	if err != nil {
		p.logError("cache warm cycle failed", err, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	p.recordSuccess(start)
	p.logInfo("cache warm cycle complete",
		logging.FieldDate, today,
		logging.FieldCount, len(todays.Data),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
}

func appendFailure(errs []error, name string, status query.Status, err error) []error {
	if status != query.StatusError {
		return errs
	}
	if err == nil {
		err = errors.New("lookup failed")
	}
	return append(errs, fmt.Errorf("%s: %w", name, err))
}

func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the warmer's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
