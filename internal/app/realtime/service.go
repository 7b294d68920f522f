package realtime

import (
	"context"
	"log/slog"

	"github.com/kbostats/kbo-stats-service/internal/providers"
)

// Refresher invalidates cached game queries.
type Refresher interface {
	RefreshGames(ctx context.Context) error
}

// Outcome reports a real-time update and whether cached games were invalidated.
type Outcome struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
	Refreshed bool   `json:"refreshed"`
}

// OK reports whether the backend accepted the update.
func (o Outcome) OK() bool {
	return o.Status == providers.UpdateSuccess
}

// Service asks the backend to re-crawl live data. It calls the backend exactly once per
// Trigger and never retries.
type Service struct {
	trigger   providers.UpdateTrigger
	refresher Refresher
	logger    *slog.Logger
}

// NewService constructs a Service.
func NewService(trigger providers.UpdateTrigger, refresher Refresher, logger *slog.Logger) *Service {
	return &Service{trigger: trigger, refresher: refresher, logger: logger}
}

// Trigger requests an update. On success the game family of the cache is invalidated so
// the next lookups see fresh scores; on failure the cache is left alone.
func (s *Service) Trigger(ctx context.Context) Outcome {
	result, err := s.trigger.TriggerRealTimeUpdate(ctx)
	out := Outcome{Status: result.Status, Message: result.Message, Timestamp: result.Timestamp}
	if err != nil || !result.OK() {
		out.Status = providers.UpdateError
		if out.Message == "" && err != nil {
			out.Message = err.Error()
		}
		s.log(ctx, slog.LevelWarn, "real-time update failed", slog.String("message", out.Message), slog.Any("error", err))
		return out
	}

	if s.refresher != nil {
		if err := s.refresher.RefreshGames(ctx); err != nil {
			s.log(ctx, slog.LevelWarn, "game cache refresh failed", slog.Any("error", err))
		} else {
			out.Refreshed = true
		}
	}
	s.log(ctx, slog.LevelInfo, "real-time update complete", slog.String("message", out.Message), slog.Bool("refreshed", out.Refreshed))
	return out
}

func (s *Service) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Log(ctx, level, msg, args...)
}
