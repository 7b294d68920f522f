package server

import (
	"log/slog"

	"github.com/kbostats/kbo-stats-service/internal/config"
	"github.com/kbostats/kbo-stats-service/internal/metrics"
	"github.com/kbostats/kbo-stats-service/internal/providers"
	"github.com/kbostats/kbo-stats-service/internal/providers/fixture"
	"github.com/kbostats/kbo-stats-service/internal/providers/kbo"
)

func selectProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.DataProvider {
	switch cfg.Provider {
	case config.ProviderKBO, "":
		return kbo.NewClient(kbo.Config{
			BaseURL: cfg.Backend.BaseURL,
			Timeout: cfg.Backend.Timeout,
			Logger:  logger,
			Metrics: recorder,
		})
	case config.ProviderFixture:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
