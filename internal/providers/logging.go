package providers

import (
	"context"
	"log/slog"

	"github.com/kbostats/kbo-stats-service/internal/logging"
)

// LogWithResource emits a log entry if a logger is available and always includes the
// provider and resource names.
func LogWithResource(ctx context.Context, logger *slog.Logger, level slog.Level, provider, resource string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args,
		slog.String(logging.FieldProvider, provider),
		slog.String(logging.FieldResource, resource),
	)
	logger.Log(ctx, level, msg, args...)
}
