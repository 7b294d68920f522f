package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kbostats/kbo-stats-service/internal/app/view"
	"github.com/kbostats/kbo-stats-service/internal/http/middleware"
	"github.com/kbostats/kbo-stats-service/internal/http/requestutil"
	"github.com/kbostats/kbo-stats-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeSection renders a view payload with the HTTP status its primary section implies.
func writeSection[T any](w http.ResponseWriter, r *http.Request, primary view.Section[T], payload any, logger *slog.Logger) {
	logger = loggerFromContext(r, logger)
	status := sectionStatus(primary)
	if status != http.StatusOK {
		logging.Warn(logger, "section failed",
			slog.Int(logging.FieldStatusCode, status),
			slog.Any("error", primary.Err()),
		)
	}
	writeJSON(w, status, payload, logger)
}

// sectionStatus maps a section to a response code. Backend 404s pass through; other
// failures are 502 unless stale data could still be served.
func sectionStatus[T any](s view.Section[T]) int {
	switch {
	case !s.Failed():
		return http.StatusOK
	case s.NotFound():
		return http.StatusNotFound
	case s.Data != nil:
		return http.StatusOK
	default:
		return http.StatusBadGateway
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
