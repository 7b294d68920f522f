package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	appdashboard "github.com/kbostats/kbo-stats-service/internal/app/dashboard"
	appgames "github.com/kbostats/kbo-stats-service/internal/app/games"
	appplayers "github.com/kbostats/kbo-stats-service/internal/app/players"
	appteams "github.com/kbostats/kbo-stats-service/internal/app/teams"
	"github.com/kbostats/kbo-stats-service/internal/http/requestutil"
	"github.com/kbostats/kbo-stats-service/internal/poller"
)

// Services bundles the view builders the read endpoints serve.
type Services struct {
	Teams     *appteams.Service
	Players   *appplayers.Service
	Games     *appgames.Service
	Dashboard *appdashboard.Service
}

// Handler wires HTTP routes to the view services.
type Handler struct {
	teams     *appteams.Service
	players   *appplayers.Service
	games     *appgames.Service
	dashboard *appdashboard.Service
	logger    *slog.Logger
	statusFn  func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil when the cache warmer is disabled.
func NewHandler(svc Services, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		teams:     svc.Teams,
		players:   svc.Players,
		games:     svc.Games,
		dashboard: svc.Dashboard,
		logger:    logger,
		statusFn:  statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on the cache warmer.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ready", "warmer": status}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", loggerFromContext(r, h.logger))
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", loggerFromContext(r, h.logger))
}

// pathID reads the {id} route variable, writing a 400 when it is not a positive integer.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, resource string) (int64, bool) {
	id, err := requestutil.ParseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid "+resource+" id", loggerFromContext(r, h.logger))
		return 0, false
	}
	return id, true
}
