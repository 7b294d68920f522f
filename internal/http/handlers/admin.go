package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/kbostats/kbo-stats-service/internal/app/realtime"
	"github.com/kbostats/kbo-stats-service/internal/http/requestutil"
	"github.com/kbostats/kbo-stats-service/internal/logging"
)

// Cache families accepted by the refresh endpoint.
const (
	FamilyPlayers = "players"
	FamilyTeams   = "teams"
	FamilyGames   = "games"
	FamilyAll     = "all"
)

// CacheRefresher invalidates cached query families.
type CacheRefresher interface {
	RefreshPlayers(ctx context.Context) error
	RefreshTeams(ctx context.Context) error
	RefreshGames(ctx context.Context) error
	RefreshAll(ctx context.Context) error
}

// AdminHandler exposes admin-only endpoints guarded by a bearer token.
type AdminHandler struct {
	realtime *realtime.Service
	cache    CacheRefresher
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token disables every admin route.
func NewAdminHandler(rt *realtime.Service, cache CacheRefresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		realtime: rt,
		cache:    cache,
		token:    token,
		logger:   logger,
	}
}

// RealTimeUpdate asks the backend to re-crawl live data. The backend is called once;
// a failed update is reported as 502 with the backend's message.
func (h *AdminHandler) RealTimeUpdate(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if h.realtime == nil {
		writeError(w, r, http.StatusServiceUnavailable, "real-time updates not configured", logger)
		return
	}

	out := h.realtime.Trigger(r.Context())
	status := http.StatusOK
	if !out.OK() {
		status = http.StatusBadGateway
	}
	logging.Info(logger, "admin real-time update",
		slog.String("status", out.Status),
		slog.Bool("refreshed", out.Refreshed),
	)
	writeJSON(w, status, out, logger)
}

// RefreshCache invalidates one query family (?family=players|teams|games|all, default all).
func (h *AdminHandler) RefreshCache(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if h.cache == nil {
		writeError(w, r, http.StatusServiceUnavailable, "cache not configured", logger)
		return
	}

	family := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("family")))
	if family == "" {
		family = FamilyAll
	}
	refresh, ok := h.refreshers()[family]
	if !ok {
		logging.Warn(logger, "admin refresh invalid family", slog.String("family", family))
		writeError(w, r, http.StatusBadRequest, "invalid cache family", logger)
		return
	}

	if err := refresh(r.Context()); err != nil {
		logging.Error(logger, "admin cache refresh failed", err, slog.String("family", family))
		writeError(w, r, http.StatusInternalServerError, "cache refresh failed", logger)
		return
	}

	logging.Info(logger, "admin cache refreshed", slog.String("family", family))
	writeJSON(w, http.StatusOK, map[string]string{
		"family": family,
		"status": "ok",
	}, logger)
}

func (h *AdminHandler) refreshers() map[string]func(context.Context) error {
	return map[string]func(context.Context) error{
		FamilyPlayers: h.cache.RefreshPlayers,
		FamilyTeams:   h.cache.RefreshTeams,
		FamilyGames:   h.cache.RefreshGames,
		FamilyAll:     h.cache.RefreshAll,
	}
}

func (h *AdminHandler) guard(w http.ResponseWriter, r *http.Request) bool {
	if h.authorize(r) {
		return true
	}
	logging.Warn(h.logger, "admin unauthorized",
		slog.String(logging.FieldPath, r.URL.Path),
		slog.String("client_ip", requestutil.ClientIP(r)),
	)
	writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
	return false
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := r.Header.Get("Authorization")
	want := "Bearer " + h.token
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
