package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/kbostats/kbo-stats-service/internal/http/handlers"
	"github.com/kbostats/kbo-stats-service/internal/http/middleware"
	"github.com/kbostats/kbo-stats-service/internal/metrics"
)

// NewRouter registers HTTP routes on a mux router. Admin routes are mounted only when
// admin is non-nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RecoveryMiddleware(logger))
	router.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	router.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)

	router.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	router.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	router.HandleFunc("/dashboard", handler.Dashboard).Methods(nethttp.MethodGet)

	router.HandleFunc("/teams", handler.Teams).Methods(nethttp.MethodGet)
	router.HandleFunc("/teams/standings", handler.Standings).Methods(nethttp.MethodGet)
	router.HandleFunc("/teams/{id}", handler.Team).Methods(nethttp.MethodGet)

	router.HandleFunc("/players", handler.Players).Methods(nethttp.MethodGet)
	router.HandleFunc("/players/leaders", handler.Leaders).Methods(nethttp.MethodGet)
	router.HandleFunc("/players/{id}", handler.Player).Methods(nethttp.MethodGet)

	router.HandleFunc("/games", handler.Games).Methods(nethttp.MethodGet)
	router.HandleFunc("/games/upcoming", handler.UpcomingGames).Methods(nethttp.MethodGet)
	router.HandleFunc("/games/{id}", handler.Game).Methods(nethttp.MethodGet)

	if admin != nil {
		api := router.PathPrefix("/admin").Subrouter()
		api.HandleFunc("/real-time-update", admin.RealTimeUpdate).Methods(nethttp.MethodPost)
		api.HandleFunc("/cache/refresh", admin.RefreshCache).Methods(nethttp.MethodPost)
	}
	return router
}

// NewHandler returns the router wrapped with request logging and metrics.
func NewHandler(handler *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	return middleware.LoggingMiddleware(logger, recorder, NewRouter(handler, admin, logger))
}
