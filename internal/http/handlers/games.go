package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	appgames "github.com/kbostats/kbo-stats-service/internal/app/games"
	"github.com/kbostats/kbo-stats-service/internal/logging"
)

// Games lists games, filtered by ?date=YYYY-MM-DD or ?status=.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	query := r.URL.Query()
	filter := appgames.Filter{
		Date:   strings.TrimSpace(query.Get("date")),
		Status: strings.TrimSpace(query.Get("status")),
	}

	section, err := h.games.Games(r.Context(), filter)
	if errors.Is(err, appgames.ErrInvalidFilter) {
		logging.Warn(logger, "invalid game filter",
			slog.String(logging.FieldDate, filter.Date),
			slog.String("status", filter.Status),
		)
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}
	writeSection(w, r, section, section, h.logger)
}

// UpcomingGames lists scheduled games that have not started.
func (h *Handler) UpcomingGames(w http.ResponseWriter, r *http.Request) {
	section := h.games.Upcoming(r.Context())
	writeSection(w, r, section, section, h.logger)
}

// Game returns a game with its inning board; a missing game is a 404.
func (h *Handler) Game(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "game")
	if !ok {
		return
	}
	detail := h.games.Detail(r.Context(), id)
	writeSection(w, r, detail.Game, detail, h.logger)
}
