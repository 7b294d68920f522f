package handlers

import (
	"net/http"
	"strings"
)

// Players lists players, optionally narrowed by ?position=.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	position := strings.TrimSpace(r.URL.Query().Get("position"))
	section := h.players.Players(r.Context(), position)
	writeSection(w, r, section, section, h.logger)
}

// Leaders returns the three leaderboards. Each board reports its own status.
func (h *Handler) Leaders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.players.Leaders(r.Context()), loggerFromContext(r, h.logger))
}

// Player returns one player's profile.
func (h *Handler) Player(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "player")
	if !ok {
		return
	}
	section := h.players.Player(r.Context(), id)
	writeSection(w, r, section, section, h.logger)
}
