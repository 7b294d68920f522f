package handlers

import "net/http"

// Teams lists every club.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	section := h.teams.Teams(r.Context())
	writeSection(w, r, section, section, h.logger)
}

// Standings returns the league table.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	section := h.teams.Standings(r.Context())
	writeSection(w, r, section, section, h.logger)
}

// Team returns a team page; the response code follows the team section.
func (h *Handler) Team(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "team")
	if !ok {
		return
	}
	detail := h.teams.Detail(r.Context(), id)
	writeSection(w, r, detail.Team, detail, h.logger)
}
