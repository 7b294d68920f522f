package handlers

import "net/http"

// Dashboard returns the landing page. Cards fail independently, so the page is always 200.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.dashboard.Load(r.Context()), loggerFromContext(r, h.logger))
}
