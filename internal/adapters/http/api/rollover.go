// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// handleRollover handles POST /league/rollover requests. The sweep runs
// synchronously and the season report is returned to the caller.
func (s *Server) handleRollover(w http.ResponseWriter, r *http.Request) {
	report, err := s.deps.RolloverSeason(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
