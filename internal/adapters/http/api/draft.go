// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// handleDraftClass handles POST /draft/class requests. Prospects are
// returned ordered by projected overall, best first.
func (s *Server) handleDraftClass(w http.ResponseWriter, r *http.Request) {
	prospects, err := s.deps.GenerateDraftClass(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, prospects)
}
