// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gridironsim/gridiron/internal/adapters/repository"
)

// handleGetPlayer handles GET /players/{id} requests.
func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	player, err := s.deps.PlayerByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, player)
}

// handleGetHistory handles GET /players/{id}/history requests.
func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	events, err := s.deps.PlayerHistory(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// handleGetDecisions handles GET /players/{id}/decisions requests.
// The response is the per-season retirement audit trail.
func (s *Server) handleGetDecisions(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	decisions, err := s.deps.PlayerDecisions(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, decisions)
}
