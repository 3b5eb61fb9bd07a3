// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gridironsim/gridiron/internal/adapters/sweep"
	"github.com/gridironsim/gridiron/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Season control.
	RolloverSeason(ctx context.Context) (sweep.Report, error)
	GenerateDraftClass(ctx context.Context) ([]model.Prospect, error)
	Season() int

	// Read operations.
	PlayerByID(ctx context.Context, id string) (model.Player, error)
	PlayerHistory(ctx context.Context, id string) ([]model.HistoryEvent, error)
	PlayerDecisions(ctx context.Context, id string) ([]model.RetirementDecision, error)
	TopN(ctx context.Context, n int) ([]model.Entry, error)
	GetStats(ctx context.Context) map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	deps     Dependencies
	maxLimit int
}

// NewServer creates a new API server.
func NewServer(deps Dependencies, maxLimit int) *Server {
	return &Server{deps: deps, maxLimit: maxLimit}
}

// Router builds the mux router with all routes attached.
func (s *Server) Router(_ context.Context) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", MetricsMiddleware(s.handleHealth, "healthz")).Methods(http.MethodGet)
	r.HandleFunc("/metrics", s.handleMetrics).Methods(http.MethodGet)
	r.HandleFunc("/stats", MetricsMiddleware(s.handleStats, "stats")).Methods(http.MethodGet)
	r.HandleFunc("/players/{id}", MetricsMiddleware(s.handleGetPlayer, "player")).Methods(http.MethodGet)
	r.HandleFunc("/players/{id}/history", MetricsMiddleware(s.handleGetHistory, "player_history")).Methods(http.MethodGet)
	r.HandleFunc("/players/{id}/decisions", MetricsMiddleware(s.handleGetDecisions, "player_decisions")).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard", MetricsMiddleware(s.handleGetLeaderboard, "leaderboard")).Methods(http.MethodGet)
	r.HandleFunc("/league/rollover", MetricsMiddleware(s.handleRollover, "rollover")).Methods(http.MethodPost)
	r.HandleFunc("/draft/class", MetricsMiddleware(s.handleDraftClass, "draft_class")).Methods(http.MethodPost)
	return r
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
