// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/gridironsim/gridiron/internal/adapters/repository"
	"github.com/gridironsim/gridiron/internal/adapters/sweep"
	"github.com/gridironsim/gridiron/internal/domain/career"
	"github.com/gridironsim/gridiron/internal/domain/draftgen"
	"github.com/gridironsim/gridiron/internal/domain/model"
	"github.com/gridironsim/gridiron/internal/domain/profile"
	"github.com/gridironsim/gridiron/internal/domain/rating"
	"github.com/gridironsim/gridiron/internal/domain/retire"
	"github.com/gridironsim/gridiron/pkg/logger"
	"github.com/gridironsim/gridiron/pkg/metrics"
)

// Service runs the league engine: it owns the profile registry, the
// player store, and the season counter, and drives rollovers and draft
// generation.
type Service struct {
	mu sync.Mutex

	// Core components
	registry *profile.Registry
	store    repository.Store
	calc     *rating.Calculator

	// Configuration
	workerCount      int
	seed             int64
	draftClassCounts map[string]int
	profilePath      string

	// State
	started bool
	season  int

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU() * 2,
		seed:        42,
		season:      0,
		logger:      nil, // Will be replaced when service starts
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.registry == nil {
		reg, err := profile.Load(s.profilePath)
		if err != nil {
			return fmt.Errorf("load position profiles: %w", err)
		}
		s.registry = reg
	}
	if s.store == nil {
		s.store = repository.NewMemStore()
	}
	s.calc = rating.NewCalculator(s.registry)

	s.started = true
	s.logger.Info(ctx, "engine started",
		logger.Int("positions", s.registry.Count()),
		logger.Int("workers", s.workerCount),
		logger.Int("players", s.store.Count(ctx)),
	)
	return nil
}

// Stop releases service resources.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	s.started = false
	s.logger.Info(context.Background(), "engine stopped")
}

// SeedRoster loads an initial roster. Each player's overall is computed
// before insert so the stored value is never hand-set.
func (s *Service) SeedRoster(ctx context.Context, players []model.Player) error {
	for i := range players {
		p := players[i]
		overall, err := s.calc.Overall(p.Position, p.Attributes, rating.KindPlayer)
		if err != nil {
			return fmt.Errorf("seed roster player %s: %w", p.Name, err)
		}
		p.Overall = overall
		if p.Status == "" {
			p.Status = model.StatusActive
		}
		if err := s.store.PutPlayer(ctx, p); err != nil {
			return err
		}
	}
	metrics.UpdateActivePlayers(s.store.Count(ctx))
	return nil
}

// RolloverSeason advances the league one season. The retirement model and
// progression both derive from the base seed and the new season number,
// so replaying a season with the same seed reproduces it exactly.
func (s *Service) RolloverSeason(ctx context.Context) (sweep.Report, error) {
	s.mu.Lock()
	s.season++
	season := s.season
	s.mu.Unlock()

	retireModel := retire.New(s.registry, retire.WithSeed(s.seed+int64(season)))
	tracker := career.NewTracker(s.calc, retireModel)
	pool := sweep.NewPool(tracker, s.store,
		sweep.WithWorkerCount(s.workerCount),
		sweep.WithProgression(NewAgeProgression(s.seed).ForSeason(season)),
		sweep.WithLogger(s.logger),
	)
	return pool.Run(ctx, season)
}

// GenerateDraftClass produces the upcoming season's draft class.
func (s *Service) GenerateDraftClass(ctx context.Context) ([]model.Prospect, error) {
	s.mu.Lock()
	season := s.season + 1
	s.mu.Unlock()

	retireModel := retire.New(s.registry) // unused by prospects; tracker requires it
	tracker := career.NewTracker(s.calc, retireModel)
	gen := draftgen.New(s.registry, tracker,
		draftgen.WithSeed(s.seed),
		draftgen.WithClassCount(s.draftClassCounts),
	)
	prospects, err := gen.Class(ctx, season)
	if err != nil {
		return nil, err
	}
	metrics.RecordDraftProspects(len(prospects))
	s.logger.Info(ctx, "draft class generated",
		logger.Int("season", season),
		logger.Int("prospects", len(prospects)),
	)
	return prospects, nil
}

// Season returns the number of completed seasons.
func (s *Service) Season() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.season
}

// PlayerByID returns one player record.
func (s *Service) PlayerByID(ctx context.Context, id string) (model.Player, error) {
	playerID, err := uuid.Parse(id)
	if err != nil {
		return model.Player{}, fmt.Errorf("%w: %q", repository.ErrNotFound, id)
	}
	return s.store.Player(ctx, playerID)
}

// TopN returns the top N active players by overall rating.
func (s *Service) TopN(ctx context.Context, n int) ([]model.Entry, error) {
	return s.store.TopN(ctx, n)
}

// PlayerHistory returns a player's career history events.
func (s *Service) PlayerHistory(ctx context.Context, id string) ([]model.HistoryEvent, error) {
	playerID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repository.ErrNotFound, id)
	}
	return s.store.History(ctx, playerID)
}

// PlayerDecisions returns a player's retirement audit trail.
func (s *Service) PlayerDecisions(ctx context.Context, id string) ([]model.RetirementDecision, error) {
	playerID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repository.ErrNotFound, id)
	}
	return s.store.Decisions(ctx, playerID)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"season":      s.season,
		"workerCount": s.workerCount,
	}
	if s.started {
		stats["players"] = s.store.Count(ctx)
		stats["positions"] = s.registry.Count()
	}
	return stats
}
