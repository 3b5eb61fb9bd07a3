// Package sweep runs the season-rollover batch: every active player is
// advanced one season through the career tracker by a pool of workers.
//
// Per-player computations are independent; the only shared state is the
// read-only profile registry and the store, which serializes per player.
// Retirement draws come from per-player seeded streams, so worker
// scheduling cannot change outcomes for a fixed season seed.
package sweep

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gridironsim/gridiron/internal/adapters/repository"
	"github.com/gridironsim/gridiron/internal/domain/career"
	"github.com/gridironsim/gridiron/internal/domain/model"
	"github.com/gridironsim/gridiron/internal/domain/profile"
	"github.com/gridironsim/gridiron/internal/domain/rating"
	"github.com/gridironsim/gridiron/pkg/logger"
	"github.com/gridironsim/gridiron/pkg/metrics"
)

// Progression supplies next-season attributes for a player, or nil when
// the player's skills are unchanged. Implemented by an external
// collaborator; the sweep only forwards its result to the tracker.
type Progression func(p model.Player) *model.SkillAttributes

// Skip reports one player left out of the rollover, with the reason.
type Skip struct {
	PlayerID uuid.UUID `json:"player_id"`
	Name     string    `json:"name"`
	Reason   string    `json:"reason"`
}

// Report summarizes one season rollover.
type Report struct {
	Season         int           `json:"season"`
	Evaluated      int           `json:"evaluated"`
	Retired        int           `json:"retired"`
	RatingsChanged int           `json:"ratings_changed"`
	Skipped        int           `json:"skipped"`
	Skips          []Skip        `json:"skips,omitempty"`
	Duration       time.Duration `json:"duration"`
}

// Pool sweeps active players with a fixed number of workers.
type Pool struct {
	tracker     *career.Tracker
	store       repository.Store
	progression Progression
	workers     int
	logger      logger.Logger
}

// NewPool creates a sweep pool with configuration options.
func NewPool(tracker *career.Tracker, store repository.Store, opts ...Option) *Pool {
	p := &Pool{
		tracker: tracker,
		store:   store,
		workers: runtime.NumCPU() * 2,
		logger:  logger.Get().Named("sweep"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type result struct {
	retired       bool
	ratingChanged bool
	skip          *Skip
}

// Run advances every active player one season and returns the report.
// A per-player failure (unknown position, invalid attributes) skips that
// player and continues; it never aborts the league's rollover.
func (p *Pool) Run(ctx context.Context, season int) (Report, error) {
	start := time.Now()

	players, err := p.store.ActivePlayers(ctx)
	if err != nil {
		return Report{}, err
	}
	metrics.UpdateActivePlayers(len(players))
	metrics.UpdateWorkerCount(p.workers)

	jobs := make(chan model.Player)
	results := make(chan result, len(players))

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for player := range jobs {
				results <- p.advance(ctx, season, player)
			}
		}()
	}

	for _, player := range players {
		select {
		case jobs <- player:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return Report{}, ctx.Err()
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	report := Report{Season: season}
	for r := range results {
		if r.skip != nil {
			report.Skipped++
			report.Skips = append(report.Skips, *r.skip)
			continue
		}
		report.Evaluated++
		if r.retired {
			report.Retired++
		}
		if r.ratingChanged {
			report.RatingsChanged++
		}
	}
	report.Duration = time.Since(start)

	metrics.ObserveSweepDuration(report.Duration.Seconds())
	p.logger.Info(ctx, "season rollover complete",
		logger.Int("season", season),
		logger.Int("evaluated", report.Evaluated),
		logger.Int("retired", report.Retired),
		logger.Int("skipped", report.Skipped),
	)
	return report, nil
}

// advance processes a single player: tracker first, then the atomic store
// write. Any error skips the player without partial mutation.
func (p *Pool) advance(ctx context.Context, season int, player model.Player) result {
	var newAttrs *model.SkillAttributes
	if p.progression != nil {
		newAttrs = p.progression(player)
	}

	outcome, err := p.tracker.AdvanceSeason(ctx, player, newAttrs, season)
	if err != nil {
		p.logger.Warn(ctx, "player skipped",
			logger.String("playerID", player.ID.String()),
			logger.String("name", player.Name),
			logger.Error(err),
		)
		metrics.RecordPlayerSkipped(skipReason(err))
		return result{skip: &Skip{PlayerID: player.ID, Name: player.Name, Reason: err.Error()}}
	}

	if err := p.store.ApplySeason(ctx, outcome.Player, outcome.Decision, outcome.Events); err != nil {
		p.logger.Error(ctx, "season write failed",
			logger.String("playerID", player.ID.String()),
			logger.Error(err),
		)
		metrics.RecordPlayerSkipped("store_error")
		return result{skip: &Skip{PlayerID: player.ID, Name: player.Name, Reason: err.Error()}}
	}

	metrics.RecordPlayerEvaluated()
	if outcome.Decision.Retired {
		metrics.RecordRetirement()
	}
	if outcome.RatingChanged {
		metrics.RecordRatingRecompute()
	}
	return result{retired: outcome.Decision.Retired, ratingChanged: outcome.RatingChanged}
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, career.ErrNotActive):
		return "not_active"
	case errors.Is(err, profile.ErrUnknownPosition):
		return "unknown_position"
	case errors.Is(err, rating.ErrOutOfRange):
		return "out_of_range_attribute"
	default:
		return "other"
	}
}
