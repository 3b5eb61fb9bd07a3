// Package repository defines the player store interface and errors.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/gridironsim/gridiron/internal/domain/model"
)

// Store provides read/write access to league player state.
//
// ApplySeason is the one compound write: a player's refreshed record, the
// season's retirement decision, and any history events land together or
// not at all, so a player can never end a season with an updated rating
// but no retirement evaluation.
type Store interface {
	// PutPlayer inserts or replaces a player record.
	PutPlayer(ctx context.Context, p model.Player) error

	// Player returns a player by id. Returns ErrNotFound if unknown.
	Player(ctx context.Context, id uuid.UUID) (model.Player, error)

	// ActivePlayers returns every player whose status is active.
	ActivePlayers(ctx context.Context) ([]model.Player, error)

	// ApplySeason atomically persists one player's season outcome.
	ApplySeason(ctx context.Context, p model.Player, decision model.RetirementDecision, events []model.HistoryEvent) error

	// TopN returns the top-N active players ordered by overall desc.
	TopN(ctx context.Context, n int) ([]model.Entry, error)

	// Decisions returns a player's retirement audit trail, oldest first.
	Decisions(ctx context.Context, playerID uuid.UUID) ([]model.RetirementDecision, error)

	// History returns a player's career history events, oldest first.
	History(ctx context.Context, playerID uuid.UUID) ([]model.HistoryEvent, error)

	// Count returns the number of players tracked, active and retired.
	Count(ctx context.Context) int
}
