package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gridironsim/gridiron/internal/domain/model"
	"github.com/gridironsim/gridiron/pkg/metrics"
)

// defaultShardCount spreads player records across locks so the season
// sweep's workers do not serialize on one mutex.
const defaultShardCount = 8

// MemStore is the in-memory Store implementation, sharded by player id.
type MemStore struct {
	shards []*shard
}

type shard struct {
	mu        sync.RWMutex
	players   map[uuid.UUID]model.Player
	decisions map[uuid.UUID][]model.RetirementDecision
	history   map[uuid.UUID][]model.HistoryEvent
}

// NewMemStore creates an in-memory store with configuration options.
func NewMemStore(opts ...MemOption) *MemStore {
	cfg := memConfig{shardCount: defaultShardCount}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &MemStore{shards: make([]*shard, cfg.shardCount)}
	for i := range s.shards {
		s.shards[i] = &shard{
			players:   make(map[uuid.UUID]model.Player),
			decisions: make(map[uuid.UUID][]model.RetirementDecision),
			history:   make(map[uuid.UUID][]model.HistoryEvent),
		}
	}
	metrics.UpdateStoreShardCount(cfg.shardCount)
	return s
}

func (s *MemStore) shardFor(id uuid.UUID) *shard {
	// First byte is enough spread for uuid v4 ids.
	return s.shards[int(id[0])%len(s.shards)]
}

// PutPlayer inserts or replaces a player record.
func (s *MemStore) PutPlayer(_ context.Context, p model.Player) error {
	sh := s.shardFor(p.ID)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.players[p.ID] = p
	return nil
}

// Player returns a player by id.
func (s *MemStore) Player(_ context.Context, id uuid.UUID) (model.Player, error) {
	sh := s.shardFor(id)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	p, ok := sh.players[id]
	if !ok {
		return model.Player{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p, nil
}

// ActivePlayers returns every active player across all shards.
func (s *MemStore) ActivePlayers(_ context.Context) ([]model.Player, error) {
	var out []model.Player
	for _, sh := range s.shards {
		sh.mu.RLock()
		for _, p := range sh.players {
			if p.Status == model.StatusActive {
				out = append(out, p)
			}
		}
		sh.mu.RUnlock()
	}
	// Deterministic order for reproducible sweeps and tests.
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

// ApplySeason persists one player's season outcome under a single lock.
func (s *MemStore) ApplySeason(_ context.Context, p model.Player, decision model.RetirementDecision, events []model.HistoryEvent) error {
	start := time.Now()
	defer func() {
		metrics.RecordStoreUpdateLatency(float64(time.Since(start).Milliseconds()))
	}()

	sh := s.shardFor(p.ID)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, ok := sh.players[p.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, p.ID)
	}
	sh.players[p.ID] = p
	sh.decisions[p.ID] = append(sh.decisions[p.ID], decision)
	sh.history[p.ID] = append(sh.history[p.ID], events...)
	return nil
}

// TopN returns the top-N active players by overall rating.
func (s *MemStore) TopN(ctx context.Context, n int) ([]model.Entry, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(float64(time.Since(start).Milliseconds()))
	}()

	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}
	players, err := s.ActivePlayers(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Overall != players[j].Overall {
			return players[i].Overall > players[j].Overall
		}
		return players[i].ID.String() < players[j].ID.String() // tie-breaker by id asc
	})
	if n > len(players) {
		n = len(players)
	}
	entries := make([]model.Entry, n)
	for i := 0; i < n; i++ {
		entries[i] = model.Entry{
			Rank:     i + 1,
			PlayerID: players[i].ID.String(),
			Name:     players[i].Name,
			Position: players[i].Position,
			Overall:  players[i].Overall,
		}
	}
	return entries, nil
}

// Decisions returns a player's retirement audit trail.
func (s *MemStore) Decisions(_ context.Context, playerID uuid.UUID) ([]model.RetirementDecision, error) {
	sh := s.shardFor(playerID)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	if _, ok := sh.players[playerID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, playerID)
	}
	out := make([]model.RetirementDecision, len(sh.decisions[playerID]))
	copy(out, sh.decisions[playerID])
	return out, nil
}

// History returns a player's career history events.
func (s *MemStore) History(_ context.Context, playerID uuid.UUID) ([]model.HistoryEvent, error) {
	sh := s.shardFor(playerID)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	if _, ok := sh.players[playerID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, playerID)
	}
	out := make([]model.HistoryEvent, len(sh.history[playerID]))
	copy(out, sh.history[playerID])
	return out, nil
}

// Count returns the total number of tracked players.
func (s *MemStore) Count(_ context.Context) int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		total += len(sh.players)
		sh.mu.RUnlock()
	}
	return total
}
