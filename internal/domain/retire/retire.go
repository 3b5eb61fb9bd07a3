// Package retire decides, once per season per active player, whether a
// career ends.
//
// The model has three tiers. Two are deterministic guarantees: players
// under the position's minimum career length never retire, and players at
// or past the force-retire age always do. Between them sits the stochastic
// tier, where the base probability is scaled by the position's age curve
// and by season-over-season rating decline, then compared against a single
// uniform draw.
package retire

import (
	"hash/fnv"
	"math/rand"

	"github.com/google/uuid"
	"github.com/gridironsim/gridiron/internal/domain/model"
	"github.com/gridironsim/gridiron/internal/domain/profile"
)

// declineSaturation is the rating drop, in points, at which the skill
// decline factor reaches its cap of 1.
const declineSaturation = 10.0

// noRoll marks decisions resolved without a random draw.
const noRoll = -1

// Input carries the per-player facts the decision needs.
type Input struct {
	Position      model.Position
	Age           int
	SeasonsPlayed int
	// OverallDelta is the overall-rating change since last season. Negative
	// values increase retirement probability; flat or improving ratings do
	// not reduce it below the base.
	OverallDelta int
}

// Decision is the audited outcome of one evaluation.
type Decision struct {
	Probability float64 // percentage in [0,100]
	Roll        float64 // uniform draw in [0,100), noRoll when tiers 1-2 decided
	Retired     bool
}

// Model evaluates retirement decisions against a profile registry.
//
// Each player gets an independent random stream derived from the model
// seed and the player ID, so sweep scheduling order cannot perturb
// outcomes for a fixed seed.
type Model struct {
	registry *profile.Registry
	seed     int64
}

// New creates a retirement model. The default seed is zero; simulations
// that need distinct seasons should set one per season with WithSeed.
func New(registry *profile.Registry, opts ...Option) *Model {
	m := &Model{registry: registry}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Seed returns the model's base seed.
func (m *Model) Seed() int64 {
	return m.seed
}

// Decide evaluates one player for the current season.
func (m *Model) Decide(playerID uuid.UUID, in Input) (Decision, error) {
	params, err := m.registry.RetirementParams(in.Position)
	if err != nil {
		return Decision{}, err
	}

	// Tier 1: hard floor. Rookies are never forced out prematurely.
	if in.SeasonsPlayed < params.MinCareerYears {
		return Decision{Probability: 0, Roll: noRoll, Retired: false}, nil
	}

	// Tier 2: hard ceiling. No player ages indefinitely.
	if in.Age >= params.ForceRetireAge {
		return Decision{Probability: 100, Roll: noRoll, Retired: true}, nil
	}

	// Tier 3: stochastic. Base probability scaled by age and skill decline.
	mult, err := m.registry.AgeMultiplier(in.Position, in.Age)
	if err != nil {
		return Decision{}, err
	}
	decline := declineFactor(in.OverallDelta)
	probability := params.BaseProbabilityPct * mult * (1 + decline*params.SkillWeight)
	if probability > 100 {
		probability = 100
	}
	if probability < 0 {
		probability = 0
	}

	roll := m.streamFor(playerID).Float64() * 100
	return Decision{
		Probability: probability,
		Roll:        roll,
		Retired:     roll < probability,
	}, nil
}

// declineFactor normalizes a rating drop into [0,1]. Flat or improving
// ratings contribute zero.
func declineFactor(overallDelta int) float64 {
	if overallDelta >= 0 {
		return 0
	}
	f := float64(-overallDelta) / declineSaturation
	if f > 1 {
		f = 1
	}
	return f
}

// streamFor derives the player's private random stream for this seed.
func (m *Model) streamFor(playerID uuid.UUID) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write(playerID[:])
	return rand.New(rand.NewSource(m.seed ^ int64(h.Sum64()))) //nolint:gosec // deterministic streams for reproducible simulation
}
