package service

import (
	"hash/fnv"
	"math/rand"

	"github.com/gridironsim/gridiron/internal/adapters/sweep"
	"github.com/gridironsim/gridiron/internal/domain/model"
	"github.com/gridironsim/gridiron/internal/domain/rating"
)

// Age bands for the default skill progression.
const (
	youngMax  = 26
	primeMax  = 30
	declineAt = 31
	rapidAt   = 35
)

// AgeProgression is the default skill progression collaborator: young
// players tend to improve, prime players hold, aging players decline with
// accelerating severity. Deterministic per (seed, season, player).
type AgeProgression struct {
	seed int64
}

// NewAgeProgression creates a progression with the given base seed.
func NewAgeProgression(seed int64) *AgeProgression {
	return &AgeProgression{seed: seed}
}

// ForSeason returns the sweep.Progression closure for one season.
func (a *AgeProgression) ForSeason(season int) sweep.Progression {
	return func(p model.Player) *model.SkillAttributes {
		rng := a.streamFor(season, p)
		attrs := p.Attributes
		changed := false
		for _, skill := range []*int{&attrs.Run, &attrs.Pass, &attrs.Receive, &attrs.Block, &attrs.Kick} {
			delta := skillDelta(rng, p.Age)
			if delta == 0 {
				continue
			}
			v := *skill + delta
			if v < rating.PlayerFloor {
				v = rating.PlayerFloor
			}
			if v > rating.Ceiling {
				v = rating.Ceiling
			}
			if v != *skill {
				*skill = v
				changed = true
			}
		}
		if !changed {
			return nil
		}
		return &attrs
	}
}

// skillDelta draws one skill's season change for a player age.
func skillDelta(rng *rand.Rand, age int) int {
	chance := rng.Float64()
	switch {
	case age <= youngMax:
		if chance < 0.40 {
			return 1 + rng.Intn(3)
		}
	case age <= primeMax:
		if chance < 0.20 {
			return 1 + rng.Intn(2)
		}
	case age < rapidAt:
		if chance < 0.25+0.05*float64(age-declineAt) {
			return -(1 + rng.Intn(2))
		}
	default:
		if chance < 0.60 {
			return -(2 + rng.Intn(3))
		}
	}
	return 0
}

func (a *AgeProgression) streamFor(season int, p model.Player) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write(p.ID[:])
	return rand.New(rand.NewSource(a.seed + int64(season)*7919 ^ int64(h.Sum64()))) //nolint:gosec // deterministic streams for reproducible simulation
}
