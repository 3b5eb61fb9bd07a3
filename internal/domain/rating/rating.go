// Package rating computes a player's overall rating from skill attributes
// and a position weight vector.
//
// The computation is pure: no storage access, no randomness. Callers cache
// the result on the player record and recompute whenever attributes or
// position change.
package rating

import (
	"fmt"

	"github.com/gridironsim/gridiron/internal/domain/model"
	"github.com/gridironsim/gridiron/internal/domain/profile"
)

// Attribute bounds. Active players may carry lower skill values than draft
// prospects; both share the same ceiling.
const (
	PlayerFloor   = 40
	ProspectFloor = 50
	Ceiling       = 99

	// Forty-yard sprint times outside this window are measurement errors.
	FortyMin = 4.0
	FortyMax = 6.5

	// neutralSpeedScore substitutes for players who were never timed, so a
	// missing measurement does not zero out the speed contribution.
	neutralSpeedScore = 55

	maxOverall = 99
)

// EntityKind selects the attribute floor for validation.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindProspect
)

func (k EntityKind) floor() int {
	if k == KindProspect {
		return ProspectFloor
	}
	return PlayerFloor
}

// ValidateAttributes rejects out-of-range attribute values at the boundary.
// Values are never silently clamped; a violation names the offending field.
func ValidateAttributes(a model.SkillAttributes, kind EntityKind) error {
	floor := kind.floor()
	for _, attr := range []struct {
		name  string
		value int
	}{
		{"run", a.Run},
		{"pass", a.Pass},
		{"receive", a.Receive},
		{"block", a.Block},
		{"kick", a.Kick},
	} {
		if attr.value < floor || attr.value > Ceiling {
			return fmt.Errorf("%w: %s=%d not in [%d,%d]", ErrOutOfRange, attr.name, attr.value, floor, Ceiling)
		}
	}
	if a.FortyTime != 0 && (a.FortyTime < FortyMin || a.FortyTime > FortyMax) {
		return fmt.Errorf("%w: forty_time=%.2f not in [%.1f,%.1f]", ErrOutOfRange, a.FortyTime, FortyMin, FortyMax)
	}
	return nil
}

// speedScore converts a forty-yard time into a 0-100 score. Faster is
// higher: 100 - time*10, floored at zero. A zero time means unmeasured and
// yields the neutral default.
func speedScore(fortyTime float64) float64 {
	if fortyTime == 0 {
		return neutralSpeedScore
	}
	penalty := fortyTime * 10
	if penalty > 100 {
		penalty = 100
	}
	return 100 - penalty
}

// ComputeOverall derives the overall rating from attributes and weights.
//
// The weighted sum is truncated toward zero, not rounded; the tie-break
// rule is outcome-relevant (draft order, depth charts) so it is fixed here
// in one place and covered by tests. The result is re-clamped into [0,99]
// as defensive bound enforcement.
func ComputeOverall(a model.SkillAttributes, w profile.Weights) int {
	sum := float64(a.Run)*w.Run +
		float64(a.Pass)*w.Pass +
		float64(a.Receive)*w.Receive +
		float64(a.Block)*w.Block +
		float64(a.Kick)*w.Kick +
		speedScore(a.FortyTime)*w.Speed

	overall := int(sum)
	if overall < 0 {
		overall = 0
	}
	if overall > maxOverall {
		overall = maxOverall
	}
	return overall
}

// Calculator binds the pure computation to a profile registry.
type Calculator struct {
	registry *profile.Registry
}

// NewCalculator creates a calculator backed by the given registry.
func NewCalculator(registry *profile.Registry) *Calculator {
	return &Calculator{registry: registry}
}

// Overall validates the attributes and computes the rating for a position.
// Fails with profile.ErrUnknownPosition for unregistered codes and
// ErrOutOfRange for attribute violations; no value is produced on error.
func (c *Calculator) Overall(pos model.Position, a model.SkillAttributes, kind EntityKind) (int, error) {
	if err := ValidateAttributes(a, kind); err != nil {
		return 0, err
	}
	w, err := c.registry.Weights(pos)
	if err != nil {
		return 0, err
	}
	return ComputeOverall(a, w), nil
}
