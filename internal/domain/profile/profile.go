// Package profile holds the per-position configuration the rating and
// retirement computations read: the six rating weights, the retirement
// parameters, and the sparse age-multiplier curve.
//
// Profiles are immutable once registered. The Registry is loaded once at
// startup and is safe for concurrent reads.
package profile

import (
	"fmt"
	"sort"

	"github.com/gridironsim/gridiron/internal/domain/model"
)

// weightSumTolerance allows for rounding in hand-maintained weight tables.
const weightSumTolerance = 1.01

// Weights is the per-position rating weight vector. Each weight is
// non-negative and the sum stays within weightSumTolerance.
type Weights struct {
	Run     float64 `koanf:"run"`
	Pass    float64 `koanf:"pass"`
	Receive float64 `koanf:"receive"`
	Block   float64 `koanf:"block"`
	Kick    float64 `koanf:"kick"`
	Speed   float64 `koanf:"speed"`
}

// Sum returns the total of all six weights.
func (w Weights) Sum() float64 {
	return w.Run + w.Pass + w.Receive + w.Block + w.Kick + w.Speed
}

// RetirementParams configures the three-tier retirement model for one
// position.
type RetirementParams struct {
	// MinCareerYears is the floor before retirement is ever considered.
	MinCareerYears int `koanf:"min_career_years"`
	// ForceRetireAge is the hard ceiling; at or past it the player retires
	// unconditionally.
	ForceRetireAge int `koanf:"force_retire_age"`
	// BaseRetireAge is the age at which the base probability first applies
	// and the first age-curve entry sits.
	BaseRetireAge int `koanf:"base_retire_age"`
	// BaseProbabilityPct is the base retirement probability in percent.
	BaseProbabilityPct float64 `koanf:"base_probability_pct"`
	// SkillWeight amplifies the skill-decline factor, in [0,1].
	SkillWeight float64 `koanf:"skill_weight"`
}

// CurvePoint maps an age to its retirement-probability multiplier.
type CurvePoint struct {
	Age        int     `koanf:"age"`
	Multiplier float64 `koanf:"multiplier"`
}

// Profile bundles everything the engine knows about one position.
type Profile struct {
	Position   model.Position   `koanf:"position"`
	Weights    Weights          `koanf:"weights"`
	Retirement RetirementParams `koanf:"retirement"`
	// AgeCurve is sparse and sorted by age ascending. Ages below the first
	// entry imply multiplier 1.0; ages above the last inherit the last value.
	AgeCurve []CurvePoint `koanf:"age_curve"`
}

// validate checks a single profile's invariants.
func (p Profile) validate() error {
	if p.Position == "" {
		return fmt.Errorf("%w: empty position code", ErrInvalidParams)
	}
	for _, w := range []struct {
		name  string
		value float64
	}{
		{"run", p.Weights.Run},
		{"pass", p.Weights.Pass},
		{"receive", p.Weights.Receive},
		{"block", p.Weights.Block},
		{"kick", p.Weights.Kick},
		{"speed", p.Weights.Speed},
	} {
		if w.value < 0 {
			return fmt.Errorf("%w: %s weight %.3f is negative for %s", ErrInvalidWeight, w.name, w.value, p.Position)
		}
	}
	sum := p.Weights.Sum()
	if sum == 0 {
		return fmt.Errorf("%w: position %s", ErrDegenerateProfile, p.Position)
	}
	if sum > weightSumTolerance {
		return fmt.Errorf("%w: position %s sums to %.3f", ErrWeightSum, p.Position, sum)
	}
	r := p.Retirement
	if r.MinCareerYears < 0 || r.ForceRetireAge <= 0 || r.BaseRetireAge <= 0 {
		return fmt.Errorf("%w: position %s", ErrInvalidParams, p.Position)
	}
	if r.ForceRetireAge < r.BaseRetireAge {
		return fmt.Errorf("%w: position %s force_retire_age %d below base_retire_age %d",
			ErrInvalidParams, p.Position, r.ForceRetireAge, r.BaseRetireAge)
	}
	if r.BaseProbabilityPct < 0 || r.BaseProbabilityPct > 100 {
		return fmt.Errorf("%w: position %s base_probability_pct %.2f", ErrInvalidParams, p.Position, r.BaseProbabilityPct)
	}
	if r.SkillWeight < 0 || r.SkillWeight > 1 {
		return fmt.Errorf("%w: position %s skill_weight %.2f", ErrInvalidParams, p.Position, r.SkillWeight)
	}
	prev := 0.0
	prevAge := 0
	for i, pt := range p.AgeCurve {
		if pt.Multiplier <= 0 {
			return fmt.Errorf("%w: position %s age %d multiplier %.2f", ErrInvalidParams, p.Position, pt.Age, pt.Multiplier)
		}
		if i > 0 && pt.Age <= prevAge {
			return fmt.Errorf("%w: position %s duplicate or unsorted age %d", ErrInvalidParams, p.Position, pt.Age)
		}
		if pt.Multiplier < prev {
			return fmt.Errorf("%w: position %s age %d drops from %.2f to %.2f",
				ErrCurveNotMonotonic, p.Position, pt.Age, prev, pt.Multiplier)
		}
		prev = pt.Multiplier
		prevAge = pt.Age
	}
	return nil
}

// Registry is the read-only lookup table keyed by position code.
type Registry struct {
	profiles map[model.Position]Profile
}

// NewRegistry validates every profile and builds the lookup table.
// Misconfiguration surfaces here, once per league, rather than inside a
// per-player computation.
func NewRegistry(profiles ...Profile) (*Registry, error) {
	r := &Registry{profiles: make(map[model.Position]Profile, len(profiles))}
	for _, p := range profiles {
		// Sort the curve even if the source file ordered it loosely, so the
		// monotonicity check and lookups see ages ascending.
		curve := make([]CurvePoint, len(p.AgeCurve))
		copy(curve, p.AgeCurve)
		sort.Slice(curve, func(i, j int) bool { return curve[i].Age < curve[j].Age })
		p.AgeCurve = curve

		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, exists := r.profiles[p.Position]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProfile, p.Position)
		}
		r.profiles[p.Position] = p
	}
	return r, nil
}

// Lookup returns the full profile for a position.
func (r *Registry) Lookup(pos model.Position) (Profile, error) {
	p, ok := r.profiles[pos]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownPosition, pos)
	}
	return p, nil
}

// Weights returns the rating weight vector for a position.
func (r *Registry) Weights(pos model.Position) (Weights, error) {
	p, err := r.Lookup(pos)
	if err != nil {
		return Weights{}, err
	}
	return p.Weights, nil
}

// RetirementParams returns the retirement parameters for a position.
func (r *Registry) RetirementParams(pos model.Position) (RetirementParams, error) {
	p, err := r.Lookup(pos)
	if err != nil {
		return RetirementParams{}, err
	}
	return p.Retirement, nil
}

// AgeMultiplier returns the retirement multiplier for a position at an age.
//
// Clamp-to-edge policy: ages below the first tabulated entry return 1.0;
// ages beyond the last entry inherit the last (typically largest) value.
// ForceRetireAge may sit past the curve's ceiling, so the clamp keeps the
// probability high instead of collapsing back to 1.0.
func (r *Registry) AgeMultiplier(pos model.Position, age int) (float64, error) {
	p, err := r.Lookup(pos)
	if err != nil {
		return 0, err
	}
	if len(p.AgeCurve) == 0 || age < p.AgeCurve[0].Age {
		return 1.0, nil
	}
	mult := p.AgeCurve[0].Multiplier
	for _, pt := range p.AgeCurve {
		if pt.Age > age {
			break
		}
		mult = pt.Multiplier
	}
	return mult, nil
}

// Positions lists the registered position codes in sorted order.
func (r *Registry) Positions() []model.Position {
	out := make([]model.Position, 0, len(r.profiles))
	for pos := range r.profiles {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Count returns the number of registered profiles.
func (r *Registry) Count() int {
	return len(r.profiles)
}
