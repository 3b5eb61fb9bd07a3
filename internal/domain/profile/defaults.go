package profile

import (
	"github.com/gridironsim/gridiron/internal/domain/model"
)

// DefaultProfiles returns the stock league position set. A deployment can
// replace or extend it with a YAML profile file (see LoadFile).
//
// Weight vectors sum to 1.0 per position. Curves start at the position's
// base retirement age and rise monotonically; the retirement model clamps
// to the last entry for older ages.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Position: model.Quarterback,
			Weights:  Weights{Run: 0.20, Pass: 0.65, Receive: 0.05, Speed: 0.10},
			Retirement: RetirementParams{
				MinCareerYears: 4, ForceRetireAge: 45, BaseRetireAge: 35,
				BaseProbabilityPct: 6, SkillWeight: 0.6,
			},
			AgeCurve: []CurvePoint{
				{Age: 35, Multiplier: 1.0}, {Age: 37, Multiplier: 1.6}, {Age: 39, Multiplier: 2.8},
				{Age: 41, Multiplier: 5.0}, {Age: 43, Multiplier: 9.0},
			},
		},
		{
			Position: model.RunningBack,
			Weights:  Weights{Run: 0.55, Receive: 0.15, Block: 0.10, Speed: 0.20},
			Retirement: RetirementParams{
				MinCareerYears: 3, ForceRetireAge: 36, BaseRetireAge: 28,
				BaseProbabilityPct: 10, SkillWeight: 0.8,
			},
			AgeCurve: []CurvePoint{
				{Age: 28, Multiplier: 1.0}, {Age: 29, Multiplier: 1.5}, {Age: 30, Multiplier: 2.5},
				{Age: 31, Multiplier: 4.0}, {Age: 32, Multiplier: 6.0}, {Age: 33, Multiplier: 8.5},
			},
		},
		{
			Position: model.WideReceiver,
			Weights:  Weights{Run: 0.10, Receive: 0.60, Block: 0.05, Speed: 0.25},
			Retirement: RetirementParams{
				MinCareerYears: 3, ForceRetireAge: 38, BaseRetireAge: 30,
				BaseProbabilityPct: 8, SkillWeight: 0.7,
			},
			AgeCurve: []CurvePoint{
				{Age: 30, Multiplier: 1.0}, {Age: 31, Multiplier: 1.4}, {Age: 32, Multiplier: 2.2},
				{Age: 33, Multiplier: 3.5}, {Age: 35, Multiplier: 6.0},
			},
		},
		{
			Position: model.TightEnd,
			Weights:  Weights{Run: 0.10, Receive: 0.45, Block: 0.35, Speed: 0.10},
			Retirement: RetirementParams{
				MinCareerYears: 3, ForceRetireAge: 38, BaseRetireAge: 30,
				BaseProbabilityPct: 8, SkillWeight: 0.6,
			},
			AgeCurve: []CurvePoint{
				{Age: 30, Multiplier: 1.0}, {Age: 32, Multiplier: 1.8}, {Age: 34, Multiplier: 3.2},
				{Age: 36, Multiplier: 5.5},
			},
		},
		{
			Position: model.Center,
			Weights:  Weights{Run: 0.05, Receive: 0.10, Block: 0.80, Speed: 0.05},
			Retirement: RetirementParams{
				MinCareerYears: 4, ForceRetireAge: 40, BaseRetireAge: 32,
				BaseProbabilityPct: 7, SkillWeight: 0.5,
			},
			AgeCurve: []CurvePoint{
				{Age: 32, Multiplier: 1.0}, {Age: 34, Multiplier: 1.7}, {Age: 36, Multiplier: 3.0},
				{Age: 38, Multiplier: 5.0},
			},
		},
		{
			Position: model.OffensiveLine,
			Weights:  Weights{Run: 0.05, Block: 0.85, Speed: 0.10},
			Retirement: RetirementParams{
				MinCareerYears: 4, ForceRetireAge: 40, BaseRetireAge: 32,
				BaseProbabilityPct: 7, SkillWeight: 0.5,
			},
			AgeCurve: []CurvePoint{
				{Age: 32, Multiplier: 1.0}, {Age: 34, Multiplier: 1.7}, {Age: 36, Multiplier: 3.0},
				{Age: 38, Multiplier: 5.0},
			},
		},
		{
			Position: model.DefensiveLine,
			Weights:  Weights{Run: 0.10, Block: 0.70, Speed: 0.20},
			Retirement: RetirementParams{
				MinCareerYears: 3, ForceRetireAge: 39, BaseRetireAge: 31,
				BaseProbabilityPct: 8, SkillWeight: 0.6,
			},
			AgeCurve: []CurvePoint{
				{Age: 31, Multiplier: 1.0}, {Age: 33, Multiplier: 1.8}, {Age: 35, Multiplier: 3.4},
				{Age: 37, Multiplier: 6.0},
			},
		},
		{
			Position: model.Linebacker,
			Weights:  Weights{Run: 0.20, Receive: 0.10, Block: 0.50, Speed: 0.20},
			Retirement: RetirementParams{
				MinCareerYears: 3, ForceRetireAge: 37, BaseRetireAge: 30,
				BaseProbabilityPct: 9, SkillWeight: 0.7,
			},
			AgeCurve: []CurvePoint{
				{Age: 30, Multiplier: 1.0}, {Age: 31, Multiplier: 1.5}, {Age: 33, Multiplier: 2.8},
				{Age: 35, Multiplier: 5.0},
			},
		},
		{
			Position: model.DefensiveBack,
			Weights:  Weights{Run: 0.10, Receive: 0.30, Block: 0.20, Speed: 0.40},
			Retirement: RetirementParams{
				MinCareerYears: 3, ForceRetireAge: 37, BaseRetireAge: 30,
				BaseProbabilityPct: 9, SkillWeight: 0.7,
			},
			AgeCurve: []CurvePoint{
				{Age: 30, Multiplier: 1.0}, {Age: 31, Multiplier: 1.5}, {Age: 33, Multiplier: 2.8},
				{Age: 35, Multiplier: 5.0},
			},
		},
		{
			Position: model.Kicker,
			Weights:  Weights{Run: 0.10, Pass: 0.10, Kick: 0.80},
			Retirement: RetirementParams{
				MinCareerYears: 4, ForceRetireAge: 45, BaseRetireAge: 38,
				BaseProbabilityPct: 5, SkillWeight: 0.4,
			},
			AgeCurve: []CurvePoint{
				{Age: 38, Multiplier: 1.0}, {Age: 40, Multiplier: 1.6}, {Age: 42, Multiplier: 2.6},
				{Age: 44, Multiplier: 4.5},
			},
		},
		{
			Position: model.Punter,
			Weights:  Weights{Run: 0.10, Pass: 0.15, Kick: 0.75},
			Retirement: RetirementParams{
				MinCareerYears: 4, ForceRetireAge: 45, BaseRetireAge: 38,
				BaseProbabilityPct: 5, SkillWeight: 0.4,
			},
			AgeCurve: []CurvePoint{
				{Age: 38, Multiplier: 1.0}, {Age: 40, Multiplier: 1.6}, {Age: 42, Multiplier: 2.6},
				{Age: 44, Multiplier: 4.5},
			},
		},
	}
}

// DefaultRegistry builds a registry from the stock profile set.
func DefaultRegistry() (*Registry, error) {
	return NewRegistry(DefaultProfiles()...)
}
