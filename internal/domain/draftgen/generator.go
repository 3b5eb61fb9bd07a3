// Package draftgen produces draft classes: per-position prospects with
// normally distributed attributes, a projected overall, and a scouting
// grade.
package draftgen

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"
	"github.com/gridironsim/gridiron/internal/domain/career"
	"github.com/gridironsim/gridiron/internal/domain/model"
	"github.com/gridironsim/gridiron/internal/domain/profile"
	"github.com/gridironsim/gridiron/internal/domain/rating"
)

// breakoutChance is the probability a generated skill gets a +10 boost,
// modelling the occasional outlier prospect.
const breakoutChance = 0.04

// talent describes the attribute distribution for one position's
// prospects: mean and standard deviation per skill, plus the forty-time
// distribution in seconds.
type talent struct {
	run, pass, receive, block, kick stat
	forty                           stat
	classCount                      int
}

type stat struct {
	mean, stddev float64
}

// defaultTalent approximates league-wide positional averages.
func defaultTalent() map[model.Position]talent {
	skill := func(mean float64) stat { return stat{mean: mean, stddev: 8} }
	low := skill(55)
	return map[model.Position]talent{
		model.Quarterback:   {run: skill(62), pass: skill(78), receive: low, block: low, kick: low, forty: stat{4.85, 0.12}, classCount: 14},
		model.RunningBack:   {run: skill(78), pass: low, receive: skill(65), block: skill(60), kick: low, forty: stat{4.55, 0.10}, classCount: 22},
		model.WideReceiver:  {run: skill(62), pass: low, receive: skill(78), block: skill(56), kick: low, forty: stat{4.48, 0.08}, classCount: 28},
		model.TightEnd:      {run: skill(60), pass: low, receive: skill(70), block: skill(68), kick: low, forty: stat{4.72, 0.10}, classCount: 14},
		model.Center:        {run: low, pass: low, receive: low, block: skill(78), kick: low, forty: stat{5.25, 0.15}, classCount: 10},
		model.OffensiveLine: {run: low, pass: low, receive: low, block: skill(78), kick: low, forty: stat{5.25, 0.15}, classCount: 32},
		model.DefensiveLine: {run: skill(60), pass: low, receive: low, block: skill(75), kick: low, forty: stat{4.95, 0.15}, classCount: 28},
		model.Linebacker:    {run: skill(66), pass: low, receive: skill(58), block: skill(70), kick: low, forty: stat{4.70, 0.10}, classCount: 24},
		model.DefensiveBack: {run: skill(62), pass: low, receive: skill(66), block: skill(58), kick: low, forty: stat{4.45, 0.08}, classCount: 26},
		model.Kicker:        {run: low, pass: skill(58), receive: low, block: low, kick: skill(78), forty: stat{5.00, 0.20}, classCount: 4},
		model.Punter:        {run: low, pass: skill(58), receive: low, block: low, kick: skill(75), forty: stat{5.00, 0.20}, classCount: 4},
	}
}

// Generator builds draft classes. Deterministic for a fixed seed.
type Generator struct {
	registry *profile.Registry
	tracker  *career.Tracker
	talent   map[model.Position]talent
	seed     int64
}

// New creates a generator over the given registry and tracker.
func New(registry *profile.Registry, tracker *career.Tracker, opts ...Option) *Generator {
	g := &Generator{
		registry: registry,
		tracker:  tracker,
		talent:   defaultTalent(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Class generates one draft class covering every registered position that
// has a talent distribution. Prospects come back sorted by projected
// overall descending, the natural draft-board order.
func (g *Generator) Class(ctx context.Context, season int) ([]model.Prospect, error) {
	rng := rand.New(rand.NewSource(g.seed + int64(season))) //nolint:gosec // deterministic class generation

	var prospects []model.Prospect
	for _, pos := range g.registry.Positions() {
		t, ok := g.talent[pos]
		if !ok {
			continue
		}
		for i := 0; i < t.classCount; i++ {
			attrs := g.generateAttributes(rng, t)
			overall, grade, err := g.tracker.ProjectProspect(ctx, pos, attrs)
			if err != nil {
				return nil, fmt.Errorf("generate %s prospect: %w", pos, err)
			}
			prospects = append(prospects, model.Prospect{
				ID:               uuid.New(),
				Name:             pickName(rng),
				Position:         pos,
				Attributes:       attrs,
				ProjectedOverall: overall,
				Grade:            grade,
			})
		}
	}

	sort.SliceStable(prospects, func(i, j int) bool {
		return prospects[i].ProjectedOverall > prospects[j].ProjectedOverall
	})
	return prospects, nil
}

// generateAttributes draws one prospect's skills. Draws are clamped into
// the prospect bound so the result always passes boundary validation.
func (g *Generator) generateAttributes(rng *rand.Rand, t talent) model.SkillAttributes {
	return model.SkillAttributes{
		Run:       drawSkill(rng, t.run),
		Pass:      drawSkill(rng, t.pass),
		Receive:   drawSkill(rng, t.receive),
		Block:     drawSkill(rng, t.block),
		Kick:      drawSkill(rng, t.kick),
		FortyTime: drawForty(rng, t.forty),
	}
}

func drawSkill(rng *rand.Rand, s stat) int {
	v := int(rng.NormFloat64()*s.stddev + s.mean)
	if rng.Float64() < breakoutChance {
		v += 10
	}
	if v < rating.ProspectFloor {
		v = rating.ProspectFloor
	}
	if v > rating.Ceiling {
		v = rating.Ceiling
	}
	return v
}

func drawForty(rng *rand.Rand, s stat) float64 {
	v := rng.NormFloat64()*s.stddev + s.mean
	if v < rating.FortyMin {
		v = rating.FortyMin
	}
	if v > rating.FortyMax {
		v = rating.FortyMax
	}
	// Two decimal places, matching how combine times are recorded.
	return float64(int(v*100)) / 100
}
