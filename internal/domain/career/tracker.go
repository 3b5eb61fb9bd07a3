// Package career orchestrates season-end updates: rating recompute on
// skill change, the retirement decision, and the resulting state
// transition plus history events.
package career

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gridironsim/gridiron/internal/domain/model"
	"github.com/gridironsim/gridiron/internal/domain/rating"
	"github.com/gridironsim/gridiron/internal/domain/retire"
)

// Outcome is the complete result of one player's season advance. Nothing
// is persisted here; the caller applies the whole outcome or none of it.
type Outcome struct {
	Player        model.Player
	Decision      model.RetirementDecision
	RatingChanged bool
	Events        []model.HistoryEvent
}

// Tracker wires the rating calculator and retirement model together.
type Tracker struct {
	calc  *rating.Calculator
	model *retire.Model
	now   func() time.Time
}

// NewTracker creates a tracker over the given calculator and model.
func NewTracker(calc *rating.Calculator, retireModel *retire.Model) *Tracker {
	return &Tracker{calc: calc, model: retireModel, now: time.Now}
}

// AdvanceSeason applies one season boundary to an active player.
//
// The player is aged, optional new attributes (supplied by an external
// progression collaborator) trigger a rating recompute, and the retirement
// model is consulted. A profile lookup failure aborts the whole advance
// with no partial result: the rating refresh and the retirement decision
// either both happen or neither does.
func (t *Tracker) AdvanceSeason(_ context.Context, p model.Player, newAttrs *model.SkillAttributes, season int) (Outcome, error) {
	if p.Status != model.StatusActive {
		return Outcome{}, fmt.Errorf("%w: %s", ErrNotActive, p.ID)
	}

	updated := p
	updated.Age++
	updated.SeasonsPlayed++

	prevOverall := p.Overall
	ratingChanged := false
	if newAttrs != nil {
		overall, err := t.calc.Overall(p.Position, *newAttrs, rating.KindPlayer)
		if err != nil {
			return Outcome{}, err
		}
		updated.Attributes = *newAttrs
		updated.Overall = overall
		ratingChanged = overall != prevOverall
	}

	decision, err := t.model.Decide(p.ID, retire.Input{
		Position:      updated.Position,
		Age:           updated.Age,
		SeasonsPlayed: updated.SeasonsPlayed,
		OverallDelta:  updated.Overall - prevOverall,
	})
	if err != nil {
		return Outcome{}, err
	}

	var events []model.HistoryEvent
	if ratingChanged {
		events = append(events, t.event(p.ID, season, model.EventSkillUpdated,
			fmt.Sprintf("overall %d -> %d", prevOverall, updated.Overall)))
	}
	if decision.Retired {
		updated.Status = model.StatusRetired
		events = append(events, t.event(p.ID, season, model.EventRetired,
			fmt.Sprintf("age %d, seasons %d", updated.Age, updated.SeasonsPlayed)))
	}

	return Outcome{
		Player: updated,
		Decision: model.RetirementDecision{
			PlayerID:    p.ID,
			Season:      season,
			Probability: decision.Probability,
			Roll:        decision.Roll,
			Retired:     decision.Retired,
		},
		RatingChanged: ratingChanged,
		Events:        events,
	}, nil
}

// ProjectProspect computes the projected overall and scouting grade for a
// draft-class entrant. Prospects have no career yet, so the retirement
// model is never consulted.
func (t *Tracker) ProjectProspect(_ context.Context, pos model.Position, attrs model.SkillAttributes) (int, string, error) {
	overall, err := t.calc.Overall(pos, attrs, rating.KindProspect)
	if err != nil {
		return 0, "", err
	}
	return overall, Grade(overall), nil
}

// Grade maps a projected overall onto the scouting scale.
func Grade(overall int) string {
	switch {
	case overall >= 92:
		return "A+"
	case overall >= 85:
		return "A"
	case overall >= 78:
		return "B"
	case overall >= 70:
		return "C"
	case overall >= 60:
		return "D"
	default:
		return "F"
	}
}

func (t *Tracker) event(playerID uuid.UUID, season int, kind model.EventType, detail string) model.HistoryEvent {
	return model.HistoryEvent{
		ID:       uuid.New(),
		PlayerID: playerID,
		Season:   season,
		Type:     kind,
		Detail:   detail,
		TS:       t.now(),
	}
}
