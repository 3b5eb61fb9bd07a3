// Package model contains domain models passed between layers.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Position identifies a roster position by its two-letter league code.
type Position string

// Position codes recognized by the default league configuration.
const (
	Quarterback   Position = "QB"
	RunningBack   Position = "RB"
	WideReceiver  Position = "WR"
	TightEnd      Position = "TE"
	Center        Position = "C"
	OffensiveLine Position = "OL"
	DefensiveLine Position = "DL"
	Linebacker    Position = "LB"
	DefensiveBack Position = "DB"
	Kicker        Position = "K"
	Punter        Position = "P"
)

// Status is a player's career state. Retired is terminal.
type Status string

const (
	StatusActive  Status = "active"
	StatusRetired Status = "retired"
)

// SkillAttributes holds the raw skill values an overall rating is derived
// from. The five integer skills are bounded (see the rating package);
// FortyTime is the measured 40-yard sprint in seconds, zero when the player
// was never timed.
type SkillAttributes struct {
	Run       int     `json:"run"`
	Pass      int     `json:"pass"`
	Receive   int     `json:"receive"`
	Block     int     `json:"block"`
	Kick      int     `json:"kick"`
	FortyTime float64 `json:"forty_time,omitempty"`
}

// Player is an active or retired league player.
//
// Overall is a cache of the rating computed from Attributes and Position;
// it is never edited directly and is refreshed whenever either changes.
type Player struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	JerseyNo      int             `json:"jersey_no"`
	Position      Position        `json:"position"`
	TeamID        int             `json:"team_id"`
	Age           int             `json:"age"`
	SeasonsPlayed int             `json:"seasons_played"`
	Attributes    SkillAttributes `json:"attributes"`
	Overall       int             `json:"overall"`
	Status        Status          `json:"status"`
}

// Prospect is a draft-class entrant. Prospects have no career yet, so they
// carry a projected overall and a scouting grade instead of a status.
type Prospect struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Position         Position        `json:"position"`
	Attributes       SkillAttributes `json:"attributes"`
	ProjectedOverall int             `json:"projected_overall"`
	Grade            string          `json:"grade"`
}

// RetirementDecision records the outcome of one season-end retirement
// evaluation. Written once per active player per season, never mutated.
type RetirementDecision struct {
	PlayerID    uuid.UUID `json:"player_id"`
	Season      int       `json:"season"`
	Probability float64   `json:"probability"` // percentage in [0,100]
	Roll        float64   `json:"roll"`        // uniform draw in [0,100); -1 when no draw was needed
	Retired     bool      `json:"retired"`
}

// EventType classifies career history entries.
type EventType string

const (
	EventDrafted      EventType = "drafted"
	EventSkillUpdated EventType = "skill-updated"
	EventRetired      EventType = "retired"
)

// HistoryEvent is an append-only career log entry.
type HistoryEvent struct {
	ID       uuid.UUID `json:"id"`
	PlayerID uuid.UUID `json:"player_id"`
	Season   int       `json:"season"`
	Type     EventType `json:"type"`
	Detail   string    `json:"detail,omitempty"`
	TS       time.Time `json:"ts"`
}

// Entry is a leaderboard row ordered by overall rating.
type Entry struct {
	Rank     int      `json:"rank"`
	PlayerID string   `json:"player_id"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Overall  int      `json:"overall"`
}
