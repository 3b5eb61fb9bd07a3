package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gridironsim/gridiron/internal/domain/model"
	"github.com/gridironsim/gridiron/pkg/metrics"
)

// SQLStore is a database/sql Store implementation. It is driver-agnostic
// across sqlite and postgres; the process entrypoint registers whichever
// drivers it supports.
type SQLStore struct {
	db       *sql.DB
	postgres bool
}

// schema keeps only portable column types so the same DDL runs on sqlite
// and postgres. Retired flags are stored as integers for the same reason.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS players (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		jersey_no       INTEGER NOT NULL,
		position        TEXT NOT NULL,
		team_id         INTEGER NOT NULL,
		age             INTEGER NOT NULL,
		seasons_played  INTEGER NOT NULL,
		run             INTEGER NOT NULL,
		pass            INTEGER NOT NULL,
		receive         INTEGER NOT NULL,
		block           INTEGER NOT NULL,
		kick            INTEGER NOT NULL,
		forty_time      REAL NOT NULL,
		overall         INTEGER NOT NULL,
		status          TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS retirement_decisions (
		player_id   TEXT NOT NULL,
		season      INTEGER NOT NULL,
		probability REAL NOT NULL,
		roll        REAL NOT NULL,
		retired     INTEGER NOT NULL,
		PRIMARY KEY (player_id, season)
	)`,
	`CREATE TABLE IF NOT EXISTS player_history (
		id        TEXT PRIMARY KEY,
		player_id TEXT NOT NULL,
		season    INTEGER NOT NULL,
		type      TEXT NOT NULL,
		detail    TEXT,
		ts        TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_players_status_overall ON players (status, overall)`,
	`CREATE INDEX IF NOT EXISTS idx_history_player ON player_history (player_id)`,
}

// NewSQLStore opens the database and ensures the schema exists.
// driver is "sqlite" or "postgres".
func NewSQLStore(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", driver, err)
	}
	s := &SQLStore{db: db, postgres: driver == "postgres"}
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *SQLStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

// rebind rewrites ? placeholders to $N for postgres.
func (s *SQLStore) rebind(query string) string {
	if !s.postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

const playerColumns = `id, name, jersey_no, position, team_id, age, seasons_played,
	run, pass, receive, block, kick, forty_time, overall, status`

// PutPlayer inserts or replaces a player record.
func (s *SQLStore) PutPlayer(ctx context.Context, p model.Player) error {
	query := `INSERT INTO players (` + playerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name, jersey_no = excluded.jersey_no,
			position = excluded.position, team_id = excluded.team_id,
			age = excluded.age, seasons_played = excluded.seasons_played,
			run = excluded.run, pass = excluded.pass, receive = excluded.receive,
			block = excluded.block, kick = excluded.kick,
			forty_time = excluded.forty_time, overall = excluded.overall,
			status = excluded.status`
	_, err := s.db.ExecContext(ctx, s.rebind(query), playerArgs(p)...)
	if err != nil {
		return fmt.Errorf("put player: %w", err)
	}
	return nil
}

func playerArgs(p model.Player) []any {
	return []any{
		p.ID.String(), p.Name, p.JerseyNo, string(p.Position), p.TeamID,
		p.Age, p.SeasonsPlayed,
		p.Attributes.Run, p.Attributes.Pass, p.Attributes.Receive,
		p.Attributes.Block, p.Attributes.Kick, p.Attributes.FortyTime,
		p.Overall, string(p.Status),
	}
}

func scanPlayer(row interface{ Scan(...any) error }) (model.Player, error) {
	var p model.Player
	var id, position, status string
	err := row.Scan(&id, &p.Name, &p.JerseyNo, &position, &p.TeamID,
		&p.Age, &p.SeasonsPlayed,
		&p.Attributes.Run, &p.Attributes.Pass, &p.Attributes.Receive,
		&p.Attributes.Block, &p.Attributes.Kick, &p.Attributes.FortyTime,
		&p.Overall, &status)
	if err != nil {
		return model.Player{}, err
	}
	p.ID, err = uuid.Parse(id)
	if err != nil {
		return model.Player{}, fmt.Errorf("parse player id: %w", err)
	}
	p.Position = model.Position(position)
	p.Status = model.Status(status)
	return p, nil
}

// Player returns a player by id.
func (s *SQLStore) Player(ctx context.Context, id uuid.UUID) (model.Player, error) {
	row := s.db.QueryRowContext(ctx,
		s.rebind(`SELECT `+playerColumns+` FROM players WHERE id = ?`), id.String())
	p, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Player{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return model.Player{}, fmt.Errorf("query player: %w", err)
	}
	return p, nil
}

// ActivePlayers returns every active player ordered by id.
func (s *SQLStore) ActivePlayers(ctx context.Context) ([]model.Player, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind(`SELECT `+playerColumns+` FROM players WHERE status = ? ORDER BY id`),
		string(model.StatusActive))
	if err != nil {
		return nil, fmt.Errorf("query active players: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}
	return out, nil
}

// ApplySeason persists one player's season outcome inside a transaction.
func (s *SQLStore) ApplySeason(ctx context.Context, p model.Player, decision model.RetirementDecision, events []model.HistoryEvent) error {
	start := time.Now()
	defer func() {
		metrics.RecordStoreUpdateLatency(float64(time.Since(start).Milliseconds()))
	}()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin season tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, s.rebind(`UPDATE players SET
			age = ?, seasons_played = ?,
			run = ?, pass = ?, receive = ?, block = ?, kick = ?, forty_time = ?,
			overall = ?, status = ?
		WHERE id = ?`),
		p.Age, p.SeasonsPlayed,
		p.Attributes.Run, p.Attributes.Pass, p.Attributes.Receive,
		p.Attributes.Block, p.Attributes.Kick, p.Attributes.FortyTime,
		p.Overall, string(p.Status), p.ID.String())
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, p.ID)
	}

	retired := 0
	if decision.Retired {
		retired = 1
	}
	if _, err := tx.ExecContext(ctx, s.rebind(`INSERT INTO retirement_decisions
			(player_id, season, probability, roll, retired) VALUES (?, ?, ?, ?, ?)`),
		decision.PlayerID.String(), decision.Season, decision.Probability,
		decision.Roll, retired); err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}

	for _, e := range events {
		if _, err := tx.ExecContext(ctx, s.rebind(`INSERT INTO player_history
				(id, player_id, season, type, detail, ts) VALUES (?, ?, ?, ?, ?, ?)`),
			e.ID.String(), e.PlayerID.String(), e.Season, string(e.Type),
			e.Detail, e.TS); err != nil {
			return fmt.Errorf("insert history event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit season tx: %w", err)
	}
	return nil
}

// TopN returns the top-N active players by overall rating.
func (s *SQLStore) TopN(ctx context.Context, n int) ([]model.Entry, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(float64(time.Since(start).Milliseconds()))
	}()

	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}
	rows, err := s.db.QueryContext(ctx, s.rebind(`SELECT id, name, position, overall
			FROM players WHERE status = ? ORDER BY overall DESC, id ASC LIMIT ?`),
		string(model.StatusActive), n)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Entry
	rank := 0
	for rows.Next() {
		var e model.Entry
		var position string
		if err := rows.Scan(&e.PlayerID, &e.Name, &position, &e.Overall); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		rank++
		e.Rank = rank
		e.Position = model.Position(position)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaderboard: %w", err)
	}
	return out, nil
}

// Decisions returns a player's retirement audit trail, oldest first.
func (s *SQLStore) Decisions(ctx context.Context, playerID uuid.UUID) ([]model.RetirementDecision, error) {
	if _, err := s.Player(ctx, playerID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, s.rebind(`SELECT season, probability, roll, retired
			FROM retirement_decisions WHERE player_id = ? ORDER BY season`),
		playerID.String())
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.RetirementDecision
	for rows.Next() {
		d := model.RetirementDecision{PlayerID: playerID}
		var retired int
		if err := rows.Scan(&d.Season, &d.Probability, &d.Roll, &retired); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		d.Retired = retired != 0
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate decisions: %w", err)
	}
	return out, nil
}

// History returns a player's career history events, oldest first.
func (s *SQLStore) History(ctx context.Context, playerID uuid.UUID) ([]model.HistoryEvent, error) {
	if _, err := s.Player(ctx, playerID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, s.rebind(`SELECT id, season, type, detail, ts
			FROM player_history WHERE player_id = ? ORDER BY season, ts`),
		playerID.String())
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.HistoryEvent
	for rows.Next() {
		e := model.HistoryEvent{PlayerID: playerID}
		var id, kind string
		var detail sql.NullString
		if err := rows.Scan(&id, &e.Season, &kind, &detail, &e.TS); err != nil {
			return nil, fmt.Errorf("scan history event: %w", err)
		}
		e.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse event id: %w", err)
		}
		e.Type = model.EventType(kind)
		e.Detail = detail.String
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return out, nil
}

// Count returns the total number of tracked players.
func (s *SQLStore) Count(ctx context.Context) int {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&n); err != nil {
		return 0
	}
	return n
}
