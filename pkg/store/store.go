// Package store archives batches of generated lives and their scores in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // registers the sqlite driver

	"github.com/nikogura/lifesim/pkg/life"
	"github.com/nikogura/lifesim/pkg/rank"
	"github.com/nikogura/lifesim/pkg/scorer"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	region      TEXT NOT NULL,
	seed        INTEGER,
	life_count  INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS lives (
	life_id      TEXT PRIMARY KEY,
	run_id       TEXT NOT NULL,
	seq          INTEGER NOT NULL,
	life_score   REAL NOT NULL,
	life_rank    TEXT NOT NULL,
	start_score  REAL NOT NULL,
	start_rank   TEXT NOT NULL,
	record_json  TEXT NOT NULL,
	scores_json  TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE INDEX IF NOT EXISTS idx_lives_run ON lives(run_id, seq);
`

// Store is a SQLite-backed archive of simulation runs.
type Store struct {
	db     *sqlx.DB
	logger zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) (opt Option) {
	opt = func(s *Store) {
		s.logger = logger
	}
	return opt
}

// Entry is one life with its scores, as handed to SaveRun.
type Entry struct {
	Record life.Record
	Scores scorer.Scores
}

// Run describes one archived batch.
type Run struct {
	ID        string
	Region    string
	Seed      *int64
	Count     int
	CreatedAt time.Time
}

// Life is one archived life.
type Life struct {
	ID     string
	RunID  string
	Seq    int
	Record life.Record
	Scores scorer.Scores
}

// Open opens (creating if needed) the database at path and migrates the schema. Use
// ":memory:" for a throwaway store.
func Open(path string, opts ...Option) (s *Store, err error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open database: %s", path)
		return s, err
	}

	// a single connection keeps ":memory:" databases alive across calls
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
		_, err = db.Exec(pragma)
		if err != nil {
			_ = db.Close()
			err = errors.Wrapf(err, "failed to apply %s", pragma)
			return s, err
		}
	}

	_, err = db.Exec(schema)
	if err != nil {
		_ = db.Close()
		err = errors.Wrap(err, "failed to migrate schema")
		return s, err
	}

	s = &Store{db: db, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	return s, err
}

// Close closes the database.
func (s *Store) Close() (err error) {
	err = s.db.Close()
	return err
}

// SaveRun archives a batch of lives in one transaction and returns the new run.
func (s *Store) SaveRun(ctx context.Context, region string, seed *int64, entries []Entry) (run Run, err error) {
	run = Run{
		ID:        uuid.New().String(),
		Region:    region,
		Seed:      seed,
		Count:     len(entries),
		CreatedAt: time.Now().UTC(),
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to begin transaction")
		return run, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, region, seed, life_count, created_at) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Region, nullableSeed(seed), run.Count, run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		err = errors.Wrap(err, "failed to insert run")
		return run, err
	}

	stmt, err := tx.PreparexContext(ctx,
		`INSERT INTO lives (life_id, run_id, seq, life_score, life_rank, start_score, start_rank, record_json, scores_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		err = errors.Wrap(err, "failed to prepare life insert")
		return run, err
	}
	defer stmt.Close()

	for i, e := range entries {
		var recordJSON, scoresJSON []byte
		recordJSON, err = json.Marshal(e.Record)
		if err != nil {
			err = errors.Wrapf(err, "failed to marshal life %d", i)
			return run, err
		}

		scoresJSON, err = json.Marshal(e.Scores)
		if err != nil {
			err = errors.Wrapf(err, "failed to marshal scores of life %d", i)
			return run, err
		}

		_, err = stmt.ExecContext(ctx,
			uuid.New().String(), run.ID, i,
			e.Scores.Life.TotalScore, string(e.Scores.Life.Rank),
			e.Scores.Start.TotalScore, string(e.Scores.Start.Rank),
			string(recordJSON), string(scoresJSON),
		)
		if err != nil {
			err = errors.Wrapf(err, "failed to insert life %d", i)
			return run, err
		}
	}

	err = tx.Commit()
	if err != nil {
		err = errors.Wrap(err, "failed to commit run")
		return run, err
	}

	s.logger.Info().Str("run", run.ID).Str("region", region).Int("lives", run.Count).Msg("run archived")

	return run, err
}

func nullableSeed(seed *int64) (v any) {
	if seed != nil {
		v = *seed
	}
	return v
}

// runRow and lifeRow mirror the tables.
type runRow struct {
	ID        string        `db:"run_id"`
	Region    string        `db:"region"`
	Seed      sql.NullInt64 `db:"seed"`
	Count     int           `db:"life_count"`
	CreatedAt string        `db:"created_at"`
}

type lifeRow struct {
	ID         string `db:"life_id"`
	Seq        int    `db:"seq"`
	RecordJSON string `db:"record_json"`
	ScoresJSON string `db:"scores_json"`
}

// Runs lists archived runs, newest first.
func (s *Store) Runs(ctx context.Context) (runs []Run, err error) {
	var rows []runRow
	err = s.db.SelectContext(ctx, &rows,
		`SELECT run_id, region, seed, life_count, created_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		err = errors.Wrap(err, "failed to query runs")
		return runs, err
	}

	for _, row := range rows {
		run := Run{ID: row.ID, Region: row.Region, Count: row.Count}
		if row.Seed.Valid {
			v := row.Seed.Int64
			run.Seed = &v
		}

		run.CreatedAt, err = time.Parse(time.RFC3339Nano, row.CreatedAt)
		if err != nil {
			err = errors.Wrapf(err, "bad timestamp on run %s", row.ID)
			return runs, err
		}

		runs = append(runs, run)
	}

	return runs, err
}

// Lives returns the lives of a run in generation order.
func (s *Store) Lives(ctx context.Context, runID string) (lives []Life, err error) {
	var rows []lifeRow
	err = s.db.SelectContext(ctx, &rows,
		`SELECT life_id, seq, record_json, scores_json FROM lives WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		err = errors.Wrapf(err, "failed to query lives of run %s", runID)
		return lives, err
	}

	for _, row := range rows {
		l := Life{ID: row.ID, RunID: runID, Seq: row.Seq}

		err = json.Unmarshal([]byte(row.RecordJSON), &l.Record)
		if err != nil {
			err = errors.Wrapf(err, "failed to decode life %s", l.ID)
			return lives, err
		}

		err = json.Unmarshal([]byte(row.ScoresJSON), &l.Scores)
		if err != nil {
			err = errors.Wrapf(err, "failed to decode scores of life %s", l.ID)
			return lives, err
		}

		lives = append(lives, l)
	}

	return lives, err
}

// RankDistribution counts the lives of a run per rank under rubric.
func (s *Store) RankDistribution(ctx context.Context, runID string, rubric scorer.Rubric) (counts map[rank.Rank]int, err error) {
	var query string
	switch rubric {
	case scorer.RubricLifeOutcome:
		query = `SELECT life_rank AS grade, COUNT(*) AS n FROM lives WHERE run_id = ? GROUP BY life_rank`
	case scorer.RubricStartingConditions:
		query = `SELECT start_rank AS grade, COUNT(*) AS n FROM lives WHERE run_id = ? GROUP BY start_rank`
	default:
		err = errors.Errorf("unknown rubric: %s", rubric)
		return counts, err
	}

	var rows []struct {
		Rank  string `db:"grade"`
		Count int    `db:"n"`
	}
	err = s.db.SelectContext(ctx, &rows, query, runID)
	if err != nil {
		err = errors.Wrapf(err, "failed to count ranks of run %s", runID)
		return counts, err
	}

	counts = make(map[rank.Rank]int, len(rows))
	for _, row := range rows {
		counts[rank.Rank(row.Rank)] = row.Count
	}

	return counts, err
}
