// Package journal records solver runs and their answers in a local sqlite
// database so later invocations can show what has been solved and catch
// answer drift after refactoring a solver.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Journal is the sqlite-backed run log.
type Journal struct {
	db *sql.DB
}

// Run is one solver execution.
type Run struct {
	ID        string
	Year      int
	Day       int
	Part      int
	Answer    string
	Duration  time.Duration
	CreatedAt time.Time
}

// Answer is the latest recorded answer for one puzzle part.
type Answer struct {
	Year      int
	Day       int
	Part      int
	Answer    string
	UpdatedAt time.Time
}

// Open opens (creating if needed) the journal at path.
func Open(path string) (*Journal, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	// WAL keeps concurrent bulk-run writers from tripping over each other.
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping journal database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Record appends a run and makes its answer the puzzle part's latest.
func (j *Journal) Record(ctx context.Context, run Run) error {
	if run.Part != 1 && run.Part != 2 {
		return fmt.Errorf("part must be 1 or 2 (got %d)", run.Part)
	}
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, year, day, part, answer, duration_us, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Year, run.Day, run.Part, run.Answer,
		run.Duration.Microseconds(), run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert run for %d/%02d part %d: %w", run.Year, run.Day, run.Part, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO answers (year, day, part, answer, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (year, day, part) DO UPDATE SET
			answer = excluded.answer,
			updated_at = excluded.updated_at
	`, run.Year, run.Day, run.Part, run.Answer, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert answer for %d/%02d part %d: %w", run.Year, run.Day, run.Part, err)
	}

	return tx.Commit()
}

// LatestAnswer returns the recorded answer for a puzzle part, or "" when the
// part has never been solved.
func (j *Journal) LatestAnswer(ctx context.Context, year, day, part int) (string, error) {
	var answer string
	err := j.db.QueryRowContext(ctx, `
		SELECT answer FROM answers WHERE year = ? AND day = ? AND part = ?
	`, year, day, part).Scan(&answer)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get answer: %w", err)
	}
	return answer, nil
}

// Answers returns every recorded answer for a year, ordered by day and part.
// A year of 0 means all years.
func (j *Journal) Answers(ctx context.Context, year int) ([]Answer, error) {
	query := `
		SELECT year, day, part, answer, updated_at FROM answers
	`
	args := []interface{}{}
	if year != 0 {
		query += " WHERE year = ?"
		args = append(args, year)
	}
	query += " ORDER BY year, day, part"

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	var answers []Answer
	for rows.Next() {
		var a Answer
		if err := rows.Scan(&a.Year, &a.Day, &a.Part, &a.Answer, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// SolvedParts returns which parts of a puzzle have recorded answers.
func (j *Journal) SolvedParts(ctx context.Context, year, day int) (map[int]bool, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT part FROM answers WHERE year = ? AND day = ?
	`, year, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query solved parts: %w", err)
	}
	defer rows.Close()

	solved := make(map[int]bool)
	for rows.Next() {
		var part int
		if err := rows.Scan(&part); err != nil {
			return nil, fmt.Errorf("failed to scan part: %w", err)
		}
		solved[part] = true
	}
	return solved, rows.Err()
}

// RecentRuns returns the most recent runs, newest first.
func (j *Journal) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, year, day, part, answer, duration_us, created_at
		FROM runs
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationUS int64
		if err := rows.Scan(&r.ID, &r.Year, &r.Day, &r.Part, &r.Answer, &durationUS, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Duration = time.Duration(durationUS) * time.Microsecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunCount returns the total number of recorded runs.
func (j *Journal) RunCount(ctx context.Context) (int, error) {
	var n int
	if err := j.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}
