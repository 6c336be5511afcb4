// Package quota tracks compile runs in a local SQLite database and
// enforces a per-day compile limit. The history doubles as an audit log
// for the status command.
package quota

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrLimitReached reports that today's compile allowance is used up.
var ErrLimitReached = errors.New("daily compile limit reached")

// Service gates and records compile runs. The compiler depends on this
// interface so tests can substitute an in-memory implementation.
type Service interface {
	// Check returns ErrLimitReached when no allowance remains today.
	Check() error
	// Record persists one finished compile run.
	Record(run Run) error
}

// Run is one recorded compilation.
type Run struct {
	ID        int64
	RunID     string
	Source    string
	Framework string
	Project   string
	TestCount int
	Warnings  int
	CreatedAt time.Time
}

// Store is the SQLite-backed Service.
type Store struct {
	conn  *sql.DB
	limit int
	now   func() time.Time
}

// Open creates (or reuses) the quota database at dbPath. A limit of zero
// or less disables the daily gate.
func Open(dbPath string, limit int) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{conn: conn, limit: limit, now: time.Now}
	if err := s.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS compile_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		source TEXT NOT NULL,
		framework TEXT NOT NULL,
		project TEXT NOT NULL,
		test_count INTEGER NOT NULL,
		warnings INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON compile_runs(created_at);
	CREATE INDEX IF NOT EXISTS idx_runs_framework ON compile_runs(framework);
	`

	_, err := s.conn.Exec(schema)
	return err
}

// Check compares today's run count against the configured limit.
func (s *Store) Check() error {
	if s.limit <= 0 {
		return nil
	}

	count, err := s.CountSince(startOfDay(s.now()))
	if err != nil {
		return err
	}
	if count >= s.limit {
		return fmt.Errorf("%w: %d of %d used", ErrLimitReached, count, s.limit)
	}
	return nil
}

// Record inserts one compile run.
func (s *Store) Record(run Run) error {
	query := `
		INSERT INTO compile_runs (run_id, source, framework, project, test_count, warnings, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	_, err := s.conn.Exec(query,
		run.RunID,
		run.Source,
		run.Framework,
		run.Project,
		run.TestCount,
		run.Warnings,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record compile run: %w", err)
	}
	return nil
}

// CountSince returns the number of runs recorded at or after t.
func (s *Store) CountSince(t time.Time) (int, error) {
	var count int
	err := s.conn.QueryRow(`SELECT COUNT(*) FROM compile_runs WHERE created_at >= ?`, t).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count compile runs: %w", err)
	}
	return count, nil
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	query := `
		SELECT id, run_id, source, framework, project, test_count, warnings, created_at
		FROM compile_runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query compile runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		err := rows.Scan(
			&run.ID,
			&run.RunID,
			&run.Source,
			&run.Framework,
			&run.Project,
			&run.TestCount,
			&run.Warnings,
			&run.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan compile run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Unlimited is a Service that never gates and never persists. It backs
// runs where no quota database is configured.
type Unlimited struct{}

func (Unlimited) Check() error     { return nil }
func (Unlimited) Record(Run) error { return nil }
