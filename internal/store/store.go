// Package store persists a local history of simulation runs in SQLite.
// The engine itself never touches storage; only the CLI layer appends
// and reads run records.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// RunRecord is one logged simulation run.
type RunRecord struct {
	ID             int
	CreatedAt      time.Time
	InputPath      string
	Seed           int64
	PopulationSize int
	ProblemCount   int
	MeanScore      float64
	RiskLevel      string
	ClusterCount   int
	Envelope       string // full JSON result envelope
}

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies recommended
// pragmas and creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// AppendRun inserts one run record.
func (s *Store) AppendRun(ctx context.Context, r RunRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (created_at, input_path, seed, population_size,
			problem_count, mean_score, risk_level, cluster_count, envelope)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.CreatedAt.UTC().Format(time.RFC3339), r.InputPath, r.Seed,
		r.PopulationSize, r.ProblemCount, r.MeanScore, r.RiskLevel,
		r.ClusterCount, r.Envelope,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means
// all runs.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	q := `
		SELECT id, created_at, input_path, seed, population_size,
			problem_count, mean_score, risk_level, cluster_count, envelope
		FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var (
			r  RunRecord
			ts string
		)
		if err := rows.Scan(&r.ID, &ts, &r.InputPath, &r.Seed, &r.PopulationSize,
			&r.ProblemCount, &r.MeanScore, &r.RiskLevel, &r.ClusterCount, &r.Envelope); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			r.CreatedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			input_path TEXT NOT NULL,
			seed INTEGER NOT NULL,
			population_size INTEGER NOT NULL,
			problem_count INTEGER NOT NULL,
			mean_score REAL NOT NULL,
			risk_level TEXT NOT NULL,
			cluster_count INTEGER NOT NULL,
			envelope TEXT NOT NULL
		)`)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PREFLIGHT_DB environment variable
// 2. $XDG_DATA_HOME/preflight/preflight.db
// 3. ~/.local/share/preflight/preflight.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PREFLIGHT_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "preflight", "preflight.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
