// Package store provides the SQLite-backed reference implementations of
// the engine's external collaborators: the question catalog, the learner
// profile snapshot, and the attempt log.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database and hands out repositories.
type Store struct {
	db *sql.DB
}

// Open creates a Store connected to the SQLite database at dsn. It applies
// recommended pragmas and creates missing tables.
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
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Questions returns the question repository backed by this store.
func (s *Store) Questions() *QuestionRepo {
	return &QuestionRepo{db: s.db}
}

// Profiles returns the profile snapshot repository backed by this store.
func (s *Store) Profiles() *ProfileRepo {
	return &ProfileRepo{db: s.db}
}

// Attempts returns the attempt log backed by this store.
func (s *Store) Attempts() *AttemptRepo {
	return &AttemptRepo{db: s.db}
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
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
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS questions (
			id TEXT PRIMARY KEY,
			exam TEXT NOT NULL,
			subject TEXT NOT NULL,
			topic TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '[]',
			prompt TEXT NOT NULL,
			options TEXT NOT NULL DEFAULT '[]',
			correct_answer INTEGER NOT NULL,
			explanation TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL DEFAULT '',
			expected_solve_time INTEGER NOT NULL,
			global_attempts INTEGER NOT NULL DEFAULT 0,
			global_correct INTEGER NOT NULL DEFAULT 0,
			global_avg_solve_time REAL NOT NULL DEFAULT 0,
			version INTEGER NOT NULL DEFAULT 1,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_exam ON questions(exam)`,
		`CREATE TABLE IF NOT EXISTS profile_snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			learner_id TEXT NOT NULL,
			created_at TEXT NOT NULL,
			data TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_profile_snapshots_learner
			ON profile_snapshots(learner_id, id)`,
		`CREATE TABLE IF NOT EXISTS attempts (
			id TEXT PRIMARY KEY,
			learner_id TEXT NOT NULL,
			question_id TEXT NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			time_spent REAL NOT NULL,
			selected_answer INTEGER NOT NULL,
			submitted_answers TEXT NOT NULL DEFAULT '[]',
			is_correct INTEGER NOT NULL,
			attempt_count INTEGER NOT NULL,
			frustration REAL NOT NULL,
			streak INTEGER NOT NULL,
			hint_used INTEGER NOT NULL,
			skipped INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_learner_question
			ON attempts(learner_id, question_id, ended_at)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. WAKEPREP_DB environment variable
// 2. $XDG_DATA_HOME/wakeprep/wakeprep.db
// 3. ~/.local/share/wakeprep/wakeprep.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("WAKEPREP_DB"); p != "" {
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

	p := filepath.Join(dataHome, "wakeprep", "wakeprep.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
