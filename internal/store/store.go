package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	_ "modernc.org/sqlite"

	"github.com/faizmokh/analitik/internal/logging"
	"github.com/faizmokh/analitik/internal/pomodoro"
)

const schemaVersion = 1

// Store keeps tracked activity, questionnaires, pomodoros, and goals in a
// single SQLite database.
type Store struct {
	db     *sql.DB
	logger hclog.Logger
}

// Open creates the database file if needed and ensures the schema exists.
// A nil logger discards output.
func Open(ctx context.Context, path string, logger hclog.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite allows a single writer; serialize through one connection.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, logger: logger.Named("store")}
	if err := s.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	s.logger.Debug("database ready", "path", path)
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema(ctx context.Context) error {
	ddl := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS activities (
  id INTEGER PRIMARY KEY,
  category TEXT NOT NULL,
  started_at TEXT NOT NULL,
  ended_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_activities_category_start ON activities(category, started_at);
CREATE TABLE IF NOT EXISTS emotional_state (
  id INTEGER PRIMARY KEY,
  timestamp TEXT NOT NULL,
  activity TEXT NOT NULL DEFAULT '',
  valence INTEGER NOT NULL,
  arousal INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS %s (
  id INTEGER PRIMARY KEY,
  started_at TEXT NOT NULL,
  ended_at TEXT,
  label TEXT NOT NULL DEFAULT '',
  completed INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS goals (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL DEFAULT '',
  kind TEXT NOT NULL,
  operator TEXT NOT NULL,
  target REAL NOT NULL,
  activity TEXT NOT NULL,
  timespan TEXT NOT NULL,
  created_at TEXT NOT NULL
);
PRAGMA user_version = %d;
`, pomodoro.Table, schemaVersion)
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// SchemaVersion reports the user_version pragma.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version;").Scan(&version); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

// Timestamps are stored as UTC text in the pomodoro date format, which sorts
// correctly as text and stays unambiguous across DST transitions. They are
// returned in local time.
func formatTime(t time.Time) string {
	return t.UTC().Format(pomodoro.DateFormat)
}

func parseTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(pomodoro.DateFormat, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return t.In(time.Local), nil
}
