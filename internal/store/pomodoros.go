package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/faizmokh/analitik/internal/pomodoro"
)

// OpenPomodoro returns the session that has not been stopped yet, if any.
func (s *Store) OpenPomodoro(ctx context.Context) (pomodoro.Session, bool, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
SELECT id, started_at, ended_at, label, completed
FROM %s
WHERE ended_at IS NULL
ORDER BY started_at DESC, id DESC
LIMIT 1;
`, pomodoro.Table))
	session, err := scanPomodoro(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pomodoro.Session{}, false, nil
		}
		return pomodoro.Session{}, false, err
	}
	return session, true, nil
}

// InsertPomodoro stores a new session and returns its id.
func (s *Store) InsertPomodoro(ctx context.Context, session pomodoro.Session) (int64, error) {
	var ended any
	if !session.End.IsZero() {
		ended = formatTime(session.End)
	}
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (started_at, ended_at, label, completed) VALUES (?, ?, ?, ?);`, pomodoro.Table),
		formatTime(session.Start), ended, session.Label, session.Completed,
	)
	if err != nil {
		return 0, fmt.Errorf("insert pomodoro: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("pomodoro id: %w", err)
	}
	s.logger.Debug("pomodoro started", "id", id)
	return id, nil
}

// FinishPomodoro closes a session.
func (s *Store) FinishPomodoro(ctx context.Context, id int64, end time.Time, completed bool) error {
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET ended_at = ?, completed = ? WHERE id = ?;`, pomodoro.Table),
		formatTime(end), completed, id,
	)
	if err != nil {
		return fmt.Errorf("finish pomodoro: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish pomodoro: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("pomodoro %d: %w", id, ErrNotFound)
	}
	s.logger.Debug("pomodoro finished", "id", id, "completed", completed)
	return nil
}

// PomodorosBetween lists sessions started in [start, end).
func (s *Store) PomodorosBetween(ctx context.Context, start, end time.Time) ([]pomodoro.Session, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
SELECT id, started_at, ended_at, label, completed
FROM %s
WHERE started_at >= ? AND started_at < ?
ORDER BY started_at ASC, id ASC;
`, pomodoro.Table), formatTime(start), formatTime(end))
	if err != nil {
		return nil, fmt.Errorf("list pomodoros: %w", err)
	}
	defer rows.Close()

	var out []pomodoro.Session
	for rows.Next() {
		session, err := scanPomodoro(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pomodoros: %w", err)
	}
	return out, nil
}

func scanPomodoro(row rowScanner) (pomodoro.Session, error) {
	var (
		session   pomodoro.Session
		startedAt string
		endedAt   sql.NullString
	)
	if err := row.Scan(&session.ID, &startedAt, &endedAt, &session.Label, &session.Completed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return session, err
		}
		return session, fmt.Errorf("scan pomodoro: %w", err)
	}
	start, err := parseTime(startedAt)
	if err != nil {
		return session, err
	}
	session.Start = start
	if endedAt.Valid {
		end, err := parseTime(endedAt.String)
		if err != nil {
			return session, err
		}
		session.End = end
	}
	return session, nil
}
