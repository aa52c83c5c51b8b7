package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/faizmokh/analitik/internal/emotion"
)

// SaveQuestionnaire stores one emotional-state row.
func (s *Store) SaveQuestionnaire(ctx context.Context, q emotion.Questionnaire) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO emotional_state (timestamp, activity, valence, arousal) VALUES (?, ?, ?, ?);`,
		formatTime(q.Timestamp), q.Activity, q.Valence, q.Arousal,
	)
	if err != nil {
		return 0, fmt.Errorf("insert emotional state: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("emotional state id: %w", err)
	}
	s.logger.Debug("questionnaire saved", "id", id, "activity", q.Activity)
	return id, nil
}

// QuestionnairesBetween lists rows with timestamps in [start, end), oldest first.
func (s *Store) QuestionnairesBetween(ctx context.Context, start, end time.Time) ([]emotion.Questionnaire, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, timestamp, activity, valence, arousal
FROM emotional_state
WHERE timestamp >= ? AND timestamp < ?
ORDER BY timestamp ASC, id ASC;
`, formatTime(start), formatTime(end))
	if err != nil {
		return nil, fmt.Errorf("list emotional state: %w", err)
	}
	defer rows.Close()

	var out []emotion.Questionnaire
	for rows.Next() {
		q, err := scanQuestionnaire(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate emotional state: %w", err)
	}
	return out, nil
}

// LastQuestionnaire returns the most recent answer, skipping popup markers.
func (s *Store) LastQuestionnaire(ctx context.Context) (emotion.Questionnaire, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, timestamp, activity, valence, arousal
FROM emotional_state
WHERE activity <> ?
ORDER BY timestamp DESC, id DESC
LIMIT 1;
`, emotion.PopupOpened)
	q, err := scanQuestionnaire(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return emotion.Questionnaire{}, false, nil
		}
		return emotion.Questionnaire{}, false, err
	}
	return q, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestionnaire(row rowScanner) (emotion.Questionnaire, error) {
	var (
		q  emotion.Questionnaire
		ts string
	)
	if err := row.Scan(&q.ID, &ts, &q.Activity, &q.Valence, &q.Arousal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return q, err
		}
		return q, fmt.Errorf("scan emotional state: %w", err)
	}
	t, err := parseTime(ts)
	if err != nil {
		return q, err
	}
	q.Timestamp = t
	return q, nil
}
