package store

import (
	"context"
	"fmt"
	"time"

	"github.com/faizmokh/analitik/internal/activity"
)

// RecordActivity stores one focus interval and returns its id.
func (s *Store) RecordActivity(ctx context.Context, interval activity.Interval) (int64, error) {
	if _, err := activity.ParseCategory(string(interval.Category)); err != nil {
		return 0, err
	}
	if !interval.End.After(interval.Start) {
		return 0, activity.ErrInvalidInterval
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO activities (category, started_at, ended_at) VALUES (?, ?, ?);`,
		string(interval.Category), formatTime(interval.Start), formatTime(interval.End),
	)
	if err != nil {
		return 0, fmt.Errorf("insert activity: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("activity id: %w", err)
	}
	s.logger.Debug("activity recorded", "id", id, "category", interval.Category)
	return id, nil
}

// ActivitiesBetween lists intervals overlapping [start, end), ordered by
// start time. An empty category matches all categories.
func (s *Store) ActivitiesBetween(ctx context.Context, category activity.Category, start, end time.Time) ([]activity.Interval, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, category, started_at, ended_at
FROM activities
WHERE started_at < ? AND ended_at > ? AND (? = '' OR category = ?)
ORDER BY started_at ASC, id ASC;
`, formatTime(end), formatTime(start), string(category), string(category))
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var out []activity.Interval
	for rows.Next() {
		var (
			item                    activity.Interval
			cat, startedAt, endedAt string
		)
		if err := rows.Scan(&item.ID, &cat, &startedAt, &endedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		item.Category = activity.Category(cat)
		if item.Start, err = parseTime(startedAt); err != nil {
			return nil, err
		}
		if item.End, err = parseTime(endedAt); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return out, nil
}

// Usage totals time and switches for a category within [start, end).
func (s *Store) Usage(ctx context.Context, category activity.Category, start, end time.Time) (activity.Usage, error) {
	intervals, err := s.ActivitiesBetween(ctx, category, start, end)
	if err != nil {
		return activity.Usage{}, err
	}
	return activity.Summarize(intervals, start, end), nil
}

// DeleteActivity removes an interval by id.
func (s *Store) DeleteActivity(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "activities", id)
}

func (s *Store) deleteByID(ctx context.Context, table string, id int64) error {
	res, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?;`, table), id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", table, id, ErrNotFound)
	}
	return nil
}
