package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/faizmokh/analitik/internal/activity"
	"github.com/faizmokh/analitik/internal/goal"
)

const goalColumns = `id, title, kind, operator, target, activity, timespan, created_at`

// CreateGoal validates and stores a goal, returning it with its id. A zero
// CreatedAt is stamped with the current time.
func (s *Store) CreateGoal(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	if err := g.Validate(); err != nil {
		return goal.Goal{}, err
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
	g.CreatedAt = g.CreatedAt.Truncate(time.Second)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO goals (title, kind, operator, target, activity, timespan, created_at) VALUES (?, ?, ?, ?, ?, ?, ?);`,
		g.Title, g.Kind.String(), g.Operator.String(), g.Target, string(g.Activity), string(g.TimeSpan), formatTime(g.CreatedAt),
	)
	if err != nil {
		return goal.Goal{}, fmt.Errorf("insert goal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return goal.Goal{}, fmt.Errorf("goal id: %w", err)
	}
	g.ID = id
	s.logger.Debug("goal created", "id", id, "kind", g.Kind, "operator", g.Operator)
	return g, nil
}

// ListGoals returns all goals ordered by id.
func (s *Store) ListGoals(ctx context.Context) ([]goal.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+goalColumns+` FROM goals ORDER BY id ASC;`)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var out []goal.Goal
	for rows.Next() {
		g, err := s.scanGoal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return out, nil
}

// GetGoal loads one goal by id.
func (s *Store) GetGoal(ctx context.Context, id int64) (goal.Goal, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = ?;`, id)
	g, err := s.scanGoal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return goal.Goal{}, fmt.Errorf("goal %d: %w", id, ErrNotFound)
		}
		return goal.Goal{}, err
	}
	return g, nil
}

// DeleteGoal removes a goal by id.
func (s *Store) DeleteGoal(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "goals", id)
}

// scanGoal tolerates unknown kind or operator codes: they load as zero values
// so that evaluation reports the misconfiguration for that goal alone.
func (s *Store) scanGoal(row rowScanner) (goal.Goal, error) {
	var (
		g                              goal.Goal
		kind, op, act, span, createdAt string
	)
	if err := row.Scan(&g.ID, &g.Title, &kind, &op, &g.Target, &act, &span, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return g, err
		}
		return g, fmt.Errorf("scan goal: %w", err)
	}

	if parsed, err := goal.ParseKind(kind); err == nil {
		g.Kind = parsed
	} else {
		s.logger.Warn("goal has unknown kind", "id", g.ID, "kind", kind)
	}
	if parsed, err := goal.ParseOperator(op); err == nil {
		g.Operator = parsed
	} else {
		s.logger.Warn("goal has unknown operator", "id", g.ID, "operator", op)
	}
	g.Activity = activity.Category(act)
	g.TimeSpan = goal.TimeSpan(span)

	created, err := parseTime(createdAt)
	if err != nil {
		return g, err
	}
	g.CreatedAt = created
	return g, nil
}
