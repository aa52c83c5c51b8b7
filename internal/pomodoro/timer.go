package pomodoro

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Session is one pomodoro. End is zero while the session is running.
type Session struct {
	ID        int64
	Label     string
	Start     time.Time
	End       time.Time
	Completed bool
}

// Running reports whether the session has not been stopped yet.
func (s Session) Running() bool {
	return s.End.IsZero()
}

// Elapsed returns the session length, measured up to now while running.
func (s Session) Elapsed(now time.Time) time.Duration {
	end := s.End
	if s.Running() {
		end = now
	}
	if end.Before(s.Start) {
		return 0
	}
	return end.Sub(s.Start)
}

// Repository persists pomodoro sessions.
type Repository interface {
	OpenPomodoro(ctx context.Context) (Session, bool, error)
	InsertPomodoro(ctx context.Context, s Session) (int64, error)
	FinishPomodoro(ctx context.Context, id int64, end time.Time, completed bool) error
	PomodorosBetween(ctx context.Context, start, end time.Time) ([]Session, error)
}

// Timer starts and stops pomodoros against a Repository. Only one session
// may be open at a time.
type Timer struct {
	repo      Repository
	work      time.Duration
	breakTime time.Duration
	now       func() time.Time
}

// NewTimer wires a timer with the configured work and break lengths.
func NewTimer(repo Repository, work, breakTime time.Duration) *Timer {
	return &Timer{
		repo:      repo,
		work:      work,
		breakTime: breakTime,
		now:       time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (t *Timer) WithClock(now func() time.Time) *Timer {
	t.now = now
	return t
}

// Start opens a new session labelled label.
func (t *Timer) Start(ctx context.Context, label string) (Session, error) {
	if t == nil || t.repo == nil {
		return Session{}, errors.New("pomodoro timer not initialized")
	}

	if current, ok, err := t.repo.OpenPomodoro(ctx); err != nil {
		return Session{}, err
	} else if ok {
		return current, ErrAlreadyRunning
	}

	session := Session{
		Label: label,
		Start: t.now().Truncate(time.Second),
	}
	id, err := t.repo.InsertPomodoro(ctx, session)
	if err != nil {
		return Session{}, fmt.Errorf("start pomodoro: %w", err)
	}
	session.ID = id
	return session, nil
}

// Stop closes the open session. It counts as completed when it lasted at
// least the configured work duration.
func (t *Timer) Stop(ctx context.Context) (Session, error) {
	if t == nil || t.repo == nil {
		return Session{}, errors.New("pomodoro timer not initialized")
	}

	current, ok, err := t.repo.OpenPomodoro(ctx)
	if err != nil {
		return Session{}, err
	}
	if !ok {
		return Session{}, ErrNotRunning
	}

	end := t.now().Truncate(time.Second)
	if end.Before(current.Start) {
		end = current.Start
	}
	current.End = end
	current.Completed = current.Elapsed(end) >= t.work

	if err := t.repo.FinishPomodoro(ctx, current.ID, current.End, current.Completed); err != nil {
		return Session{}, fmt.Errorf("stop pomodoro: %w", err)
	}
	return current, nil
}

// Current returns the open session, if any.
func (t *Timer) Current(ctx context.Context) (Session, bool, error) {
	return t.repo.OpenPomodoro(ctx)
}

// Remaining is the work time left in a running session, never negative.
func (t *Timer) Remaining(s Session) time.Duration {
	left := t.work - s.Elapsed(t.now())
	if left < 0 {
		return 0
	}
	return left
}

// BreakUntil is when the break after a finished session ends.
func (t *Timer) BreakUntil(s Session) time.Time {
	return s.End.Add(t.breakTime)
}

// Day lists the sessions started on the given day.
func (t *Timer) Day(ctx context.Context, day time.Time) ([]Session, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return t.repo.PomodorosBetween(ctx, start, start.AddDate(0, 0, 1))
}
