// Package analytics evaluates every stored goal against tracked activity.
package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"github.com/faizmokh/analitik/internal/activity"
	"github.com/faizmokh/analitik/internal/goal"
	"github.com/faizmokh/analitik/internal/journal"
	"github.com/faizmokh/analitik/internal/logging"
)

// GoalSource lists the goals to evaluate.
type GoalSource interface {
	ListGoals(ctx context.Context) ([]goal.Goal, error)
}

// UsageSource aggregates tracked activity for a category inside a window.
type UsageSource interface {
	Usage(ctx context.Context, category activity.Category, start, end time.Time) (activity.Usage, error)
}

// Result is the evaluation of one goal for one reference time. Err is set
// when the goal itself is misconfigured; the other goals are still evaluated.
type Result struct {
	Goal       goal.Goal
	Progress   goal.Progress
	Percentage float64
	Start      time.Time
	End        time.Time
	Err        error
}

// Description is the goal sentence, prefixed with the title when one is set.
func (r Result) Description() string {
	if r.Goal.Title == "" {
		return goal.Describe(r.Goal)
	}
	return r.Goal.Title + ": " + goal.Describe(r.Goal)
}

// Message is the progress line shown next to the goal.
func (r Result) Message() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return goal.ProgressMessage(r.Progress)
}

// Service evaluates goals against tracked activity. Weeks begin on weekStart.
type Service struct {
	goals     GoalSource
	usage     UsageSource
	weekStart time.Weekday
	logger    hclog.Logger
}

// NewService wires a Service. A nil logger discards output.
func NewService(goals GoalSource, usage UsageSource, weekStart time.Weekday, logger hclog.Logger) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{
		goals:     goals,
		usage:     usage,
		weekStart: weekStart,
		logger:    logger.Named("analytics"),
	}
}

// Evaluate classifies every goal for the windows containing ref.
func (s *Service) Evaluate(ctx context.Context, ref time.Time) ([]Result, error) {
	goals, err := s.goals.ListGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	results := make([]Result, 0, len(goals))
	for _, g := range goals {
		result, err := s.EvaluateGoal(ctx, g, ref)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// EvaluateGoal classifies a single goal. Storage failures are returned as
// errors. Validation and classification failures are reported through
// Result.Err; an invalid goal is not looked up in the usage source.
func (s *Service) EvaluateGoal(ctx context.Context, g goal.Goal, ref time.Time) (Result, error) {
	result := Result{Goal: g, Percentage: math.NaN()}
	if err := g.Validate(); err != nil {
		s.logger.Warn("goal is misconfigured", "id", g.ID, "error", err)
		result.Err = err
		return result, nil
	}

	start, end := g.TimeSpan.Window(ref, s.weekStart)
	result.Start, result.End = start, end

	usage, err := s.usage.Usage(ctx, g.Activity, start, end)
	if err != nil {
		return Result{}, fmt.Errorf("usage for goal %d: %w", g.ID, err)
	}

	progress, err := goal.Evaluate(g, goal.ProgressFromUsage(usage))
	if err != nil {
		s.logger.Warn("goal evaluation failed", "id", g.ID, "error", err)
		result.Progress = progress
		result.Err = err
		return result, nil
	}

	result.Progress = progress
	result.Percentage = goal.Percentage(g, progress)
	s.logger.Debug("goal evaluated",
		"id", g.ID,
		"percentage", result.Percentage,
		"status", progress.Status.String(),
	)
	return result, nil
}

// Snapshots converts successful results into journal lines. Results with an
// error are skipped.
func Snapshots(results []Result) []journal.Snapshot {
	snapshots := make([]journal.Snapshot, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		snapshots = append(snapshots, journal.Snapshot{
			GoalID:      r.Goal.ID,
			Status:      r.Progress.Status,
			Description: r.Description(),
			Progress:    goal.ProgressMessage(r.Progress),
		})
	}
	return snapshots
}
