package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/analitik/internal/activity"
	"github.com/faizmokh/analitik/internal/analytics"
	"github.com/faizmokh/analitik/internal/files"
	"github.com/faizmokh/analitik/internal/goal"
	"github.com/faizmokh/analitik/internal/journal"
)

type stubEvaluator struct {
	results []analytics.Result
	err     error
}

func (s stubEvaluator) Evaluate(context.Context, time.Time) ([]analytics.Result, error) {
	return s.results, s.err
}

type stubRecorder struct {
	calls     int
	date      time.Time
	snapshots []journal.Snapshot
	err       error
}

func (s *stubRecorder) Record(_ context.Context, date time.Time, snapshots []journal.Snapshot) error {
	s.calls++
	s.date = date
	s.snapshots = snapshots
	return s.err
}

func sampleResults() []analytics.Result {
	return []analytics.Result{
		{
			Goal:     goal.Goal{ID: 1, Kind: goal.KindSwitchesTo, Operator: goal.GreaterThanOrEqual, Target: 5, Activity: activity.Email, TimeSpan: goal.SpanDay},
			Progress: goal.Progress{Hours: 0.5, Switches: 5, Status: goal.StatusVeryHigh},
		},
		{Goal: goal.Goal{ID: 2}, Err: goal.ErrInvalidOperator},
	}
}

func keyPress(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func loaded(t *testing.T, m Model, evaluator Evaluator) Model {
	t.Helper()
	m.evaluator = evaluator
	updated, _ := m.Update(m.evaluateCmd(m.currentDate)())
	return updated.(Model)
}

func TestModelRendersResults(t *testing.T) {
	m := loaded(t, NewModel(context.Background(), nil, nil), stubEvaluator{results: sampleResults()})

	if m.loading {
		t.Fatal("expected loading to be false after results arrive")
	}
	view := m.View()
	for _, want := range []string{
		"[very-high] #1 I want to switch at least 5 times to Emails per day.",
		"0.50 hours / 5 switches",
		"[error] #2",
		"Evaluated 2 goals.",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelReportsEvaluationError(t *testing.T) {
	m := loaded(t, NewModel(context.Background(), nil, nil), stubEvaluator{err: errors.New("database locked")})

	if !strings.Contains(m.View(), "database locked") {
		t.Fatalf("view missing error:\n%s", m.View())
	}
}

func TestModelNavigatesDays(t *testing.T) {
	m := NewModel(context.Background(), stubEvaluator{}, nil)
	start := m.currentDate

	updated, cmd := m.Update(keyPress("h"))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("expected evaluation command")
	}
	if !sameDay(m.currentDate, start.AddDate(0, 0, -1)) {
		t.Fatalf("currentDate = %s, want previous day", m.currentDate)
	}
	if !m.loading {
		t.Fatal("expected loading while evaluating")
	}

	// Results for a date no longer displayed are dropped.
	updated, _ = m.Update(resultsLoadedMsg{date: start, results: sampleResults()})
	m = updated.(Model)
	if len(m.results) != 0 || !m.loading {
		t.Fatal("stale results should be ignored")
	}

	updated, _ = m.Update(keyPress("t"))
	m = updated.(Model)
	if !sameDay(m.currentDate, start) {
		t.Fatalf("currentDate = %s, want today", m.currentDate)
	}
}

func TestModelSnapshotRecordsSuccessfulGoals(t *testing.T) {
	recorder := &stubRecorder{}
	m := loaded(t, NewModel(context.Background(), nil, recorder), stubEvaluator{results: sampleResults()})

	updated, cmd := m.Update(keyPress("s"))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("expected snapshot command")
	}

	updated, _ = m.Update(cmd())
	m = updated.(Model)
	if len(recorder.snapshots) != 1 || recorder.snapshots[0].GoalID != 1 {
		t.Fatalf("recorded = %+v", recorder.snapshots)
	}
	if !strings.Contains(m.statusLine, "Recorded 1 goal for") {
		t.Fatalf("statusLine = %q", m.statusLine)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(context.Background(), stubEvaluator{}, nil)
	_, cmd := m.Update(keyPress("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestModelSnapshotSkippedAfterFailedEvaluation(t *testing.T) {
	recorder := &stubRecorder{}
	m := NewModel(context.Background(), nil, recorder)

	// Results from an earlier successful load must not survive a failed reload.
	m = loaded(t, m, stubEvaluator{results: sampleResults()})
	m = loaded(t, m, stubEvaluator{err: errors.New("db locked")})

	updated, cmd := m.Update(keyPress("s"))
	m = updated.(Model)
	if cmd != nil {
		t.Fatal("expected no snapshot command after a failed evaluation")
	}
	if recorder.calls != 0 {
		t.Fatalf("recorder called %d times", recorder.calls)
	}
	if !strings.Contains(m.statusLine, "Nothing to snapshot") {
		t.Fatalf("statusLine = %q", m.statusLine)
	}
}

func TestModelSnapshotKeepsJournalWhenEveryGoalFails(t *testing.T) {
	mgr, err := files.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	writer := journal.NewWriter(mgr)
	ctx := context.Background()

	m := NewModel(ctx, nil, writer)
	earlier := journal.Snapshot{GoalID: 1, Status: goal.StatusHigh, Description: "Goal.", Progress: "0.90 hours / 3 switches"}
	if err := writer.Record(ctx, m.currentDate, []journal.Snapshot{earlier}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	failing := []analytics.Result{{Goal: goal.Goal{ID: 1}, Err: goal.ErrInvalidKind}}
	m = loaded(t, m, stubEvaluator{results: failing})

	updated, cmd := m.Update(keyPress("s"))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("expected snapshot command")
	}
	updated, _ = m.Update(cmd())
	m = updated.(Model)
	if !strings.Contains(m.errorLine, journal.ErrNoSnapshots.Error()) {
		t.Fatalf("errorLine = %q", m.errorLine)
	}

	section, err := journal.NewReader(mgr).Section(ctx, m.currentDate)
	if err != nil {
		t.Fatalf("Section: %v", err)
	}
	if len(section.Snapshots) != 1 || section.Snapshots[0] != earlier {
		t.Fatalf("journal section = %+v, want the earlier snapshot", section)
	}
}
