package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/analitik/internal/files"
	"github.com/faizmokh/analitik/internal/journal"
)

func TestCLIWorkflowEndToEnd(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	date := "2025-11-21"

	// 1. Record some activity.
	logOut := executeCommand(t, newActivityCommand(ctx, env),
		"log", "email", "--date", date, "--start", "09:00", "--end", "09:30",
	)
	assertContains(t, logOut, "Logged #1 09:00-09:30 Emails (30m)")
	executeCommand(t, newActivityCommand(ctx, env),
		"log", "email", "--date", date, "--start", "10:00", "--end", "10:30",
	)
	executeCommand(t, newActivityCommand(ctx, env),
		"log", "web_browsing", "--date", date, "--start", "11:00", "--end", "13:00",
	)

	// 2. Define two goals.
	addOut := executeCommand(t, newGoalCommand(ctx, env),
		"add", "--kind", "switches", "--op", "ge", "--target", "2", "--activity", "email",
	)
	assertContains(t, addOut, "Added goal #1 I want to switch at least 2 times to Emails per day.")
	addOut = executeCommand(t, newGoalCommand(ctx, env),
		"add", "--kind", "time", "--op", "le", "--target", "1h", "--activity", "web_browsing",
		"Less", "browsing",
	)
	assertContains(t, addOut, "Added goal #2 Less browsing: I want to spend at most 1h on Web Browsing per day.")

	// 3. Classify progress.
	statusOut := executeCommand(t, newGoalCommand(ctx, env), "status", "--date", date)
	assertContains(t, statusOut, "[very-high] #1 I want to switch at least 2 times to Emails per day. (1.00 hours / 2 switches)")
	assertContains(t, statusOut, "[very-low] #2 Less browsing: I want to spend at most 1h on Web Browsing per day. (2.00 hours / 1 switches)")

	jsonOut := executeCommand(t, newGoalCommand(ctx, env), "status", "--date", date, "--json")
	assertContains(t, jsonOut, `"status": "very-high"`)
	assertContains(t, jsonOut, `"percentage": 2`)

	// 4. Snapshot into the journal and read it back.
	snapOut := executeCommand(t, newGoalCommand(ctx, env), "snapshot", "--date", date)
	assertContains(t, snapOut, "Recorded 2 goal(s) for 2025-11-21")

	section, err := journal.NewReader(env.manager).Section(ctx, mustParseDate(t, date))
	if err != nil {
		t.Fatalf("reader.Section: %v", err)
	}
	if len(section.Snapshots) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(section.Snapshots))
	}

	historyOut := executeCommand(t, newGoalCommand(ctx, env), "history", "--date", "2025-11-22", "--days", "3")
	assertContains(t, historyOut, "2025-11-21\n[very-high] #1")

	// 5. Remove a goal.
	rmOut := executeCommand(t, newGoalCommand(ctx, env), "rm", "2")
	assertContains(t, rmOut, "Deleted goal #2")
	listOut := executeCommand(t, newGoalCommand(ctx, env), "list")
	assertContains(t, listOut, "#1 I want to switch")
	assertNotContains(t, listOut, "#2")

	err = executeCommandErr(t, newGoalCommand(ctx, env), "rm", "2")
	if err == nil || !strings.Contains(err.Error(), "goal #2 not found") {
		t.Fatalf("rm missing goal error = %v", err)
	}
}

func TestGoalStatusWithoutGoals(t *testing.T) {
	env := newTestEnv(t)
	out := executeCommand(t, newGoalCommand(context.Background(), env), "status", "--date", "2025-11-21")
	assertContains(t, out, "2025-11-21\n(no goals)")
}

func TestGoalHistoryWithoutSnapshots(t *testing.T) {
	env := newTestEnv(t)
	out := executeCommand(t, newGoalCommand(context.Background(), env), "history", "--date", "2025-11-21", "--days", "2")
	assertContains(t, out, "No snapshots between 2025-11-20 and 2025-11-21")
}

func TestGoalAddRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	cases := [][]string{
		{"add", "--kind", "minutes", "--target", "5", "--activity", "email"},
		{"add", "--kind", "switches", "--op", "~", "--target", "5", "--activity", "email"},
		{"add", "--kind", "time", "--target", "five", "--activity", "email"},
		{"add", "--kind", "switches", "--target", "5", "--activity", "gaming"},
		{"add", "--kind", "switches", "--target", "5", "--activity", "email", "--per", "year"},
	}
	for _, args := range cases {
		if err := executeCommandErr(t, newGoalCommand(ctx, env), args...); err == nil {
			t.Fatalf("expected error for %q", args)
		}
	}
}

func newTestEnv(t *testing.T) *appEnv {
	t.Helper()
	env := newAppEnv(newTempManager(t), io.Discard)
	t.Cleanup(func() {
		if err := env.Close(); err != nil {
			t.Errorf("env.Close: %v", err)
		}
	})
	return env
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func executeCommandErr(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd.Execute()
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func assertNotContains(t *testing.T, output, want string) {
	t.Helper()
	if strings.Contains(output, want) {
		t.Fatalf("output %q unexpectedly contained substring %q", output, want)
	}
}

func newTempManager(t *testing.T) *files.Manager {
	t.Helper()
	base := t.TempDir()
	mgr, err := files.NewManager(base)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return mgr
}

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		t.Fatalf("time.ParseInLocation: %v", err)
	}
	return d
}

func TestGoalAddStampsCreatedAt(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	before := time.Now().Truncate(time.Second)
	executeCommand(t, newGoalCommand(ctx, env),
		"add", "--kind", "switches", "--target", "3", "--activity", "instant_messaging",
	)

	st, err := env.Store(ctx)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	g, err := st.GetGoal(ctx, 1)
	if err != nil {
		t.Fatalf("GetGoal: %v", err)
	}
	if g.CreatedAt.Before(before) || g.CreatedAt.After(time.Now()) {
		t.Fatalf("CreatedAt = %s, want between %s and now", g.CreatedAt, before)
	}
}

func TestGoalSnapshotKeepsJournalWhenNothingEvaluates(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	date := mustParseDate(t, "2025-11-21")

	earlier := journal.Snapshot{GoalID: 1, Description: "Goal.", Progress: "1.00 hours / 2 switches"}
	if err := journal.NewWriter(env.manager).Record(ctx, date, []journal.Snapshot{earlier}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	err := executeCommandErr(t, newGoalCommand(ctx, env), "snapshot", "--date", "2025-11-21")
	if err == nil || !strings.Contains(err.Error(), "journal left unchanged") {
		t.Fatalf("snapshot error = %v", err)
	}

	section, err := journal.NewReader(env.manager).Section(ctx, date)
	if err != nil {
		t.Fatalf("Section: %v", err)
	}
	if len(section.Snapshots) != 1 || section.Snapshots[0] != earlier {
		t.Fatalf("section = %+v, want the earlier snapshot", section)
	}
}
