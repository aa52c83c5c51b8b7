package cli

import (
	"context"
	"testing"
)

func TestFeelRecordAndSummary(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	out := executeCommand(t, newFeelCommand(ctx, env), "4", "2", "--activity", "standup")
	assertContains(t, out, "Recorded valence 4, arousal 2 at")
	assertContains(t, out, "Next check-in after")

	executeCommand(t, newFeelCommand(ctx, env), "2", "4")
	executeCommand(t, newFeelCommand(ctx, env), "opened")

	summary := executeCommand(t, newFeelCommand(ctx, env), "summary", "--days", "1")
	assertContains(t, summary, "Responses: 2 (questionnaire opened 1 time(s))")
	assertContains(t, summary, "Valence: 3.00")
	assertContains(t, summary, "Arousal: 3.00")
}

func TestFeelRejectsOutOfScale(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	for _, args := range [][]string{{"9", "1"}, {"3", "0"}, {"high", "1"}, {"3"}} {
		if err := executeCommandErr(t, newFeelCommand(ctx, env), args...); err == nil {
			t.Fatalf("expected error for %q", args)
		}
	}
}

func TestFeelSummaryWithoutResponses(t *testing.T) {
	out := executeCommand(t, newFeelCommand(context.Background(), newTestEnv(t)), "summary", "--date", "2025-11-21", "--days", "2")
	assertContains(t, out, "2025-11-20 to 2025-11-21")
	assertContains(t, out, "No responses (questionnaire opened 0 time(s))")
}
