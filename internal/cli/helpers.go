package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/analitik/internal/activity"
	"github.com/faizmokh/analitik/internal/analytics"
	"github.com/faizmokh/analitik/internal/goal"
	"github.com/faizmokh/analitik/internal/journal"
	"github.com/faizmokh/analitik/internal/ui/theme"
)

func resolveDate(dateFlag string) (time.Time, error) {
	if dateFlag == "" {
		now := time.Now().In(time.Local)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

func resolveTime(date time.Time, timeFlag string) (time.Time, error) {
	parsed, err := time.ParseInLocation("15:04", timeFlag, date.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time: %w", err)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}

// dayBounds returns the window covering the days ending on date.
func dayBounds(date time.Time, days int) (time.Time, time.Time) {
	return date.AddDate(0, 0, -(days - 1)), date.AddDate(0, 0, 1)
}

func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}

func formatGoal(g goal.Goal) string {
	if g.Title == "" {
		return fmt.Sprintf("#%d %s", g.ID, goal.Describe(g))
	}
	return fmt.Sprintf("#%d %s: %s", g.ID, g.Title, goal.Describe(g))
}

func formatInterval(i activity.Interval) string {
	return fmt.Sprintf("#%d %s-%s %s (%s)",
		i.ID,
		i.Start.Format("15:04"),
		i.End.Format("15:04"),
		i.Category.Description(),
		goal.FormatDuration(i.Duration()),
	)
}

func printResults(cmd *cobra.Command, date time.Time, results []analytics.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", date.Format("2006-01-02"))
	if len(results) == 0 {
		fmt.Fprintln(out, "(no goals)")
		return
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(out, "%s #%d %v\n", theme.Error.Render("[error]"), r.Goal.ID, r.Err)
			continue
		}
		fmt.Fprintf(out, "%s #%d %s (%s)\n", theme.StatusTag(r.Progress.Status), r.Goal.ID, r.Description(), r.Message())
	}
}

func printSection(cmd *cobra.Command, section journal.DateSection) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", section.Date.Format("2006-01-02"))
	if len(section.Snapshots) == 0 {
		fmt.Fprintln(out, "(no goals)")
		return
	}
	for _, s := range section.Snapshots {
		fmt.Fprintf(out, "%s #%d %s (%s)\n", theme.StatusTag(s.Status), s.GoalID, s.Description, s.Progress)
	}
}

func printSections(cmd *cobra.Command, sections []journal.DateSection) {
	for i, section := range sections {
		printSection(cmd, section)
		if i < len(sections)-1 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
	}
}
