package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/analitik/internal/activity"
	"github.com/faizmokh/analitik/internal/analytics"
	"github.com/faizmokh/analitik/internal/goal"
	"github.com/faizmokh/analitik/internal/journal"
	"github.com/faizmokh/analitik/internal/store"
)

func newGoalCommand(ctx context.Context, env *appEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Define goals and check progress toward them.",
	}

	cmd.AddCommand(
		newGoalAddCommand(ctx, env),
		newGoalListCommand(ctx, env),
		newGoalRemoveCommand(ctx, env),
		newGoalStatusCommand(ctx, env),
		newGoalSnapshotCommand(ctx, env),
		newGoalHistoryCommand(ctx, env),
	)
	return cmd
}

func newGoalAddCommand(ctx context.Context, env *appEnv) *cobra.Command {
	var kindFlag, opFlag, targetFlag, activityFlag, spanFlag string

	cmd := &cobra.Command{
		Use:   "add [title...]",
		Short: "Add a goal against an activity category.",
		Example: `  analitik goal add --kind switches --op ge --target 5 --activity email
  analitik goal add --kind time --op le --target 2h --activity web_browsing --per week Less browsing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := goal.ParseKind(kindFlag)
			if err != nil {
				return err
			}
			op, err := goal.ParseOperator(opFlag)
			if err != nil {
				return err
			}
			target, err := goal.ParseTarget(kind, targetFlag)
			if err != nil {
				return err
			}
			category, err := activity.ParseCategory(activityFlag)
			if err != nil {
				return err
			}
			span, err := goal.ParseTimeSpan(spanFlag)
			if err != nil {
				return err
			}

			st, err := env.Store(ctx)
			if err != nil {
				return err
			}
			created, err := st.CreateGoal(ctx, goal.Goal{
				Title:    strings.TrimSpace(strings.Join(args, " ")),
				Kind:     kind,
				Operator: op,
				Target:   target,
				Activity: category,
				TimeSpan: span,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added goal %s\n", formatGoal(created))
			return nil
		},
	}

	cmd.Flags().StringVar(&kindFlag, "kind", "", "Goal kind: switches|time")
	cmd.Flags().StringVar(&opFlag, "op", "ge", "Comparison: gt|ge|lt|le|eq")
	cmd.Flags().StringVar(&targetFlag, "target", "", "Switch count, or a duration such as 90m for time goals")
	cmd.Flags().StringVar(&activityFlag, "activity", "", "Activity category (see: analitik activity categories)")
	cmd.Flags().StringVar(&spanFlag, "per", string(goal.SpanDay), "Time span: day|week|month|morning|afternoon")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("activity")

	return cmd
}

func newGoalListCommand(ctx context.Context, env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List defined goals.",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := env.Store(ctx)
			if err != nil {
				return err
			}
			goals, err := st.ListGoals(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(goals) == 0 {
				fmt.Fprintln(out, "No goals defined.")
				return nil
			}
			for _, g := range goals {
				fmt.Fprintln(out, formatGoal(g))
			}
			return nil
		},
	}
}

func newGoalRemoveCommand(ctx context.Context, env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Remove a goal.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			st, err := env.Store(ctx)
			if err != nil {
				return err
			}
			if err := st.DeleteGoal(ctx, id); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("goal #%d not found", id)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal #%d\n", id)
			return nil
		},
	}
}

func newGoalStatusCommand(ctx context.Context, env *appEnv) *cobra.Command {
	var (
		dateFlag   string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Classify progress toward every goal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			service, err := env.Analytics(ctx)
			if err != nil {
				return err
			}
			results, err := service.Evaluate(ctx, date)
			if err != nil {
				return err
			}

			if outputJSON {
				return printResultsJSON(cmd, results)
			}
			printResults(cmd, date, results)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Reference date in YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit results as JSON objects")

	return cmd
}

func newGoalSnapshotCommand(ctx context.Context, env *appEnv) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record the current goal statuses in the journal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			service, err := env.Analytics(ctx)
			if err != nil {
				return err
			}
			results, err := service.Evaluate(ctx, date)
			if err != nil {
				return err
			}

			snapshots := analytics.Snapshots(results)
			writer := journal.NewWriter(env.manager)
			if err := writer.Record(ctx, date, snapshots); err != nil {
				if errors.Is(err, journal.ErrNoSnapshots) {
					return fmt.Errorf("no goal evaluated for %s, journal left unchanged", date.Format("2006-01-02"))
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d goal(s) for %s\n", len(snapshots), date.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")

	return cmd
}

func newGoalHistoryCommand(ctx context.Context, env *appEnv) *cobra.Command {
	var (
		dateFlag string
		days     int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded goal snapshots for recent days.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("days must be > 0")
			}
			end, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			start := end.AddDate(0, 0, -(days - 1))

			reader := journal.NewReader(env.manager)
			sections, err := reader.SectionsBetween(ctx, start, end)
			if err != nil {
				return err
			}
			if len(sections) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No snapshots between %s and %s\n", start.Format("2006-01-02"), end.Format("2006-01-02"))
				return nil
			}
			printSections(cmd, sections)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Last date in YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&days, "days", 7, "Number of days to include")

	return cmd
}

func printResultsJSON(cmd *cobra.Command, results []analytics.Result) error {
	type dto struct {
		ID          int64    `json:"id"`
		Description string   `json:"description"`
		Status      string   `json:"status,omitempty"`
		Percentage  *float64 `json:"percentage,omitempty"`
		Hours       float64  `json:"hours"`
		Switches    int      `json:"switches"`
		Success     *bool    `json:"success,omitempty"`
		Start       string   `json:"start"`
		End         string   `json:"end"`
		Error       string   `json:"error,omitempty"`
	}

	list := make([]dto, 0, len(results))
	for _, r := range results {
		item := dto{
			ID:          r.Goal.ID,
			Description: r.Description(),
			Hours:       r.Progress.Hours,
			Switches:    r.Progress.Switches,
			Success:     r.Progress.Success,
			Start:       r.Start.Format("2006-01-02T15:04:05"),
			End:         r.End.Format("2006-01-02T15:04:05"),
		}
		if r.Err != nil {
			item.Error = r.Err.Error()
		} else {
			item.Status = r.Progress.Status.String()
			// encoding/json cannot represent NaN.
			if !math.IsNaN(r.Percentage) && !math.IsInf(r.Percentage, 0) {
				pct := r.Percentage
				item.Percentage = &pct
			}
		}
		list = append(list, item)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
