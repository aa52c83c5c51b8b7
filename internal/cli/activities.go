package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/analitik/internal/activity"
	"github.com/faizmokh/analitik/internal/goal"
	"github.com/faizmokh/analitik/internal/store"
)

func newActivityCommand(ctx context.Context, env *appEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Record and review tracked activity.",
	}

	cmd.AddCommand(
		newActivityLogCommand(ctx, env),
		newActivityListCommand(ctx, env),
		newActivityRemoveCommand(ctx, env),
		newActivityCategoriesCommand(),
	)
	return cmd
}

func newActivityLogCommand(ctx context.Context, env *appEnv) *cobra.Command {
	var dateFlag, startFlag, endFlag string

	cmd := &cobra.Command{
		Use:   "log <category>",
		Short: "Record time spent on an activity category.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := activity.ParseCategory(args[0])
			if err != nil {
				return err
			}
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			start, err := resolveTime(date, startFlag)
			if err != nil {
				return err
			}
			end, err := resolveTime(date, endFlag)
			if err != nil {
				return err
			}

			st, err := env.Store(ctx)
			if err != nil {
				return err
			}
			interval := activity.Interval{Category: category, Start: start, End: end}
			id, err := st.RecordActivity(ctx, interval)
			if err != nil {
				return err
			}
			interval.ID = id

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s\n", formatInterval(interval))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&startFlag, "start", "", "Start time in HH:MM")
	cmd.Flags().StringVar(&endFlag, "end", "", "End time in HH:MM")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newActivityListCommand(ctx context.Context, env *appEnv) *cobra.Command {
	var dateFlag, categoryFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activity recorded on a day.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var category activity.Category
			if categoryFlag != "" {
				parsed, err := activity.ParseCategory(categoryFlag)
				if err != nil {
					return err
				}
				category = parsed
			}
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			end := date.AddDate(0, 0, 1)

			st, err := env.Store(ctx)
			if err != nil {
				return err
			}
			intervals, err := st.ActivitiesBetween(ctx, category, date, end)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(intervals) == 0 {
				fmt.Fprintf(out, "No activity for %s\n", date.Format("2006-01-02"))
				return nil
			}
			fmt.Fprintf(out, "%s\n", date.Format("2006-01-02"))
			for _, i := range intervals {
				fmt.Fprintln(out, formatInterval(i))
			}
			usage := activity.Summarize(intervals, date, end)
			fmt.Fprintf(out, "Total: %s over %d switch(es)\n", goal.FormatDuration(usage.Duration), usage.Switches)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "Only show this category")

	return cmd
}

func newActivityRemoveCommand(ctx context.Context, env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a recorded activity interval.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			st, err := env.Store(ctx)
			if err != nil {
				return err
			}
			if err := st.DeleteActivity(ctx, id); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("activity #%d not found", id)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted activity #%d\n", id)
			return nil
		},
	}
}

func newActivityCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the activity categories goals can target.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, c := range activity.Categories() {
				fmt.Fprintf(out, "%-20s %s\n", c, c.Description())
			}
			return nil
		},
	}
}
