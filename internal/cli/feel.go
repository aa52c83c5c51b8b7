package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/faizmokh/analitik/internal/emotion"
)

func newFeelCommand(ctx context.Context, env *appEnv) *cobra.Command {
	var activityFlag string

	cmd := &cobra.Command{
		Use:   "feel <valence> <arousal>",
		Short: "Record how you feel right now.",
		Long: `Record a self-reported emotional state. Valence is how pleasant you feel
and arousal how energised, both on the configured scale (default 1-5).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			valence, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid valence %q", args[0])
			}
			arousal, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid arousal %q", args[1])
			}

			tracker, err := env.Tracker(ctx)
			if err != nil {
				return err
			}
			q, err := tracker.Record(ctx, emotion.Questionnaire{
				Activity: activityFlag,
				Valence:  valence,
				Arousal:  arousal,
			})
			if err != nil {
				return err
			}
			next, err := tracker.NextCheckIn(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Recorded valence %d, arousal %d at %s\n", q.Valence, q.Arousal, q.Timestamp.Format("15:04"))
			fmt.Fprintf(out, "Next check-in after %s\n", next.Format("15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&activityFlag, "activity", "", "What you were doing")

	cmd.AddCommand(
		newFeelSummaryCommand(ctx, env),
		newFeelOpenedCommand(ctx, env),
	)

	return cmd
}

func newFeelSummaryCommand(ctx context.Context, env *appEnv) *cobra.Command {
	var (
		dateFlag string
		days     int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Average recorded emotional state over recent days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("days must be > 0")
			}
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			start, end := dayBounds(date, days)

			tracker, err := env.Tracker(ctx)
			if err != nil {
				return err
			}
			summary, err := tracker.Summary(ctx, start, end)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s to %s\n", start.Format("2006-01-02"), date.Format("2006-01-02"))
			if summary.Responses == 0 {
				fmt.Fprintf(out, "No responses (questionnaire opened %d time(s))\n", summary.Opened)
				return nil
			}
			fmt.Fprintf(out, "Responses: %d (questionnaire opened %d time(s))\n", summary.Responses, summary.Opened)
			fmt.Fprintf(out, "Valence: %.2f\n", summary.Valence)
			fmt.Fprintf(out, "Arousal: %.2f\n", summary.Arousal)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Last date in YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&days, "days", 7, "Number of days to include")

	return cmd
}

func newFeelOpenedCommand(ctx context.Context, env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:    "opened",
		Short:  "Record that the questionnaire was shown.",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := env.Tracker(ctx)
			if err != nil {
				return err
			}
			if err := tracker.PopupOpened(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Recorded questionnaire prompt")
			return nil
		},
	}
}
