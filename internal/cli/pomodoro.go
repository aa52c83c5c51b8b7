package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/analitik/internal/goal"
	"github.com/faizmokh/analitik/internal/pomodoro"
)

func newPomodoroCommand(ctx context.Context, env *appEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pomodoro",
		Aliases: []string{"pomo"},
		Short:   "Start, stop and review pomodoro sessions.",
	}

	cmd.AddCommand(
		newPomodoroStartCommand(ctx, env),
		newPomodoroStopCommand(ctx, env),
		newPomodoroListCommand(ctx, env),
	)
	return cmd
}

func newPomodoroStartCommand(ctx context.Context, env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "start [label...]",
		Short: "Start a pomodoro.",
		RunE: func(cmd *cobra.Command, args []string) error {
			timer, err := env.Timer(ctx)
			if err != nil {
				return err
			}
			session, err := timer.Start(ctx, strings.TrimSpace(strings.Join(args, " ")))
			if err != nil {
				if errors.Is(err, pomodoro.ErrAlreadyRunning) {
					return fmt.Errorf("pomodoro #%d already running since %s", session.ID, session.Start.Format("15:04"))
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Started pomodoro #%d at %s (%s left)\n",
				session.ID, session.Start.Format("15:04"), goal.FormatDuration(timer.Remaining(session)))
			return nil
		},
	}
}

func newPomodoroStopCommand(ctx context.Context, env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running pomodoro.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			timer, err := env.Timer(ctx)
			if err != nil {
				return err
			}
			session, err := timer.Stop(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Stopped pomodoro #%d after %s\n", session.ID, goal.FormatDuration(session.Elapsed(session.End)))
			if session.Completed {
				fmt.Fprintf(out, "Completed. Break until %s\n", timer.BreakUntil(session).Format("15:04"))
			}
			return nil
		},
	}
}

func newPomodoroListCommand(ctx context.Context, env *appEnv) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the pomodoros of a day.",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			timer, err := env.Timer(ctx)
			if err != nil {
				return err
			}
			sessions, err := timer.Day(ctx, date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintf(out, "No pomodoros for %s\n", date.Format(pomodoro.DateDayFormat))
				return nil
			}
			fmt.Fprintf(out, "%s\n", date.Format(pomodoro.DateDayFormat))
			for _, s := range sessions {
				fmt.Fprintln(out, formatSession(s))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")

	return cmd
}

func formatSession(s pomodoro.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s-", s.ID, s.Start.Format("15:04"))
	switch {
	case s.Running():
		b.WriteString("now   [running]")
	case s.Completed:
		fmt.Fprintf(&b, "%s [done]", s.End.Format("15:04"))
	default:
		fmt.Fprintf(&b, "%s [stopped]", s.End.Format("15:04"))
	}
	if s.Label != "" {
		b.WriteByte(' ')
		b.WriteString(s.Label)
	}
	return b.String()
}
