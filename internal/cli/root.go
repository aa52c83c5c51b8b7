package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/analitik/internal/config"
	"github.com/faizmokh/analitik/internal/exitcode"
	"github.com/faizmokh/analitik/internal/files"
	"github.com/faizmokh/analitik/internal/journal"
	"github.com/faizmokh/analitik/internal/ui"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, env *appEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analitik",
		Short: "Track activity, emotions and pomodoros, and check progress toward your goals.",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := env.Analytics(ctx)
			if err != nil {
				return err
			}
			m := ui.NewModel(ctx, service, journal.NewWriter(env.manager))
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&env.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	cmd.AddCommand(
		newGoalCommand(ctx, env),
		newActivityCommand(ctx, env),
		newFeelCommand(ctx, env),
		newPomodoroCommand(ctx, env),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context, logOut io.Writer) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	env := newAppEnv(manager, logOut)
	defer env.Close()

	cmd := NewRootCommand(ctx, env)
	return cmd.Execute()
}

// Main is a helper used by cmd/analitik/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var verr *config.ValidationError
	switch {
	case err == nil:
		return exitcode.Success
	case errors.As(err, &verr):
		return exitcode.InvalidConfig
	case errors.Is(err, context.Canceled):
		return exitcode.Interrupted
	default:
		return exitcode.RuntimeFailure
	}
}
