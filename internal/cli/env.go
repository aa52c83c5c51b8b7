package cli

import (
	"context"
	"io"

	hclog "github.com/hashicorp/go-hclog"

	"github.com/faizmokh/analitik/internal/analytics"
	"github.com/faizmokh/analitik/internal/config"
	"github.com/faizmokh/analitik/internal/emotion"
	"github.com/faizmokh/analitik/internal/files"
	"github.com/faizmokh/analitik/internal/logging"
	"github.com/faizmokh/analitik/internal/pomodoro"
	"github.com/faizmokh/analitik/internal/store"
)

// appEnv lazily builds the collaborators shared by every command so that
// commands which never touch the database do not open it.
type appEnv struct {
	manager *files.Manager
	logOut  io.Writer
	verbose bool

	cfg    *config.Config
	logger hclog.Logger
	store  *store.Store
}

func newAppEnv(manager *files.Manager, logOut io.Writer) *appEnv {
	return &appEnv{manager: manager, logOut: logOut}
}

func (e *appEnv) Config() (config.Config, error) {
	if e.cfg == nil {
		cfg, err := config.Load(e.manager.ConfigPath())
		if err != nil {
			return config.Config{}, err
		}
		e.cfg = &cfg
	}
	return *e.cfg, nil
}

func (e *appEnv) Logger() hclog.Logger {
	if e.logger == nil {
		e.logger = logging.New(e.logOut, e.verbose)
	}
	return e.logger
}

// Store opens the database on first use; Close releases it.
func (e *appEnv) Store(ctx context.Context) (*store.Store, error) {
	if e.store == nil {
		if err := e.manager.EnsureBase(); err != nil {
			return nil, err
		}
		st, err := store.Open(ctx, e.manager.DatabasePath(), e.Logger())
		if err != nil {
			return nil, err
		}
		e.store = st
	}
	return e.store, nil
}

func (e *appEnv) Analytics(ctx context.Context) (*analytics.Service, error) {
	cfg, err := e.Config()
	if err != nil {
		return nil, err
	}
	st, err := e.Store(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.NewService(st, st, cfg.WeekStartDay(), e.Logger()), nil
}

func (e *appEnv) Timer(ctx context.Context) (*pomodoro.Timer, error) {
	cfg, err := e.Config()
	if err != nil {
		return nil, err
	}
	st, err := e.Store(ctx)
	if err != nil {
		return nil, err
	}
	return pomodoro.NewTimer(st, cfg.WorkDuration(), cfg.BreakDuration()), nil
}

func (e *appEnv) Tracker(ctx context.Context) (*emotion.Tracker, error) {
	cfg, err := e.Config()
	if err != nil {
		return nil, err
	}
	st, err := e.Store(ctx)
	if err != nil {
		return nil, err
	}
	scale := emotion.Scale{Min: cfg.Emotion.ScaleMin, Max: cfg.Emotion.ScaleMax}
	return emotion.NewTracker(st, scale, cfg.PromptInterval()), nil
}

func (e *appEnv) Close() error {
	if e.store == nil {
		return nil
	}
	err := e.store.Close()
	e.store = nil
	return err
}
