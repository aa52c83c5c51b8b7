package pomodoro

import "errors"

// ErrAlreadyRunning is returned by Start while another pomodoro is open.
var ErrAlreadyRunning = errors.New("a pomodoro is already running")

// ErrNotRunning is returned by Stop when there is nothing to stop.
var ErrNotRunning = errors.New("no pomodoro is running")
