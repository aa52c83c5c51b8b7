package logging

import (
	"io"

	hclog "github.com/hashicorp/go-hclog"
)

// New returns the application logger. Only warnings and errors are shown
// unless verbose is set.
func New(w io.Writer, verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "analitik",
		Level:  level,
		Output: w,
	})
}

// Discard is a logger that drops everything, used by tests and library callers
// that do not supply one.
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}
