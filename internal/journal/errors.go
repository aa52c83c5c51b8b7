package journal

import "errors"

// ErrSectionNotFound is returned when the targeted date heading cannot be located.
var ErrSectionNotFound = errors.New("date section not found")

// ErrNoSnapshots is returned when recording a day without any snapshot lines.
// The existing section, if any, is left untouched.
var ErrNoSnapshots = errors.New("no goal snapshots to record")
