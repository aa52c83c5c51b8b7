package journal

import (
	"time"

	"github.com/faizmokh/analitik/internal/goal"
)

// Snapshot is the recorded status of one goal on one day.
type Snapshot struct {
	GoalID      int64
	Status      goal.Status
	Description string
	Progress    string
}

// DateSection groups snapshots beneath the same YYYY-MM-DD heading.
type DateSection struct {
	Date      time.Time
	Snapshots []Snapshot
}
