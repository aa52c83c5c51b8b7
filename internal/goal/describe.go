package goal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Describe renders the goal as the sentence the user sees, e.g.
// "I want to switch at least 5 times to Emails per day."
func Describe(g Goal) string {
	var b strings.Builder
	switch g.Kind {
	case KindSwitchesTo:
		b.WriteString("I want to switch ")
		b.WriteString(g.Operator.Description())
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(g.Target, 'f', -1, 64))
		b.WriteString(" times to ")
		b.WriteString(g.Activity.Description())
	case KindTimeSpentOn:
		b.WriteString("I want to spend ")
		b.WriteString(g.Operator.Description())
		b.WriteByte(' ')
		b.WriteString(FormatDuration(g.TargetDuration()))
		b.WriteString(" on ")
		b.WriteString(g.Activity.Description())
	default:
		return fmt.Sprintf("Unknown goal kind %s", g.Kind)
	}
	b.WriteString(" per ")
	b.WriteString(string(g.TimeSpan))
	b.WriteByte('.')
	return b.String()
}

// FormatDuration prints whole hours and minutes, e.g. "2h", "45m", "1h30m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	hours := d / time.Hour
	minutes := (d % time.Hour) / time.Minute
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh%02dm", int64(hours), int64(minutes))
	case hours > 0:
		return fmt.Sprintf("%dh", int64(hours))
	default:
		return fmt.Sprintf("%dm", int64(minutes))
	}
}

// ParseTarget reads a target for the given kind: a count for switch goals and
// a Go duration ("90m", "2h") for time goals, returned in milliseconds.
func ParseTarget(kind Kind, value string) (float64, error) {
	value = strings.TrimSpace(value)
	switch kind {
	case KindSwitchesTo:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("%w: %q (expected a positive count)", ErrInvalidTarget, value)
		}
		return n, nil
	case KindTimeSpentOn:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return 0, fmt.Errorf("%w: %q (expected a duration such as 90m or 2h)", ErrInvalidTarget, value)
		}
		return float64(d / time.Millisecond), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}
}
